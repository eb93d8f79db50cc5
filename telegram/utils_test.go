package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func TestDisplayName(t *testing.T) {
	tests := map[string]struct {
		user telebot.User
		want string
	}{
		"full name":       {telebot.User{ID: 1, FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		"first name only": {telebot.User{ID: 1, FirstName: "Ada"}, "Ada"},
		"username only":   {telebot.User{ID: 1, Username: "ada"}, "@ada"},
		"nothing at all":  {telebot.User{ID: 7}, "user:7"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, displayName(&tt.user))
		})
	}
}

func TestNameCache(t *testing.T) {
	n := newNameCache()

	require.Equal(t, "user:5", n.resolve(5), "unknown users resolve to a stable fallback")

	n.remember(&telebot.User{ID: 5, FirstName: "Bob"})
	require.Equal(t, "Bob", n.resolve(5))

	n.remember(nil) // must not panic
	require.Equal(t, "Bob", n.resolve(5))
}
