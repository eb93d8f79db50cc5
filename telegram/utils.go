package telegram

import (
	"strconv"
	"strings"
	"sync"

	"gopkg.in/telebot.v3"
)

// nameCache remembers the display name of every user seen in a command or a
// vote, so leaderboard reads and mentions do not need platform lookups.
type nameCache struct {
	mu    sync.Mutex
	known map[int64]string
}

func newNameCache() *nameCache {
	return &nameCache{
		known: make(map[int64]string),
	}
}

func (n *nameCache) remember(u *telebot.User) {
	if u == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.known[u.ID] = displayName(u)
}

func (n *nameCache) resolve(userID int64) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if name, ok := n.known[userID]; ok {
		return name
	}
	return "user:" + strconv.FormatInt(userID, 10)
}

// displayName compiles a proper name from the first/last name, falling back
// to the username.
func displayName(u *telebot.User) string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}

	if strings.TrimSpace(name) != "" {
		return name
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return "user:" + strconv.FormatInt(u.ID, 10)
}
