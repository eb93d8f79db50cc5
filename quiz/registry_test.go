package quiz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quizzo-bot/quiz"
)

func stagedQuestion(text string) quiz.Question {
	return quiz.Question{
		Description: text,
		Choices:     []string{"A", "B"},
		Answer:      0,
		Limit:       10 * time.Second,
	}
}

func TestRegistryTakeOnce(t *testing.T) {
	r := quiz.NewRegistry()
	r.Stage(1, stagedQuestion("Q"))

	q, ok := r.Take(1)
	require.True(t, ok)
	require.Equal(t, "Q", q.Description)

	_, ok = r.Take(1)
	require.False(t, ok, "a staged question may be taken exactly once")
}

func TestRegistryTakeUnknownHost(t *testing.T) {
	r := quiz.NewRegistry()

	_, ok := r.Take(42)
	require.False(t, ok)
}

func TestRegistryRestageOverwrites(t *testing.T) {
	r := quiz.NewRegistry()
	r.Stage(1, stagedQuestion("first"))
	r.Stage(1, stagedQuestion("second"))

	q, ok := r.Take(1)
	require.True(t, ok)
	require.Equal(t, "second", q.Description)

	_, ok = r.Take(1)
	require.False(t, ok)
}

func TestRegistryHostsAreIndependent(t *testing.T) {
	r := quiz.NewRegistry()
	r.Stage(1, stagedQuestion("one"))
	r.Stage(2, stagedQuestion("two"))

	q, ok := r.Take(2)
	require.True(t, ok)
	require.Equal(t, "two", q.Description)

	q, ok = r.Take(1)
	require.True(t, ok)
	require.Equal(t, "one", q.Description)
}
