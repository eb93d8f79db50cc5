package quiz_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"quizzo-bot/quiz"
)

func numericName(id int64) string {
	return "user:" + strconv.FormatInt(id, 10)
}

func TestLeaderboardCounts(t *testing.T) {
	l := quiz.NewLeaderboard()
	l.Increment(2)
	l.Increment(2)
	l.Increment(1)

	entries := l.Snapshot(numericName)
	require.Equal(t, []quiz.Entry{
		{UserID: 2, Name: "user:2", Wins: 2},
		{UserID: 1, Name: "user:1", Wins: 1},
	}, entries)
}

func TestLeaderboardEmpty(t *testing.T) {
	l := quiz.NewLeaderboard()
	require.Empty(t, l.Snapshot(numericName))
}

func TestLeaderboardTieBreaksOnName(t *testing.T) {
	l := quiz.NewLeaderboard()
	l.Increment(10)
	l.Increment(20)
	l.Increment(30)

	names := map[int64]string{10: "charlie", 20: "alice", 30: "bob"}
	entries := l.Snapshot(func(id int64) string { return names[id] })

	require.Equal(t, []string{"alice", "bob", "charlie"}, []string{
		entries[0].Name, entries[1].Name, entries[2].Name,
	})
}

func TestLeaderboardMixedCountsAndTies(t *testing.T) {
	l := quiz.NewLeaderboard()
	for i := 0; i < 3; i++ {
		l.Increment(1)
	}
	l.Increment(2)
	l.Increment(3)

	names := map[int64]string{1: "zed", 2: "mallory", 3: "bob"}
	entries := l.Snapshot(func(id int64) string { return names[id] })

	require.Equal(t, []quiz.Entry{
		{UserID: 1, Name: "zed", Wins: 3},
		{UserID: 3, Name: "bob", Wins: 1},
		{UserID: 2, Name: "mallory", Wins: 1},
	}, entries)
}
