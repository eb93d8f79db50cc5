package quiz

import (
	"sort"
	"sync"
)

// Entry is one leaderboard row with the display name already resolved.
type Entry struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
}

// Leaderboard counts won sessions per user for the lifetime of the process.
// It stores identities only; display names are resolved at read time through
// an injected lookup, so the engine stays decoupled from the platform's
// identity cache.
type Leaderboard struct {
	mu   sync.Mutex
	wins map[int64]int
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{
		wins: make(map[int64]int),
	}
}

// Increment adds one win to the user, starting from zero for new users.
func (l *Leaderboard) Increment(userID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.wins[userID]++
}

// Snapshot returns the standings ordered by win count descending; equal
// counts are ordered by resolved name ascending. The board is bounded by
// distinct winners, so a full sort per read is fine.
func (l *Leaderboard) Snapshot(resolveName func(int64) string) []Entry {
	l.mu.Lock()
	entries := make([]Entry, 0, len(l.wins))
	for userID, wins := range l.wins {
		entries = append(entries, Entry{UserID: userID, Wins: wins})
	}
	l.mu.Unlock()

	// resolveName may call back into the platform; keep it outside the lock
	for i := range entries {
		entries[i].Name = resolveName(entries[i].UserID)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
