package quiz

import (
	"sync"
)

// ballot is an ordered set of choice indices. Voters may end up holding
// several choices at once (answers are not mutually exclusive); the first
// recorded one is the authoritative pick for scoring, so insertion order has
// to be preserved.
type ballot []int

func (b ballot) has(choice int) bool {
	for _, c := range b {
		if c == choice {
			return true
		}
	}
	return false
}

func (b ballot) without(choice int) ballot {
	out := b[:0]
	for _, c := range b {
		if c != choice {
			out = append(out, c)
		}
	}
	return out
}

// Collector accumulates votes for every open session. All operations are
// atomic per session; events targeting an unknown or already drained session
// are silently dropped, since late and duplicate deliveries are expected.
//
// Callers are responsible for filtering out bot and system identities before
// recording: the collector assumes every voter is an eligible human.
type Collector struct {
	mu       sync.Mutex
	sessions map[string]map[int64]ballot
}

func NewCollector() *Collector {
	return &Collector{
		sessions: make(map[string]map[int64]ballot),
	}
}

// Begin opens vote collection for the session. A redundant Begin for a live
// id discards everything accumulated so far; session ids come from freshly
// created poll messages, so a collision means the platform misbehaved.
func (c *Collector) Begin(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[sessionID] = make(map[int64]ballot)
}

// Record notes that the voter signalled the given choice. Duplicates of an
// already held choice are ignored.
func (c *Collector) Record(sessionID string, voterID int64, choice int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	votes, ok := c.sessions[sessionID]
	if !ok {
		return
	}
	if votes[voterID].has(choice) {
		return
	}
	votes[voterID] = append(votes[voterID], choice)
}

// Revoke retracts one choice from the voter's ballot. A voter left with no
// choices is removed entirely, never kept around empty.
func (c *Collector) Revoke(sessionID string, voterID int64, choice int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	votes, ok := c.sessions[sessionID]
	if !ok {
		return
	}
	b, ok := votes[voterID]
	if !ok {
		return
	}
	b = b.without(choice)
	if len(b) == 0 {
		delete(votes, voterID)
	} else {
		votes[voterID] = b
	}
}

// DropVoter retracts every choice the voter holds in the session. Telegram
// reports a withdrawn vote as a voter-scoped event without naming the
// retracted options, so the glue needs this alongside Revoke.
func (c *Collector) DropVoter(sessionID string, voterID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	votes, ok := c.sessions[sessionID]
	if !ok {
		return
	}
	delete(votes, voterID)
}

// Clear wipes every recorded vote of the session without closing it.
func (c *Collector) Clear(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sessions[sessionID]; ok {
		c.sessions[sessionID] = make(map[int64]ballot)
	}
}

// ClearChoice retracts one choice from every voter in the session, pruning
// voters left with nothing.
func (c *Collector) ClearChoice(sessionID string, choice int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	votes, ok := c.sessions[sessionID]
	if !ok {
		return
	}
	for voterID, b := range votes {
		b = b.without(choice)
		if len(b) == 0 {
			delete(votes, voterID)
		} else {
			votes[voterID] = b
		}
	}
}

// End atomically removes the session and returns its final state, mapping
// each voter to their recorded choices in insertion order. Once End has
// returned, no later event can touch the tally; a second End yields nil.
func (c *Collector) End(sessionID string) map[int64][]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	votes, ok := c.sessions[sessionID]
	if !ok {
		return nil
	}
	delete(c.sessions, sessionID)
	out := make(map[int64][]int, len(votes))
	for voterID, b := range votes {
		out[voterID] = b
	}
	return out
}
