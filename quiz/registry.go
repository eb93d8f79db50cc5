package quiz

import (
	"sync"
)

// Registry holds at most one staged question per host user, waiting for an
// explicit launch. Entries never expire; re-staging simply overwrites.
type Registry struct {
	mu     sync.Mutex
	staged map[int64]Question
}

func NewRegistry() *Registry {
	return &Registry{
		staged: make(map[int64]Question),
	}
}

// Stage sets the host's pending question. Last write wins.
func (r *Registry) Stage(hostID int64, q Question) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged[hostID] = q
}

// Take removes and returns the host's staged question. A staged question can
// be taken exactly once; the second call reports absence.
func (r *Registry) Take(hostID int64) (Question, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.staged[hostID]
	if ok {
		delete(r.staged, hostID)
	}
	return q, ok
}
