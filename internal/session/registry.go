// Package session tracks the SSH sessions currently connected to the server.
// Sessions are independent; the registry only counts and describes them.
package session

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrFull is returned by Add when the registry is at capacity.
var ErrFull = errors.New("session: server is full")

// Info describes one connected session.
type Info struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string]Info
}

// NewRegistry creates a registry holding at most limit sessions.
// limit <= 0 means unlimited.
func NewRegistry(limit int) *Registry {
	return &Registry{
		limit:    limit,
		sessions: make(map[string]Info),
	}
}

// Add registers a session, or returns ErrFull. Re-adding a known ID
// replaces its entry and never counts against the limit.
func (r *Registry) Add(info Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[info.ID]; !ok && r.limit > 0 && len(r.sessions) >= r.limit {
		return ErrFull
	}
	r.sessions[info.ID] = info
	return nil
}

// Remove drops a session. Unknown IDs are ignored.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of active sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns the active sessions, oldest first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}
