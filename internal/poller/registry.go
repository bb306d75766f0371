package poller

import (
	"sync"
	"time"
)

// Registry remembers message ids whose cases were persisted this process
// lifetime. It backstops the unread-flag cursor: if marking a message as
// read fails after its case was written, the next cycle still skips it
// instead of drafting a duplicate case.
type Registry struct {
	entries map[string]time.Time
	ttl     time.Duration
	mutex   sync.Mutex
}

// NewRegistry creates a registry whose entries expire after ttl
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]time.Time),
		ttl:     ttl,
	}
}

// Seen reports whether the message id was marked processed and has not expired
func (r *Registry) Seen(id string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	expiresAt, exists := r.entries[id]
	if !exists {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(r.entries, id)
		return false
	}
	return true
}

// MarkProcessed records the message id
func (r *Registry) MarkProcessed(id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries[id] = time.Now().Add(r.ttl)
}

// Prune drops expired entries so a long-running poller does not grow unbounded
func (r *Registry) Prune() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now()
	for id, expiresAt := range r.entries {
		if now.After(expiresAt) {
			delete(r.entries, id)
		}
	}
}

// Len returns the number of live entries
func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.entries)
}
