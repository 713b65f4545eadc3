// internal/api/history.go
package api

import (
	"strings"
	"sync"
)

// Recent searches kept; older entries fall off the end.
const historyLimit = 10

// History is the in-memory recent-search list. Most recent first,
// case-insensitively deduplicated, capped at historyLimit. It is the only
// mutable state in the service and guards itself with a mutex.
type History struct {
	mu      sync.Mutex
	entries []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Add records a search, moving an existing entry to the front.
func (h *History) Add(username string) {
	if username == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = remove(h.entries, username)
	h.entries = append([]string{username}, h.entries...)
	if len(h.entries) > historyLimit {
		h.entries = h.entries[:historyLimit]
	}
}

// List returns a copy of the entries, most recent first.
func (h *History) List() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Remove deletes a single entry if present.
func (h *History) Remove(username string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = remove(h.entries, username)
}

// Clear empties the list.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

func remove(entries []string, username string) []string {
	out := entries[:0]
	for _, e := range entries {
		if !strings.EqualFold(e, username) {
			out = append(out, e)
		}
	}
	return out
}
