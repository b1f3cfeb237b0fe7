package cleaner

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrAlreadyRegistered is returned when a document key is registered twice.
var ErrAlreadyRegistered = errors.New("cleaner already registered")

// Registry is an explicit table mapping document-type keys to cleaners.
// Entries are registered at start-up; lookups are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	cleaners map[string]*Cleaner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cleaners: make(map[string]*Cleaner)}
}

// Register adds a cleaner under the given document key. Registering the same
// key twice is a wiring mistake and returns ErrAlreadyRegistered.
func (r *Registry) Register(doc string, c *Cleaner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cleaners[doc]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, doc)
	}
	r.cleaners[doc] = c
	return nil
}

// Lookup returns the cleaner registered under doc, if any.
func (r *Registry) Lookup(doc string) (*Cleaner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cleaners[doc]
	return c, ok
}

// Docs returns the registered document keys in sorted order.
func (r *Registry) Docs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]string, 0, len(r.cleaners))
	for doc := range r.cleaners {
		docs = append(docs, doc)
	}
	sort.Strings(docs)
	return docs
}
