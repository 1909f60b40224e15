package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"handouts/internal/listing"
)

// Memory is the slice-backed store. Deterministic and allocation-cheap;
// used by tests and whenever the SQLite store cannot be opened.
type Memory struct {
	mu       sync.RWMutex
	listings []listing.Listing
	now      func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// NewMemorySeeded returns a store preloaded with the demo listings.
func NewMemorySeeded() *Memory {
	m := NewMemory()
	seed := listing.Seed(m.now())
	// Seed is already most-recent-first; keep it that way.
	m.listings = append(m.listings, seed...)
	return m
}

// Add validates l, fills in ID and CreatedAt when absent, and inserts it at
// the front. Validation failures leave the store unchanged.
func (m *Memory) Add(l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = m.now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = append([]listing.Listing{*l}, m.listings...)
	return nil
}

// All returns a copy of the collection, most recent first.
func (m *Memory) All() ([]listing.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]listing.Listing, len(m.listings))
	copy(out, m.listings)
	return out, nil
}

// Len reports the number of listings.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.listings)
}
