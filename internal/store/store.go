// Package store holds the in-process listing collection. Two
// implementations share one contract: a plain slice store used by tests and
// as a fallback, and a SQLite store on an in-memory database used by the
// app. Neither is durable; listings live for the process lifetime only.
//
// Stores are mutated only from the TUI update loop, one event at a time,
// but both implementations carry a mutex so the contract holds if a future
// caller strays off that thread.
package store

import "handouts/internal/listing"

// Store is the insertion-ordered listing collection. Add validates and
// places the listing at the front; All returns most-recent-first. There is
// no update or delete.
type Store interface {
	Add(l *listing.Listing) error
	All() ([]listing.Listing, error)
	Len() int
}
