package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"handouts/internal/listing"
)

// memoryDSN keeps the database in RAM and shared across the pool's single
// connection. Nothing is ever written to disk.
const memoryDSN = "file:handouts?mode=memory&cache=shared"

const schema = `
CREATE TABLE IF NOT EXISTS listings (
    seq         INTEGER PRIMARY KEY AUTOINCREMENT,
    id          TEXT NOT NULL UNIQUE,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    category    TEXT NOT NULL,
    kind        TEXT NOT NULL,
    urgency     INTEGER NOT NULL DEFAULT 0,
    pickup      TEXT NOT NULL DEFAULT '',
    quantity    INTEGER NOT NULL DEFAULT 0,
    location    TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL,
    distance_km REAL NOT NULL DEFAULT 0
);
`

// SQLite is the database-backed store. The schema lives in an in-memory
// SQLite database; insertion order is the autoincrement seq, read back
// descending so the newest listing comes first.
type SQLite struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLite opens the in-memory database and creates the schema.
func NewSQLite() (*SQLite, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open listing db: %w", err)
	}
	// A second connection would see its own empty memory database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create listings table: %w", err)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

// NewSQLiteSeeded opens the store and loads the demo listings.
func NewSQLiteSeeded() (*SQLite, error) {
	s, err := NewSQLite()
	if err != nil {
		return nil, err
	}
	seed := listing.Seed(s.now())
	// Seed is most-recent-first; insert back to front so All preserves it.
	for i := len(seed) - 1; i >= 0; i-- {
		l := seed[i]
		if err := s.insert(&l); err != nil {
			s.Close()
			return nil, fmt.Errorf("seed listings: %w", err)
		}
	}
	return s, nil
}

// Add validates l, fills in ID and CreatedAt when absent, and inserts it as
// the newest row. Validation failures leave the table unchanged.
func (s *SQLite) Add(l *listing.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	return s.insert(l)
}

func (s *SQLite) insert(l *listing.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO listings
		 (id, title, description, category, kind, urgency, pickup, quantity, location, created_at, distance_km)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Title, l.Description, string(l.Category), string(l.Kind),
		int(l.Urgency), string(l.Pickup), l.Quantity, l.Location,
		l.CreatedAt.UTC().Format(time.RFC3339Nano), l.DistanceKm,
	)
	if err != nil {
		return fmt.Errorf("insert listing %s: %w", l.ID, err)
	}
	return nil
}

// All returns every listing, most recent first.
func (s *SQLite) All() ([]listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(
		`SELECT id, title, description, category, kind, urgency, pickup, quantity, location, created_at, distance_km
		 FROM listings ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []listing.Listing
	for rows.Next() {
		var l listing.Listing
		var category, kind, pickup, createdAt string
		var urgency int
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &category, &kind,
			&urgency, &pickup, &l.Quantity, &l.Location, &createdAt, &l.DistanceKm); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		l.Category = listing.Category(category)
		l.Kind = listing.Kind(kind)
		l.Urgency = listing.Urgency(urgency)
		l.Pickup = listing.PickupWindow(pickup)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			l.CreatedAt = t
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	if out == nil {
		out = []listing.Listing{}
	}
	return out, nil
}

// Len reports the number of listings; 0 on query failure.
func (s *SQLite) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM listings`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close releases the database. The contents are gone with it.
func (s *SQLite) Close() error {
	return s.db.Close()
}
