package store

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"handouts/internal/listing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// both runs a subtest against each store implementation.
func both(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := NewSQLite()
		if err != nil {
			t.Fatalf("open sqlite store: %v", err)
		}
		defer s.Close()
		fn(t, s)
	})
}

func TestAddAssignsIDAndTimestamp(t *testing.T) {
	both(t, func(t *testing.T, s Store) {
		l := &listing.Listing{
			Title:       "Coat",
			Description: "warm",
			Category:    listing.CategoryClothesAdult,
			Kind:        listing.KindOffer,
		}
		if err := s.Add(l); err != nil {
			t.Fatalf("add: %v", err)
		}
		all, err := s.All()
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("expected 1 listing, got %d", len(all))
		}
		if all[0].ID == "" {
			t.Fatalf("store did not assign an id")
		}
		if all[0].CreatedAt.IsZero() {
			t.Fatalf("store did not assign a timestamp")
		}
		if all[0].Title != "Coat" {
			t.Fatalf("wrong listing returned: %+v", all[0])
		}
	})
}

func TestAddRejectsInvalidListingUnchangedStore(t *testing.T) {
	both(t, func(t *testing.T, s Store) {
		l := &listing.Listing{
			Description: "warm",
			Category:    listing.CategoryClothesAdult,
			Kind:        listing.KindOffer,
		}
		err := s.Add(l)
		if err == nil {
			t.Fatalf("expected rejection for empty title")
		}
		var verr *listing.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *listing.ValidationError, got %T", err)
		}
		if s.Len() != 0 {
			t.Fatalf("store length changed on rejected add: %d", s.Len())
		}
	})
}

func TestAllReturnsMostRecentFirst(t *testing.T) {
	both(t, func(t *testing.T, s Store) {
		for _, title := range []string{"first", "second", "third"} {
			l := &listing.Listing{
				Title:       title,
				Description: "d",
				Category:    listing.CategoryFood,
				Kind:        listing.KindOffer,
			}
			if err := s.Add(l); err != nil {
				t.Fatalf("add %s: %v", title, err)
			}
		}
		all, err := s.All()
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		want := []string{"third", "second", "first"}
		for i, title := range want {
			if all[i].Title != title {
				t.Fatalf("position %d: want %s, got %s", i, title, all[i].Title)
			}
		}
	})
}

func TestSeededStoresMatchSeedOrder(t *testing.T) {
	seed := listing.Seed(time.Now())

	check := func(t *testing.T, s Store) {
		all, err := s.All()
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if len(all) != len(seed) {
			t.Fatalf("want %d seeded listings, got %d", len(seed), len(all))
		}
		for i := range seed {
			if all[i].ID != seed[i].ID {
				t.Fatalf("position %d: want %s, got %s", i, seed[i].ID, all[i].ID)
			}
		}
	}

	t.Run("memory", func(t *testing.T) {
		check(t, NewMemorySeeded())
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := NewSQLiteSeeded()
		if err != nil {
			t.Fatalf("open seeded sqlite store: %v", err)
		}
		defer s.Close()
		check(t, s)
	})
}

func TestNewListingLandsInFrontOfSeed(t *testing.T) {
	s := NewMemorySeeded()
	l := &listing.Listing{
		Title:       "Blankets",
		Description: "two fleece blankets",
		Category:    listing.CategoryBedding,
		Kind:        listing.KindOffer,
	}
	if err := s.Add(l); err != nil {
		t.Fatalf("add: %v", err)
	}
	all, _ := s.All()
	if all[0].Title != "Blankets" {
		t.Fatalf("new listing should be first, got %s", all[0].Title)
	}
}
