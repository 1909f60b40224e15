package listing

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleListings() []Listing {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	return []Listing{
		{ID: "a", Title: "Rice", Description: "Family pack", Category: CategoryFood, Kind: KindNeed, Urgency: UrgencyMedium, CreatedAt: now},
		{ID: "b", Title: "Soup cans", Description: "Unopened", Category: CategoryFood, Kind: KindOffer, CreatedAt: now},
		{ID: "c", Title: "Diapers", Description: "Size 3", Category: CategoryBaby, Kind: KindNeed, Urgency: UrgencyHigh, CreatedAt: now},
	}
}

func ids(listings []Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestFilterAllIsIdentity(t *testing.T) {
	src := sampleListings()
	got := Filter(src, AllSelection())
	if diff := cmp.Diff(src, got); diff != "" {
		t.Fatalf("all/all filter changed the collection (-want +got):\n%s", diff)
	}
}

func TestFilterByKindPreservesOrder(t *testing.T) {
	got := Filter(sampleListings(), Selection{Category: CategoryAll, Kind: KindNeed})
	if diff := cmp.Diff([]string{"a", "c"}, ids(got)); diff != "" {
		t.Fatalf("kind filter wrong (-want +got):\n%s", diff)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(sampleListings(), Selection{Category: CategoryFood, Kind: KindAll})
	if diff := cmp.Diff([]string{"a", "b"}, ids(got)); diff != "" {
		t.Fatalf("category filter wrong (-want +got):\n%s", diff)
	}
}

func TestFilterComposesByAnd(t *testing.T) {
	got := Filter(sampleListings(), Selection{Category: CategoryFood, Kind: KindOffer})
	if diff := cmp.Diff([]string{"b"}, ids(got)); diff != "" {
		t.Fatalf("combined filter wrong (-want +got):\n%s", diff)
	}
}

func TestFilterIdempotent(t *testing.T) {
	sel := Selection{Category: CategoryFood, Kind: KindNeed}
	once := Filter(sampleListings(), sel)
	twice := Filter(once, sel)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("filter not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterEmptyResultIsNotAnError(t *testing.T) {
	got := Filter(sampleListings(), Selection{Category: CategoryFurniture, Kind: KindAll})
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
