package listing

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
}

func TestValidateAcceptsCompleteListing(t *testing.T) {
	l := Listing{
		Title:       "Coat",
		Description: "warm",
		Category:    CategoryClothesAdult,
		Kind:        KindOffer,
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("valid listing rejected: %v", err)
	}
}

func TestValidateRejectsMissingTitle(t *testing.T) {
	l := Listing{
		Description: "warm",
		Category:    CategoryClothesAdult,
		Kind:        KindOffer,
	}
	err := l.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(verr.Error(), "title") {
		t.Fatalf("error should name the title field: %v", verr)
	}
}

func TestValidateRejectsWhitespaceDescription(t *testing.T) {
	l := Listing{
		Title:       "Coat",
		Description: "   ",
		Category:    CategoryClothesAdult,
		Kind:        KindOffer,
	}
	if err := l.Validate(); err == nil {
		t.Fatalf("whitespace-only description accepted")
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	l := Listing{
		Title:       "Coat",
		Description: "warm",
		Category:    Category("Gadgets"),
		Kind:        KindOffer,
	}
	if err := l.Validate(); err == nil {
		t.Fatalf("unknown category accepted")
	}
}

func TestValidateRejectsOutOfRangeUrgency(t *testing.T) {
	l := Listing{
		Title:       "Bread",
		Description: "any loaf",
		Category:    CategoryFood,
		Kind:        KindNeed,
		Urgency:     Urgency(9),
	}
	if err := l.Validate(); err == nil {
		t.Fatalf("urgency 9 accepted")
	}
	l.Urgency = UrgencyEmergency
	if err := l.Validate(); err != nil {
		t.Fatalf("urgency 5 rejected: %v", err)
	}
}

func TestValidateIgnoresUrgencyOnOffers(t *testing.T) {
	l := Listing{
		Title:       "Coat",
		Description: "warm",
		Category:    CategoryClothesAdult,
		Kind:        KindOffer,
		// zero urgency is fine for offers
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("offer with zero urgency rejected: %v", err)
	}
}

func TestCategoriesAreFourteen(t *testing.T) {
	if got := len(Categories()); got != 14 {
		t.Fatalf("expected 14 categories, got %d", got)
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(Seed(testTime(t)))
	if stats.ActiveNeeds != 3 || stats.TotalOffers != 2 {
		t.Fatalf("seed stats wrong: %+v", stats)
	}
	if stats.MatchesMade != 2 {
		t.Fatalf("matches should be min(needs, offers): %+v", stats)
	}
}

func TestTrendingCategoryCountsNeedsOnly(t *testing.T) {
	listings := []Listing{
		{Category: CategoryFood, Kind: KindOffer},
		{Category: CategoryFood, Kind: KindOffer},
		{Category: CategoryBaby, Kind: KindNeed},
	}
	if got := TrendingCategory(listings); got != CategoryBaby {
		t.Fatalf("expected Baby Supplies, got %s", got)
	}
}
