// Package listing defines the marketplace item model and the pure filtering
// that views apply over it. Listings are immutable once created and are
// never deleted; the collection lives only for the process lifetime.
package listing

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes a request for help from an offer of it.
type Kind string

const (
	// KindNeed is a request for an item.
	KindNeed Kind = "NEED"

	// KindOffer is a donation offer.
	KindOffer Kind = "OFFER"
)

// Valid reports whether the kind is one of the two listing kinds.
func (k Kind) Valid() bool {
	return k == KindNeed || k == KindOffer
}

// Category is one of the fourteen fixed item categories.
type Category string

const (
	CategoryFood        Category = "Food"
	CategoryClothesAdult Category = "Clothes (Adult)"
	CategoryClothesKids Category = "Clothes (Kids)"
	CategoryBaby        Category = "Baby Supplies"
	CategoryHygiene     Category = "Hygiene"
	CategoryMedical     Category = "Medical/First Aid"
	CategoryHousehold   Category = "Household"
	CategoryBedding     Category = "Bedding"
	CategorySchool      Category = "School Supplies"
	CategoryPets        Category = "Pet Food"
	CategoryTech        Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryToys        Category = "Toys/Books"
	CategoryOther       Category = "Other"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryClothesAdult,
		CategoryClothesKids,
		CategoryBaby,
		CategoryHygiene,
		CategoryMedical,
		CategoryHousehold,
		CategoryBedding,
		CategorySchool,
		CategoryPets,
		CategoryTech,
		CategoryFurniture,
		CategoryToys,
		CategoryOther,
	}
}

// Valid reports whether c is drawn from the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Urgency grades a need from 1 (low) to 5 (life-threatening). It is
// meaningful only on listings of KindNeed.
type Urgency int

const (
	UrgencyLow       Urgency = 1
	UrgencyMedium    Urgency = 2
	UrgencyHigh      Urgency = 3
	UrgencyCritical  Urgency = 4
	UrgencyEmergency Urgency = 5
)

// String returns a human-readable label for the urgency level.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "Low"
	case UrgencyMedium:
		return "Medium"
	case UrgencyHigh:
		return "High"
	case UrgencyCritical:
		return "Critical"
	case UrgencyEmergency:
		return "Emergency"
	default:
		return fmt.Sprintf("Urgency(%d)", int(u))
	}
}

// PickupWindow is the collection window a giver attaches to an offer.
type PickupWindow string

const (
	PickupMorning   PickupWindow = "Morning"
	PickupAfternoon PickupWindow = "Afternoon"
	PickupEvening   PickupWindow = "Evening"
)

// PickupWindows lists the selectable windows in display order.
func PickupWindows() []PickupWindow {
	return []PickupWindow{PickupMorning, PickupAfternoon, PickupEvening}
}

// Listing is a posted item need or offer. The ID and CreatedAt are assigned
// by the store on insert when absent.
type Listing struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Kind        Kind

	// Urgency applies to needs; Pickup and Quantity apply to offers.
	Urgency  Urgency
	Pickup   PickupWindow
	Quantity int

	Location   string
	CreatedAt  time.Time
	DistanceKm float64
}

// ValidationError reports the required fields a listing is missing or has
// out of range. It is the only error the store raises.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid listing: " + strings.Join(e.Problems, "; ")
}

// Validate checks the required fields. A nil return means the listing is
// acceptable to the store.
func (l Listing) Validate() error {
	var problems []string
	if strings.TrimSpace(l.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(l.Description) == "" {
		problems = append(problems, "description is required")
	}
	if !l.Category.Valid() {
		problems = append(problems, fmt.Sprintf("unknown category %q", string(l.Category)))
	}
	if !l.Kind.Valid() {
		problems = append(problems, fmt.Sprintf("unknown kind %q", string(l.Kind)))
	}
	if l.Kind == KindNeed && (l.Urgency < UrgencyLow || l.Urgency > UrgencyEmergency) {
		problems = append(problems, fmt.Sprintf("urgency %d out of range 1-5", int(l.Urgency)))
	}
	if l.DistanceKm < 0 {
		problems = append(problems, "distance cannot be negative")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
