package listing

import "time"

// Seed returns the demo listings the marketplace starts with, most recent
// first. IDs are fixed so the CLI output is stable run to run.
func Seed(now time.Time) []Listing {
	return []Listing{
		{
			ID:          "seed-1",
			Title:       "Infant Formula (Enfamil)",
			Description: "We ran out of formula this week and payday isnt until Friday. Need 1 can.",
			Category:    CategoryBaby,
			Kind:        KindNeed,
			Urgency:     UrgencyHigh,
			Location:    "Downtown",
			CreatedAt:   now,
			DistanceKm:  1.2,
		},
		{
			ID:          "seed-2",
			Title:       "Winter Coat (Size M)",
			Description: "Offering a gently used North Face jacket. Very warm.",
			Category:    CategoryClothesAdult,
			Kind:        KindOffer,
			Urgency:     UrgencyLow,
			Location:    "West End",
			CreatedAt:   now,
			DistanceKm:  3.5,
		},
		{
			ID:          "seed-3",
			Title:       "Canned Vegetables Box",
			Description: "Need food for family of 4. Beans, corn, peas preferred.",
			Category:    CategoryFood,
			Kind:        KindNeed,
			Urgency:     UrgencyMedium,
			Location:    "North York",
			CreatedAt:   now,
			DistanceKm:  5.1,
		},
		{
			ID:          "seed-4",
			Title:       "Hygiene Kit (Women)",
			Description: "Unused soaps, shampoos, and sanitary products available.",
			Category:    CategoryHygiene,
			Kind:        KindOffer,
			Urgency:     UrgencyLow,
			Location:    "Downtown",
			CreatedAt:   now,
			DistanceKm:  0.8,
		},
		{
			ID:          "seed-5",
			Title:       "Insulin Cooling Case",
			Description: "Urgent need for a travel case for insulin pens.",
			Category:    CategoryMedical,
			Kind:        KindNeed,
			Urgency:     UrgencyCritical,
			Location:    "Scarborough",
			CreatedAt:   now,
			DistanceKm:  12.0,
		},
	}
}
