package listing

// Stats are the dashboard counters derived from the current collection.
// MatchesMade is a demo figure: the smaller side of the need/offer split,
// standing in for a real matching service.
type Stats struct {
	ActiveNeeds int
	TotalOffers int
	MatchesMade int
}

// ComputeStats derives dashboard counters from listings.
func ComputeStats(listings []Listing) Stats {
	var s Stats
	for _, l := range listings {
		switch l.Kind {
		case KindNeed:
			s.ActiveNeeds++
		case KindOffer:
			s.TotalOffers++
		}
	}
	if s.ActiveNeeds < s.TotalOffers {
		s.MatchesMade = s.ActiveNeeds
	} else {
		s.MatchesMade = s.TotalOffers
	}
	return s
}

// TrendingCategory returns the category with the most active needs, used to
// seed the community insight prompt. Ties resolve to the earliest listing.
func TrendingCategory(listings []Listing) Category {
	counts := make(map[Category]int)
	best := CategoryOther
	bestCount := 0
	for _, l := range listings {
		if l.Kind != KindNeed {
			continue
		}
		counts[l.Category]++
		if counts[l.Category] > bestCount {
			best = l.Category
			bestCount = counts[l.Category]
		}
	}
	return best
}
