package listing

// Wildcards for Selection fields. CategoryAll matches every category and
// KindAll matches both kinds.
const (
	CategoryAll Category = "All"
	KindAll     Kind     = "ALL"
)

// Selection is the transient filter state held by the marketplace view. It
// never persists and resetting it has no effect on the underlying store.
type Selection struct {
	Category Category
	Kind     Kind
}

// AllSelection matches everything.
func AllSelection() Selection {
	return Selection{Category: CategoryAll, Kind: KindAll}
}

// Matches reports whether a single listing passes the selection. The two
// predicates compose by AND.
func (s Selection) Matches(l Listing) bool {
	if s.Category != CategoryAll && l.Category != s.Category {
		return false
	}
	if s.Kind != KindAll && l.Kind != s.Kind {
		return false
	}
	return true
}

// Filter returns the listings passing sel, preserving the relative order of
// the source. It is stable and idempotent; an empty result is a normal
// "no matches" outcome, not an error.
func Filter(listings []Listing, sel Selection) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if sel.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
