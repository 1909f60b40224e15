package insight

import (
	"context"
	"fmt"
	"strings"

	"handouts/internal/listing"
	"handouts/internal/session"
)

// Static is the offline provider: deterministic canned output, no network.
// Used when no API key is configured and as the test double.
type Static struct{}

// AnalyzeRequest does a shallow reading: the first few words become the
// title and the text itself the description.
func (Static) AnalyzeRequest(_ context.Context, text string) (*Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	words := strings.Fields(text)
	title := strings.Join(words[:min(len(words), 5)], " ")
	return &Analysis{
		Title:       title,
		Description: text,
		Category:    string(listing.CategoryOther),
		Urgency:     int(listing.UrgencyMedium),
	}, nil
}

// CommunityInsights returns the stable-activity summary.
func (Static) CommunityInsights(_ context.Context, m Metrics) (string, error) {
	return fmt.Sprintf("The community is carrying %d active needs and has made %d matches this week. Demand is strongest in %s.",
		m.ActiveNeeds, m.Matches, m.Trend), nil
}

// CommunityPulse returns the canned Toronto pulse.
func (Static) CommunityPulse(_ context.Context) (*Pulse, error) {
	return &Pulse{
		Story:      "Community activity is high this week with a noticeable increase in requests for winter essentials across the downtown core.",
		Prediction: "Expect a 15% increase in demand for warm clothing as temperatures drop.",
		Hotspots:   []string{"Scarborough", "North York", "Downtown"},
	}, nil
}

// DashboardTips returns role-appropriate canned tips.
func (Static) DashboardTips(_ context.Context, role session.Role) ([]string, error) {
	if role == session.RoleNeeder {
		return []string{
			"Be specific in your requests.",
			"Update your location.",
			"Check back often.",
		}, nil
	}
	return []string{
		"Activity peaks at 6pm.",
		"Weekends see more donations.",
		"Keep notifications on.",
	}, nil
}

// ProfileInsights returns the welcome note.
func (Static) ProfileInsights(_ context.Context, role session.Role, location string, _ []listing.Category) (string, error) {
	if role == session.RoleNeeder {
		return fmt.Sprintf("Givers near %s are most active on weekends. Keep your preferences current so matches find you.", location), nil
	}
	return fmt.Sprintf("Warm clothing and food are the most requested items near %s right now.", location), nil
}

// OptimizeDescription returns the text unchanged.
func (Static) OptimizeDescription(_ context.Context, text string, _ listing.Kind) (string, error) {
	return text, nil
}
