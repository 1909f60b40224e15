// Package insight is the generative-text collaborator boundary: request
// analysis, description polish, community summaries, and tips. The Gemini
// provider does the real work; Static is the deterministic double; and
// WithFallback absorbs every provider failure into the canned strings so an
// unavailable collaborator never reaches the UI as an error.
package insight

import (
	"context"

	"handouts/internal/listing"
	"handouts/internal/session"
)

// Analysis is the structured reading of a free-text aid request.
type Analysis struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Urgency     int    `json:"urgency"`
	Location    string `json:"location"`
}

// Pulse is the community activity story for the dashboard.
type Pulse struct {
	Story      string   `json:"story"`
	Prediction string   `json:"prediction"`
	Hotspots   []string `json:"hotspots"`
}

// Metrics seed the community summary prompt.
type Metrics struct {
	ActiveNeeds int
	Matches     int
	Trend       listing.Category
}

// Provider generates the marketplace's advisory text. Implementations may
// fail; callers wrap them in WithFallback before handing them to views.
type Provider interface {
	// AnalyzeRequest structures a raw aid request. A nil analysis with a
	// nil error means the provider had nothing useful; callers keep the
	// manual entry.
	AnalyzeRequest(ctx context.Context, text string) (*Analysis, error)

	// CommunityInsights writes the two-sentence impact summary.
	CommunityInsights(ctx context.Context, m Metrics) (string, error)

	// CommunityPulse writes the dashboard story, prediction and hotspots.
	CommunityPulse(ctx context.Context) (*Pulse, error)

	// DashboardTips returns short tips for the given role.
	DashboardTips(ctx context.Context, role session.Role) ([]string, error)

	// ProfileInsights writes a personalized note for the profile page.
	ProfileInsights(ctx context.Context, role session.Role, location string, prefs []listing.Category) (string, error)

	// OptimizeDescription rewrites a listing description to be clearer and
	// friendlier, keeping the author's intent.
	OptimizeDescription(ctx context.Context, text string, kind listing.Kind) (string, error)
}
