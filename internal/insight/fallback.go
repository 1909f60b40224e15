package insight

import (
	"context"
	"time"

	"handouts/internal/listing"
	"handouts/internal/session"
)

// DefaultTimeout bounds each provider call. One attempt, no retries; on
// failure the canned fallback is substituted.
const DefaultTimeout = 10 * time.Second

// Fallback strings, lifted from the original demo so degraded output reads
// the same.
var (
	fallbackInsights = "Unable to generate real-time insights at this moment."
	fallbackPulse    = Pulse{
		Story:      "Community activity is high this week with a noticeable increase in requests for winter essentials across the downtown core.",
		Prediction: "Expect a 15% increase in demand for warm clothing as temperatures drop.",
		Hotspots:   []string{"Scarborough", "North York", "Downtown"},
	}
	fallbackTips    = []string{"Activity peaks at 6pm.", "Weekends see more donations.", "Keep notifications on."}
	fallbackProfile = "Explore the marketplace to find new ways to connect with your neighbors."
)

// Fallback wraps a Provider so that no call ever returns an error: every
// failure, including timeout, is absorbed and replaced with static copy.
// This is the only Provider the views talk to.
type Fallback struct {
	inner   Provider
	timeout time.Duration
}

// WithFallback decorates p. A non-positive timeout uses DefaultTimeout.
func WithFallback(p Provider, timeout time.Duration) *Fallback {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fallback{inner: p, timeout: timeout}
}

func (f *Fallback) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, f.timeout)
}

// AnalyzeRequest returns nil on any failure; callers keep manual entry.
func (f *Fallback) AnalyzeRequest(ctx context.Context, text string) (*Analysis, error) {
	ctx, cancel := f.bound(ctx)
	defer cancel()
	a, err := f.inner.AnalyzeRequest(ctx, text)
	if err != nil {
		return nil, nil
	}
	return a, nil
}

// CommunityInsights never fails.
func (f *Fallback) CommunityInsights(ctx context.Context, m Metrics) (string, error) {
	ctx, cancel := f.bound(ctx)
	defer cancel()
	s, err := f.inner.CommunityInsights(ctx, m)
	if err != nil || s == "" {
		return fallbackInsights, nil
	}
	return s, nil
}

// CommunityPulse never fails.
func (f *Fallback) CommunityPulse(ctx context.Context) (*Pulse, error) {
	ctx, cancel := f.bound(ctx)
	defer cancel()
	p, err := f.inner.CommunityPulse(ctx)
	if err != nil || p == nil {
		fb := fallbackPulse
		return &fb, nil
	}
	return p, nil
}

// DashboardTips never fails.
func (f *Fallback) DashboardTips(ctx context.Context, role session.Role) ([]string, error) {
	ctx, cancel := f.bound(ctx)
	defer cancel()
	tips, err := f.inner.DashboardTips(ctx, role)
	if err != nil || len(tips) == 0 {
		return append([]string(nil), fallbackTips...), nil
	}
	return tips, nil
}

// ProfileInsights never fails.
func (f *Fallback) ProfileInsights(ctx context.Context, role session.Role, location string, prefs []listing.Category) (string, error) {
	ctx, cancel := f.bound(ctx)
	defer cancel()
	s, err := f.inner.ProfileInsights(ctx, role, location, prefs)
	if err != nil || s == "" {
		return fallbackProfile, nil
	}
	return s, nil
}

// OptimizeDescription falls back to the author's own words.
func (f *Fallback) OptimizeDescription(ctx context.Context, text string, kind listing.Kind) (string, error) {
	ctx, cancel := f.bound(ctx)
	defer cancel()
	s, err := f.inner.OptimizeDescription(ctx, text, kind)
	if err != nil || s == "" {
		return text, nil
	}
	return s, nil
}
