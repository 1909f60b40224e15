package insight

import (
	"context"

	"golang.org/x/sync/errgroup"

	"handouts/internal/session"
)

// DashboardData is everything the dashboard view loads asynchronously.
type DashboardData struct {
	Summary string
	Pulse   Pulse
	Tips    []string
}

// LoadDashboard fetches the summary, pulse and tips concurrently. It is
// meant to run on a Fallback provider, in which case it cannot fail; with a
// raw provider the first error wins.
func LoadDashboard(ctx context.Context, p Provider, role session.Role, m Metrics) (DashboardData, error) {
	var data DashboardData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := p.CommunityInsights(ctx, m)
		if err != nil {
			return err
		}
		data.Summary = s
		return nil
	})
	g.Go(func() error {
		pulse, err := p.CommunityPulse(ctx)
		if err != nil {
			return err
		}
		if pulse != nil {
			data.Pulse = *pulse
		}
		return nil
	})
	g.Go(func() error {
		tips, err := p.DashboardTips(ctx, role)
		if err != nil {
			return err
		}
		data.Tips = tips
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}
	return data, nil
}
