package insight

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"handouts/internal/listing"
	"handouts/internal/session"
)

func TestMain(m *testing.M) {
	// go.opencensus.io (pulled in by the genai client) starts a worker
	// goroutine from package init that never exits; it predates every test.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// failing errors on every call.
type failing struct{}

func (failing) AnalyzeRequest(context.Context, string) (*Analysis, error) {
	return nil, fmt.Errorf("provider down")
}
func (failing) CommunityInsights(context.Context, Metrics) (string, error) {
	return "", fmt.Errorf("provider down")
}
func (failing) CommunityPulse(context.Context) (*Pulse, error) {
	return nil, fmt.Errorf("provider down")
}
func (failing) DashboardTips(context.Context, session.Role) ([]string, error) {
	return nil, fmt.Errorf("provider down")
}
func (failing) ProfileInsights(context.Context, session.Role, string, []listing.Category) (string, error) {
	return "", fmt.Errorf("provider down")
}
func (failing) OptimizeDescription(context.Context, string, listing.Kind) (string, error) {
	return "", fmt.Errorf("provider down")
}

// hanging blocks until the context gives up.
type hanging struct{ failing }

func (hanging) CommunityInsights(ctx context.Context, _ Metrics) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestFallbackAbsorbsEveryFailure(t *testing.T) {
	ctx := context.Background()
	f := WithFallback(failing{}, 0)

	a, err := f.AnalyzeRequest(ctx, "need diapers downtown")
	require.NoError(t, err)
	assert.Nil(t, a, "failed analysis degrades to manual entry")

	s, err := f.CommunityInsights(ctx, Metrics{ActiveNeeds: 3, Matches: 2, Trend: listing.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, fallbackInsights, s)

	p, err := f.CommunityPulse(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, fallbackPulse.Story, p.Story)
	assert.Len(t, p.Hotspots, 3)

	tips, err := f.DashboardTips(ctx, session.RoleGiver)
	require.NoError(t, err)
	assert.Equal(t, fallbackTips, tips)

	note, err := f.ProfileInsights(ctx, session.RoleGiver, "Downtown", nil)
	require.NoError(t, err)
	assert.Equal(t, fallbackProfile, note)

	text, err := f.OptimizeDescription(ctx, "old coat, still good", listing.KindOffer)
	require.NoError(t, err)
	assert.Equal(t, "old coat, still good", text, "polish failure keeps the author's words")
}

func TestFallbackPassesThroughSuccess(t *testing.T) {
	ctx := context.Background()
	f := WithFallback(Static{}, 0)

	tips, err := f.DashboardTips(ctx, session.RoleNeeder)
	require.NoError(t, err)
	assert.NotEqual(t, fallbackTips, tips, "healthy provider output must not be replaced")

	p, err := f.CommunityPulse(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Story)
}

func TestFallbackEnforcesTimeout(t *testing.T) {
	f := WithFallback(hanging{}, 20*time.Millisecond)
	start := time.Now()
	s, err := f.CommunityInsights(context.Background(), Metrics{})
	require.NoError(t, err)
	assert.Equal(t, fallbackInsights, s)
	assert.Less(t, time.Since(start), time.Second, "timeout did not bound the call")
}

func TestLoadDashboardFansOut(t *testing.T) {
	f := WithFallback(Static{}, 0)
	data, err := LoadDashboard(context.Background(), f, session.RoleGiver, Metrics{ActiveNeeds: 3, Matches: 2, Trend: listing.CategoryFood})
	require.NoError(t, err)
	assert.NotEmpty(t, data.Summary)
	assert.NotEmpty(t, data.Pulse.Story)
	assert.Len(t, data.Tips, 3)
}

func TestLoadDashboardNeverFailsOnFallbackProvider(t *testing.T) {
	f := WithFallback(failing{}, 0)
	data, err := LoadDashboard(context.Background(), f, session.RoleNeeder, Metrics{})
	require.NoError(t, err)
	assert.Equal(t, fallbackTips, data.Tips)
	assert.Equal(t, fallbackPulse.Prediction, data.Pulse.Prediction)
}
