package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

func newTestMatcher(p engine.Provider, opts ...MatcherOption) *Matcher {
	return NewMatcher(p, append([]MatcherOption{WithClock(testClock), WithTimeout(time.Second)}, opts...)...)
}

// staticProvider returns the same hits for every query.
func staticProvider(hits ...engine.ProviderResult) *fakeProvider {
	return &fakeProvider{search: func(ctx context.Context, _ engine.SearchRequest) ([]engine.ProviderResult, error) {
		return hits, ctx.Err()
	}}
}

func TestMatchEmptyPortfolio(t *testing.T) {
	for name, p := range map[string]*fakeProvider{
		"no hits": staticProvider(),
		"hits": staticProvider(engine.ProviderResult{
			URL: "https://jobs.lever.co/acme/1", Title: "Software Engineer", Text: "Build things.",
		}),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := newTestMatcher(p).Match(context.Background(), MatchRequest{Portfolio: map[string]any{}})
			require.NoError(t, err)
			require.NotNil(t, res)
			require.NotNil(t, res.Profile)
			assert.Equal(t, 2+len(DefaultHybridBattery), res.Stats.Queries)
			for _, j := range res.Jobs {
				assert.GreaterOrEqual(t, j.RelevanceScore, 0.0)
				assert.LessOrEqual(t, j.RelevanceScore, 1.0)
			}
		})
	}
}

func TestMatchNoMatchesStatus(t *testing.T) {
	res, err := newTestMatcher(staticProvider()).Match(context.Background(), MatchRequest{})
	require.NoError(t, err)
	assert.Equal(t, StatusNoMatches, res.Status)
	assert.Empty(t, res.Jobs)
}

func TestMatchDedupesAcrossStrategies(t *testing.T) {
	p := staticProvider(
		engine.ProviderResult{ID: "x", URL: "https://careers.acme.com/go", Title: "Senior Go Engineer", Text: "Go and Kubernetes. Remote."},
		engine.ProviderResult{ID: "y", URL: "https://careers.acme.com/js", Title: "Frontend Engineer", Text: "React."},
	)
	res, err := newTestMatcher(p).Match(context.Background(), MatchRequest{
		Portfolio: map[string]any{"skills": []any{"Go", "Kubernetes"}},
		Filters:   engine.SearchFilters{Remote: true},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)

	queries := 2 + len(DefaultHybridBattery)
	assert.Equal(t, 2*queries, res.Stats.Raw)
	assert.Equal(t, 2*queries, res.Stats.Enriched)
	assert.Equal(t, 2, res.Stats.Deduped)
	require.Len(t, res.Jobs, 2)
	assert.Equal(t, "https://careers.acme.com/go", res.Jobs[0].URL)
	assert.Equal(t, []string{"Go", "Kubernetes"}, res.Jobs[0].MatchedSkills)
	assert.Equal(t, engine.StrategyNeural, res.Jobs[0].Strategy)
}

func TestMatchLimit(t *testing.T) {
	var hits []engine.ProviderResult
	for _, u := range []string{"a", "b", "c", "d", "e"} {
		hits = append(hits, engine.ProviderResult{URL: "https://acme.com/" + u, Title: "Engineer"})
	}
	m := newTestMatcher(staticProvider(hits...))

	res, err := m.Match(context.Background(), MatchRequest{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, res.Jobs, 3)

	assert.Equal(t, DefaultLimit, m.limit(0))
	assert.Equal(t, MaxLimit, m.limit(500))
	assert.Equal(t, 20, newTestMatcher(nil, WithMaxResults(20)).limit(0))
}

func TestMatchOneStrategyFails(t *testing.T) {
	p := &fakeProvider{search: func(_ context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error) {
		if req.Mode == engine.ModeExact {
			return nil, errors.New("timeout")
		}
		return []engine.ProviderResult{{URL: "https://acme.com/" + string(req.Mode), Title: "Engineer"}}, nil
	}}
	res, err := newTestMatcher(p).Match(context.Background(), MatchRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Failed)
	assert.Len(t, res.Jobs, 2)
}

func TestMatchAllStrategiesFail(t *testing.T) {
	p := &fakeProvider{search: func(context.Context, engine.SearchRequest) ([]engine.ProviderResult, error) {
		return nil, errors.New("connection refused")
	}}
	res, err := newTestMatcher(p).Match(context.Background(), MatchRequest{Portfolio: map[string]any{"skills": []any{"Go"}}})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, engine.ErrSearchUnavailable)
}

func TestMatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := newTestMatcher(staticProvider()).Match(ctx, MatchRequest{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchWithoutProvider(t *testing.T) {
	res, err := NewMatcher(nil).Match(context.Background(), MatchRequest{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, engine.ErrProviderNotConfigured)
}

func TestMatchDefaultsFilterSkills(t *testing.T) {
	p := staticProvider()
	_, err := newTestMatcher(p).Match(context.Background(), MatchRequest{
		Portfolio:  map[string]any{"skills": []any{"Rust", "Tokio"}},
		Strategies: []engine.Strategy{engine.StrategyKeyword},
	})
	require.NoError(t, err)
	require.Len(t, p.requests, 1)
	assert.Contains(t, p.requests[0].Query, `"Rust"`)
}
