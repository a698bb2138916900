package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

// fakeProvider answers from a function and records every request.
type fakeProvider struct {
	mu       sync.Mutex
	requests []engine.SearchRequest
	search   func(ctx context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error)
}

func (f *fakeProvider) Search(ctx context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.search(ctx, req)
}

// byQuery serves canned results keyed by query text; listed queries fail.
func byQuery(results map[string][]engine.ProviderResult, failing ...string) *fakeProvider {
	fail := make(map[string]bool, len(failing))
	for _, q := range failing {
		fail[q] = true
	}
	return &fakeProvider{search: func(ctx context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if fail[req.Query] {
			return nil, errors.New("provider: HTTP 502")
		}
		return results[req.Query], nil
	}}
}

var threeQueries = []engine.QuerySpec{
	{Text: "q-neural", Strategy: engine.StrategyNeural, Mode: engine.ModeBroad, ResultCap: 25},
	{Text: "q-keyword", Strategy: engine.StrategyKeyword, Mode: engine.ModeExact, ResultCap: 10},
	{Text: "q-startup", Strategy: engine.StrategyHybrid, SubQuery: "startup", Mode: engine.ModeAuto, ResultCap: 10},
}

var cannedResults = map[string][]engine.ProviderResult{
	"q-neural":  {{ID: "n1", URL: "https://a.example/1", Title: "A", PublishedDate: "2026-10-01T00:00:00Z"}},
	"q-keyword": {{ID: "k1", URL: "https://b.example/1", Title: "B"}},
	"q-startup": {{ID: "h1", URL: "https://c.example/1", Title: "C"}, {ID: "h2", URL: "https://c.example/2", Title: "D"}},
}

func TestExecuteTagsResults(t *testing.T) {
	p := byQuery(cannedResults)
	out, err := NewOrchestrator(p, 0, time.Second).Execute(context.Background(), threeQueries)
	require.NoError(t, err)

	res := out.Results()
	require.Len(t, res, 4)
	assert.Equal(t, []string{"n1", "k1", "h1", "h2"}, []string{res[0].ID, res[1].ID, res[2].ID, res[3].ID})
	assert.Equal(t, engine.StrategyNeural, res[0].Strategy)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), res[0].PublishedDate)
	assert.True(t, res[1].PublishedDate.IsZero())
	assert.Equal(t, engine.StrategyHybrid, res[3].Strategy)
	assert.Equal(t, "startup", res[3].SubQuery)
	assert.Empty(t, out.Failures())

	require.Len(t, p.requests, 3)
	for _, req := range p.requests {
		assert.True(t, req.Contents.Text && req.Contents.Highlights && req.Contents.Summary)
	}
}

func TestExecuteIsolatesFailures(t *testing.T) {
	ctx := context.Background()

	partial, err := NewOrchestrator(byQuery(cannedResults, "q-keyword"), 0, time.Second).Execute(ctx, threeQueries)
	require.NoError(t, err)

	survivors := []engine.QuerySpec{threeQueries[0], threeQueries[2]}
	healthy, err := NewOrchestrator(byQuery(cannedResults), 0, time.Second).Execute(ctx, survivors)
	require.NoError(t, err)

	assert.Equal(t, healthy.Results(), partial.Results())
	failures := partial.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, engine.StrategyKeyword, failures[0].Query.Strategy)
	assert.ErrorContains(t, failures[0].Err, "HTTP 502")
}

func TestExecuteAllFailed(t *testing.T) {
	p := byQuery(nil, "q-neural", "q-keyword", "q-startup")
	out, err := NewOrchestrator(p, 0, time.Second).Execute(context.Background(), threeQueries)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, engine.ErrSearchUnavailable)
	assert.ErrorContains(t, err, "HTTP 502")
}

func TestExecuteTimeoutDegradesOneQuery(t *testing.T) {
	p := &fakeProvider{search: func(ctx context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error) {
		if req.Query == "q-keyword" {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return cannedResults[req.Query], nil
	}}
	out, err := NewOrchestrator(p, 0, 50*time.Millisecond).Execute(context.Background(), threeQueries)
	require.NoError(t, err)
	assert.Len(t, out.Results(), 3)
	require.Len(t, out.Failures(), 1)
	assert.ErrorIs(t, out.Failures()[0].Err, context.DeadlineExceeded)
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{}, len(threeQueries))
	p := &fakeProvider{search: func(ctx context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error) {
		started <- struct{}{}
		if req.Query == "q-neural" {
			return cannedResults[req.Query], nil
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	go func() {
		<-started
		cancel()
	}()

	out, err := NewOrchestrator(p, 3, time.Minute).Execute(ctx, threeQueries)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestExecuteBoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	p := &fakeProvider{search: func(ctx context.Context, req engine.SearchRequest) ([]engine.ProviderResult, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return nil, nil
	}}
	queries := make([]engine.QuerySpec, 8)
	for i := range queries {
		queries[i] = engine.QuerySpec{Text: "q", Strategy: engine.StrategyHybrid}
	}

	_, err := NewOrchestrator(p, 2, time.Second).Execute(context.Background(), queries)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestOrchestratorLimit(t *testing.T) {
	o := NewOrchestrator(byQuery(nil), 0, 0)
	assert.Equal(t, 3, o.limit(threeQueries))
	assert.Equal(t, 1, o.limit(threeQueries[2:]))
	assert.Equal(t, defaultProviderTimeout, o.timeout)
	assert.Equal(t, 5, NewOrchestrator(byQuery(nil), 5, 0).limit(threeQueries))
}

func TestExecuteEdgeCases(t *testing.T) {
	out, err := NewOrchestrator(byQuery(nil), 0, 0).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out.Results())

	_, err = NewOrchestrator(nil, 0, 0).Execute(context.Background(), threeQueries)
	assert.ErrorIs(t, err, engine.ErrProviderNotConfigured)
}
