package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

const (
	maxConcurrency         = 4
	defaultProviderTimeout = 20 * time.Second
)

// QueryResult is the outcome of one provider call.
type QueryResult struct {
	Query   engine.QuerySpec
	Results []engine.RawSearchResult
	Err     error
}

// Outcome holds per-query results in dispatch order.
type Outcome struct {
	Queries []QueryResult
}

// Results concatenates the successful queries' results in query order.
func (o *Outcome) Results() []engine.RawSearchResult {
	var out []engine.RawSearchResult
	for _, q := range o.Queries {
		if q.Err == nil {
			out = append(out, q.Results...)
		}
	}
	return out
}

// Failures returns the queries that errored.
func (o *Outcome) Failures() []QueryResult {
	var out []QueryResult
	for _, q := range o.Queries {
		if q.Err != nil {
			out = append(out, q)
		}
	}
	return out
}

// Orchestrator fans queries out to a Provider.
type Orchestrator struct {
	provider    engine.Provider
	concurrency int
	timeout     time.Duration
	contents    engine.ContentOptions
}

// NewOrchestrator creates an Orchestrator. concurrency <= 0 means one slot per
// distinct strategy in the batch (at most 4); timeout <= 0 uses 20s.
func NewOrchestrator(p engine.Provider, concurrency int, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &Orchestrator{
		provider:    p,
		concurrency: concurrency,
		timeout:     timeout,
		contents:    engine.ContentOptions{Text: true, Highlights: true, Summary: true},
	}
}

// Execute dispatches every query concurrently, each under its own timeout.
// A failed query is recorded in the outcome and does not affect the others.
// If every query fails the error wraps engine.ErrSearchUnavailable. If ctx
// is canceled the result is ctx.Err() and nothing else.
func (o *Orchestrator) Execute(ctx context.Context, queries []engine.QuerySpec) (*Outcome, error) {
	if o.provider == nil {
		return nil, engine.ErrProviderNotConfigured
	}
	outcome := &Outcome{Queries: make([]QueryResult, len(queries))}
	if len(queries) == 0 {
		return outcome, nil
	}

	var g errgroup.Group
	g.SetLimit(o.limit(queries))
	for i, q := range queries {
		g.Go(func() error {
			outcome.Queries[i] = o.run(ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	engine.IncrQueriesDispatched(len(queries))

	var errs []error
	for _, qr := range outcome.Queries {
		if qr.Err == nil {
			continue
		}
		engine.IncrQueriesFailed()
		slog.Warn("jobmatch: query failed",
			slog.String("strategy", string(qr.Query.Strategy)),
			slog.String("sub_query", qr.Query.SubQuery),
			slog.Any("error", qr.Err))
		errs = append(errs, qr.Err)
	}
	if len(errs) == len(queries) {
		return nil, fmt.Errorf("%w: %w", engine.ErrSearchUnavailable, errors.Join(errs...))
	}
	return outcome, nil
}

func (o *Orchestrator) run(ctx context.Context, q engine.QuerySpec) QueryResult {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	hits, err := o.provider.Search(callCtx, o.request(q))
	if err != nil {
		return QueryResult{Query: q, Err: fmt.Errorf("%s %s: %w", q.Strategy, q.SubQuery, err)}
	}
	slog.Debug("jobmatch: query done",
		slog.String("strategy", string(q.Strategy)),
		slog.String("sub_query", q.SubQuery),
		slog.Int("results", len(hits)),
		slog.Duration("elapsed", time.Since(start)))

	results := make([]engine.RawSearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, engine.RawSearchResult{
			ID:              h.ID,
			Title:           h.Title,
			URL:             h.URL,
			Author:          h.Author,
			Text:            h.Text,
			Highlights:      h.Highlights,
			HighlightScores: h.HighlightScores,
			Summary:         h.Summary,
			PublishedDate:   engine.ParsePublishedDate(h.PublishedDate),
			Score:           h.Score,
			Strategy:        q.Strategy,
			SubQuery:        q.SubQuery,
		})
	}
	return QueryResult{Query: q, Results: results}
}

func (o *Orchestrator) request(q engine.QuerySpec) engine.SearchRequest {
	return engine.SearchRequest{
		Query:           q.Text,
		Mode:            q.Mode,
		ResultCap:       q.ResultCap,
		DomainAllowList: q.DomainAllowList,
		DomainDenyList:  q.DomainDenyList,
		TextMustInclude: q.IncludeText,
		TextMustExclude: q.ExcludeText,
		PublishedAfter:  q.PublishedAfter,
		Contents:        o.contents,
	}
}

// limit bounds in-flight calls by the number of distinct strategies.
func (o *Orchestrator) limit(queries []engine.QuerySpec) int {
	if o.concurrency > 0 {
		return o.concurrency
	}
	distinct := make(map[engine.Strategy]bool)
	for _, q := range queries {
		distinct[q.Strategy] = true
	}
	return max(1, min(len(distinct), maxConcurrency))
}
