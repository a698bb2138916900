package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/profile"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Match statuses.
const (
	StatusOK        = "ok"
	StatusNoMatches = "no_matches"
)

// MatchRequest is one portfolio-to-jobs request.
type MatchRequest struct {
	Portfolio  map[string]any
	Filters    engine.SearchFilters
	Strategies []engine.Strategy // empty = all
	Limit      int               // 0 = DefaultLimit
}

// MatchStats counts what each pipeline stage saw.
type MatchStats struct {
	Queries  int `json:"queries"`
	Failed   int `json:"failed"`
	Raw      int `json:"raw"`
	Enriched int `json:"enriched"`
	Deduped  int `json:"deduped"`
}

// MatchResult is the ranked, capped outcome of a request.
type MatchResult struct {
	Profile *profile.Profile     `json:"profile"`
	Jobs    []engine.EnrichedJob `json:"jobs"`
	Queries []engine.QuerySpec   `json:"queries"`
	Stats   MatchStats           `json:"stats"`
	Status  string               `json:"status"`
}

// Matcher runs the full pipeline: parse, build queries, search, enrich,
// dedupe, rank.
type Matcher struct {
	provider    engine.Provider
	lib         *heuristics.Library
	now         func() time.Time
	concurrency int
	timeout     time.Duration
	dateWindow  time.Duration
	maxResults  int
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithHeuristics swaps the reference tables.
func WithHeuristics(lib *heuristics.Library) MatcherOption {
	return func(m *Matcher) {
		if lib != nil {
			m.lib = lib
		}
	}
}

// WithClock injects the reference clock used for dates and experience math.
func WithClock(now func() time.Time) MatcherOption {
	return func(m *Matcher) {
		if now != nil {
			m.now = now
		}
	}
}

// WithConcurrency bounds in-flight provider calls; 0 means one per strategy.
func WithConcurrency(n int) MatcherOption {
	return func(m *Matcher) { m.concurrency = n }
}

// WithTimeout sets the per-call provider timeout.
func WithTimeout(d time.Duration) MatcherOption {
	return func(m *Matcher) { m.timeout = d }
}

// WithDateWindow limits results to postings published within d; 0 disables.
func WithDateWindow(d time.Duration) MatcherOption {
	return func(m *Matcher) { m.dateWindow = d }
}

// WithMaxResults sets the default result cap.
func WithMaxResults(n int) MatcherOption {
	return func(m *Matcher) {
		if n > 0 {
			m.maxResults = min(n, MaxLimit)
		}
	}
}

// NewMatcher creates a Matcher. A nil provider is accepted here and reported
// by Match before any query is built.
func NewMatcher(p engine.Provider, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		provider:   p,
		lib:        heuristics.Default(),
		now:        time.Now,
		maxResults: DefaultLimit,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NewMatcherFromConfig wires a Matcher from the engine configuration.
func NewMatcherFromConfig(p engine.Provider, c engine.Config) *Matcher {
	return NewMatcher(p,
		WithConcurrency(c.MaxConcurrency),
		WithTimeout(c.ProviderTimeout),
		WithDateWindow(c.DateWindow),
		WithMaxResults(c.MaxResults),
	)
}

// Parser returns a profile parser sharing the matcher's tables and clock.
func (m *Matcher) Parser() *profile.Parser {
	return profile.NewParser(profile.WithLibrary(m.lib), profile.WithClock(m.now))
}

// Match runs the pipeline. Zero results is a successful "no_matches"
// outcome; engine.ErrSearchUnavailable means no provider call succeeded.
// A canceled ctx yields ctx.Err() and no result.
func (m *Matcher) Match(ctx context.Context, req MatchRequest) (*MatchResult, error) {
	if m.provider == nil {
		return nil, engine.ErrProviderNotConfigured
	}
	engine.IncrMatchRequests()

	prof := m.Parser().Parse(req.Portfolio)
	filters := req.Filters
	if len(nonEmpty(filters.Skills)) == 0 {
		filters.Skills = prof.Skills.Top(topSkillCount)
	}

	queries := NewQueryBuilder(m.lib, m.now, m.dateWindow).Build(prof, filters, req.Strategies)
	orch := NewOrchestrator(m.provider, m.concurrency, m.timeout)

	var outcome *Outcome
	err := engine.TrackOperation(ctx, "job_match.search", func(ctx context.Context) error {
		var err error
		outcome, err = orch.Execute(ctx, queries)
		return err
	})
	if err != nil {
		if errors.Is(err, engine.ErrSearchUnavailable) {
			engine.IncrMatchUnavailable()
		}
		return nil, err
	}

	raw := outcome.Results()
	ex := NewExtractor(m.lib)
	enriched := make([]engine.EnrichedJob, 0, len(raw))
	for _, r := range raw {
		enriched = append(enriched, ex.Enrich(r, filters.Location))
	}
	engine.IncrJobsEnriched(len(enriched))

	unique := Dedupe(enriched)
	engine.IncrJobsDeduped(len(enriched) - len(unique))

	ranked := NewRanker(m.lib).Rank(unique, prof, filters)
	if limit := m.limit(req.Limit); len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := &MatchResult{
		Profile: prof,
		Jobs:    ranked,
		Queries: queries,
		Stats: MatchStats{
			Queries:  len(queries),
			Failed:   len(outcome.Failures()),
			Raw:      len(raw),
			Enriched: len(enriched),
			Deduped:  len(unique),
		},
		Status: StatusOK,
	}
	if len(ranked) == 0 {
		res.Status = StatusNoMatches
	}
	slog.Info("jobmatch: match done",
		slog.Int("queries", res.Stats.Queries),
		slog.Int("failed", res.Stats.Failed),
		slog.Int("raw", res.Stats.Raw),
		slog.Int("unique", res.Stats.Deduped),
		slog.Int("returned", len(ranked)))
	return res, nil
}

func (m *Matcher) limit(requested int) int {
	switch {
	case requested <= 0:
		return m.maxResults
	case requested > MaxLimit:
		return MaxLimit
	}
	return requested
}
