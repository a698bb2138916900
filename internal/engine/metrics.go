package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// metrics tracks operational counters across the engine.
var metrics struct {
	ProviderRequests  atomic.Int64
	ProviderErrors    atomic.Int64
	MatchRequests     atomic.Int64
	MatchUnavailable  atomic.Int64
	QueriesDispatched atomic.Int64
	QueriesFailed     atomic.Int64
	JobsEnriched      atomic.Int64
	JobsDeduped       atomic.Int64
}

// metricKeys fixes the output order of FormatMetrics.
var metricKeys = []string{
	"provider_requests", "provider_errors",
	"match_requests", "match_unavailable",
	"queries_dispatched", "queries_failed",
	"jobs_enriched", "jobs_deduped",
	"cache_hits", "cache_misses",
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"provider_requests":  metrics.ProviderRequests.Load(),
		"provider_errors":    metrics.ProviderErrors.Load(),
		"match_requests":     metrics.MatchRequests.Load(),
		"match_unavailable":  metrics.MatchUnavailable.Load(),
		"queries_dispatched": metrics.QueriesDispatched.Load(),
		"queries_failed":     metrics.QueriesFailed.Load(),
		"jobs_enriched":      metrics.JobsEnriched.Load(),
		"jobs_deduped":       metrics.JobsDeduped.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the jobs sub-package.
func IncrMatchRequests()          { metrics.MatchRequests.Add(1) }
func IncrMatchUnavailable()       { metrics.MatchUnavailable.Add(1) }
func IncrQueriesDispatched(n int) { metrics.QueriesDispatched.Add(int64(n)) }
func IncrQueriesFailed()          { metrics.QueriesFailed.Add(1) }
func IncrJobsEnriched(n int)      { metrics.JobsEnriched.Add(int64(n)) }
func IncrJobsDeduped(n int)       { metrics.JobsDeduped.Add(int64(n)) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 10*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
