package jobserver

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/jobs"
)

func TestMatchSummary(t *testing.T) {
	t.Run("no matches", func(t *testing.T) {
		got := matchSummary(&jobs.MatchResult{
			Status: jobs.StatusNoMatches,
			Stats:  jobs.MatchStats{Queries: 6, Failed: 1},
		})
		if got != "No matching jobs found (6 queries, 1 failed)." {
			t.Errorf("summary = %q", got)
		}
	})

	t.Run("top match", func(t *testing.T) {
		job := engine.EnrichedJob{Company: "Payflow", RelevanceScore: 0.8734}
		job.Title = "Senior Go Engineer"
		got := matchSummary(&jobs.MatchResult{
			Status: jobs.StatusOK,
			Jobs:   []engine.EnrichedJob{job},
			Stats:  jobs.MatchStats{Queries: 6, Deduped: 4},
		})
		for _, want := range []string{"Returned 1 of 4 unique jobs from 6 queries", "Senior Go Engineer at Payflow (0.87)"} {
			if !strings.Contains(got, want) {
				t.Errorf("summary %q missing %q", got, want)
			}
		}
		if strings.Contains(got, "failed") {
			t.Errorf("summary %q should not mention failures", got)
		}
	})
}
