package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobmatch/internal/toolutil"
)

func registerJobMatch(server *mcp.Server, m *jobs.Matcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match",
		Description: "Match a candidate portfolio against current job postings. Builds neural, keyword and targeted hybrid searches from the portfolio, extracts company, location, salary, level and skills from each posting, removes duplicates and ranks jobs by fit (relevance_score 0–1 with a per-factor breakdown). Status is \"no_matches\" when nothing was found; an error means the search provider was unavailable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JobMatchInput) (*mcp.CallToolResult, engine.JobMatchOutput, error) {
		portfolio, err := toolutil.DecodePortfolio(input.Portfolio)
		if err != nil {
			return nil, engine.JobMatchOutput{}, err
		}
		strategies, err := toolutil.ParseStrategies(input.Strategies)
		if err != nil {
			return nil, engine.JobMatchOutput{}, err
		}

		res, err := m.Match(ctx, jobs.MatchRequest{
			Portfolio:  portfolio,
			Filters:    toolutil.Filters(input),
			Strategies: strategies,
			Limit:      input.Limit,
		})
		switch {
		case errors.Is(err, engine.ErrSearchUnavailable):
			slog.Warn("job_match: search unavailable", slog.Any("error", err))
			return nil, engine.JobMatchOutput{}, fmt.Errorf("job search is temporarily unavailable, try again later: %w", err)
		case err != nil:
			return nil, engine.JobMatchOutput{}, err
		}

		return nil, engine.JobMatchOutput{
			Status:  res.Status,
			Jobs:    res.Jobs,
			Queries: res.Queries,
			Summary: matchSummary(res),
		}, nil
	})
}

func matchSummary(res *jobs.MatchResult) string {
	if res.Status == jobs.StatusNoMatches {
		return fmt.Sprintf("No matching jobs found (%d queries, %d failed).", res.Stats.Queries, res.Stats.Failed)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Returned %d of %d unique jobs from %d queries", len(res.Jobs), res.Stats.Deduped, res.Stats.Queries)
	if res.Stats.Failed > 0 {
		fmt.Fprintf(&sb, " (%d failed)", res.Stats.Failed)
	}
	top := res.Jobs[0]
	fmt.Fprintf(&sb, ". Top match: %s at %s (%.2f).", top.Title, top.Company, top.RelevanceScore)
	return sb.String()
}
