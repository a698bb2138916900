package jobserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/profile"
	"github.com/anatolykoptev/go_jobmatch/internal/toolutil"
)

func registerCandidateProfile(server *mcp.Server, m *jobs.Matcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_profile",
		Description: "Derive a structured candidate profile from portfolio JSON: categorized skills, experience level and industries, project complexity, education, inferred job preferences and a market assessment. Missing or malformed fields fall back to defaults.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.CandidateProfileInput) (*mcp.CallToolResult, profile.Profile, error) {
		portfolio, err := toolutil.DecodePortfolio(input.Portfolio)
		if err != nil {
			return nil, profile.Profile{}, err
		}
		return nil, *m.Parser().Parse(portfolio), nil
	})
}
