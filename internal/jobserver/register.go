package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobmatch/internal/engine/jobs"
)

// RegisterTools registers the matching tools on the given MCP server:
// job_match, candidate_profile.
func RegisterTools(server *mcp.Server, m *jobs.Matcher) {
	registerJobMatch(server, m)
	registerCandidateProfile(server, m)
}
