package profile

import (
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
)

const (
	maxRecentProjects  = 3
	projectDescLimit   = 240
	expertComplexity   = 20
	advancedComplexity = 12
	midComplexity      = 5
)

func (p *Parser) parseProjects(raw map[string]any) Projects {
	t := p.lib.Tables()
	var (
		out     Projects
		tech    []string
		text    []string
		openSrc bool
		summary []ProjectSummary
	)
	for _, e := range objects(raw, "projects", "portfolio", "works") {
		name := str(e, "name", "title")
		desc := str(e, "description", "summary", "details")
		if name == "" && desc == "" {
			continue
		}
		out.Count++

		projTech := uniqueFold(strList(e, "technologies", "tech", "techStack", "stack", "skills", "tags"),
			p.lib.ExtractSkills(desc)...)
		tech = uniqueFold(tech, projTech...)

		links := []string{
			str(e, "url", "link", "website", "demo", "liveUrl", "live_url"),
			str(e, "github", "repo", "repository", "source", "sourceUrl"),
		}
		for _, l := range links {
			if isOpenSourceLink(l, t.OpenSourceHosts) {
				openSrc = true
			}
		}

		text = append(text, strings.Join([]string{name, desc, str(e, "type", "category"), strings.Join(projTech, " ")}, " "))
		if len(summary) < maxRecentProjects {
			url := links[0]
			if url == "" {
				url = links[1]
			}
			summary = append(summary, ProjectSummary{
				Name:         name,
				Description:  engine.TruncateAtWord(desc, projectDescLimit),
				Technologies: projTech,
				URL:          url,
			})
		}
	}

	joined := strings.Join(text, "\n")
	out.Types = heuristics.Tag(joined, t.ProjectTypes)
	out.Domains = heuristics.Tag(joined, t.Industries)
	out.Complexity = complexityFor(len(tech) + out.Count)
	out.HasOpenSource = openSrc
	out.HasCommercial = heuristics.ContainsAny(joined, t.CommercialTerms)
	out.Recent = summary
	return out
}

func isOpenSourceLink(link string, hosts []string) bool {
	if link != "" && !strings.Contains(link, "://") {
		link = "https://" + link
	}
	host := engine.Hostname(link)
	if host == "" {
		return false
	}
	for _, h := range hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func complexityFor(score int) string {
	switch {
	case score >= expertComplexity:
		return ComplexityExpert
	case score >= advancedComplexity:
		return ComplexityAdvanced
	case score >= midComplexity:
		return ComplexityIntermediate
	default:
		return ComplexityBeginner
	}
}
