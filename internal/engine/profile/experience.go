package profile

import (
	"math"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
)

// Total years is approximated from the role count; start/end dates are not read.
const (
	yearsPerRole  = 1.5
	maxTotalYears = 15.0
)

// levelThresholds is ordered from the highest bar down.
var levelThresholds = []struct {
	minYears float64
	level    string
}{
	{12, LevelExecutive},
	{8, LevelLead},
	{5, LevelSenior},
	{2, LevelMid},
}

var achievementRules = heuristics.RuleSet[string]{
	{
		Name:    "metric",
		Pattern: regexp.MustCompile(`(?i)\b(?:increased|reduced|improved|boosted|grew|cut|decreased|accelerated|optimized|lowered|raised)\b.*?\bby\s+~?\d+(?:\.\d+)?\s*(?:%|x\b|percent|times)`),
		Extract: func([]string) heuristics.Match[string] { return heuristics.Matched("metric") },
	},
	{
		Name:    "leadership",
		Pattern: regexp.MustCompile(`(?i)\bled\b.*?\bteam\b`),
		Extract: func([]string) heuristics.Match[string] { return heuristics.Matched("leadership") },
	},
	{
		Name:    "management",
		Pattern: regexp.MustCompile(`(?i)\bmanaged\b.*?\bprojects?\b`),
		Extract: func([]string) heuristics.Match[string] { return heuristics.Matched("management") },
	},
	{
		Name:    "reach",
		Pattern: regexp.MustCompile(`(?i)\b(?:launched|shipped|built|delivered|scaled)\b.*?\b\d+(?:[.,]\d+)?\s*[kKmM]?\+?\s*(?:users|customers|clients|requests)`),
		Extract: func([]string) heuristics.Match[string] { return heuristics.Matched("reach") },
	},
}

var sentenceSplitRe = regexp.MustCompile(`[.!?;]+(?:\s+|$)|\n+|•\s*`)

func (p *Parser) parseExperience(raw map[string]any) Experience {
	var exp Experience
	var signals []string
	for _, e := range objects(raw, "experience", "experiences", "work", "workExperience", "employment") {
		role := p.parseRole(e)
		if role.Title == "" && role.Company == "" && role.Description == "" {
			continue
		}
		exp.Roles = append(exp.Roles, role)
		signals = append(signals, role.Company+" "+role.Title+" "+role.Description)
		if p.lib.IsRemote(role.Location) || p.lib.IsRemote(role.Title) || p.lib.IsRemote(role.Description) {
			exp.HasRemoteExperience = true
		}
	}

	// Approximation: roles are counted, dates are not read.
	exp.TotalYears = math.Min(float64(len(exp.Roles))*yearsPerRole, maxTotalYears)
	exp.Level = levelForYears(exp.TotalYears)

	text := strings.Join(signals, "\n")
	t := p.lib.Tables()
	exp.Industries = heuristics.Tag(text, t.Industries)
	exp.CompanyTypes = heuristics.Tag(text, t.CompanyTypes)
	return exp
}

func (p *Parser) parseRole(e map[string]any) Role {
	desc := str(e, "description", "summary", "details")
	if desc == "" {
		desc = strings.Join(strList(e, "highlights", "responsibilities", "bullets"), ". ")
	}
	role := Role{
		Title:       str(e, "title", "position", "role"),
		Company:     str(e, "company", "employer", "organization"),
		Duration:    str(e, "duration", "period", "dates"),
		Location:    str(e, "location"),
		Description: desc,
		StartDate:   str(e, "startDate", "start_date", "start", "from"),
		EndDate:     str(e, "endDate", "end_date", "end", "to"),
	}
	if cur, ok := boolean(e, "current", "isCurrent", "present"); ok {
		role.Current = cur
	} else {
		role.Current = strings.EqualFold(role.EndDate, "present") || strings.EqualFold(role.EndDate, "current")
	}

	tech := strList(e, "technologies", "tech", "skills", "stack")
	role.Technologies = uniqueFold(tech, p.lib.ExtractSkills(role.Title+" "+desc)...)
	role.Achievements = uniqueFold(strList(e, "achievements", "accomplishments"), extractAchievements(desc)...)
	return role
}

// extractAchievements returns the sentences of desc that read as accomplishments.
func extractAchievements(desc string) []string {
	var out []string
	for _, sentence := range sentenceSplitRe.Split(desc, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if achievementRules.First(sentence).OK() {
			out = append(out, sentence)
		}
	}
	return out
}

func levelForYears(years float64) string {
	for _, th := range levelThresholds {
		if years >= th.minYears {
			return th.level
		}
	}
	return LevelEntry
}
