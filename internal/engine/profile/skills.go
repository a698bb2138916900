package profile

import (
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
)

// categoryHints maps caller-supplied category names onto buckets. A hint only
// places skills the vocabulary leaves in the technical bucket.
var categoryHints = map[string]string{
	"language":       heuristics.CategoryLanguage,
	"languages":      heuristics.CategoryLanguage,
	"programming":    heuristics.CategoryLanguage,
	"framework":      heuristics.CategoryFramework,
	"frameworks":     heuristics.CategoryFramework,
	"library":        heuristics.CategoryFramework,
	"libraries":      heuristics.CategoryFramework,
	"database":       heuristics.CategoryDatabase,
	"databases":      heuristics.CategoryDatabase,
	"cloud":          heuristics.CategoryCloud,
	"devops":         heuristics.CategoryCloud,
	"infrastructure": heuristics.CategoryCloud,
	"tool":           heuristics.CategoryTool,
	"tools":          heuristics.CategoryTool,
	"soft":           heuristics.CategorySoft,
	"soft skills":    heuristics.CategorySoft,
}

type skillEntry struct {
	name, hint string
}

func (p *Parser) parseSkills(raw map[string]any) Skills {
	var entries []skillEntry
	switch t := raw["skills"].(type) {
	case map[string]any:
		for _, cat := range sortedKeys(t) {
			for _, name := range strList(t, cat) {
				entries = append(entries, skillEntry{name: name, hint: cat})
			}
		}
	case []any:
		for _, it := range t {
			switch e := it.(type) {
			case map[string]any:
				entries = append(entries, skillEntry{name: str(e, "name", "skill", "title"), hint: str(e, "category", "type")})
			default:
				entries = append(entries, skillEntry{name: asString(e)})
			}
		}
	case string:
		for _, name := range splitList(t) {
			entries = append(entries, skillEntry{name: name})
		}
	}
	for _, name := range strList(raw, "technologies", "techStack", "tech_stack") {
		entries = append(entries, skillEntry{name: name})
	}
	return p.bucketSkills(entries)
}

func (p *Parser) bucketSkills(entries []skillEntry) Skills {
	var s Skills
	for _, e := range entries {
		name := strings.TrimSpace(e.name)
		if name == "" {
			continue
		}
		before := len(s.All)
		s.All = uniqueFold(s.All, name)
		if len(s.All) == before {
			continue
		}
		cat := p.lib.CategorizeSkill(name)
		if hint, ok := categoryHints[strings.ToLower(strings.TrimSpace(e.hint))]; ok && cat == heuristics.CategoryTechnical {
			cat = hint
		}
		switch cat {
		case heuristics.CategoryLanguage:
			s.Languages = append(s.Languages, name)
		case heuristics.CategoryFramework:
			s.Frameworks = append(s.Frameworks, name)
		case heuristics.CategoryDatabase:
			s.Databases = append(s.Databases, name)
		case heuristics.CategoryCloud:
			s.Cloud = append(s.Cloud, name)
		case heuristics.CategoryTool:
			s.Tools = append(s.Tools, name)
		case heuristics.CategorySoft:
			s.Soft = append(s.Soft, name)
		default:
			s.Technical = append(s.Technical, name)
		}
	}
	return s
}

// nonEmptyBuckets counts the populated prioritized buckets.
func (s Skills) nonEmptyBuckets() int {
	n := 0
	for _, b := range [][]string{s.Languages, s.Frameworks, s.Databases, s.Cloud, s.Tools, s.Soft} {
		if len(b) > 0 {
			n++
		}
	}
	return n
}
