package heuristics

import "strings"

// ExtractSkills returns the vocabulary skills mentioned in text, spelled as in
// the vocabulary and in vocabulary order.
func (l *Library) ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	found := l.skills.find(strings.ToLower(text))
	if len(found) == 0 {
		return nil
	}
	var out []string
	for _, s := range l.t.Skills {
		if l.skillPresent(s, text, found) {
			out = append(out, s.Name)
		}
	}
	return out
}

func (l *Library) skillPresent(s SkillTerm, text string, found map[string]bool) bool {
	terms := append([]string{s.Name}, s.Aliases...)
	for _, term := range terms {
		if !found[strings.ToLower(term)] {
			continue
		}
		if !s.CaseSensitive || ContainsToken(text, term) {
			return true
		}
	}
	return false
}

// CanonicalSkill resolves an alias ("golang", "k8s") to its vocabulary name.
func (l *Library) CanonicalSkill(skill string) Match[string] {
	key := strings.ToLower(strings.TrimSpace(skill))
	if key == "" {
		return Unmatched[string]()
	}
	for _, s := range l.t.Skills {
		if strings.ToLower(s.Name) == key {
			return Matched(s.Name)
		}
		for _, a := range s.Aliases {
			if strings.ToLower(a) == key {
				return Matched(s.Name)
			}
		}
	}
	return Unmatched[string]()
}

// CategorizeSkill returns the first category, in priority order, with a
// keyword that appears in skill as a whole token. Unmatched skills are
// "technical".
func (l *Library) CategorizeSkill(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if lower == "" {
		return CategoryTechnical
	}
	for _, cat := range l.t.SkillCategories {
		for _, kw := range cat.Keywords {
			if ContainsToken(lower, kw) {
				return cat.Name
			}
		}
	}
	return CategoryTechnical
}

// ExpandSkillSynonyms returns skill followed by its synonyms. Used to widen
// queries, never to extract.
func (l *Library) ExpandSkillSynonyms(skill string) []string {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil
	}
	key := strings.ToLower(skill)
	syn, ok := l.t.SkillSynonyms[key]
	if !ok {
		if canon, found := l.CanonicalSkill(skill).Get(); found {
			syn = l.t.SkillSynonyms[strings.ToLower(canon)]
		}
	}
	return appendUnique([]string{skill}, syn...)
}
