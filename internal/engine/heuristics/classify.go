package heuristics

import (
	"regexp"
	"strings"
	"time"
)

// ClassifyExperienceLevel maps seniority vocabulary to Senior, Entry-level or
// Mid-level. Senior terms win when both kinds appear.
func (l *Library) ClassifyExperienceLevel(text string) string {
	switch {
	case ContainsAny(text, l.t.SeniorTerms):
		return LevelSenior
	case ContainsAny(text, l.t.EntryTerms):
		return LevelEntry
	default:
		return LevelMid
	}
}

// ClassifyJobType returns the first job type in table order whose keyword
// appears, defaulting to Full-time.
func (l *Library) ClassifyJobType(text string) string {
	lower := strings.ToLower(text)
	for _, noise := range l.t.JobTypeNoise {
		lower = strings.ReplaceAll(lower, strings.ToLower(noise), " ")
	}
	for _, jt := range l.t.JobTypes {
		if ContainsToken(lower, jt.Keyword) {
			return jt.Label
		}
	}
	return JobTypeFullTime
}

// ExtractCompanySize tags text as startup, mid-size or enterprise.
func (l *Library) ExtractCompanySize(text string) Match[string] {
	return firstLabel(l.sizes.find(strings.ToLower(text)), l.t.CompanySizes)
}

// ExtractCulture returns the first culture tag mentioned in text.
func (l *Library) ExtractCulture(text string) Match[string] {
	return firstLabel(l.cultures.find(strings.ToLower(text)), l.t.Cultures)
}

// ExtractBenefits returns the benefit labels mentioned in text, in table order.
func (l *Library) ExtractBenefits(text string) []string {
	return allLabels(l.benefits.find(strings.ToLower(text)), l.t.Benefits)
}

var (
	deadlineRe = regexp.MustCompile(
		`(?i:apply by|application deadline|deadline|applications? close[sd]?(?: on)?|closing date)\s*[:\-]?\s*` +
			`([A-Za-z]{3,9}\.? \d{1,2}(?:st|nd|rd|th)?,? \d{4}|\d{1,2}(?:st|nd|rd|th)? [A-Za-z]{3,9},? \d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4})`)
	ordinalRe = regexp.MustCompile(`(\d)(?:st|nd|rd|th)\b`)

	deadlineLayouts = []string{
		"2006-01-02",
		"January 2 2006",
		"Jan 2 2006",
		"2 January 2006",
		"2 Jan 2006",
		"01/02/2006",
		"1/2/2006",
	}

	deadlineRules = RuleSet[time.Time]{
		{Name: "deadline_phrase", Pattern: deadlineRe, Extract: func(g []string) Match[time.Time] {
			return parseLooseDate(g[1])
		}},
	}
)

// ExtractDeadline finds an application deadline such as "Apply by March 1, 2027".
func (l *Library) ExtractDeadline(text string) Match[time.Time] {
	return deadlineRules.First(text)
}

func parseLooseDate(s string) Match[time.Time] {
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.NewReplacer(",", "", ".", "").Replace(strings.TrimSpace(s))
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Matched(t)
		}
	}
	return Unmatched[time.Time]()
}
