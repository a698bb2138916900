package heuristics

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

// Library is a set of heuristics compiled from one Tables value.
// It is safe for concurrent use.
type Library struct {
	t *Tables

	skills   *keywordIndex
	benefits *keywordIndex
	sizes    *keywordIndex
	cultures *keywordIndex

	locationRules RuleSet[string]
	titleRules    RuleSet[string]
	salaryRules   RuleSet[engine.SalaryRange]

	regions      map[string]string // lowercase state code, state name or country → display
	wellKnown    map[string]bool
	jobBoards    map[string]bool
	careerLabels map[string]bool
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the process-wide library built from DefaultTables.
func Default() *Library {
	defaultOnce.Do(func() { defaultLib = New(DefaultTables()) })
	return defaultLib
}

// New compiles t. A nil t means DefaultTables.
func New(t *Tables) *Library {
	if t == nil {
		t = DefaultTables()
	}
	l := &Library{
		t:            t,
		regions:      make(map[string]string),
		wellKnown:    toSet(t.WellKnownCompanies),
		jobBoards:    toSet(t.JobBoards),
		careerLabels: toSet(t.CareerSubdomains),
	}

	var skillTerms []string
	for _, s := range t.Skills {
		skillTerms = append(skillTerms, s.Name)
		skillTerms = append(skillTerms, s.Aliases...)
	}
	l.skills = newKeywordIndex(skillTerms)
	l.benefits = newKeywordIndex(labelKeywords(t.Benefits))
	l.sizes = newKeywordIndex(labelKeywords(t.CompanySizes))
	l.cultures = newKeywordIndex(labelKeywords(t.Cultures))

	for code, name := range t.USStates {
		l.regions[strings.ToLower(code)] = code
		l.regions[strings.ToLower(name)] = name
	}
	for _, c := range t.Countries {
		l.regions[strings.ToLower(c)] = c
	}

	l.locationRules = l.buildLocationRules()
	l.titleRules = l.buildTitleLocationRules()
	l.salaryRules = l.buildSalaryRules()
	return l
}

// Tables returns the tables the library was built from.
func (l *Library) Tables() *Tables { return l.t }

// Version reports the table version.
func (l *Library) Version() string { return l.t.Version }

// --- keyword index ---

// keywordIndex finds lowercase keywords in one Aho-Corasick pass, then keeps
// only hits that sit on token boundaries.
type keywordIndex struct {
	terms   []string
	matcher *ahocorasick.Matcher
}

func newKeywordIndex(keywords []string) *keywordIndex {
	seen := make(map[string]bool, len(keywords))
	k := &keywordIndex{}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		k.terms = append(k.terms, kw)
	}
	if len(k.terms) > 0 {
		k.matcher = ahocorasick.NewStringMatcher(k.terms)
	}
	return k
}

// find returns the set of terms present in lower as whole tokens.
func (k *keywordIndex) find(lower string) map[string]bool {
	found := make(map[string]bool)
	if k.matcher == nil || lower == "" {
		return found
	}
	for _, idx := range k.matcher.MatchThreadSafe([]byte(lower)) {
		if idx < 0 || idx >= len(k.terms) {
			continue
		}
		term := k.terms[idx]
		if ContainsToken(lower, term) {
			found[term] = true
		}
	}
	return found
}

// --- token helpers ---

// ContainsToken reports whether term occurs in text with no letter or digit
// directly before or after it. The comparison is case-sensitive; lowercase
// both sides for a case-insensitive check.
func ContainsToken(text, term string) bool {
	if term == "" {
		return false
	}
	for offset := 0; offset <= len(text)-len(term); {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// MatchKeywords returns the keywords that occur in text as whole tokens,
// case-insensitively, in keyword order.
func MatchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range keywords {
		if ContainsToken(lower, strings.ToLower(kw)) {
			out = append(out, kw)
		}
	}
	return out
}

// ContainsAny reports whether any keyword occurs in text as a whole token.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if ContainsToken(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func toSet(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[strings.ToLower(it)] = true
	}
	return m
}

func labelKeywords(labels []Label) []string {
	out := make([]string, len(labels))
	for i, lb := range labels {
		out[i] = lb.Keyword
	}
	return out
}

// firstLabel returns the label of the first table entry found.
func firstLabel(found map[string]bool, labels []Label) Match[string] {
	for _, lb := range labels {
		if found[strings.ToLower(lb.Keyword)] {
			return Matched(lb.Label)
		}
	}
	return Unmatched[string]()
}

// allLabels returns every distinct label found, in table order.
func allLabels(found map[string]bool, labels []Label) []string {
	var out []string
	seen := make(map[string]bool)
	for _, lb := range labels {
		if found[strings.ToLower(lb.Keyword)] && !seen[lb.Label] {
			seen[lb.Label] = true
			out = append(out, lb.Label)
		}
	}
	return out
}

// Tag returns the label of every group with a keyword in text, in group order.
func Tag(text string, groups []KeywordGroup) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if ContainsToken(lower, strings.ToLower(kw)) {
				out = append(out, g.Label)
				break
			}
		}
	}
	return out
}
