package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	locationPhraseRe = regexp.MustCompile(
		`(?i:\b(?:location|based in|headquartered in|headquarters in|located in|offices? in))\s*[:\-–]?\s*` +
			`([A-Z][\p{L}.'\-]+(?:\s+[A-Z][\p{L}.'\-]+){0,3}(?:,\s*[A-Z][\p{L}.]+(?:\s+[A-Z][\p{L}]+){0,2})?)`)

	cityRegionRe = regexp.MustCompile(
		`\b([A-Z][\p{L}.'\-]+(?:\s[A-Z][\p{L}.'\-]+){0,2}),\s*([A-Z]{2}|[A-Z][\p{L}]+(?:\s[A-Z][\p{L}]+){0,2})\b`)

	// Trailing title segments: "Engineer (Berlin)", "Engineer - Berlin",
	// "Engineer, Berlin", "Engineer | Acme | Berlin".
	titleParenRe = regexp.MustCompile(`\(([^()]{2,48})\)\s*$`)
	titleDashRe  = regexp.MustCompile(`\s[-–—]\s+([^-–—|()]{2,48})$`)
	titleCommaRe = regexp.MustCompile(`,\s*([^,|()]{2,48})$`)
	titlePipeRe  = regexp.MustCompile(`\|\s*([^|()]{2,48})$`)
)

const maxPlaceWords = 4

func (l *Library) buildLocationRules() RuleSet[string] {
	return RuleSet[string]{
		{Name: "phrase", Pattern: locationPhraseRe, Extract: l.extractPhraseLocation},
		{Name: "city_region", Pattern: cityRegionRe, Extract: l.extractCityRegion},
	}
}

// ExtractLocation finds a job or candidate location in free text: an explicit
// phrase first, then "City, ST" / "City, Country", then remote/hybrid/on-site
// keywords. The result is normalized through the alias table.
func (l *Library) ExtractLocation(text string) Match[string] {
	return l.locationRules.First(text).
		OrElse(func() Match[string] { return l.workArrangement(text) })
}

func (l *Library) buildTitleLocationRules() RuleSet[string] {
	return RuleSet[string]{
		{Name: "parenthetical", Pattern: titleParenRe, Extract: l.titleSegment},
		{Name: "dash", Pattern: titleDashRe, Extract: l.titleSegment},
		{Name: "comma", Pattern: titleCommaRe, Extract: l.titleSegment},
		{Name: "pipe", Pattern: titlePipeRe, Extract: l.titleSegment},
	}
}

// ExtractTitleLocation reads a location from the trailing segment of a job
// title. Segments made of role vocabulary are rejected.
func (l *Library) ExtractTitleLocation(title string) Match[string] {
	return l.titleRules.First(strings.TrimSpace(title))
}

func (l *Library) titleSegment(g []string) Match[string] {
	seg := strings.TrimSpace(strings.TrimRight(g[1], ".,;: "))
	if v, ok := l.t.LocationAliases[strings.ToLower(seg)]; ok {
		return Matched(v)
	}
	if city, region, ok := strings.Cut(seg, ","); ok {
		return l.extractCityRegion([]string{seg, strings.TrimSpace(city), strings.TrimSpace(region)})
	}
	words := strings.Fields(seg)
	if len(words) == 0 || len(words) > maxPlaceWords || l.hasRoleWord(seg) {
		return Unmatched[string]()
	}
	if !unicode.IsUpper([]rune(seg)[0]) || strings.ContainsFunc(seg, unicode.IsDigit) {
		return Unmatched[string]()
	}
	return Matched(l.NormalizeLocation(seg))
}

// LocationFromPath finds a known city, state or country in a URL path slug
// such as /jobs/backend-engineer-new-york-city/42. Work arrangements and
// tokens shorter than four letters are ignored.
func (l *Library) LocationFromPath(path string) Match[string] {
	words := strings.FieldsFunc(strings.ToLower(path), func(r rune) bool { return !unicode.IsLetter(r) })
	for i := range words {
		for n := min(3, len(words)-i); n > 0; n-- {
			phrase := strings.Join(words[i:i+n], " ")
			if len(phrase) < 4 {
				continue
			}
			if m := l.knownPlace(phrase); m.OK() {
				return m
			}
		}
	}
	return Unmatched[string]()
}

func (l *Library) knownPlace(phrase string) Match[string] {
	if v, ok := l.t.LocationAliases[phrase]; ok {
		switch v {
		case LocationRemote, LocationHybrid, LocationOnsite:
			return Unmatched[string]()
		}
		return Matched(v)
	}
	if v, ok := l.regions[phrase]; ok {
		return Matched(v)
	}
	return Unmatched[string]()
}

func (l *Library) extractPhraseLocation(g []string) Match[string] {
	cand := strings.TrimRight(strings.TrimSpace(g[1]), ".,")
	if cand == "" {
		return Unmatched[string]()
	}
	if city, region, ok := strings.Cut(cand, ","); ok {
		if m := l.extractCityRegion([]string{cand, city, strings.TrimSpace(region)}); m.OK() {
			return m
		}
		cand = strings.TrimSpace(city)
	}
	if l.hasRoleWord(cand) {
		return Unmatched[string]()
	}
	return Matched(l.NormalizeLocation(cand))
}

// extractCityRegion accepts the hit only when the region part is a known US
// state or country. Multi-word regions are shortened until one matches.
func (l *Library) extractCityRegion(g []string) Match[string] {
	city := l.trimRoleWords(strings.TrimSpace(g[1]))
	if city == "" {
		return Unmatched[string]()
	}
	words := strings.Fields(g[2])
	for n := len(words); n > 0; n-- {
		region := strings.Join(words[:n], " ")
		if display, ok := l.regions[strings.ToLower(region)]; ok {
			if len(region) == 2 && region != strings.ToUpper(region) {
				continue
			}
			return Matched(l.NormalizeLocation(city) + ", " + display)
		}
	}
	return Unmatched[string]()
}

// trimRoleWords keeps the trailing words of s that are not role vocabulary.
func (l *Library) trimRoleWords(s string) string {
	words := strings.Fields(s)
	i := len(words)
	for i > 0 && !l.isRoleWord(words[i-1]) {
		i--
	}
	return strings.Join(words[i:], " ")
}

func (l *Library) hasRoleWord(s string) bool {
	for _, w := range strings.Fields(s) {
		if l.isRoleWord(w) {
			return true
		}
	}
	return false
}

func (l *Library) isRoleWord(w string) bool {
	w = strings.ToLower(strings.Trim(w, ".,:;()[]-"))
	for _, rw := range l.t.RoleWords {
		if w == rw {
			return true
		}
	}
	return false
}

func (l *Library) workArrangement(text string) Match[string] {
	switch {
	case l.IsRemote(text):
		return Matched(LocationRemote)
	case l.IsHybrid(text):
		return Matched(LocationHybrid)
	case ContainsAny(text, l.t.OnsiteTerms):
		return Matched(LocationOnsite)
	}
	return Unmatched[string]()
}

// NormalizeLocation maps known spellings to their display name and leaves
// anything else trimmed but otherwise untouched.
func (l *Library) NormalizeLocation(loc string) string {
	loc = strings.TrimSpace(loc)
	if v, ok := l.t.LocationAliases[strings.ToLower(loc)]; ok {
		return v
	}
	return loc
}

// IsRemote reports whether text advertises remote work.
func (l *Library) IsRemote(text string) bool {
	return ContainsAny(text, l.t.RemoteTerms)
}

// IsHybrid reports whether text advertises a hybrid arrangement.
func (l *Library) IsHybrid(text string) bool {
	return ContainsAny(text, l.t.HybridTerms)
}

// LocationSynonyms returns the expansion for a known metro or country. The
// lookup resolves aliases first, so "SF" and "sf bay area" both work.
func (l *Library) LocationSynonyms(loc string) ([]string, bool) {
	key := strings.ToLower(strings.TrimSpace(loc))
	if key == "" {
		return nil, false
	}
	if syn, ok := l.t.LocationSynonyms[key]; ok {
		return syn, true
	}
	if alias, ok := l.t.LocationAliases[key]; ok {
		syn, ok := l.t.LocationSynonyms[strings.ToLower(alias)]
		return syn, ok
	}
	return nil, false
}

// ExpandLocationSynonyms returns loc followed by its synonyms, without
// duplicates. Unknown locations come back as a single element.
func (l *Library) ExpandLocationSynonyms(loc string) []string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return nil
	}
	out := []string{loc}
	syn, _ := l.LocationSynonyms(loc)
	return appendUnique(out, syn...)
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst)+len(items))
	for _, d := range dst {
		seen[strings.ToLower(d)] = true
	}
	for _, it := range items {
		k := strings.ToLower(it)
		if it == "" || seen[k] {
			continue
		}
		seen[k] = true
		dst = append(dst, it)
	}
	return dst
}
