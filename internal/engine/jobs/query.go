package jobs

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/profile"
)

// Result caps per strategy.
const (
	neuralResultCap  = 25
	keywordResultCap = 10
	hybridResultCap  = 10
	topSkillCount    = 3
)

// GenericRole stands in when neither skills nor roles are known.
const GenericRole = "software engineer"

var (
	// neuralDomains keeps broad semantic queries on job boards and ATS pages.
	neuralDomains = []string{
		"linkedin.com", "indeed.com", "glassdoor.com", "greenhouse.io", "lever.co", "ashbyhq.com",
		"wellfound.com", "builtin.com", "workable.com", "otta.com", "welcometothejungle.com",
	}
	// noiseDomains rarely host postings.
	noiseDomains = []string{"reddit.com", "quora.com", "medium.com", "youtube.com", "wikipedia.org"}
)

// HybridQuery is one entry of the targeted sub-query battery. Text and
// IncludeText may use {role}, {skills}, {framework}, {framework_synonyms}
// and {location}. An entry with CompanySizes is skipped when the caller asks
// for a company size outside that list.
type HybridQuery struct {
	Name            string
	Text            string
	DomainAllowList []string
	IncludeText     []string
	CompanySizes    []string
}

// DefaultHybridBattery is the static hybrid sub-query table.
var DefaultHybridBattery = []HybridQuery{
	{
		Name:            "startup",
		Text:            "{role} job at an early-stage startup building with {skills} {location}",
		DomainAllowList: []string{"ycombinator.com", "workatastartup.com", "wellfound.com", "angel.co"},
		IncludeText:     []string{"startup"},
		CompanySizes:    []string{"startup"},
	},
	{
		Name:            "enterprise",
		Text:            "{role} position at an established technology company using {skills} {location}",
		DomainAllowList: []string{"linkedin.com", "glassdoor.com", "indeed.com", "builtin.com"},
		IncludeText:     []string{"benefits"},
		CompanySizes:    []string{"mid-size", "enterprise"},
	},
	{
		Name:            "remote_first",
		Text:            "remote-first company hiring a {role} with {skills}, work from anywhere",
		DomainAllowList: []string{"weworkremotely.com", "remoteok.com", "remotive.com", "remote.co"},
		IncludeText:     []string{"remote"},
	},
	{
		Name:            "framework",
		Text:            "{role} role focused on {framework_synonyms} {location}",
		DomainAllowList: []string{"greenhouse.io", "lever.co", "ashbyhq.com", "workable.com"},
		IncludeText:     []string{"{framework}"},
	},
}

// QueryBuilder turns a profile and filters into retrieval queries.
type QueryBuilder struct {
	lib        *heuristics.Library
	now        func() time.Time
	dateWindow time.Duration
	battery    []HybridQuery
}

// NewQueryBuilder creates a builder. A zero dateWindow disables the
// published-after bound.
func NewQueryBuilder(lib *heuristics.Library, now func() time.Time, dateWindow time.Duration) *QueryBuilder {
	if lib == nil {
		lib = heuristics.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &QueryBuilder{lib: lib, now: now, dateWindow: dateWindow, battery: DefaultHybridBattery}
}

// queryIntent is what every strategy draws from.
type queryIntent struct {
	role      string
	skills    []string
	framework string
	level     string
	years     float64
	industry  string
	jobType   string
	remote    bool
	location  string
	size      string
	salary    *engine.SalaryRange
}

// Build returns one query per neural/keyword strategy and one per hybrid
// battery entry. An empty strategy list means all strategies.
func (b *QueryBuilder) Build(p *profile.Profile, f engine.SearchFilters, strategies []engine.Strategy) []engine.QuerySpec {
	in := b.intent(p, f)
	var published time.Time
	if b.dateWindow > 0 {
		published = b.now().Add(-b.dateWindow).UTC().Truncate(time.Second)
	}

	var out []engine.QuerySpec
	for _, s := range normalizeStrategies(strategies) {
		switch s {
		case engine.StrategyNeural:
			out = append(out, engine.QuerySpec{
				Text:            b.neuralText(in),
				Strategy:        s,
				Mode:            engine.ModeBroad,
				DomainAllowList: slices.Clone(neuralDomains),
				DomainDenyList:  slices.Clone(noiseDomains),
				PublishedAfter:  published,
				ResultCap:       neuralResultCap,
			})
		case engine.StrategyKeyword:
			out = append(out, engine.QuerySpec{
				Text:           b.keywordText(in),
				Strategy:       s,
				Mode:           engine.ModeExact,
				DomainDenyList: slices.Clone(noiseDomains),
				PublishedAfter: published,
				ResultCap:      keywordResultCap,
			})
		case engine.StrategyHybrid:
			for _, hq := range b.battery {
				if in.size != "" && len(hq.CompanySizes) > 0 && !slices.Contains(hq.CompanySizes, in.size) {
					continue
				}
				out = append(out, b.hybridQuery(hq, in, published))
			}
		}
	}
	return out
}

func (b *QueryBuilder) intent(p *profile.Profile, f engine.SearchFilters) queryIntent {
	in := queryIntent{
		jobType:  strings.TrimSpace(f.JobType),
		remote:   f.Remote,
		location: strings.TrimSpace(f.Location),
		level:    strings.TrimSpace(f.ExperienceLevel),
		salary:   f.Salary,
	}
	if size := strings.TrimSpace(f.CompanySize); size != "" {
		in.size = b.lib.ExtractCompanySize(size).Or(strings.ToLower(size))
	}
	if len(f.Industries) > 0 {
		in.industry = f.Industries[0]
	}
	in.skills = firstN(nonEmpty(f.Skills), topSkillCount)

	if p != nil {
		if len(in.skills) == 0 {
			in.skills = p.Skills.Top(topSkillCount)
		}
		if len(p.Preferences.Roles) > 0 {
			in.role = p.Preferences.Roles[0]
		}
		if len(p.Skills.Frameworks) > 0 {
			in.framework = p.Skills.Frameworks[0]
		}
		if in.level == "" && len(p.Experience.Roles) > 0 {
			in.level = p.Experience.Level
		}
		in.years = p.Experience.TotalYears
		if in.industry == "" && len(p.Preferences.Industries) > 0 {
			in.industry = p.Preferences.Industries[0]
		}
	}
	if in.role == "" {
		in.role = GenericRole
	}
	if in.framework == "" && len(in.skills) > 0 {
		in.framework = in.skills[0]
	}
	if in.framework == "" {
		in.framework = in.role
	}
	return in
}

func (b *QueryBuilder) neuralText(in queryIntent) string {
	parts := []string{strings.TrimSpace(levelWord(in.level) + " " + in.role + " job opening")}
	if in.years > 0 {
		parts = append(parts, fmt.Sprintf("for a candidate with %s years of experience", formatYears(in.years)))
	}
	if len(in.skills) > 0 {
		parts = append(parts, "working with "+humanJoin(in.skills))
	}
	if in.industry != "" {
		parts = append(parts, "in the "+in.industry+" industry")
	}
	if in.size != "" {
		parts = append(parts, "at a "+in.size+" company")
	}
	if in.salary != nil && in.salary.Min > 0 {
		parts = append(parts, fmt.Sprintf("paying at least %d %s", in.salary.Min, in.salary.Currency))
	}
	if loc := b.proseLocation(in); loc != "" {
		parts = append(parts, loc)
	}
	return strings.Join(parts, " ")
}

func (b *QueryBuilder) keywordText(in queryIntent) string {
	terms := []string{quote(in.role)}
	for i, s := range in.skills {
		if i == 0 {
			terms = append(terms, b.skillGroup(s))
			continue
		}
		terms = append(terms, quote(s))
	}
	if lw := levelWord(in.level); lw != "" {
		terms = append(terms, quote(lw))
	}
	if in.jobType != "" {
		terms = append(terms, quote(in.jobType))
	}
	if loc := b.locationClause(in); loc != "" {
		terms = append(terms, loc)
	}
	return strings.Join(terms, " ")
}

func (b *QueryBuilder) hybridQuery(hq HybridQuery, in queryIntent, published time.Time) engine.QuerySpec {
	skills := GenericRole
	if len(in.skills) > 0 {
		skills = humanJoin(in.skills)
	}
	r := strings.NewReplacer(
		"{role}", in.role,
		"{skills}", skills,
		"{framework_synonyms}", strings.Join(b.lib.ExpandSkillSynonyms(in.framework), " or "),
		"{framework}", in.framework,
		"{location}", b.proseLocation(in),
	)
	include := make([]string, 0, len(hq.IncludeText))
	for _, t := range hq.IncludeText {
		if v := strings.TrimSpace(r.Replace(t)); v != "" {
			include = append(include, v)
		}
	}
	return engine.QuerySpec{
		Text:            strings.Join(strings.Fields(r.Replace(hq.Text)), " "),
		Strategy:        engine.StrategyHybrid,
		SubQuery:        hq.Name,
		Mode:            engine.ModeAuto,
		DomainAllowList: slices.Clone(hq.DomainAllowList),
		DomainDenyList:  slices.Clone(noiseDomains),
		IncludeText:     include,
		PublishedAfter:  published,
		ResultCap:       hybridResultCap,
	}
}

// skillGroup renders a skill and its synonyms as an OR-list; a skill without
// synonyms is quoted alone.
func (b *QueryBuilder) skillGroup(skill string) string {
	names := b.lib.ExpandSkillSynonyms(skill)
	if len(names) < 2 {
		return quote(skill)
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote(n)
	}
	return "(" + strings.Join(quoted, " OR ") + ")"
}

// locationClause renders the location for exact-match queries: remote wins,
// a known metro or country becomes an OR-list, anything else is quoted.
func (b *QueryBuilder) locationClause(in queryIntent) string {
	switch {
	case in.remote:
		return quote("remote")
	case in.location == "":
		return ""
	}
	if _, ok := b.lib.LocationSynonyms(in.location); ok {
		names := b.lib.ExpandLocationSynonyms(in.location)
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = quote(n)
		}
		return "(" + strings.Join(quoted, " OR ") + ")"
	}
	return quote(in.location)
}

// proseLocation renders the location for semantic queries.
func (b *QueryBuilder) proseLocation(in queryIntent) string {
	switch {
	case in.remote:
		return "fully remote"
	case in.location == "":
		return ""
	}
	if _, ok := b.lib.LocationSynonyms(in.location); ok {
		return "located in " + strings.Join(b.lib.ExpandLocationSynonyms(in.location), " or ")
	}
	return "located in " + in.location
}

func normalizeStrategies(in []engine.Strategy) []engine.Strategy {
	if len(in) == 0 {
		return engine.AllStrategies
	}
	want := make(map[engine.Strategy]bool, len(in))
	for _, s := range in {
		want[engine.Strategy(strings.ToLower(strings.TrimSpace(string(s))))] = true
	}
	var out []engine.Strategy
	for _, s := range engine.AllStrategies {
		if want[s] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return engine.AllStrategies
	}
	return out
}

// levelWord maps profile and filter levels onto posting vocabulary.
func levelWord(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "entry", "entry-level", "junior":
		return "entry-level"
	case "mid", "mid-level":
		return "mid-level"
	case "senior":
		return "senior"
	case "lead":
		return "lead"
	case "executive", "principal":
		return "principal"
	}
	return ""
}

func formatYears(y float64) string {
	if y == float64(int(y)) {
		return fmt.Sprintf("%d", int(y))
	}
	return fmt.Sprintf("%.1f", y)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(strings.TrimSpace(s), `"`, "") + `"`
}

// humanJoin renders ["a","b","c"] as "a, b and c".
func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func nonEmpty(items []string) []string {
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
