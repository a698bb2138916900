package jobs

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
)

const maxDescriptionRunes = 500

// titleCompanyRe matches "Backend Engineer at Acme" and "Backend Engineer @ Acme".
var titleCompanyRe = regexp.MustCompile(`\s(?:at|At|AT|@)\s+([A-Z0-9][\w&.'\- ]{1,40}?)\s*(?:$|[-|(,:])`)

// Extractor turns raw provider hits into EnrichedJobs.
type Extractor struct {
	lib *heuristics.Library
}

// NewExtractor creates an Extractor. A nil lib uses the default tables.
func NewExtractor(lib *heuristics.Library) *Extractor {
	if lib == nil {
		lib = heuristics.Default()
	}
	return &Extractor{lib: lib}
}

// Enrich extracts structured attributes from raw. filterLocation is the
// caller's location filter, used when nothing in the posting names a place.
// Every field gets a value; missing data falls back to defaults.
func (e *Extractor) Enrich(raw engine.RawSearchResult, filterLocation string) engine.EnrichedJob {
	text := engine.PlainText(raw.Text)
	if text == "" {
		text = strings.TrimSpace(raw.Title)
	}
	classify := raw.Title + "\n" + text
	host := engine.Hostname(raw.URL)

	job := engine.EnrichedJob{
		RawSearchResult: raw,
		ExperienceLevel: e.lib.ClassifyExperienceLevel(classify),
		JobType:         e.lib.ClassifyJobType(classify),
		Skills:          e.lib.ExtractSkills(classify),
		Benefits:        e.lib.ExtractBenefits(text),
		CompanySize:     e.lib.ExtractCompanySize(text).Or(""),
		Culture:         e.lib.ExtractCulture(text).Or(""),
		Remote:          e.lib.IsRemote(classify),
		Hybrid:          e.lib.IsHybrid(classify),
		Description:     engine.TruncateAtWord(descriptionSource(raw, text), maxDescriptionRunes),
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}
	if sr, ok := e.lib.ExtractSalary(text).Get(); ok {
		job.Salary = &sr
	}
	if d, ok := e.lib.ExtractDeadline(text).Get(); ok {
		job.ApplicationDeadline = &d
	}
	job.Company = e.company(raw, host)
	// Only a place read from the posting itself can mark the job remote; the
	// filter location and the final default do not.
	posted := e.postedLocation(raw, text, job.Company)
	if v, ok := posted.Get(); ok && v == heuristics.LocationRemote {
		job.Remote = true
	}
	job.Location = posted.OrElse(func() heuristics.Match[string] {
		return nonBlank(e.lib.NormalizeLocation(filterLocation))
	}).Or(heuristics.LocationRemote)
	if job.ID == "" {
		job.ID = jobID(raw.URL, raw.Title)
	}
	return job
}

// company: provider author, careers subdomain, ATS path slug, "Role at
// Company" title, then the domain name itself.
func (e *Extractor) company(raw engine.RawSearchResult, host string) string {
	m := heuristics.FirstOf(
		func() heuristics.Match[string] { return nonBlank(raw.Author) },
		func() heuristics.Match[string] { return e.lib.CareerSubdomainCompany(host) },
		func() heuristics.Match[string] { return e.lib.ATSCompany(host, engine.URLPath(raw.URL)) },
		func() heuristics.Match[string] { return titleCompany(raw.Title) },
		func() heuristics.Match[string] { return e.lib.DomainCompany(host) },
	)
	return m.Or("Unknown")
}

// postedLocation reads the place from the posting: body text, title trailing
// segment, then URL path slug.
func (e *Extractor) postedLocation(raw engine.RawSearchResult, text, company string) heuristics.Match[string] {
	title := func() heuristics.Match[string] {
		m := e.lib.ExtractTitleLocation(raw.Title)
		if v, ok := m.Get(); ok && strings.EqualFold(v, company) {
			return heuristics.Unmatched[string]()
		}
		return m
	}
	return heuristics.FirstOf(
		func() heuristics.Match[string] { return e.lib.ExtractLocation(text) },
		title,
		func() heuristics.Match[string] { return e.lib.LocationFromPath(engine.URLPath(raw.URL)) },
	)
}

func titleCompany(title string) heuristics.Match[string] {
	g := titleCompanyRe.FindStringSubmatch(title)
	if g == nil {
		return heuristics.Unmatched[string]()
	}
	return nonBlank(g[1])
}

func nonBlank(s string) heuristics.Match[string] {
	if s = strings.TrimSpace(s); s != "" {
		return heuristics.Matched(s)
	}
	return heuristics.Unmatched[string]()
}

// descriptionSource prefers the provider summary, then the page text.
func descriptionSource(raw engine.RawSearchResult, text string) string {
	if s := strings.TrimSpace(raw.Summary); s != "" {
		return s
	}
	return text
}

// jobID derives a stable ID from the URL, or the title when the URL is empty.
func jobID(url, title string) string {
	key := strings.TrimSpace(url)
	if key == "" {
		key = "title:" + strings.ToLower(strings.TrimSpace(title))
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}
