package engine

import "time"

// --- Retrieval strategies ---

// Strategy names one retrieval approach against the search provider.
type Strategy string

const (
	StrategyNeural  Strategy = "neural"  // semantic, broad recall
	StrategyKeyword Strategy = "keyword" // exact terms, small caps
	StrategyHybrid  Strategy = "hybrid"  // targeted sub-query battery
)

// AllStrategies lists every strategy in dispatch order.
var AllStrategies = []Strategy{StrategyNeural, StrategyKeyword, StrategyHybrid}

// SearchMode is the provider-side matching mode.
type SearchMode string

const (
	ModeBroad SearchMode = "broad"
	ModeExact SearchMode = "exact"
	ModeAuto  SearchMode = "auto"
)

// --- Caller input ---

// SalaryRange is an annual salary band in whole currency units.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// SearchFilters are caller-supplied constraints. Every field is optional.
type SearchFilters struct {
	Skills          []string     `json:"skills,omitempty"`
	Location        string       `json:"location,omitempty"`
	ExperienceLevel string       `json:"experience_level,omitempty"`
	JobType         string       `json:"job_type,omitempty"`
	Salary          *SalaryRange `json:"salary,omitempty"`
	CompanySize     string       `json:"company_size,omitempty"`
	Remote          bool         `json:"remote,omitempty"`
	Industries      []string     `json:"industries,omitempty"`
}

// QuerySpec is one synthesized retrieval query.
type QuerySpec struct {
	Text            string     `json:"text"`
	Strategy        Strategy   `json:"strategy"`
	SubQuery        string     `json:"sub_query,omitempty"` // hybrid battery entry name
	Mode            SearchMode `json:"mode"`
	DomainAllowList []string   `json:"domain_allow_list,omitempty"`
	DomainDenyList  []string   `json:"domain_deny_list,omitempty"`
	IncludeText     []string   `json:"include_text,omitempty"`
	ExcludeText     []string   `json:"exclude_text,omitempty"`
	PublishedAfter  time.Time  `json:"published_after,omitzero"`
	ResultCap       int        `json:"result_cap"`
}

// --- Provider results ---

// RawSearchResult is a provider hit tagged with the strategy that produced it.
type RawSearchResult struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Author          string    `json:"author,omitempty"`
	Text            string    `json:"text,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	HighlightScores []float64 `json:"highlight_scores,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	PublishedDate   time.Time `json:"published_date,omitzero"`
	Score           float64   `json:"score"`
	Strategy        Strategy  `json:"strategy"`
	SubQuery        string    `json:"sub_query,omitempty"`
}

// TopHighlightScore returns the best provider highlight score and whether any exists.
func (r RawSearchResult) TopHighlightScore() (float64, bool) {
	if len(r.HighlightScores) == 0 {
		return 0, false
	}
	top := r.HighlightScores[0]
	for _, s := range r.HighlightScores[1:] {
		if s > top {
			top = s
		}
	}
	return top, true
}

// EnrichedJob is a raw result with structured attributes extracted from its text.
type EnrichedJob struct {
	RawSearchResult

	Company             string             `json:"company"`
	Location            string             `json:"location"`
	Salary              *SalaryRange       `json:"salary,omitempty"`
	JobType             string             `json:"job_type"`
	ExperienceLevel     string             `json:"experience_level"`
	Skills              []string           `json:"skills"`
	Benefits            []string           `json:"benefits"`
	CompanySize         string             `json:"company_size,omitempty"`
	Culture             string             `json:"culture,omitempty"`
	ApplicationDeadline *time.Time         `json:"application_deadline,omitempty"`
	Remote              bool               `json:"remote"`
	Hybrid              bool               `json:"hybrid"`
	Description         string             `json:"description"`
	RelevanceScore      float64            `json:"relevance_score"`
	ScoreBreakdown      map[string]float64 `json:"score_breakdown,omitempty"`
	MatchedSkills       []string           `json:"matched_skills,omitempty"`
}

// --- MCP tool I/O ---

// JobMatchInput is the input for the job_match tool.
type JobMatchInput struct {
	Portfolio      string `json:"portfolio" jsonschema:"Portfolio content as a JSON object (name, title, about, contact, skills, experience, projects, education)"`
	Skills         string `json:"skills,omitempty" jsonschema:"Comma-separated skills to search for (default: taken from the portfolio)"`
	Location       string `json:"location,omitempty" jsonschema:"City, metro area or country (e.g. Bay Area, Berlin, United States)"`
	Experience     string `json:"experience,omitempty" jsonschema:"Experience level: entry, mid, senior, lead, executive"`
	JobType        string `json:"job_type,omitempty" jsonschema:"Job type: full-time, part-time, contract, internship"`
	CompanySize    string `json:"company_size,omitempty" jsonschema:"Company size: startup, mid-size, enterprise"`
	MinSalary      int    `json:"min_salary,omitempty" jsonschema:"Minimum annual salary (in salary_currency)"`
	SalaryCurrency string `json:"salary_currency,omitempty" jsonschema:"ISO currency code for min_salary (default: USD)"`
	Remote         bool   `json:"remote,omitempty" jsonschema:"Only remote positions (takes precedence over location)"`
	Industries     string `json:"industries,omitempty" jsonschema:"Comma-separated industries (e.g. fintech, healthcare)"`
	Strategies     string `json:"strategies,omitempty" jsonschema:"Comma-separated strategies: neural, keyword, hybrid (default: all)"`
	Limit          int    `json:"limit,omitempty" jsonschema:"Max jobs to return (default 50, max 100)"`
}

// JobMatchOutput is the structured output for job_match.
type JobMatchOutput struct {
	Status  string        `json:"status"` // "ok" or "no_matches"
	Jobs    []EnrichedJob `json:"jobs"`
	Queries []QuerySpec   `json:"queries"`
	Summary string        `json:"summary"`
}

// CandidateProfileInput is the input for the candidate_profile tool.
type CandidateProfileInput struct {
	Portfolio string `json:"portfolio" jsonschema:"Portfolio content as a JSON object"`
}
