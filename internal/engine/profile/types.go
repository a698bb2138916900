package profile

import "github.com/anatolykoptev/go_jobmatch/internal/engine"

// Experience levels derived from estimated years.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelLead      = "lead"
	LevelExecutive = "executive"
)

// Remote preferences.
const (
	RemoteOnly     = "remote"
	RemoteHybrid   = "hybrid"
	RemoteOnsite   = "onsite"
	RemoteFlexible = "flexible"
)

// Project complexity grades.
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
	ComplexityExpert       = "expert"
)

// Competitive levels.
const (
	CompetitiveJunior = "junior"
	CompetitiveMid    = "mid"
	CompetitiveSenior = "senior"
	CompetitiveExpert = "expert"
)

// --- Output types ---

// Profile is the structured view of a portfolio. Built once per request and
// read-only afterwards.
type Profile struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary,omitempty"`
	Location string  `json:"location,omitempty"`
	Contact  Contact `json:"contact"`

	Skills      Skills      `json:"skills"`
	Experience  Experience  `json:"experience"`
	Projects    Projects    `json:"projects"`
	Education   Education   `json:"education"`
	Preferences Preferences `json:"preferences"`
	Market      Market      `json:"market"`
}

// Contact holds reachability details.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
	Calendly string `json:"calendly,omitempty"`
}

// Skills partitions the candidate's skills. Each skill sits in exactly one
// bucket; All is the case-insensitive union in first-seen order.
type Skills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Databases  []string `json:"databases"`
	Cloud      []string `json:"cloud"`
	Tools      []string `json:"tools"`
	Soft       []string `json:"soft"`
	Technical  []string `json:"technical"`
	All        []string `json:"all"`
}

// Top returns up to n skills from All, technical buckets first.
func (s Skills) Top(n int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, bucket := range [][]string{s.Languages, s.Frameworks, s.Databases, s.Cloud, s.Technical, s.Tools} {
		for _, sk := range bucket {
			if len(out) >= n {
				return out
			}
			if !seen[sk] {
				seen[sk] = true
				out = append(out, sk)
			}
		}
	}
	return out
}

// Role is one experience entry.
type Role struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
}

// Experience aggregates the work history.
type Experience struct {
	Roles               []Role   `json:"roles"`
	TotalYears          float64  `json:"total_years"`
	Level               string   `json:"level"`
	Industries          []string `json:"industries"`
	CompanyTypes        []string `json:"company_types"`
	HasRemoteExperience bool     `json:"has_remote_experience"`
}

// ProjectSummary is a compact project entry.
type ProjectSummary struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Projects aggregates portfolio projects.
type Projects struct {
	Count         int              `json:"count"`
	Types         []string         `json:"types"`
	Domains       []string         `json:"domains"`
	Complexity    string           `json:"complexity"`
	HasOpenSource bool             `json:"has_open_source"`
	HasCommercial bool             `json:"has_commercial"`
	Recent        []ProjectSummary `json:"recent"`
}

// Degree is one education entry.
type Degree struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// Education aggregates degrees and certifications.
type Education struct {
	Degrees            []Degree `json:"degrees"`
	Certifications     []string `json:"certifications"`
	ContinuousLearning bool     `json:"continuous_learning"`
}

// Preferences are inferred, never required input.
type Preferences struct {
	Roles                []string            `json:"roles"`
	Industries           []string            `json:"industries"`
	CompanySizes         []string            `json:"company_sizes"`
	Remote               string              `json:"remote"`
	Salary               *engine.SalaryRange `json:"salary,omitempty"`
	WillingToRelocate    bool                `json:"willing_to_relocate"`
	NeedsVisaSponsorship bool                `json:"needs_visa_sponsorship"`
}

// Market is a rough positioning of the candidate. Scores are in [0,1].
type Market struct {
	CompetitiveLevel   string   `json:"competitive_level"`
	UniqueCombinations []string `json:"unique_combinations"`
	MarketDemand       float64  `json:"market_demand"`
	Rarity             float64  `json:"rarity"`
	Versatility        float64  `json:"versatility"`
}
