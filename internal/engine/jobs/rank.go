package jobs

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/profile"
)

const (
	defaultBaseScore = 0.5
	// metroLocationScore is the location factor for a place match, so that the
	// weighted contribution is 0.10 against 0.15 for remote.
	metroLocationScore = 0.10 / 0.15
)

// Target is what a job is scored against.
type Target struct {
	Profile *profile.Profile
	Filters engine.SearchFilters
}

// Factor is one weighted term of the relevance score. Score returns a value
// in [0,1]; the contribution is Weight·Score.
type Factor struct {
	Name   string
	Weight float64
	Score  func(job *engine.EnrichedJob, t Target) float64
}

// Ranker scores and orders enriched jobs.
type Ranker struct {
	lib     *heuristics.Library
	factors []Factor
	base    float64
}

// NewRanker creates a Ranker with the default factor table.
func NewRanker(lib *heuristics.Library) *Ranker {
	if lib == nil {
		lib = heuristics.Default()
	}
	r := &Ranker{lib: lib, base: defaultBaseScore}
	r.factors = r.DefaultFactors()
	return r
}

// DefaultFactors is the weight table. Weights sum to 1.
func (r *Ranker) DefaultFactors() []Factor {
	return []Factor{
		{Name: "skills", Weight: 0.40, Score: r.skillScore},
		{Name: "experience", Weight: 0.20, Score: r.experienceScore},
		{Name: "location", Weight: 0.15, Score: r.locationScore},
		{Name: "industry", Weight: 0.10, Score: r.industryScore},
		{Name: "company", Weight: 0.10, Score: r.companyScore},
		{Name: "job_type", Weight: 0.05, Score: r.jobTypeScore},
	}
}

// Factors returns the active factor table.
func (r *Ranker) Factors() []Factor { return r.factors }

// Score sets RelevanceScore, ScoreBreakdown and MatchedSkills on job.
func (r *Ranker) Score(job *engine.EnrichedJob, t Target) {
	base := r.base
	if job.Score > 0 && job.Score <= 1 {
		base = job.Score
	}
	breakdown := map[string]float64{"base": base}
	total := base
	for _, f := range r.factors {
		c := f.Weight * clamp01(f.Score(job, t))
		breakdown[f.Name] = c
		total += c
	}
	job.RelevanceScore = clamp01(total)
	job.ScoreBreakdown = breakdown
	job.MatchedSkills = r.matchSkills(candidateSkills(t), job.Skills)
}

// Rank scores every job and sorts by score descending. Equal scores are
// ordered by top highlight score, then by publish date, newest first.
func (r *Ranker) Rank(jobs []engine.EnrichedJob, p *profile.Profile, f engine.SearchFilters) []engine.EnrichedJob {
	t := Target{Profile: p, Filters: f}
	for i := range jobs {
		r.Score(&jobs[i], t)
	}
	slices.SortStableFunc(jobs, compareJobs)
	return jobs
}

func compareJobs(a, b engine.EnrichedJob) int {
	if c := cmp.Compare(b.RelevanceScore, a.RelevanceScore); c != 0 {
		return c
	}
	ha, okA := a.TopHighlightScore()
	hb, okB := b.TopHighlightScore()
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && ha != hb:
		return cmp.Compare(hb, ha)
	}
	return b.PublishedDate.Compare(a.PublishedDate)
}

// --- factors ---

func (r *Ranker) skillScore(job *engine.EnrichedJob, t Target) float64 {
	skills := candidateSkills(t)
	if len(skills) == 0 {
		return 0
	}
	return float64(len(r.matchSkills(skills, job.Skills))) / float64(len(skills))
}

func (r *Ranker) experienceScore(job *engine.EnrichedJob, t Target) float64 {
	want, ok := candidateLevel(t)
	if !ok {
		return 0.5
	}
	have, ok := levelRank(job.ExperienceLevel)
	if !ok {
		return 0.5
	}
	switch d := abs(want - have); d {
	case 0:
		return 1
	case 1:
		return 0.7
	default:
		return 0.2
	}
}

func (r *Ranker) locationScore(job *engine.EnrichedJob, t Target) float64 {
	f := t.Filters
	if f.Remote && job.Remote {
		return 1
	}
	loc := strings.TrimSpace(f.Location)
	if loc == "" || job.Location == "" {
		return 0
	}
	for _, name := range r.lib.ExpandLocationSynonyms(r.lib.NormalizeLocation(loc)) {
		if heuristics.ContainsToken(strings.ToLower(job.Location), strings.ToLower(name)) {
			return metroLocationScore
		}
	}
	for _, name := range r.lib.ExpandLocationSynonyms(job.Location) {
		if strings.EqualFold(name, loc) || strings.EqualFold(name, r.lib.NormalizeLocation(loc)) {
			return metroLocationScore
		}
	}
	return 0
}

func (r *Ranker) industryScore(job *engine.EnrichedJob, t Target) float64 {
	if len(t.Filters.Industries) == 0 {
		return 0
	}
	if len(heuristics.MatchKeywords(job.Title+"\n"+job.Description+"\n"+job.Text, nonEmpty(t.Filters.Industries))) > 0 {
		return 1
	}
	return 0
}

func (r *Ranker) companyScore(job *engine.EnrichedJob, _ Target) float64 {
	return r.lib.CompanyQuality(engine.Hostname(job.URL), job.Company)
}

func (r *Ranker) jobTypeScore(job *engine.EnrichedJob, t Target) float64 {
	want := normalizeJobType(t.Filters.JobType)
	if want == "" {
		return 0
	}
	if strings.Contains(normalizeJobType(job.JobType), want) {
		return 1
	}
	return 0
}

// --- helpers ---

// candidateSkills is the profile's skill set, or the filter skills when the
// profile has none.
func candidateSkills(t Target) []string {
	if t.Profile != nil && len(t.Profile.Skills.All) > 0 {
		return t.Profile.Skills.All
	}
	return nonEmpty(t.Filters.Skills)
}

// matchSkills returns the candidate skills that match a job skill. Both
// sides are canonicalized first ("Golang" → "Go", "Postgres" → "PostgreSQL"),
// then compared as case-insensitive substrings in either direction.
func (r *Ranker) matchSkills(candidate, job []string) []string {
	jobKeys := make([]string, 0, len(job))
	for _, j := range job {
		if k := r.skillKey(j); k != "" {
			jobKeys = append(jobKeys, k)
		}
	}
	var out []string
	for _, c := range candidate {
		ck := r.skillKey(c)
		if ck == "" {
			continue
		}
		for _, jk := range jobKeys {
			if strings.Contains(jk, ck) || strings.Contains(ck, jk) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (r *Ranker) skillKey(skill string) string {
	skill = strings.TrimSpace(skill)
	return strings.ToLower(r.lib.CanonicalSkill(skill).Or(skill))
}

// candidateLevel prefers the filter level; a profile without any roles has
// no level.
func candidateLevel(t Target) (int, bool) {
	if rank, ok := levelRank(t.Filters.ExperienceLevel); ok {
		return rank, true
	}
	if t.Profile == nil || len(t.Profile.Experience.Roles) == 0 {
		return 0, false
	}
	return levelRank(t.Profile.Experience.Level)
}

// levelRank orders candidate and posting levels on one scale.
func levelRank(level string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case profile.LevelEntry, "entry-level", "junior", "intern":
		return 0, true
	case profile.LevelMid, "mid-level", "intermediate":
		return 1, true
	case profile.LevelSenior:
		return 2, true
	case profile.LevelLead, "staff", "principal":
		return 3, true
	case profile.LevelExecutive, "director":
		return 4, true
	}
	return 0, false
}

func normalizeJobType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
