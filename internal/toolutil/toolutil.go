// Package toolutil provides shared input helpers for the go_jobmatch MCP tools.
package toolutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

// ErrPortfolioRequired is returned when a tool gets no portfolio at all.
var ErrPortfolioRequired = errors.New("portfolio is required")

// DecodePortfolio parses the portfolio argument. It must be a JSON object;
// "{}" is valid and yields an empty portfolio.
func DecodePortfolio(s string) (map[string]any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrPortfolioRequired
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("portfolio is not valid JSON: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("portfolio must be a JSON object, got %T", v)
	}
	return m, nil
}

// SplitList splits a comma-separated argument, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseStrategies reads a comma-separated strategy list. Unknown names are
// rejected so a typo does not silently widen the search.
func ParseStrategies(s string) ([]engine.Strategy, error) {
	known := make(map[engine.Strategy]bool, len(engine.AllStrategies))
	for _, st := range engine.AllStrategies {
		known[st] = true
	}
	var out []engine.Strategy
	for _, name := range SplitList(s) {
		st := engine.Strategy(strings.ToLower(name))
		if !known[st] {
			return nil, fmt.Errorf("unknown strategy %q (want neural, keyword or hybrid)", name)
		}
		out = append(out, st)
	}
	return out, nil
}

// Filters builds search filters from the job_match arguments.
func Filters(in engine.JobMatchInput) engine.SearchFilters {
	return engine.SearchFilters{
		Skills:          SplitList(in.Skills),
		Location:        strings.TrimSpace(in.Location),
		ExperienceLevel: strings.ToLower(strings.TrimSpace(in.Experience)),
		JobType:         strings.TrimSpace(in.JobType),
		CompanySize:     strings.ToLower(strings.TrimSpace(in.CompanySize)),
		Remote:          in.Remote,
		Industries:      SplitList(in.Industries),
		Salary:          minSalary(in.MinSalary, in.SalaryCurrency),
	}
}

func minSalary(amount int, currency string) *engine.SalaryRange {
	if amount <= 0 {
		return nil
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	return &engine.SalaryRange{Min: amount, Currency: currency}
}
