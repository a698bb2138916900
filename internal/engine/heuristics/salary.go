package heuristics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

const (
	amountPat = `(\d{1,3}(?:[,.]\d{3})+|\d+(?:\.\d+)?)\s?([kK])?`
	rangeSep  = `\s*(?:-|–|—|to)\s*`
	codePat   = `(?i:usd|eur|gbp|cad|aud|chf|inr)`
)

var (
	salarySymbolRe = regexp.MustCompile(`([$€£])\s?` + amountPat + rangeSep + `[$€£]?\s?` + amountPat)
	salaryCodeRe   = regexp.MustCompile(amountPat + rangeSep + amountPat + `\s*(` + codePat + `)\b`)
	salaryPrefixRe = regexp.MustCompile(`\b(` + codePat + `)\s?` + amountPat + rangeSep + amountPat)
	groupedRe      = regexp.MustCompile(`^\d{1,3}(?:[,.]\d{3})+$`)
)

func (l *Library) buildSalaryRules() RuleSet[engine.SalaryRange] {
	return RuleSet[engine.SalaryRange]{
		{Name: "symbol", Pattern: salarySymbolRe, Extract: func(g []string) Match[engine.SalaryRange] {
			return l.salaryFrom(g[1], g[2], g[3], g[4], g[5])
		}},
		{Name: "code_suffix", Pattern: salaryCodeRe, Extract: func(g []string) Match[engine.SalaryRange] {
			return l.salaryFrom(g[5], g[1], g[2], g[3], g[4])
		}},
		{Name: "code_prefix", Pattern: salaryPrefixRe, Extract: func(g []string) Match[engine.SalaryRange] {
			return l.salaryFrom(g[1], g[2], g[3], g[4], g[5])
		}},
	}
}

// ExtractSalary finds a salary range such as "$120k - $160k", "€70.000 – €85.000"
// or "120k-160k USD".
func (l *Library) ExtractSalary(text string) Match[engine.SalaryRange] {
	return l.salaryRules.First(text)
}

func (l *Library) salaryFrom(currency, minRaw, minK, maxRaw, maxK string) Match[engine.SalaryRange] {
	lo, okLo := parseAmount(minRaw)
	hi, okHi := parseAmount(maxRaw)
	if !okLo || !okHi {
		return Unmatched[engine.SalaryRange]()
	}
	hasMinK, hasMaxK := minK != "", maxK != ""
	if hasMinK {
		lo *= 1000
	}
	if hasMaxK {
		hi *= 1000
	}
	// "120-160k": the k on the max applies to both ends.
	if hasMaxK && !hasMinK && lo < 1000 {
		lo *= 1000
	}
	if hasMinK && !hasMaxK && hi < 1000 {
		hi *= 1000
	}
	if lo <= 0 || hi <= 0 {
		return Unmatched[engine.SalaryRange]()
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return Matched(engine.SalaryRange{Min: int(lo), Max: int(hi), Currency: l.currencyCode(currency)})
}

func (l *Library) currencyCode(s string) string {
	if code, ok := l.t.Currencies[strings.ToLower(strings.TrimSpace(s))]; ok {
		return code
	}
	if l.t.DefaultCurrency != "" {
		return l.t.DefaultCurrency
	}
	return "USD"
}

// parseAmount reads "120", "120.5", "120,000" or "70.000".
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if groupedRe.MatchString(s) {
		s = strings.NewReplacer(",", "", ".", "").Replace(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
