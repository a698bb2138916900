package heuristics

import (
	"strings"
	"unicode"
)

// Company quality scores.
const (
	QualityWellKnown = 1.0
	QualityCareers   = 0.8
	QualityJobBoard  = 0.7
	QualityUnknown   = 0.5
)

// CompanyQuality scores a posting's source: a well-known company name or
// domain, a careers./jobs. subdomain, a known job board, or anything else.
func (l *Library) CompanyQuality(host, company string) float64 {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if l.wellKnown[strings.ToLower(strings.TrimSpace(company))] || l.wellKnown[l.registrableName(host)] {
		return QualityWellKnown
	}
	if strings.HasPrefix(host, "careers.") || strings.HasPrefix(host, "jobs.") {
		if !l.IsJobBoard(host) {
			return QualityCareers
		}
	}
	if l.IsJobBoard(host) {
		return QualityJobBoard
	}
	return QualityUnknown
}

// IsJobBoard reports whether host is, or is a subdomain of, a known job board.
func (l *Library) IsJobBoard(host string) bool {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	for board := range l.jobBoards {
		if host == board || strings.HasSuffix(host, "."+board) {
			return true
		}
	}
	return false
}

// IsATSHost reports whether the first path segment on host names the company.
func (l *Library) IsATSHost(host string) bool {
	host = strings.ToLower(host)
	for _, h := range l.t.ATSHosts {
		if host == h {
			return true
		}
	}
	return false
}

// CareerSubdomainCompany reads "careers.acme.com" as "Acme".
func (l *Library) CareerSubdomainCompany(host string) Match[string] {
	labels := strings.Split(strings.ToLower(host), ".")
	if len(labels) < 3 || !l.careerLabels[labels[0]] || l.IsJobBoard(host) {
		return Unmatched[string]()
	}
	return Matched(TitleSlug(labels[1]))
}

// ATSCompany reads the company slug from an ATS URL path, e.g.
// jobs.lever.co/acme/123 → "Acme".
func (l *Library) ATSCompany(host, path string) Match[string] {
	if !l.IsATSHost(host) {
		return Unmatched[string]()
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return Unmatched[string]()
	}
	return Matched(TitleSlug(parts[0]))
}

// DomainCompany strips known TLD suffixes and leading subdomains:
// "acme-robotics.co.uk" → "Acme Robotics".
func (l *Library) DomainCompany(host string) Match[string] {
	name := l.registrableName(host)
	if name == "" {
		return Unmatched[string]()
	}
	return Matched(TitleSlug(name))
}

// registrableName returns the label left of the public suffix.
func (l *Library) registrableName(host string) string {
	host = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
	if host == "" {
		return ""
	}
	for _, suffix := range l.t.TLDSuffixes {
		if strings.HasSuffix(host, suffix) && len(host) > len(suffix) {
			host = strings.TrimSuffix(host, suffix)
			break
		}
	}
	if i := strings.LastIndex(host, "."); i >= 0 {
		host = host[i+1:]
	}
	return host
}

// TitleSlug turns "acme-robotics" into "Acme Robotics".
func TitleSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' || r == '+' || r == ' ' })
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
