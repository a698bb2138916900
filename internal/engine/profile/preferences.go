package profile

import (
	"strings"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
)

const fallbackRole = "Software Engineer"

var defaultCompanySizes = []string{"mid-size"}

var validRemote = map[string]bool{RemoteOnly: true, RemoteHybrid: true, RemoteOnsite: true, RemoteFlexible: true}

func (p *Parser) inferPreferences(raw map[string]any, prof *Profile) Preferences {
	t := p.lib.Tables()
	explicit := obj(raw, "preferences", "jobPreferences")

	pref := Preferences{
		Roles:        p.inferRoles(prof),
		Industries:   prof.Experience.Industries,
		CompanySizes: prof.Experience.CompanyTypes,
		Remote:       remotePreference(prof.Experience.HasRemoteExperience, prof.Location != ""),
		Salary:       p.parseSalary(raw, explicit),
	}
	if len(pref.CompanySizes) == 0 {
		pref.CompanySizes = append([]string(nil), defaultCompanySizes...)
	}

	if roles := strList(explicit, "roles", "titles"); len(roles) > 0 {
		pref.Roles = roles
	}
	if inds := strList(explicit, "industries"); len(inds) > 0 {
		pref.Industries = inds
	}
	if sizes := strList(explicit, "companySizes", "company_sizes"); len(sizes) > 0 {
		pref.CompanySizes = sizes
	}
	if r := strings.ToLower(str(explicit, "remote", "workMode")); validRemote[r] {
		pref.Remote = r
	}

	about := prof.Summary
	if v, ok := boolean(raw, "willingToRelocate", "relocation", "openToRelocation"); ok {
		pref.WillingToRelocate = v
	} else if v, ok := boolean(explicit, "relocate", "willingToRelocate", "relocation"); ok {
		pref.WillingToRelocate = v
	} else {
		pref.WillingToRelocate = heuristics.ContainsAny(about, t.RelocationTerms)
	}
	if v, ok := boolean(raw, "needsVisaSponsorship", "visaSponsorship", "needsSponsorship"); ok {
		pref.NeedsVisaSponsorship = v
	} else if v, ok := boolean(explicit, "visaSponsorship", "needsVisaSponsorship"); ok {
		pref.NeedsVisaSponsorship = v
	} else {
		pref.NeedsVisaSponsorship = heuristics.ContainsAny(about, t.VisaTerms)
	}
	return pref
}

// inferRoles reads role intent from the headline and past titles, then from
// frameworks, then falls back to a generic title.
func (p *Parser) inferRoles(prof *Profile) []string {
	t := p.lib.Tables()
	titles := []string{prof.Title}
	for _, r := range prof.Experience.Roles {
		titles = append(titles, r.Title)
	}
	roles := heuristics.Tag(strings.Join(titles, "\n"), t.RoleTitles)
	if len(roles) > 0 {
		return roles
	}
	have := p.canonicalSkills(prof.Skills.All)
	for _, g := range t.FrameworkRoles {
		for _, fw := range g.Keywords {
			if have[strings.ToLower(fw)] {
				roles = uniqueFold(roles, g.Label)
				break
			}
		}
	}
	if len(roles) > 0 {
		return roles
	}
	return []string{fallbackRole}
}

// remotePreference: remote history without a home base means remote; remote
// history with one means flexible; no remote history means hybrid when a
// location is known and flexible otherwise.
func remotePreference(hasRemote, hasLocation bool) string {
	switch {
	case hasRemote && !hasLocation:
		return RemoteOnly
	case hasRemote:
		return RemoteFlexible
	case hasLocation:
		return RemoteHybrid
	default:
		return RemoteFlexible
	}
}

func (p *Parser) parseSalary(raw, explicit map[string]any) *engine.SalaryRange {
	for _, src := range []map[string]any{explicit, raw} {
		if o := obj(src, "salary", "expectedSalary", "salaryExpectation"); o != nil {
			lo, okLo := number(o, "min", "from")
			hi, okHi := number(o, "max", "to")
			if !okLo && !okHi {
				continue
			}
			if !okHi {
				hi = lo
			}
			if !okLo {
				lo = hi
			}
			if hi < lo {
				lo, hi = hi, lo
			}
			cur := strings.ToUpper(str(o, "currency"))
			if cur == "" {
				cur = p.lib.Tables().DefaultCurrency
			}
			return &engine.SalaryRange{Min: int(lo), Max: int(hi), Currency: cur}
		}
		if n, ok := number(src, "salary", "expectedSalary", "salaryExpectation"); ok && n > 0 {
			return &engine.SalaryRange{Min: int(n), Max: int(n), Currency: p.lib.Tables().DefaultCurrency}
		}
		if s := str(src, "salary", "expectedSalary", "salaryExpectation"); s != "" {
			if sr, ok := p.lib.ExtractSalary(s).Get(); ok {
				return &sr
			}
		}
	}
	return nil
}

// canonicalSkills returns the lowercase canonical names of skills.
func (p *Parser) canonicalSkills(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(p.lib.CanonicalSkill(s).Or(s))] = true
	}
	return set
}
