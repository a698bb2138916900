package heuristics

import "testing"

func TestCompanyQuality(t *testing.T) {
	lib := Default()
	tests := []struct {
		host, company string
		want          float64
	}{
		{"stripe.com", "", QualityWellKnown},
		{"example.org", "Google", QualityWellKnown},
		{"careers.acme.io", "Acme", QualityCareers},
		{"jobs.acme.com", "", QualityCareers},
		{"boards.greenhouse.io", "Acme", QualityJobBoard},
		{"jobs.lever.co", "", QualityJobBoard},
		{"www.linkedin.com", "", QualityWellKnown},
		{"acme.dev", "Acme", QualityUnknown},
	}
	for _, tt := range tests {
		if got := lib.CompanyQuality(tt.host, tt.company); got != tt.want {
			t.Errorf("CompanyQuality(%q, %q) = %v, want %v", tt.host, tt.company, got, tt.want)
		}
	}
}

func TestCompanyFromHost(t *testing.T) {
	lib := Default()

	if got := lib.CareerSubdomainCompany("careers.acme-robotics.com").Or(""); got != "Acme Robotics" {
		t.Errorf("CareerSubdomainCompany = %q", got)
	}
	if lib.CareerSubdomainCompany("jobs.lever.co").OK() {
		t.Error("job board subdomain is not a company")
	}
	if lib.CareerSubdomainCompany("acme.com").OK() {
		t.Error("bare domain has no career subdomain")
	}

	if got := lib.ATSCompany("jobs.lever.co", "/hooli/abc-123").Or(""); got != "Hooli" {
		t.Errorf("ATSCompany = %q", got)
	}
	if lib.ATSCompany("acme.com", "/jobs/1").OK() {
		t.Error("non-ATS host should not yield a slug")
	}

	tests := map[string]string{
		"acme.com":            "Acme",
		"blog.acme.io":        "Acme",
		"acme-robotics.co.uk": "Acme Robotics",
		"www.initech.ai":      "Initech",
	}
	for host, want := range tests {
		if got := lib.DomainCompany(host).Or(""); got != want {
			t.Errorf("DomainCompany(%q) = %q, want %q", host, got, want)
		}
	}
	if lib.DomainCompany("").OK() {
		t.Error("empty host")
	}
}
