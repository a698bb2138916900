package heuristics

import (
	"slices"
	"testing"
	"time"
)

func TestClassifyExperienceLevel(t *testing.T) {
	lib := Default()
	tests := []struct {
		text string
		want string
	}{
		{"Senior Backend Engineer", LevelSenior},
		{"Sr. Data Scientist", LevelSenior},
		{"Principal Engineer, Platform", LevelSenior},
		{"Staff SRE", LevelSenior},
		{"Tech Lead (Go)", LevelSenior},
		{"Junior Frontend Developer", LevelEntry},
		{"New Grad Software Engineer 2027", LevelEntry},
		{"Software Engineering Intern", LevelEntry},
		{"Senior mentor for junior engineers", LevelSenior},
		{"Software Engineer", LevelMid},
		{"Staffing coordinator", LevelMid},
		{"", LevelMid},
	}
	for _, tt := range tests {
		if got := lib.ClassifyExperienceLevel(tt.text); got != tt.want {
			t.Errorf("ClassifyExperienceLevel(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifyJobType(t *testing.T) {
	lib := Default()
	tests := []struct {
		text string
		want string
	}{
		{"Summer Internship 2027", JobTypeInternship},
		{"Part-time React developer", JobTypePartTime},
		{"6-month contract, outside IR35", JobTypeContract},
		{"Freelance designer", JobTypeContract},
		{"Full-time, permanent", JobTypeFullTime},
		{"Solidity engineer writing smart contracts", JobTypeFullTime},
		{"Internal tools engineer", JobTypeFullTime},
		{"", JobTypeFullTime},
	}
	for _, tt := range tests {
		if got := lib.ClassifyJobType(tt.text); got != tt.want {
			t.Errorf("ClassifyJobType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractBenefits(t *testing.T) {
	lib := Default()
	got := lib.ExtractBenefits("We offer medical and dental, a 401(k) match, RSUs, flexible hours and unlimited PTO.")
	want := []string{"Health insurance", "401(k)/Retirement", "Equity", "Flexible hours", "Unlimited PTO"}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractBenefits = %v, want %v", got, want)
	}
	if got := lib.ExtractBenefits("nothing to see"); len(got) != 0 {
		t.Errorf("expected no benefits, got %v", got)
	}
}

func TestExtractCompanySizeAndCulture(t *testing.T) {
	lib := Default()

	if got := lib.ExtractCompanySize("An early-stage startup backed by top VCs").Or(""); got != "startup" {
		t.Errorf("company size = %q, want startup", got)
	}
	if got := lib.ExtractCompanySize("A Fortune 500 leader").Or(""); got != "enterprise" {
		t.Errorf("company size = %q, want enterprise", got)
	}
	if lib.ExtractCompanySize("We make tools").OK() {
		t.Error("expected no company size")
	}

	if got := lib.ExtractCulture("A fast-paced, collaborative team").Or(""); got != "fast-paced" {
		t.Errorf("culture = %q, want fast-paced", got)
	}
}

func TestExtractDeadline(t *testing.T) {
	lib := Default()
	want := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, text := range []string{
		"Apply by March 1, 2027.",
		"Application deadline: 2027-03-01",
		"Applications close on 1st March 2027",
		"Closing date - 03/01/2027",
	} {
		got, ok := lib.ExtractDeadline(text).Get()
		if !ok || !got.Equal(want) {
			t.Errorf("ExtractDeadline(%q) = (%v, %v), want %v", text, got, ok, want)
		}
	}
	if lib.ExtractDeadline("No deadline mentioned").OK() {
		t.Error("expected no deadline")
	}
}
