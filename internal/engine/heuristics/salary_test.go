package heuristics

import (
	"testing"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

func TestExtractSalary(t *testing.T) {
	lib := Default()
	tests := []struct {
		name string
		text string
		want engine.SalaryRange
		ok   bool
	}{
		{"k range", "Pay: $120k - $160k per year", engine.SalaryRange{Min: 120000, Max: 160000, Currency: "USD"}, true},
		{"k on max only", "$90-120k", engine.SalaryRange{Min: 90000, Max: 120000, Currency: "USD"}, true},
		{"grouped", "$120,000 to $150,000", engine.SalaryRange{Min: 120000, Max: 150000, Currency: "USD"}, true},
		{"euro dotted", "€70.000 – €85.000 brutto", engine.SalaryRange{Min: 70000, Max: 85000, Currency: "EUR"}, true},
		{"pound", "£60k-£75k", engine.SalaryRange{Min: 60000, Max: 75000, Currency: "GBP"}, true},
		{"code suffix", "Compensation 120k-160k USD", engine.SalaryRange{Min: 120000, Max: 160000, Currency: "USD"}, true},
		{"code suffix cad", "100k - 130k CAD plus bonus", engine.SalaryRange{Min: 100000, Max: 130000, Currency: "CAD"}, true},
		{"code prefix", "EUR 65k-80k", engine.SalaryRange{Min: 65000, Max: 80000, Currency: "EUR"}, true},
		{"swapped", "$160k - $120k", engine.SalaryRange{Min: 120000, Max: 160000, Currency: "USD"}, true},
		{"no range", "Competitive salary", engine.SalaryRange{}, false},
		{"year span", "2019-2023 at Acme", engine.SalaryRange{}, false},
		{"empty", "", engine.SalaryRange{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lib.ExtractSalary(tt.text).Get()
			if ok != tt.ok {
				t.Fatalf("ExtractSalary(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractSalary(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]float64{
		"120":     120,
		"120.5":   120.5,
		"120,000": 120000,
		"70.000":  70000,
	}
	for in, want := range tests {
		got, ok := parseAmount(in)
		if !ok || got != want {
			t.Errorf("parseAmount(%q) = (%v, %v), want %v", in, got, ok, want)
		}
	}
	if _, ok := parseAmount("abc"); ok {
		t.Error("expected failure for non-number")
	}
}
