package toolutil

import (
	"errors"
	"testing"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

func TestDecodePortfolio(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
		keys    int
	}{
		{"object", `{"name":"Ada","skills":["Go"]}`, false, 2},
		{"empty object", `{}`, false, 0},
		{"blank", "  ", true, 0},
		{"array", `["Go"]`, true, 0},
		{"broken", `{"name":`, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodePortfolio(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(m) != tt.keys {
				t.Errorf("len = %d, want %d", len(m), tt.keys)
			}
		})
	}
	if _, err := DecodePortfolio(""); !errors.Is(err, ErrPortfolioRequired) {
		t.Errorf("blank portfolio err = %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Go, ,Kubernetes ,AWS,")
	want := []string{"Go", "Kubernetes", "AWS"}
	if len(got) != len(want) {
		t.Fatalf("SplitList = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if SplitList("") != nil {
		t.Error("empty input should give nil")
	}
}

func TestParseStrategies(t *testing.T) {
	got, err := ParseStrategies("Neural, hybrid")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != engine.StrategyNeural || got[1] != engine.StrategyHybrid {
		t.Errorf("ParseStrategies = %v", got)
	}
	if got, err := ParseStrategies(""); err != nil || got != nil {
		t.Errorf("empty = %v, %v", got, err)
	}
	if _, err := ParseStrategies("neural,semantic"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestFilters(t *testing.T) {
	f := Filters(engine.JobMatchInput{
		Skills:     "Go, Rust",
		Location:   " Bay Area ",
		Experience: "Senior",
		Remote:     true,
		Industries: "fintech",
	})
	if len(f.Skills) != 2 || f.Location != "Bay Area" || f.ExperienceLevel != "senior" || !f.Remote || len(f.Industries) != 1 {
		t.Errorf("Filters = %+v", f)
	}
	if f.Salary != nil {
		t.Errorf("no min_salary should leave Salary nil, got %+v", f.Salary)
	}

	f = Filters(engine.JobMatchInput{CompanySize: " Startup ", MinSalary: 90000, SalaryCurrency: "eur"})
	if f.CompanySize != "startup" {
		t.Errorf("CompanySize = %q", f.CompanySize)
	}
	if f.Salary == nil || *f.Salary != (engine.SalaryRange{Min: 90000, Currency: "EUR"}) {
		t.Errorf("Salary = %+v", f.Salary)
	}
	if f = Filters(engine.JobMatchInput{MinSalary: 50000}); f.Salary == nil || f.Salary.Currency != "USD" {
		t.Errorf("default currency: %+v", f.Salary)
	}
}
