package heuristics

import (
	"slices"
	"sync"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	lib := Default()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "vocabulary order and canonical names",
			text: "We use golang, k8s, postgres and React on AWS",
			want: []string{"Go", "React", "PostgreSQL", "AWS", "Kubernetes"},
		},
		{
			name: "token boundaries",
			text: "JavaScript and NoSQL experience; github profile",
			want: []string{"JavaScript"},
		},
		{
			name: "case-sensitive Go",
			text: "ready to go the extra mile with Python",
			want: []string{"Python"},
		},
		{
			name: "symbols",
			text: "C++ or C# and .NET",
			want: []string{"C++", "C#", ".NET"},
		},
		{name: "empty", text: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.ExtractSkills(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractSkills(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractSkillsConcurrent(t *testing.T) {
	lib := Default()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := lib.ExtractSkills("Go and Docker and Kubernetes")
			if !slices.Equal(got, []string{"Go", "Docker", "Kubernetes"}) {
				t.Errorf("got %v", got)
			}
		}()
	}
	wg.Wait()
}

func TestCategorizeSkill(t *testing.T) {
	lib := Default()
	tests := map[string]string{
		"Go":               CategoryLanguage,
		"TypeScript":       CategoryLanguage,
		"React":            CategoryFramework,
		"Spring Boot":      CategoryFramework,
		"PostgreSQL":       CategoryDatabase,
		"Google Cloud":     CategoryCloud,
		"Kubernetes":       CategoryCloud,
		"Figma":            CategoryTool,
		"Team Leadership":  CategorySoft,
		"Machine Learning": CategoryTechnical,
		"":                 CategoryTechnical,
	}
	for in, want := range tests {
		if got := lib.CategorizeSkill(in); got != want {
			t.Errorf("CategorizeSkill(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalSkill(t *testing.T) {
	lib := Default()
	if got := lib.CanonicalSkill("k8s").Or(""); got != "Kubernetes" {
		t.Errorf("CanonicalSkill(k8s) = %q", got)
	}
	if lib.CanonicalSkill("cobol-ish").OK() {
		t.Error("unknown skill should not resolve")
	}
}

func TestExpandSkillSynonyms(t *testing.T) {
	lib := Default()
	got := lib.ExpandSkillSynonyms("React")
	want := []string{"React", "React.js", "Frontend", "UI/UX"}
	if !slices.Equal(got, want) {
		t.Errorf("ExpandSkillSynonyms(React) = %v, want %v", got, want)
	}
	if got := lib.ExpandSkillSynonyms("golang"); !slices.Contains(got, "Backend") {
		t.Errorf("alias should expand through canonical name, got %v", got)
	}
	if got := lib.ExpandSkillSynonyms("Haskell"); !slices.Equal(got, []string{"Haskell"}) {
		t.Errorf("unknown skill expands to itself, got %v", got)
	}
}

func TestCustomTables(t *testing.T) {
	tables := DefaultTables()
	tables.Version = "test"
	tables.Skills = []SkillTerm{{Name: "Zig"}}
	lib := New(tables)

	if lib.Version() != "test" {
		t.Errorf("Version = %q", lib.Version())
	}
	if got := lib.ExtractSkills("zig and go"); !slices.Equal(got, []string{"Zig"}) {
		t.Errorf("custom vocabulary ignored: %v", got)
	}
}
