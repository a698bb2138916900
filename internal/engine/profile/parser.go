// Package profile turns free-form portfolio content into a structured
// candidate Profile.
package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/anatolykoptev/go_jobmatch/internal/engine/heuristics"
)

// Parser derives profiles. The zero value is not usable; call NewParser.
type Parser struct {
	lib *heuristics.Library
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithLibrary sets the heuristics library (default: heuristics.Default()).
func WithLibrary(lib *heuristics.Library) Option {
	return func(p *Parser) { p.lib = lib }
}

// WithClock sets the reference clock used for recency checks.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{lib: heuristics.Default(), now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ParseJSON decodes portfolio JSON and parses it. Only malformed JSON is an
// error; a valid document of any shape yields a (possibly empty) profile.
func (p *Parser) ParseJSON(data []byte) (*Profile, error) {
	var v any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode portfolio: %w", err)
		}
	}
	raw, _ := v.(map[string]any)
	return p.Parse(raw), nil
}

// Parse derives a Profile from portfolio content. It never fails; missing or
// wrong-typed fields read as empty.
func (p *Parser) Parse(raw map[string]any) *Profile {
	now := p.now()
	contact := parseContact(raw)

	prof := &Profile{
		Name:    str(raw, "name", "fullName", "full_name"),
		Title:   str(raw, "title", "headline", "role", "position"),
		Summary: str(raw, "about", "summary", "bio", "description"),
		Contact: contact,
	}
	prof.Location = str(raw, "location")
	if prof.Location == "" {
		prof.Location = contact.Location
	}

	prof.Skills = p.parseSkills(raw)
	prof.Experience = p.parseExperience(raw)
	prof.Projects = p.parseProjects(raw)
	prof.Education = parseEducation(raw, now)
	prof.Preferences = p.inferPreferences(raw, prof)
	prof.Market = p.assessMarket(prof)
	return prof
}

func parseContact(raw map[string]any) Contact {
	c := obj(raw, "contact", "contacts")
	links := obj(raw, "links", "social", "socials")
	pick := func(keys ...string) string {
		if s := str(c, keys...); s != "" {
			return s
		}
		if s := str(links, keys...); s != "" {
			return s
		}
		return str(raw, keys...)
	}
	return Contact{
		Email:    pick("email"),
		Phone:    pick("phone", "tel"),
		Location: str(c, "location", "city"),
		LinkedIn: pick("linkedin", "linkedIn"),
		GitHub:   pick("github", "gitHub"),
		Twitter:  pick("twitter", "x"),
		Website:  pick("website", "site", "url"),
		Calendly: pick("calendly"),
	}
}
