// Package heuristics holds the pattern-matching primitives shared by profile
// parsing and job extraction: location, salary, seniority, job type, skills,
// benefits, remote/hybrid detection and synonym expansion.
//
// Every function is pure and fails soft. Patterns live in declarative rule
// tables and keyword tables (see tables.go), never in control flow.
package heuristics

import "regexp"

// Match is the result of a heuristic: either Matched(value) or Unmatched.
type Match[T any] struct {
	value T
	ok    bool
}

// Matched wraps a found value.
func Matched[T any](v T) Match[T] { return Match[T]{value: v, ok: true} }

// Unmatched is the empty result.
func Unmatched[T any]() Match[T] { return Match[T]{} }

// Get returns the value and whether it was matched.
func (m Match[T]) Get() (T, bool) { return m.value, m.ok }

// OK reports whether a value was matched.
func (m Match[T]) OK() bool { return m.ok }

// Or returns the value or fallback when unmatched.
func (m Match[T]) Or(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// OrElse evaluates next only when m is unmatched.
func (m Match[T]) OrElse(next func() Match[T]) Match[T] {
	if m.ok {
		return m
	}
	return next()
}

// FirstOf evaluates steps in order and returns the first match.
func FirstOf[T any](steps ...func() Match[T]) Match[T] {
	for _, step := range steps {
		if m := step(); m.ok {
			return m
		}
	}
	return Unmatched[T]()
}

// Rule maps one pattern to a field value. Extract receives the submatches of a
// single pattern hit and may still reject it.
type Rule[T any] struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(groups []string) Match[T]
}

// RuleSet is an ordered rule table: the first rule with an accepted hit wins.
type RuleSet[T any] []Rule[T]

// First scans text with every rule in order. Within a rule, hits are tried
// left to right until Extract accepts one.
func (rs RuleSet[T]) First(text string) Match[T] {
	if text == "" {
		return Unmatched[T]()
	}
	for _, r := range rs {
		for _, groups := range r.Pattern.FindAllStringSubmatch(text, -1) {
			if m := r.Extract(groups); m.ok {
				return m
			}
		}
	}
	return Unmatched[T]()
}

// constant returns an extractor that yields v for any hit.
func constant[T any](v T) func([]string) Match[T] {
	return func([]string) Match[T] { return Matched(v) }
}
