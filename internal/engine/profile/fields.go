package profile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Portfolio content is arbitrary JSON. These accessors never panic: a missing
// or wrong-typed field reads as the zero value.

// str returns the first non-empty string (or number) under keys.
func str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool, nil:
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return ""
	}
}

// obj returns the first nested object under keys.
func obj(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if o, ok := m[k].(map[string]any); ok {
			return o
		}
	}
	return nil
}

// items returns the first array under keys. A single object is treated as a
// one-element array.
func items(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		switch t := m[k].(type) {
		case []any:
			return t
		case map[string]any:
			return []any{t}
		}
	}
	return nil
}

// objects returns the object elements of the first array under keys.
func objects(m map[string]any, keys ...string) []map[string]any {
	var out []map[string]any
	for _, it := range items(m, keys...) {
		if o, ok := it.(map[string]any); ok {
			out = append(out, o)
		}
	}
	return out
}

// strList reads a list of strings from an array, a comma-separated string, or
// an array of {name} objects.
func strList(m map[string]any, keys ...string) []string {
	for _, k := range keys {
		switch t := m[k].(type) {
		case string:
			if out := splitList(t); len(out) > 0 {
				return out
			}
		case []any:
			var out []string
			for _, it := range t {
				switch e := it.(type) {
				case map[string]any:
					if s := str(e, "name", "title", "skill"); s != "" {
						out = append(out, s)
					}
				default:
					if s := asString(e); s != "" {
						out = append(out, s)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '|' }) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// boolean returns the first boolean under keys. Strings "true"/"yes" count.
func boolean(m map[string]any, keys ...string) (value, found bool) {
	for _, k := range keys {
		switch t := m[k].(type) {
		case bool:
			return t, true
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "true", "yes", "y":
				return true, true
			case "false", "no", "n":
				return false, true
			}
		}
	}
	return false, false
}

// number returns the first numeric value under keys.
func number(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch t := m[k].(type) {
		case float64:
			return t, true
		case int:
			return float64(t), true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// sortedKeys gives map iteration a fixed order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// uniqueFold appends items not already present, compared case-insensitively.
func uniqueFold(dst []string, items ...string) []string {
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		dup := false
		for _, d := range dst {
			if strings.EqualFold(d, it) {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, it)
		}
	}
	return dst
}
