// Package env converts between KEY=VALUE environment lists and maps.
package env

import (
	"sort"
	"strings"
)

// Parse turns a KEY=VALUE list into a map. Later duplicates win; entries
// without '=' are dropped.
func Parse(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Merge overlays vars on top of base and returns a sorted KEY=VALUE list.
func Merge(base []string, vars map[string]string) []string {
	m := Parse(base)
	for k, v := range vars {
		m[k] = v
	}
	return Format(m)
}

func Format(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+m[k])
	}
	return out
}

// ValidName reports whether name can be used as a variable name: letters,
// digits and '_', not starting with a digit.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
