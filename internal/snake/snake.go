// Package snake converts free-text phrases into snake_case identifiers.
package snake

import "strings"

// steps run in order. Each is a single left-to-right pass, so four
// spaces collapse to two, not one.
var steps = []struct{ from, to string }{
	{":", ""},
	{`"`, ""},
	{",", ""},
	{"  ", " "},
	{" ", "_"},
	{"&", "and"},
}

// Convert lowercases s and applies the fixed substitution sequence.
func Convert(s string) string {
	s = strings.ToLower(s)
	for _, step := range steps {
		s = strings.ReplaceAll(s, step.from, step.to)
	}
	return s
}
