package engine

import (
	"strings"

	"github.com/lixenwraith/wordcosmo/parameter"
)

// JoinText concatenates two word texts with the component separator
func JoinText(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + parameter.JoinSeparator + b
}

// Components splits text on the separator, dropping empty and whitespace-only pieces
func Components(text string) []string {
	var out []string
	for _, part := range strings.Split(text, parameter.JoinSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitGroups partitions components into contiguous groups, joined back with the separator
// parts is clamped to [2, len(components)]; earlier groups take the remainder
func SplitGroups(components []string, parts int) []string {
	n := len(components)
	if n == 0 {
		return nil
	}
	parts = min(max(parts, 2), n)

	base, rem := n/parts, n%parts
	groups := make([]string, 0, parts)
	start := 0
	for g := range parts {
		size := base
		if g < rem {
			size++
		}
		groups = append(groups, strings.Join(components[start:start+size], parameter.JoinSeparator))
		start += size
	}
	return groups
}

// DisplayText replaces the internal separator with the display separator
func DisplayText(text string) string {
	return strings.ReplaceAll(text, parameter.JoinSeparator, parameter.DisplaySeparator)
}
