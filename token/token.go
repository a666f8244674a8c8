// Package token extracts markup tags, printf-style placeholders, named
// placeholders, and URLs from loosely structured strings by lexical
// scanning, and compares the resulting token sets with positional and
// semantic tolerance.
//
// The extraction grammars are deliberately permissive: they never build a
// DOM or fully parse a URL, only recognize the substrings that count as
// tokens. The package tests document each grammar.
package token

// diff returns the elements of a that are not in b, multiset-wise: an
// element occurring three times in a and once in b is kept twice. Order of
// first appearance in a is preserved.
func diff(a, b []string) []string {
	remaining := make(map[string]int, len(b))
	for _, s := range b {
		remaining[s]++
	}
	var out []string
	for _, s := range a {
		if remaining[s] > 0 {
			remaining[s]--
			continue
		}
		out = append(out, s)
	}
	return out
}

// Diff exposes the multiset difference used throughout the matchers.
func Diff(a, b []string) []string {
	return diff(a, b)
}

// unique returns s with duplicates removed, keeping first appearances.
func unique(s []string) []string {
	seen := make(map[string]bool, len(s))
	var out []string
	for _, v := range s {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
