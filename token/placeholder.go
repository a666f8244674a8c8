package token

import "regexp"

// Named placeholders are opaque UPPER_SNAKE markers fenced by triple
// hashes, e.g. ###NEW_SITE_URL###.
var namedPlaceholderRe = regexp.MustCompile(`###[A-Z_]+###`)

// PlaceholderCounts extracts every match of the placeholder grammar re from
// s and returns the distinct placeholder texts in order of first appearance
// together with their occurrence counts.
func PlaceholderCounts(s string, re *regexp.Regexp) (order []string, counts map[string]int) {
	counts = make(map[string]int)
	for _, m := range re.FindAllString(s, -1) {
		if counts[m] == 0 {
			order = append(order, m)
		}
		counts[m]++
	}
	return order, counts
}

// NamedPlaceholders returns all ###UPPER_SNAKE### tokens of s in order,
// duplicates included.
func NamedPlaceholders(s string) []string {
	return namedPlaceholderRe.FindAllString(s, -1)
}
