package token

import (
	"regexp"
	"sort"
)

var (
	// A tag token is anything between < and > on a single line, attributes
	// included. Identity of open/close tags is not parsed; tokens are
	// compared as opaque strings.
	tagRe = regexp.MustCompile(`<[^<>\n]*>`)

	// Attributes whose values legitimately differ between source and
	// translation (localized titles, translated link targets).
	volatileAttrRe = regexp.MustCompile(`(title|aria-label|src|href)=(["'])[^"']*(["'])`)

	// URL-bearing attribute values inside a tag token.
	refAttrRe = regexp.MustCompile(`(?:href|src)=(["'])([^"']*)(["'])`)
)

// Tags returns all tag tokens of s in order of appearance.
func Tags(s string) []string {
	return tagRe.FindAllString(s, -1)
}

// SortTagsDesc returns a copy of tags sorted in reverse lexical order, the
// canonical order used when pairing source and translation tags.
func SortTagsDesc(tags []string) []string {
	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	return sorted
}

// StripVolatileAttrs masks the values of attributes that are expected to
// differ between source and translation, so two tags can be compared for
// structural equality.
func StripVolatileAttrs(tag string) string {
	return volatileAttrRe.ReplaceAllString(tag, `$1=$2...$3`)
}

// AttributeRefs returns the href/src attribute values found inside the
// given tag tokens, in order.
func AttributeRefs(tags []string) []string {
	var refs []string
	for _, tag := range tags {
		for _, m := range refAttrRe.FindAllStringSubmatch(tag, -1) {
			refs = append(refs, m[2])
		}
	}
	return refs
}

// SplitRefs partitions attribute values into plain references (mailto:
// fragments, anchors) and URL tokens. A value is a URL only when the URL
// grammar matches it in full.
func SplitRefs(refs []string) (plain, urls []string) {
	for _, ref := range refs {
		if urlRe.FindString(ref) == ref && ref != "" {
			urls = append(urls, ref)
			continue
		}
		plain = append(plain, ref)
	}
	return plain, urls
}
