package glotlint

import (
	"strings"

	"github.com/glotlint/glotlint/token"
)

// Italic tag tokens that some languages legitimately drop.
var italicTags = []string{"<em>", "</em>", "<i>", "</i>"}

// newTagsRule builds the tag-structure rule: tag tokens must survive
// translation with the same counts, order, and (up to volatile attributes)
// content, and URL-bearing attributes must keep their targets.
func newTagsRule(cfg BuiltinConfig) RuleFunc {
	italicsOptional := slugSet(cfg.ItalicsOptionalLocales)
	allowed := cfg.AllowedDomainChanges

	return func(original, translation string, locale *Locale) []Issue {
		srcTags := token.Tags(original)
		trTags := token.Tags(translation)

		if len(srcTags) > len(trTags) && locale != nil && italicsOptional[locale.Slug] {
			srcTags = withoutValues(srcTags, italicTags)
		}
		if len(srcTags) > len(trTags) {
			return []Issue{{
				Kind: KindTagsMissing,
				Data: map[string]any{"Tags": strings.Join(token.Diff(srcTags, trTags), " ")},
			}}
		}
		if len(srcTags) < len(trTags) {
			return []Issue{{
				Kind: KindTagsExtra,
				Data: map[string]any{"Tags": strings.Join(token.Diff(trTags, srcTags), " ")},
			}}
		}

		var issues []Issue

		sortedSrc := token.SortTagsDesc(srcTags)
		sortedTr := token.SortTagsDesc(trTags)

		// Same tags, different positions: the sorted lists agree but the
		// literal sequences do not.
		if equalStrings(sortedSrc, sortedTr) && !equalStrings(srcTags, trTags) {
			for i := range srcTags {
				if srcTags[i] != trTags[i] {
					issues = append(issues, Issue{
						Kind: KindTagsOrder,
						Data: map[string]any{"Tag": trTags[i]},
					})
					break
				}
			}
		}

		// Pair the sorted lists and compare content, masking attributes
		// that are expected to differ.
		for i := range sortedSrc {
			if sortedSrc[i] == sortedTr[i] {
				continue
			}
			if token.StripVolatileAttrs(sortedSrc[i]) == token.StripVolatileAttrs(sortedTr[i]) {
				continue
			}
			issues = append(issues, Issue{
				Kind: KindTagChanged,
				Data: map[string]any{"Expected": sortedSrc[i], "Got": sortedTr[i]},
			})
		}

		// href/src targets: non-URL values (mailto: fragments, anchors)
		// must match exactly; URL values go through URL equivalence.
		srcPlain, srcURLs := token.SplitRefs(token.AttributeRefs(sortedSrc))
		trPlain, trURLs := token.SplitRefs(token.AttributeRefs(sortedTr))

		if missing := token.Diff(srcPlain, trPlain); len(missing) > 0 {
			issues = append(issues, Issue{
				Kind: KindLinksMissing,
				Data: map[string]any{"Links": strings.Join(missing, "\n")},
			})
		}
		if added := token.Diff(trPlain, srcPlain); len(added) > 0 {
			issues = append(issues, Issue{
				Kind: KindLinksAdded,
				Data: map[string]any{"Links": strings.Join(added, "\n")},
			})
		}

		issues = append(issues, urlIssues(srcURLs, trURLs, allowed)...)
		return issues
	}
}

// withoutValues drops every occurrence of the given values from s.
func withoutValues(s, values []string) []string {
	drop := slugSet(values)
	var out []string
	for _, v := range s {
		if drop[v] {
			continue
		}
		out = append(out, v)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
