package glotlint

import (
	"regexp"
	"strings"

	"github.com/glotlint/glotlint/token"
)

// newPlaceholdersRule builds the printf-placeholder parity rule: every
// distinct placeholder must occur the same number of times on both sides.
// Only the first mismatching placeholder is reported.
func newPlaceholdersRule(cfg BuiltinConfig) RuleFunc {
	re := regexp.MustCompile(cfg.PlaceholderPattern)

	return func(original, translation string, _ *Locale) []Issue {
		srcOrder, srcCounts := token.PlaceholderCounts(original, re)
		trOrder, trCounts := token.PlaceholderCounts(translation, re)

		for _, p := range srcOrder {
			switch {
			case srcCounts[p] > trCounts[p]:
				return []Issue{{Kind: KindPlaceholderMissing, Data: map[string]any{"Placeholder": p}}}
			case srcCounts[p] < trCounts[p]:
				return []Issue{{Kind: KindPlaceholderExtra, Data: map[string]any{"Placeholder": p}}}
			}
		}
		for _, p := range trOrder {
			if srcCounts[p] == 0 {
				return []Issue{{Kind: KindPlaceholderExtra, Data: map[string]any{"Placeholder": p}}}
			}
		}
		return nil
	}
}

// newNamedPlaceholdersRule builds the ###UPPER_SNAKE### parity rule. Unlike
// URLs there is no tolerance: exact multiset equality is required.
func newNamedPlaceholdersRule() RuleFunc {
	return func(original, translation string, _ *Locale) []Issue {
		src := token.NamedPlaceholders(original)
		tr := token.NamedPlaceholders(translation)

		var issues []Issue
		if missing := token.Diff(src, tr); len(missing) > 0 {
			issues = append(issues, Issue{
				Kind: KindNamedPlaceholdersMissing,
				Data: map[string]any{"Placeholders": strings.Join(missing, " ")},
			})
		}
		if added := token.Diff(tr, src); len(added) > 0 {
			issues = append(issues, Issue{
				Kind: KindNamedPlaceholdersAdded,
				Data: map[string]any{"Placeholders": strings.Join(added, " ")},
			})
		}
		return issues
	}
}
