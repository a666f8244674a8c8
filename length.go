package glotlint

import (
	"strings"
	"unicode/utf8"
)

// Source markers that make character-length comparison meaningless: date and
// number format strings, and abbreviation/initial patterns.
const (
	numberFormatPrefix = "number_format_"
	abbreviationMarker = "_abbreviation"
	initialMarker      = "_initial"
)

// newLengthRule builds the length-ratio rule. Lengths are compared in
// Unicode code points, not bytes.
func newLengthRule(cfg BuiltinConfig) RuleFunc {
	excluded := slugSet(cfg.LengthExcludedLocales)
	lower, upper := cfg.LengthLowerBound, cfg.LengthUpperBound

	return func(original, translation string, locale *Locale) []Issue {
		if locale != nil && excluded[locale.Slug] {
			return nil
		}
		if strings.HasPrefix(original, numberFormatPrefix) {
			return nil
		}
		if strings.Contains(original, abbreviationMarker) || strings.Contains(original, initialMarker) {
			return nil
		}

		srcLen := float64(utf8.RuneCountInString(original))
		if srcLen == 0 {
			return nil
		}
		trLen := float64(utf8.RuneCountInString(translation))
		if lower*srcLen < trLen && trLen < upper*srcLen {
			return nil
		}
		return []Issue{{Kind: KindLengthMismatch}}
	}
}
