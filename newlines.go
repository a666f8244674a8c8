package glotlint

import "strings"

// The four newline boundary rules are independent so callers can disable
// any subset. Each checks a single directional combination of leading or
// trailing newline presence.

func newShouldBeginOnNewlineRule() RuleFunc {
	return func(original, translation string, _ *Locale) []Issue {
		if strings.HasPrefix(original, "\n") && !strings.HasPrefix(translation, "\n") {
			return []Issue{{Kind: KindShouldBeginOnNewline}}
		}
		return nil
	}
}

func newShouldNotBeginOnNewlineRule() RuleFunc {
	return func(original, translation string, _ *Locale) []Issue {
		if !strings.HasPrefix(original, "\n") && strings.HasPrefix(translation, "\n") {
			return []Issue{{Kind: KindShouldNotBeginOnNewline}}
		}
		return nil
	}
}

func newShouldEndOnNewlineRule() RuleFunc {
	return func(original, translation string, _ *Locale) []Issue {
		if strings.HasSuffix(original, "\n") && !strings.HasSuffix(translation, "\n") {
			return []Issue{{Kind: KindShouldEndOnNewline}}
		}
		return nil
	}
}

func newShouldNotEndOnNewlineRule() RuleFunc {
	return func(original, translation string, _ *Locale) []Issue {
		if !strings.HasSuffix(original, "\n") && strings.HasSuffix(translation, "\n") {
			return []Issue{{Kind: KindShouldNotEndOnNewline}}
		}
		return nil
	}
}
