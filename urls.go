package glotlint

import (
	"strings"

	"github.com/glotlint/glotlint/token"
)

// newURLsRule builds the plain-text URL mismatch rule: URL tokens in the
// source must reappear in the translation, up to scheme/trailing-slash
// tolerance and allow-listed subdomain promotion.
func newURLsRule(cfg BuiltinConfig) RuleFunc {
	allowed := cfg.AllowedDomainChanges

	return func(original, translation string, _ *Locale) []Issue {
		return urlIssues(token.URLs(original), token.URLs(translation), allowed)
	}
}

// urlIssues runs URL equivalence over two token sets and reports whatever
// could not be reconciled. Shared by the URL rule and the tag rule's
// href/src sub-check.
func urlIssues(source, translation []string, allowed map[string]string) []Issue {
	missing, added := token.CompareURLs(source, translation, allowed)

	var issues []Issue
	if len(missing) > 0 {
		issues = append(issues, Issue{
			Kind: KindURLsMissing,
			Data: map[string]any{"URLs": strings.Join(missing, "\n")},
		})
	}
	if len(added) > 0 {
		issues = append(issues, Issue{
			Kind: KindURLsAdded,
			Data: map[string]any{"URLs": strings.Join(added, "\n")},
		})
	}
	return issues
}
