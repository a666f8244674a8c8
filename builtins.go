package glotlint

// BuiltinConfig holds the tunable parameters of the built-in rule catalog.
// It is read once when the rules are constructed; later mutation has no
// effect on a running checker.
type BuiltinConfig struct {
	// Length-ratio rule thresholds: fail unless
	// lower*len(original) < len(translation) < upper*len(original).
	LengthLowerBound float64
	LengthUpperBound float64

	// Locales whose character-count ratios are meaningless (logographic
	// scripts); the length rule always passes for them.
	LengthExcludedLocales []string

	// Locales where italic emphasis is not conventionally marked; the tags
	// rule subtracts <em>/<i> tokens from the source before comparing.
	ItalicsOptionalLocales []string

	// Regular expression matching one printf-style placeholder.
	PlaceholderPattern string

	// Host to permitted-subdomain-pattern allow list used to reconcile URL
	// mismatches. The pattern replaces the host inside an anchored regex
	// that keeps the scheme and path intact.
	AllowedDomainChanges map[string]string
}

// DefaultBuiltinConfig returns the stock configuration of the built-in
// rules.
func DefaultBuiltinConfig() BuiltinConfig {
	return BuiltinConfig{
		LengthLowerBound: 0.2,
		LengthUpperBound: 5.0,
		LengthExcludedLocales: []string{
			"art-xemoji", "ja", "ko", "zh", "zh-cn", "zh-hk", "zh-sg", "zh-tw",
		},
		ItalicsOptionalLocales: []string{
			"ja", "ko", "zh", "zh-cn", "zh-hk", "zh-sg", "zh-tw",
		},
		PlaceholderPattern: `%(\d+\$(?:\d+)?)?[bcdefgosuxEFGX]`,
		AllowedDomainChanges: map[string]string{
			"wordpress.org":    `[^.]+\.wordpress\.org`,
			"wordpress.com":    `[^.]+\.wordpress\.com`,
			"gravatar.com":     `[^.]+\.gravatar\.com`,
			"en.wikipedia.org": `[^.]+\.wikipedia\.org`,
		},
	}
}

// RegisterBuiltins registers the built-in rule catalog on the checker.
// The table is static: each entry names a rule and the constructor that
// closes over the configuration.
func RegisterBuiltins(c *Checker, cfg BuiltinConfig) {
	builtins := []struct {
		name string
		fn   RuleFunc
	}{
		{"length", newLengthRule(cfg)},
		{"tags", newTagsRule(cfg)},
		{"placeholders", newPlaceholdersRule(cfg)},
		{"mismatching_urls", newURLsRule(cfg)},
		{"named_placeholders", newNamedPlaceholdersRule()},
		{"should_begin_on_newline", newShouldBeginOnNewlineRule()},
		{"should_not_begin_on_newline", newShouldNotBeginOnNewlineRule()},
		{"should_end_on_newline", newShouldEndOnNewlineRule()},
		{"should_not_end_on_newline", newShouldNotEndOnNewlineRule()},
	}
	for _, b := range builtins {
		c.Register(b.name, b.fn)
	}
}

// slugSet builds a membership set from a slice of locale slugs.
func slugSet(slugs []string) map[string]bool {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return set
}
