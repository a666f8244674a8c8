package glotlint

import (
	"strings"
	"sync"

	"github.com/glotlint/glotlint/msg"
)

// Checker holds a named set of active rules and runs them against
// translation candidates with plural-aware source selection.
//
// Registration (Register/Unregister) takes a lock; Check snapshots the
// rule set once per call, so hot-path execution never blocks registration.
type Checker struct {
	mu        sync.RWMutex
	rules     map[string]RuleFunc
	order     []string // registration order, used for deterministic iteration
	formatter MessageFormatter
}

// config collects construction-time settings before any rule is built.
type config struct {
	builtins    BuiltinConfig
	formatter   MessageFormatter
	skipBuiltin bool
	extraNames  []string
	extraRules  map[string]RuleFunc
}

// Option is a functional option for configuring a Checker.
type Option func(*config)

// WithFormatter replaces the default message formatter.
func WithFormatter(f MessageFormatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// WithoutBuiltins creates the checker with an empty rule set.
func WithoutBuiltins() Option {
	return func(c *config) {
		c.skipBuiltin = true
	}
}

// WithLengthBounds tunes the length-ratio rule thresholds.
func WithLengthBounds(lower, upper float64) Option {
	return func(c *config) {
		c.builtins.LengthLowerBound = lower
		c.builtins.LengthUpperBound = upper
	}
}

// WithLengthExcludedLocales replaces the locales exempt from the length rule.
func WithLengthExcludedLocales(slugs []string) Option {
	return func(c *config) {
		c.builtins.LengthExcludedLocales = slugs
	}
}

// WithAllowedDomainChanges replaces the host-to-subdomain-pattern allow list
// used when reconciling URL mismatches.
func WithAllowedDomainChanges(changes map[string]string) Option {
	return func(c *config) {
		c.builtins.AllowedDomainChanges = changes
	}
}

// WithPlaceholderPattern replaces the printf-placeholder grammar of the
// placeholders rule. The pattern must be a valid regular expression.
func WithPlaceholderPattern(pattern string) Option {
	return func(c *config) {
		c.builtins.PlaceholderPattern = pattern
	}
}

// WithRule registers an additional rule after the built-in catalog.
func WithRule(name string, fn RuleFunc) Option {
	return func(c *config) {
		if c.extraRules == nil {
			c.extraRules = make(map[string]RuleFunc)
		}
		if _, dup := c.extraRules[name]; !dup {
			c.extraNames = append(c.extraNames, name)
		}
		c.extraRules[name] = fn
	}
}

// New creates a Checker with the built-in rule catalog and the default
// English message formatter.
func New(opts ...Option) *Checker {
	cfg := &config{
		builtins:  DefaultBuiltinConfig(),
		formatter: msg.NewFormatter(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Checker{
		rules:     make(map[string]RuleFunc),
		formatter: cfg.formatter,
	}
	if !cfg.skipBuiltin {
		RegisterBuiltins(c, cfg.builtins)
	}
	for _, name := range cfg.extraNames {
		c.Register(name, cfg.extraRules[name])
	}
	return c
}

// Register adds a rule under the given name, replacing any existing rule
// with that name.
func (c *Checker) Register(name string, fn RuleFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rules[name]; !exists {
		c.order = append(c.order, name)
	}
	c.rules[name] = fn
}

// Unregister removes the named rule. Unknown names are ignored.
func (c *Checker) Unregister(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rules[name]; !exists {
		return
	}
	delete(c.rules, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// IsRegistered reports whether a rule with the given name is active.
func (c *Checker) IsRegistered(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.rules[name]
	return ok
}

// RuleNames returns the active rule names in registration order.
func (c *Checker) RuleNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// snapshot copies the rule set so a check run is unaffected by concurrent
// registration.
func (c *Checker) snapshot() ([]string, map[string]RuleFunc) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	rules := make(map[string]RuleFunc, len(c.rules))
	for name, fn := range c.rules {
		rules[name] = fn
	}
	return names, rules
}

// Check runs every active rule against each non-empty translation candidate
// and returns the merged report, or nil when no issues were found.
//
// plural is nil when the source string has no plural form; in that case the
// singular governs every index. Otherwise the governing source form for an
// index is the singular exactly when the index's grammatical-number bucket
// contains the cardinal value 1, except that single-form locales are always
// checked against the plural. locale must not be nil.
func (c *Checker) Check(singular string, plural *string, translations map[int]string, locale *Locale) Report {
	names, rules := c.snapshot()
	report := Report{}
	for index, translation := range translations {
		if translation == "" {
			continue
		}
		original := c.governingSource(singular, plural, index, locale)
		for _, name := range names {
			if issues := rules[name](original, translation, locale); len(issues) > 0 {
				report.add(index, name, c.render(issues))
			}
		}
	}
	if len(report) == 0 {
		return nil
	}
	return report
}

// governingSource selects which source form applies to a plural-form index.
func (c *Checker) governingSource(singular string, plural *string, index int, locale *Locale) string {
	if plural == nil {
		return singular
	}
	if locale.pluralForms() == 1 {
		return *plural
	}
	for _, n := range locale.NumbersForIndex(index) {
		if n == 1 {
			return singular
		}
	}
	return *plural
}

// render formats a rule's issues and joins them into one report entry.
func (c *Checker) render(issues []Issue) string {
	messages := make([]string, len(issues))
	for i, issue := range issues {
		messages[i] = c.formatIssue(issue)
	}
	return strings.Join(messages, "\n")
}

func (c *Checker) formatIssue(issue Issue) string {
	if c.formatter == nil {
		return issue.Kind
	}
	return c.formatter.Format(issue.Kind, issue.Data)
}
