package glotlint

// Locale describes the target language of a translation set. The engine
// only reads it: Slug selects per-language rule behavior (length exclusions,
// optional italics), Nplurals and PluralIndex drive plural-form dispatch.
type Locale struct {
	Slug string // locale identifier, e.g. "fr", "pt-br"
	Name string // human-readable name

	// Nplurals is the number of grammatical plural forms. Values below 1
	// are treated as 1.
	Nplurals int

	// PluralIndex maps a cardinal value to the grammatical-number index
	// (0..Nplurals-1) that governs it. A nil function falls back to the
	// common two-form rule (index 0 for 1, index 1 otherwise).
	PluralIndex func(n int) int
}

// pluralForms returns Nplurals clamped to at least 1.
func (l *Locale) pluralForms() int {
	if l.Nplurals < 1 {
		return 1
	}
	return l.Nplurals
}

// NumbersForIndex returns up to three sample cardinal values governed by
// the given grammatical-number index, probing 0 through 1000 in order.
// An out-of-range index yields nil.
func (l *Locale) NumbersForIndex(index int) []int {
	if index < 0 || index >= l.pluralForms() {
		return nil
	}
	fn := l.PluralIndex
	if fn == nil {
		fn = pluralTwoFormsNotOne
	}
	var numbers []int
	for n := 0; n <= 1000 && len(numbers) < 3; n++ {
		if fn(n) == index {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// Issue is a single structural problem found by a rule: a message kind plus
// the template data needed to render it. Rules report issues as data; the
// checker turns them into text through a MessageFormatter.
type Issue struct {
	Kind string
	Data map[string]any
}

// RuleFunc inspects one translation candidate against its governing source
// string. A nil or empty result means the candidate passes. Rules must be
// deterministic, side-effect-free, and must not panic on malformed input.
type RuleFunc func(original, translation string, locale *Locale) []Issue

// MessageFormatter renders an issue kind and its template data into a
// human-readable message. See the msg subpackage for the default
// go-i18n-backed implementation.
type MessageFormatter interface {
	Format(kind string, data map[string]any) string
}

// Message kinds produced by the built-in rules. Each has a matching entry
// in the msg package's embedded catalog.
const (
	KindLengthMismatch = "length_mismatch"

	KindTagsMissing = "tags_missing"
	KindTagsExtra   = "tags_extra"
	KindTagsOrder   = "tags_order"
	KindTagChanged  = "tag_changed"

	KindLinksMissing = "links_missing"
	KindLinksAdded   = "links_added"
	KindURLsMissing  = "urls_missing"
	KindURLsAdded    = "urls_added"

	KindPlaceholderMissing = "placeholder_missing"
	KindPlaceholderExtra   = "placeholder_extra"

	KindNamedPlaceholdersMissing = "named_placeholders_missing"
	KindNamedPlaceholdersAdded   = "named_placeholders_added"

	KindShouldBeginOnNewline    = "should_begin_on_newline"
	KindShouldNotBeginOnNewline = "should_not_begin_on_newline"
	KindShouldEndOnNewline      = "should_end_on_newline"
	KindShouldNotEndOnNewline   = "should_not_end_on_newline"
)
