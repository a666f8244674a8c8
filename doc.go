// Package glotlint validates translation candidates against their source
// strings and reports structural mismatches: missing or reordered markup
// tags, mismatched printf-style placeholders, altered URLs, wrong newline
// boundaries, and implausible length ratios.
//
// The engine is a pure library. It consumes a source singular string, an
// optional plural string, translation candidates indexed by plural form,
// and a locale describing the target language's plural-count semantics.
// It produces a Report; rendering, persistence, and rejection are the
// caller's concern.
//
// Basic usage:
//
//	import "github.com/glotlint/glotlint"
//
//	func main() {
//	    checker := glotlint.New()
//	    report := checker.Check(
//	        "Hello <b>world</b>", nil,
//	        map[int]string{0: "Bonjour <b>monde</b>"},
//	        glotlint.Locales["fr"],
//	    )
//	    if report.IsClean() {
//	        fmt.Println("no issues")
//	    }
//	}
//
// Every built-in rule is a pure function; the same inputs always produce
// the same report. Failure messages are rendered through an injectable
// MessageFormatter (see the msg subpackage), so callers may localize them
// or replace the wording entirely.
package glotlint
