// Command glotlint validates translation candidates against a source
// string and prints the warnings it finds.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/glotlint/glotlint"
	"github.com/glotlint/glotlint/cache"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = glotlint.Version
	commit    = glotlint.GitCommit
	buildDate = glotlint.BuildDate
)

func main() {
	clean, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if !clean {
		os.Exit(1)
	}
}

// request is the JSON input format accepted on stdin or as a file argument.
type request struct {
	Locale       string   `json:"locale"`
	Original     string   `json:"original"`
	Plural       *string  `json:"plural,omitempty"`
	Translations []string `json:"translations"`
}

func run(args []string, stdout, stderr io.Writer) (bool, error) {
	fs := flag.NewFlagSet("glotlint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	localeSlug := fs.String("locale", "en", "Target locale slug (e.g. fr, pt-br)")
	original := fs.String("original", "", "Source singular string (positional args become translations)")
	plural := fs.String("plural", "", "Source plural string")
	jsonOutput := fs.Bool("json", false, "Output report as JSON")
	redisURL := fs.String("redis", "", "Redis URL for report caching (optional)")
	cacheTTL := fs.Duration("cache-ttl", time.Hour, "Report cache TTL")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return false, err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", glotlint.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return true, nil
	}

	pluralSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "plural" {
			pluralSet = true
		}
	})

	req, err := buildRequest(fs, *localeSlug, *original, *plural, pluralSet)
	if err != nil {
		return false, err
	}

	locale, ok := glotlint.LocaleBySlug(req.Locale)
	if !ok {
		return false, fmt.Errorf("unknown locale %q", req.Locale)
	}

	translations := make(map[int]string, len(req.Translations))
	for i, t := range req.Translations {
		translations[i] = t
	}

	checker := glotlint.New()
	report := check(checker, req, translations, locale, *redisURL, *cacheTTL, stderr)

	if *jsonOutput {
		return report.IsClean(), writeJSON(stdout, req, report)
	}
	writeText(stdout, checker, report)
	return report.IsClean(), nil
}

// buildRequest assembles the check request from flags or from JSON input.
func buildRequest(fs *flag.FlagSet, localeSlug, original, plural string, pluralSet bool) (*request, error) {
	if original != "" {
		req := &request{
			Locale:       localeSlug,
			Original:     original,
			Translations: fs.Args(),
		}
		if pluralSet {
			req.Plural = &plural
		}
		if len(req.Translations) == 0 {
			return nil, fmt.Errorf("no translations given")
		}
		return req, nil
	}

	var data []byte
	var err error
	if fs.NArg() == 0 {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		// User-provided path is intentional for a CLI tool.
		data, err = os.ReadFile(fs.Arg(0)) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
	}

	req := &request{Locale: localeSlug}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("parsing request: %w", err)
	}
	if req.Locale == "" {
		req.Locale = localeSlug
	}
	return req, nil
}

// check runs the validation, going through a Redis-backed report cache
// when one is configured.
func check(checker *glotlint.Checker, req *request, translations map[int]string, locale *glotlint.Locale, redisURL string, ttl time.Duration, stderr io.Writer) glotlint.Report {
	if redisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: redisURL, TTL: ttl})
		if err == nil {
			defer rc.Close()
			return glotlint.NewCachedChecker(checker, rc).Check(req.Original, req.Plural, translations, locale)
		}
		fmt.Fprintf(stderr, "cache unavailable, checking directly: %v\n", err)
	}
	return checker.Check(req.Original, req.Plural, translations, locale)
}

func writeText(w io.Writer, checker *glotlint.Checker, report glotlint.Report) {
	if report.IsClean() {
		fmt.Fprintln(w, "No issues found.")
		return
	}
	for _, index := range report.Indices() {
		fmt.Fprintf(w, "translation %d:\n", index)
		for _, rule := range checker.RuleNames() {
			if message, ok := report[index][rule]; ok {
				fmt.Fprintf(w, "  %s: %s\n", rule, message)
			}
		}
	}
}

func writeJSON(w io.Writer, req *request, report glotlint.Report) error {
	out := struct {
		Locale string          `json:"locale"`
		Clean  bool            `json:"clean"`
		Report glotlint.Report `json:"report,omitempty"`
	}{
		Locale: req.Locale,
		Clean:  report.IsClean(),
		Report: report,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
