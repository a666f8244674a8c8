package glotlint

import (
	"encoding/json"

	"github.com/glotlint/glotlint/cache"
)

// CachedChecker wraps a Checker with a report cache. Because checks are
// pure, a cached report is always identical to a recomputed one; the cache
// only saves the token scans on repeated submissions of the same strings.
type CachedChecker struct {
	checker *Checker
	cache   cache.ReportCache
}

// NewCachedChecker creates a CachedChecker. A nil cache degrades to plain
// checking.
func NewCachedChecker(c *Checker, rc cache.ReportCache) *CachedChecker {
	return &CachedChecker{checker: c, cache: rc}
}

// Check behaves like Checker.Check but serves repeated requests from the
// cache. Cache failures are treated as misses; set errors are ignored.
func (cc *CachedChecker) Check(singular string, plural *string, translations map[int]string, locale *Locale) Report {
	if cc.cache == nil {
		return cc.checker.Check(singular, plural, translations, locale)
	}

	key := Fingerprint(singular, plural, translations, locale.Slug)
	if raw, ok := cc.cache.Get(key); ok {
		var report Report
		if err := json.Unmarshal([]byte(raw), &report); err == nil {
			return report
		}
	}

	report := cc.checker.Check(singular, plural, translations, locale)
	if raw, err := json.Marshal(report); err == nil {
		_ = cc.cache.Set(key, string(raw)) // Ignore cache set errors
	}
	return report
}
