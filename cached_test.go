package glotlint

import (
	"reflect"
	"testing"
	"time"

	"github.com/glotlint/glotlint/cache"
)

// countingCache wraps a MemoryCache and counts operations.
type countingCache struct {
	inner *cache.MemoryCache
	gets  int
	hits  int
	sets  int
}

func (c *countingCache) Get(key string) (string, bool) {
	c.gets++
	v, ok := c.inner.Get(key)
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *countingCache) Set(key, value string) error {
	c.sets++
	return c.inner.Set(key, value)
}

func TestCachedChecker_HitReturnsSameReport(t *testing.T) {
	cc := &countingCache{inner: cache.NewMemoryCache(time.Hour)}
	checker := NewCachedChecker(New(), cc)

	translations := map[int]string{0: "articles"}

	first := checker.Check("%s items", nil, translations, Locales["fr"])
	second := checker.Check("%s items", nil, translations, Locales["fr"])

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached report differs:\n%v\n%v", first, second)
	}
	if cc.hits != 1 {
		t.Errorf("hits = %d, want 1", cc.hits)
	}
	if cc.sets != 1 {
		t.Errorf("sets = %d, want 1", cc.sets)
	}
}

func TestCachedChecker_CleanReportCached(t *testing.T) {
	cc := &countingCache{inner: cache.NewMemoryCache(time.Hour)}
	checker := NewCachedChecker(New(), cc)

	translations := map[int]string{0: "Bonjour <b>monde</b>"}

	first := checker.Check("Hello <b>world</b>", nil, translations, Locales["fr"])
	if !first.IsClean() {
		t.Fatalf("expected clean report, got %v", first)
	}

	second := checker.Check("Hello <b>world</b>", nil, translations, Locales["fr"])
	if !second.IsClean() {
		t.Errorf("cached clean report should stay clean, got %v", second)
	}
	if cc.hits != 1 {
		t.Errorf("hits = %d, want 1", cc.hits)
	}
}

func TestCachedChecker_NilCache(t *testing.T) {
	checker := NewCachedChecker(New(), nil)

	report := checker.Check("%s items", nil, map[int]string{0: "articles"}, Locales["fr"])
	if report.IsClean() {
		t.Error("expected issues without a cache too")
	}
}
