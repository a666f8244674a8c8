package glotlint

import "sync"

// parallelThreshold is the minimum number of translation candidates before
// CheckParallel fans out; below it the goroutine overhead outweighs the
// per-candidate work.
const parallelThreshold = 4

// CheckParallel behaves exactly like Check but evaluates translation
// candidates concurrently. Rules are pure and each candidate writes only
// its own report key, so the merged report is identical to the sequential
// one.
func (c *Checker) CheckParallel(singular string, plural *string, translations map[int]string, locale *Locale) Report {
	if len(translations) < parallelThreshold {
		return c.Check(singular, plural, translations, locale)
	}

	names, rules := c.snapshot()

	type indexResult struct {
		index  int
		issues map[string]string
	}

	results := make(chan indexResult, len(translations))
	var wg sync.WaitGroup

	for index, translation := range translations {
		if translation == "" {
			continue
		}
		wg.Add(1)
		go func(index int, translation string) {
			defer wg.Done()
			original := c.governingSource(singular, plural, index, locale)
			var failed map[string]string
			for _, name := range names {
				if issues := rules[name](original, translation, locale); len(issues) > 0 {
					if failed == nil {
						failed = make(map[string]string)
					}
					failed[name] = c.render(issues)
				}
			}
			if failed != nil {
				results <- indexResult{index: index, issues: failed}
			}
		}(index, translation)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	report := Report{}
	for r := range results {
		report[r.index] = r.issues
	}
	if len(report) == 0 {
		return nil
	}
	return report
}
