// Package cache provides report caching implementations. Values are
// opaque strings; the engine stores JSON-serialized reports keyed by the
// fingerprint of the check request.
package cache

// ReportCache is the interface for report caching.
type ReportCache interface {
	// Get retrieves a cached report. Returns empty string and false if not
	// found or expired.
	Get(key string) (string, bool)

	// Set stores a report in the cache.
	Set(key string, value string) error
}
