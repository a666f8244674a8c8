package token

import (
	"regexp"
	"strings"
)

// A URL token is scheme-qualified (http:// or https://) or scheme-relative
// (//), contains no whitespace, quotes, or angle brackets, and ends on a
// character that plausibly terminates a URL (trailing punctuation such as
// ".", "," or ")" is left out of the token).
var urlRe = regexp.MustCompile(`(?:https?:)?//[^\s<>"']*[A-Za-z0-9/#$%&+=_~-]`)

// URLs returns the unique URL tokens of s in order of appearance.
func URLs(s string) []string {
	return unique(urlRe.FindAllString(s, -1))
}

// SplitURL breaks a URL token into its scheme prefix (including the double
// slash, possibly just "//"), host, and the remainder (path, query,
// fragment).
func SplitURL(u string) (scheme, host, rest string) {
	s := u
	for _, p := range []string{"https://", "http://", "//"} {
		if strings.HasPrefix(s, p) {
			scheme = p
			s = s[len(p):]
			break
		}
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		return scheme, s[:i], s[i:]
	}
	return scheme, s, ""
}

// Host returns the host part of a URL token.
func Host(u string) string {
	_, host, _ := SplitURL(u)
	return host
}

// Alternates returns the equivalent spellings of u that are not treated as
// mismatches: the http/https scheme swapped, the trailing slash toggled,
// and both combined. Scheme-relative URLs have no scheme to swap.
func Alternates(u string) []string {
	var swapped string
	switch {
	case strings.HasPrefix(u, "https://"):
		swapped = "http://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		swapped = "https://" + strings.TrimPrefix(u, "http://")
	}

	var alts []string
	if swapped != "" {
		alts = append(alts, swapped)
	}
	alts = append(alts, toggleTrailingSlash(u))
	if swapped != "" {
		alts = append(alts, toggleTrailingSlash(swapped))
	}
	return alts
}

func toggleTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return strings.TrimSuffix(u, "/")
	}
	return u + "/"
}

// CompareURLs diffs two URL token sets and reconciles apparent mismatches:
// first by scheme/trailing-slash tolerance, then by the allow-listed
// subdomain promotion in allowedDomainChanges (host key to permitted
// subdomain pattern). It returns the URLs still missing from the
// translation and the ones it unexpectedly added.
func CompareURLs(source, translation []string, allowedDomainChanges map[string]string) (missing, added []string) {
	missing = diff(unique(source), unique(translation))
	added = diff(unique(translation), unique(source))
	if len(missing) == 0 && len(added) == 0 {
		return nil, nil
	}

	missing, added = reconcileAlternates(missing, added)
	missing, added = reconcilePromotions(missing, added, allowedDomainChanges)
	if len(missing) == 0 {
		missing = nil
	}
	if len(added) == 0 {
		added = nil
	}
	return missing, added
}

// reconcileAlternates drops (missing, added) pairs that differ only by
// scheme or trailing slash.
func reconcileAlternates(missing, added []string) ([]string, []string) {
	var stillMissing []string
	for _, m := range missing {
		matched := -1
		for _, alt := range Alternates(m) {
			if matched = indexOf(added, alt); matched >= 0 {
				break
			}
		}
		if matched >= 0 {
			added = append(added[:matched], added[matched+1:]...)
			continue
		}
		stillMissing = append(stillMissing, m)
	}
	return stillMissing, added
}

// reconcilePromotions drops (missing, added) pairs where the added URL is
// the missing one with its host rewritten to an allow-listed subdomain,
// same scheme and path.
func reconcilePromotions(missing, added []string, allowed map[string]string) ([]string, []string) {
	var stillMissing []string
	for _, m := range missing {
		re := promotionPattern(m, allowed)
		matched := -1
		if re != nil {
			for i, a := range added {
				if re.MatchString(a) {
					matched = i
					break
				}
			}
		}
		if matched >= 0 {
			added = append(added[:matched], added[matched+1:]...)
			continue
		}
		stillMissing = append(stillMissing, m)
	}
	return stillMissing, added
}

// promotionPattern builds the anchored regex an added URL must match to be
// accepted as a subdomain promotion of u. Returns nil when u's host is not
// allow-listed or the configured pattern does not compile.
func promotionPattern(u string, allowed map[string]string) *regexp.Regexp {
	scheme, host, rest := SplitURL(u)
	pattern, ok := allowed[host]
	if !ok {
		return nil
	}
	re, err := regexp.Compile("^" + regexp.QuoteMeta(scheme) + pattern + regexp.QuoteMeta(rest) + "$")
	if err != nil {
		return nil
	}
	return re
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}
