package resolver

import (
	"regexp"
	"strings"
)

// probePrefix marks framework-internal segments that tooling emits
// but that never address content.
const probePrefix = "_"

// probeSegments is a small deny-list of filenames that vulnerability
// scanners and bots request against any public host.
var probeSegments = map[string]struct{}{
	"wp-admin":     {},
	"wp-login":     {},
	"wp-includes":  {},
	"cgi-bin":      {},
	"autodiscover": {},
}

// sentinelValues are the literal strings frameworks serialize in
// place of a missing site or locale. A request carrying one of these
// was never a real content request. The "unset" marker ("default") is
// different: it means "use the configured language" and is handled by
// the sanitizer, not rejected.
var sentinelValues = map[string]struct{}{
	"undefined": {},
	"null":      {},
}

// languagePattern matches plausible language codes of the two-letter
// family, with an optional region or script subtag.
var languagePattern = regexp.MustCompile(`^[a-zA-Z]{2}(?:[-_][a-zA-Z0-9]{2,8})?$`)

// Sanitize strips system and noise segments from a raw request path
// and normalizes the locale token. It is a pure function: no side
// effects, no errors, always a (possibly empty) result.
func Sanitize(rawSegments []string, rawLocale, defaultLanguage string) ([]string, string) {
	clean := make([]string, 0, len(rawSegments))
	for _, segment := range rawSegments {
		if isProbeSegment(segment) {
			continue
		}
		clean = append(clean, segment)
	}
	return clean, normalizeLanguage(rawLocale, defaultLanguage)
}

// isProbeSegment reports whether a path segment is noise: empty,
// a dotted filename, framework-internal, or a known scanner probe.
func isProbeSegment(segment string) bool {
	if segment == "" {
		return true
	}
	if strings.Contains(segment, ".") {
		return true
	}
	if strings.HasPrefix(segment, probePrefix) {
		return true
	}
	_, denied := probeSegments[strings.ToLower(segment)]
	return denied
}

// ContainsProbe reports whether any segment of the raw path is
// recognizable as a tooling probe: a hidden (dot-leading) file, a
// framework-internal segment, or a deny-listed scanner filename.
// Ordinary dotted filenames are not probes; the sanitizer merely
// strips them.
func ContainsProbe(rawSegments []string) bool {
	for _, segment := range rawSegments {
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, ".") || strings.HasPrefix(segment, probePrefix) {
			return true
		}
		if _, denied := probeSegments[strings.ToLower(segment)]; denied {
			return true
		}
	}
	return false
}

// IsSentinel reports whether a site or locale value is one of the
// known system sentinels substituted for a missing value.
func IsSentinel(value string) bool {
	_, ok := sentinelValues[strings.ToLower(value)]
	return ok
}

// normalizeLanguage passes a plausible language code through unchanged
// and substitutes the configured default for anything else: absent
// values, the framework "unset" marker, and tokens outside the
// two-letter family.
func normalizeLanguage(locale, defaultLanguage string) string {
	if locale == "" || strings.EqualFold(locale, "default") {
		return defaultLanguage
	}
	if !languagePattern.MatchString(locale) {
		return defaultLanguage
	}
	return locale
}
