package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultSlugMaxLen = 60

var dashRun = regexp.MustCompile(`-+`)

// StripDiacritics removes combining marks: "Tráfico" -> "Trafico".
// Shared by slugs and the late-reason classifier so both normalize the
// same way.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// GenerateSlug normalizes a name into a slug:
// - lower-case, diacritics stripped
// - runs of non-alphanumerics become a single "-"
// - trimmed to DefaultSlugMaxLen, no leading/trailing "-"
func GenerateSlug(s string) string {
	s = strings.ToLower(StripDiacritics(strings.TrimSpace(s)))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(dashRun.ReplaceAllString(b.String(), "-"), "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}
