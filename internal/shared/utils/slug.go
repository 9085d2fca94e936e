package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe identifier from a human-readable name.
// Pure and deterministic: the same input always yields the same slug.
// Runs of non-alphanumeric characters collapse to a single hyphen, so
// "Café du Chat!" -> "cafe-du-chat" and "Cats&Dogs" -> "cats-dogs".
func GenerateSlug(input string) string {
	ascii := removeDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")
	normalized := hyphenRuns.ReplaceAllString(hyphenated, "-")
	return strings.Trim(normalized, "-")
}

// removeDiacritics decomposes accented characters and drops the
// combining marks, so "é" becomes "e" and "ç" becomes "c".
func removeDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
