package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases, trims and strips diacritics so that rule matching
// treats "Pélvico" and "pelvico" as the same token.
func NormalizeText(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return normalized
}
