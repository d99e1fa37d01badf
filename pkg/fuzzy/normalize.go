// CLAUDE:SUMMARY Normalizer modes (translit, lowercase_translit, lowercase_ascii, none) applied before fuzzy comparison.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer folds a term before it is compared.
type Normalizer func(string) string

// Normalizer modes accepted by GetNormalizer.
const (
	ModeTranslit          = "translit"
	ModeLowercaseTranslit = "lowercase_translit"
	ModeLowercaseASCII    = "lowercase_ascii"
	ModeNone              = "none"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTranslit applies the fixed transliteration table only.
func NormalizeTranslit(s string) string {
	return Transliterate(s)
}

// NormalizeLowercaseTranslit lowercases after transliteration (Đorđe -> djordje).
func NormalizeLowercaseTranslit(s string) string {
	return strings.ToLower(Transliterate(s))
}

// NormalizeLowercaseASCII transliterates, lowercases, then strips any remaining
// combining marks (Čačak Élodie -> cacak elodie). The table runs first so that
// Đ still becomes "dj" rather than being dropped or kept.
func NormalizeLowercaseASCII(s string) string {
	result, _, err := transform.String(stripAccents, strings.ToLower(Transliterate(s)))
	if err != nil {
		return strings.ToLower(Transliterate(s))
	}
	return result
}

// NormalizeNone returns the term unchanged.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Default is translit.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case ModeTranslit:
		return NormalizeTranslit
	case ModeLowercaseTranslit:
		return NormalizeLowercaseTranslit
	case ModeLowercaseASCII:
		return NormalizeLowercaseASCII
	case ModeNone:
		return NormalizeNone
	default:
		return NormalizeTranslit
	}
}
