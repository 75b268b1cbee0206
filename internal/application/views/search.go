package views

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize pasa a minúsculas y quita tildes para búsquedas ("José" coincide con "jose").
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Matches informa si alguno de los campos contiene term (sin distinguir tildes ni mayúsculas).
// Un término vacío coincide siempre.
func Matches(term string, fields ...string) bool {
	term = Normalize(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), term) {
			return true
		}
	}
	return false
}
