package record

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var keySeparators = strings.NewReplacer("_", " ", "-", " ")

// FoldKey reduces a status-like key to a comparison form: lower case, accents
// stripped, underscores and hyphens read as spaces, whitespace collapsed.
// "IN_PROGRESS", "En Progreso" and "in-progress" all fold to words that a
// vocabulary table can match.
func FoldKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	// transform.Chain keeps state, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(keySeparators.Replace(s)), " ")
}
