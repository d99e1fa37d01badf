// CLAUDE:SUMMARY Fixed diacritic table (Č, Ć, Š, Ž, Đ and lowercase) mapped to ASCII; everything else passes through.
package fuzzy

import "strings"

// charMap maps accented letters to their ASCII replacement. Built once, never mutated.
var charMap = map[rune]string{
	'Č': "C",
	'č': "c",
	'Ć': "C",
	'ć': "c",
	'Š': "S",
	'š': "s",
	'Ž': "Z",
	'ž': "z",
	'Đ': "Dj",
	'đ': "dj",
}

// Transliterate replaces every accented letter from the fixed table with its
// ASCII form (Đ -> Dj). Characters outside the table are returned unchanged.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := charMap[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
