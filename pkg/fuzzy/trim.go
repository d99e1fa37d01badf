package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// DefaultTrailing is the number of runes RemoveTrailing drops when callers
// have no better value, typically a ", " separator left by a join loop.
const DefaultTrailing = 2

// RemoveTrailing drops the last n runes of s. Blank strings and strings
// shorter than n are returned unchanged.
func RemoveTrailing(s string, n int) string {
	if n <= 0 || strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) < n {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-n])
}
