package fuzzy

import "unicode/utf8"

// Similarity returns a score in [0, 1] derived from EditDistance, 1 meaning
// identical. Empty input on either side scores 0.
func Similarity(source, target string) float64 {
	if source == "" || target == "" {
		return 0.0
	}
	if source == target {
		return 1.0
	}
	longest := max(utf8.RuneCountInString(source), utf8.RuneCountInString(target))
	return 1.0 - float64(EditDistance(source, target))/float64(longest)
}
