// CLAUDE:SUMMARY Prefix-preserving masking of text: short input becomes a fixed mask, the tail becomes asterisks.
package redact

import "strings"

// Censor keeps the first p.MaxVisiblePrefix runes of s and replaces the rest
// with asterisks, one per removed rune. With spaced set, the filler opens with
// "* " so the visible part stands apart ("1234* *****"). Input shorter than
// the prefix is replaced entirely by Mask.
func Censor(s string, p CensorshipPolicy, spaced bool) string {
	return mask(s, p.MaxVisiblePrefix, spaced)
}

// CensorText censors s with the default policy.
func CensorText(s string, spaced bool) string {
	return Censor(s, DefaultCensorshipPolicy(), spaced)
}

// mask builds prefix + filler without touching s.
func mask(s string, visible int, spaced bool) string {
	visible = max(visible, 0)
	r := []rune(s)
	if len(r) < visible {
		return Mask
	}
	removed := len(r) - visible
	if removed == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	b.WriteString(string(r[:visible]))
	if spaced {
		b.WriteString("* ")
		removed--
	}
	b.WriteString(strings.Repeat("*", removed))
	return b.String()
}
