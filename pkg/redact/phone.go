// CLAUDE:SUMMARY Phone shape validation, tail censoring, suffix-window equality and landline prefixing bound to a compiled policy.
package redact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// PhoneMatcher is a PhoneMatchPolicy with its pattern compiled. It holds no
// mutable state and is safe for concurrent use.
type PhoneMatcher struct {
	policy PhoneMatchPolicy
	re     *regexp.Regexp
}

var defaultPhone = mustPhoneMatcher(DefaultPhoneMatchPolicy())

func mustPhoneMatcher(p PhoneMatchPolicy) *PhoneMatcher {
	m, err := NewPhoneMatcher(p)
	if err != nil {
		panic(err)
	}
	return m
}

// NewPhoneMatcher validates p, fills zero fields from the defaults and
// compiles the pattern.
func NewPhoneMatcher(p PhoneMatchPolicy) (*PhoneMatcher, error) {
	p = p.normalized()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: phone pattern %q: %v", ErrInvalidPolicy, p.Pattern, err)
	}
	return &PhoneMatcher{policy: p, re: re}, nil
}

// DefaultPhoneMatcher returns the matcher for DefaultPhoneMatchPolicy.
func DefaultPhoneMatcher() *PhoneMatcher {
	return defaultPhone
}

// Policy returns the normalized policy the matcher was built from.
func (m *PhoneMatcher) Policy() PhoneMatchPolicy {
	return m.policy
}

// IsValid reports whether number contains the accepted phone shape.
// Blank input is never valid.
func (m *PhoneMatcher) IsValid(number string) bool {
	if strings.TrimSpace(number) == "" {
		return false
	}
	return m.re.MatchString(number)
}

// Censor keeps the first SuffixDigits runes and masks the rest. Numbers
// shorter than that become Mask.
func (m *PhoneMatcher) Censor(number string) string {
	return mask(number, m.policy.SuffixDigits, false)
}

// Same reports whether a and b end with the same SuffixDigits runes, so
// 0038763111222 and 063111222 are the same subscriber.
func (m *PhoneMatcher) Same(a, b string) bool {
	n := m.policy.SuffixDigits
	if utf8.RuneCountInString(a) < n || utf8.RuneCountInString(b) < n {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	return string(ra[len(ra)-n:]) == string(rb[len(rb)-n:])
}

// InjectLandline replaces a leading 0 with the policy landline
// (063111222 -> +38763111222). Anything else is returned unchanged.
func (m *PhoneMatcher) InjectLandline(number string) string {
	if !strings.HasPrefix(number, "0") {
		return number
	}
	return m.policy.Landline + number[1:]
}

// FilterValid returns the numbers that pass IsValid, in input order.
func (m *PhoneMatcher) FilterValid(numbers []string) []string {
	valid := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if m.IsValid(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// IsValidPhoneNumber validates number with the default policy.
func IsValidPhoneNumber(number string) bool {
	return defaultPhone.IsValid(number)
}

// CensorPhone censors number with the default policy.
func CensorPhone(number string) string {
	return defaultPhone.Censor(number)
}

// SamePhoneNumbers compares a and b with the default policy.
func SamePhoneNumbers(a, b string) bool {
	return defaultPhone.Same(a, b)
}
