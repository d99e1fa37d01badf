// CLAUDE:SUMMARY Censorship and phone-match policies with defaults, validation, and normalization of zero fields.
package redact

import (
	"errors"
	"fmt"
)

// Mask is returned in place of any input too short to be partially shown.
const Mask = "*****"

// ErrInvalidPolicy is wrapped by every policy validation failure.
var ErrInvalidPolicy = errors.New("invalid policy")

// CensorshipPolicy bounds how much of a string stays visible.
type CensorshipPolicy struct {
	MaxVisiblePrefix int `yaml:"max_visible_prefix" json:"max_visible_prefix"`
	MinVisiblePrefix int `yaml:"min_visible_prefix" json:"min_visible_prefix"`
}

// DefaultCensorshipPolicy shows four characters, never fewer than two.
func DefaultCensorshipPolicy() CensorshipPolicy {
	return CensorshipPolicy{MaxVisiblePrefix: 4, MinVisiblePrefix: 2}
}

// Validate checks 0 <= MinVisiblePrefix < MaxVisiblePrefix.
func (p CensorshipPolicy) Validate() error {
	if p.MinVisiblePrefix < 0 || p.MaxVisiblePrefix <= 0 {
		return fmt.Errorf("%w: visible prefix bounds must be positive (min=%d, max=%d)",
			ErrInvalidPolicy, p.MinVisiblePrefix, p.MaxVisiblePrefix)
	}
	if p.MinVisiblePrefix >= p.MaxVisiblePrefix {
		return fmt.Errorf("%w: min_visible_prefix %d must be below max_visible_prefix %d",
			ErrInvalidPolicy, p.MinVisiblePrefix, p.MaxVisiblePrefix)
	}
	return nil
}

// normalized returns the defaults for an unset (zero) policy. Any other
// value is kept as given, so MinVisiblePrefix 0 stays 0.
func (p CensorshipPolicy) normalized() CensorshipPolicy {
	if p == (CensorshipPolicy{}) {
		return DefaultCensorshipPolicy()
	}
	return p
}

// DefaultPhonePattern accepts 3-3-3 digit groups with optional parentheses
// around the first group and optional hyphen/space separators. It is searched,
// not anchored.
const DefaultPhonePattern = `\(?\d{3}\)?-? *\d{3}-? *-?\d{3}`

// PhoneMatchPolicy configures phone validation, censoring and comparison.
type PhoneMatchPolicy struct {
	SuffixDigits int    `yaml:"suffix_digits" json:"suffix_digits"`
	Pattern      string `yaml:"pattern" json:"pattern"`
	Landline     string `yaml:"landline" json:"landline"`
}

// DefaultPhoneMatchPolicy compares the last seven digits and formats for +387.
func DefaultPhoneMatchPolicy() PhoneMatchPolicy {
	return PhoneMatchPolicy{
		SuffixDigits: 7,
		Pattern:      DefaultPhonePattern,
		Landline:     "+387",
	}
}

// Validate checks the suffix window is positive. The pattern is checked when compiled.
func (p PhoneMatchPolicy) Validate() error {
	if p.SuffixDigits <= 0 {
		return fmt.Errorf("%w: suffix_digits must be positive, got %d", ErrInvalidPolicy, p.SuffixDigits)
	}
	return nil
}

func (p PhoneMatchPolicy) normalized() PhoneMatchPolicy {
	d := DefaultPhoneMatchPolicy()
	if p.SuffixDigits == 0 {
		p.SuffixDigits = d.SuffixDigits
	}
	if p.Pattern == "" {
		p.Pattern = d.Pattern
	}
	if p.Landline == "" {
		p.Landline = d.Landline
	}
	return p
}

// Policies groups both policies, the shape of a policy file.
type Policies struct {
	Censorship CensorshipPolicy `yaml:"censorship" json:"censorship"`
	Phone      PhoneMatchPolicy `yaml:"phone" json:"phone"`
}

// DefaultPolicies returns the compiled-in defaults.
func DefaultPolicies() Policies {
	return Policies{
		Censorship: DefaultCensorshipPolicy(),
		Phone:      DefaultPhoneMatchPolicy(),
	}
}

// Normalized returns p with every zero field replaced by its default.
func (p Policies) Normalized() Policies {
	return Policies{
		Censorship: p.Censorship.normalized(),
		Phone:      p.Phone.normalized(),
	}
}

// Validate validates both policies.
func (p Policies) Validate() error {
	if err := p.Censorship.Validate(); err != nil {
		return fmt.Errorf("censorship: %w", err)
	}
	if err := p.Phone.Validate(); err != nil {
		return fmt.Errorf("phone: %w", err)
	}
	return nil
}
