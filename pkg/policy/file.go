// CLAUDE:SUMMARY YAML policy file schema and loader; absent keys fall back to compiled-in defaults.
package policy

import (
	"fmt"
	"os"

	"github.com/hazyhaar/fuzzmask/pkg/redact"
	"gopkg.in/yaml.v3"
)

// Set is a validated, compiled policy snapshot. It is never modified after
// construction.
type Set struct {
	Policies redact.Policies
	Phone    *redact.PhoneMatcher
}

// NewSet normalizes, validates and compiles p.
func NewSet(p redact.Policies) (*Set, error) {
	p = p.Normalized()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, err := redact.NewPhoneMatcher(p.Phone)
	if err != nil {
		return nil, fmt.Errorf("phone: %w", err)
	}
	return &Set{Policies: p, Phone: m}, nil
}

// DefaultSet returns the compiled-in defaults.
func DefaultSet() *Set {
	return &Set{Policies: redact.DefaultPolicies(), Phone: redact.DefaultPhoneMatcher()}
}

// Censor masks s with the snapshot's censorship policy.
func (s *Set) Censor(text string, spaced bool) string {
	return redact.Censor(text, s.Policies.Censorship, spaced)
}

// censorshipFile tells an absent key from an explicit 0.
type censorshipFile struct {
	MaxVisiblePrefix *int `yaml:"max_visible_prefix"`
	MinVisiblePrefix *int `yaml:"min_visible_prefix"`
}

type file struct {
	Censorship censorshipFile          `yaml:"censorship"`
	Phone      redact.PhoneMatchPolicy `yaml:"phone"`
}

// policies fills absent censorship keys from the defaults. An absent
// min_visible_prefix falls back to the default only while it stays below max.
func (f file) policies() redact.Policies {
	c := redact.DefaultCensorshipPolicy()
	if f.Censorship.MaxVisiblePrefix != nil {
		c.MaxVisiblePrefix = *f.Censorship.MaxVisiblePrefix
	}
	switch {
	case f.Censorship.MinVisiblePrefix != nil:
		c.MinVisiblePrefix = *f.Censorship.MinVisiblePrefix
	case c.MinVisiblePrefix >= c.MaxVisiblePrefix:
		c.MinVisiblePrefix = 0
	}
	return redact.Policies{Censorship: c, Phone: f.Phone}
}

// Load reads and parses a policy YAML file:
//
//	censorship:
//	  max_visible_prefix: 4
//	  min_visible_prefix: 2
//	phone:
//	  suffix_digits: 7
//	  pattern: '\(?\d{3}\)?-? *\d{3}-? *-?\d{3}'
//	  landline: "+387"
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", path, err)
	}
	set, err := NewSet(f.policies())
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}
	return set, nil
}
