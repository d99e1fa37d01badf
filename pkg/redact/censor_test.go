package redact

import (
	"strings"
	"testing"
)

func TestCensorText(t *testing.T) {
	tests := []struct {
		input  string
		spaced bool
		want   string
	}{
		{"1234567890", false, "1234******"},
		{"1234567890", true, "1234* *****"},
		{"abcd", false, "abcd"},
		{"abcd", true, "abcd"},
		{"abcde", true, "abcd* "},
		{"Čačak Beograd", false, "Čača*********"},
		{"abc", false, Mask},
		{"abc", true, Mask},
		{"", false, Mask},
	}
	for _, tt := range tests {
		got := CensorText(tt.input, tt.spaced)
		if got != tt.want {
			t.Errorf("CensorText(%q, %v) = %q, want %q", tt.input, tt.spaced, got, tt.want)
		}
	}
}

func TestCensorText_ShortIsMask(t *testing.T) {
	limit := DefaultCensorshipPolicy().MaxVisiblePrefix
	for _, s := range []string{"", "a", "ab", "abc", "čćž"} {
		if len([]rune(s)) >= limit {
			t.Fatalf("test input %q is not short", s)
		}
		if got := CensorText(s, false); got != "*****" {
			t.Errorf("CensorText(%q) = %q, want *****", s, got)
		}
	}
}

func TestCensorText_PrefixAndFillerLength(t *testing.T) {
	p := DefaultCensorshipPolicy()
	s := "1234567890"
	got := Censor(s, p, false)
	if !strings.HasPrefix(got, s[:p.MaxVisiblePrefix]) {
		t.Errorf("Censor(%q) = %q, prefix not preserved", s, got)
	}
	tail := got[p.MaxVisiblePrefix:]
	if tail != strings.Repeat("*", len(s)-p.MaxVisiblePrefix) {
		t.Errorf("Censor(%q) tail = %q, want %d asterisks", s, tail, len(s)-p.MaxVisiblePrefix)
	}

	spaced := Censor(s, p, true)
	if strings.Count(spaced, "*") != len(s)-p.MaxVisiblePrefix {
		t.Errorf("Censor(%q, spaced) = %q, want %d asterisks", s, spaced, len(s)-p.MaxVisiblePrefix)
	}
	if len(spaced) != len(s)+1 {
		t.Errorf("Censor(%q, spaced) length = %d, want %d", s, len(spaced), len(s)+1)
	}
}

func TestCensor_CustomPolicy(t *testing.T) {
	p := CensorshipPolicy{MaxVisiblePrefix: 2, MinVisiblePrefix: 1}
	if got := Censor("secret", p, false); got != "se****" {
		t.Errorf("Censor(secret) = %q, want se****", got)
	}
	if got := Censor("s", p, false); got != Mask {
		t.Errorf("Censor(s) = %q, want %q", got, Mask)
	}
}

func TestCensor_DoesNotMutateInput(t *testing.T) {
	s := "1234567890"
	_ = CensorText(s, true)
	if s != "1234567890" {
		t.Errorf("input mutated to %q", s)
	}
}
