package fuzzy

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		source, target string
		want           int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"saturday", "sunday", 3},
		{"a", "b", 1},
		{"abc", "abcd", 1},
		{"abcd", "abc", 1},
		{"Čačak", "Cacak", 2},
		{"ab", "ba", 2},
	}
	for _, tt := range tests {
		got := EditDistance(tt.source, tt.target)
		if got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.source, tt.target, got, tt.want)
		}
	}
}

func TestEditDistance_EmptyIsZero(t *testing.T) {
	for _, s := range []string{"", "x", "kitten", "Đorđe"} {
		if got := EditDistance("", s); got != 0 {
			t.Errorf("EditDistance(\"\", %q) = %d, want 0", s, got)
		}
		if got := EditDistance(s, ""); got != 0 {
			t.Errorf("EditDistance(%q, \"\") = %d, want 0", s, got)
		}
	}
}

func TestEditDistance_EqualIsLength(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"a", 1},
		{"kitten", 6},
		{"Čačak", 5}, // runes, not bytes
	}
	for _, tt := range tests {
		if got := EditDistance(tt.input, tt.input); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.input, tt.input, got, tt.want)
		}
	}
}

func TestEditDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"phone", "fone"},
		{"0038763111222", "063111222"},
	}
	for _, p := range pairs {
		ab := EditDistance(p[0], p[1])
		ba := EditDistance(p[1], p[0])
		if ab != ba {
			t.Errorf("EditDistance(%q, %q) = %d but reverse = %d", p[0], p[1], ab, ba)
		}
	}
}
