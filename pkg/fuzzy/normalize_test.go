package fuzzy

import "testing"

func TestNormalizeLowercaseASCII(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"ČAČAK", "cacak"},
		{"Đorđe", "djordje"},
		{"Élodie", "elodie"},
		{"naïve", "naive"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeLowercaseASCII(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeLowercaseASCII(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetNormalizer(t *testing.T) {
	tests := []struct {
		mode  string
		input string
		want  string
	}{
		{ModeTranslit, "Đorđe Élodie", "Djordje Élodie"},
		{ModeLowercaseTranslit, "Đorđe Élodie", "djordje élodie"},
		{ModeLowercaseASCII, "Đorđe Élodie", "djordje elodie"},
		{ModeNone, "Đorđe", "Đorđe"},
		{"", "Đorđe", "Djordje"},        // default = translit
		{"unknown", "Đorđe", "Djordje"}, // fallback = translit
	}
	for _, tt := range tests {
		got := GetNormalizer(tt.mode)(tt.input)
		if got != tt.want {
			t.Errorf("GetNormalizer(%q)(%q) = %q, want %q", tt.mode, tt.input, got, tt.want)
		}
	}
}
