package fuzzy

import "testing"

func TestTransliterate(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Čačak", "Cacak"},
		{"Đorđe", "Djordje"},
		{"ĆUŠKA žabe", "CUSKA zabe"},
		{"šđčćž", "sdjccz"},
		{"plain ascii 123", "plain ascii 123"},
		{"Élodie", "Élodie"},   // outside the table
		{"Београд", "Београд"}, // non-Latin script untouched
		{"東京", "東京"},
		{"", ""},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input)
		if got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterate_Table(t *testing.T) {
	table := map[rune]string{
		'Č': "C", 'č': "c", 'Ć': "C", 'ć': "c", 'Š': "S",
		'š': "s", 'Ž': "Z", 'ž': "z", 'Đ': "Dj", 'đ': "dj",
	}
	if len(charMap) != len(table) {
		t.Fatalf("charMap has %d entries, want %d", len(charMap), len(table))
	}
	for r, want := range table {
		got, ok := charMap[r]
		if !ok {
			t.Errorf("charMap[%q] missing", r)
			continue
		}
		if got != want {
			t.Errorf("charMap[%q] = %q, want %q", r, got, want)
		}
		if s := Transliterate(string(r)); s != want {
			t.Errorf("Transliterate(%q) = %q, want %q", string(r), s, want)
		}
	}
	if _, ok := charMap['x']; ok {
		t.Error("charMap has a mapping for 'x'")
	}
}
