package domain

import "testing"

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Bonafont", want: "bonafont"},
		{name: "uppercase", input: "AGUA", want: "agua"},
		{name: "acute accent", input: "água", want: "agua"},
		{name: "mixed case and accent", input: "Água Mineral", want: "agua mineral"},
		{name: "tilde", input: "Jalapeño", want: "jalapeno"},
		{name: "diaeresis", input: "Güero", want: "guero"},
		{name: "several accents", input: "Café Olé", want: "cafe ole"},
		{name: "empty string", input: "", want: ""},
		{name: "whitespace kept", input: "  agua  ", want: "  agua  "},
		{name: "digits and punctuation", input: "Bonafont 1 Lt.", want: "bonafont 1 lt."},
		{name: "cyrillic passes through folded", input: "Вода", want: "вода"},
		{name: "cjk passes through", input: "水", want: "水"},
		{name: "compatibility form", input: "ﬁn", want: "fin"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeKey(tt.input); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "Água", "AGUA", "Café Olé", "Вода", "  Ñandú  ", "ﬁn 12½"}
	for _, s := range inputs {
		once := NormalizeKey(s)
		twice := NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestNormalizeKey_AccentInsensitiveEquality(t *testing.T) {
	t.Parallel()

	if NormalizeKey("Agua") != NormalizeKey("água") {
		t.Error(`NormalizeKey("Agua") != NormalizeKey("água")`)
	}
	if NormalizeKey("Agua") != NormalizeKey("AGUA") {
		t.Error(`NormalizeKey("Agua") != NormalizeKey("AGUA")`)
	}
}
