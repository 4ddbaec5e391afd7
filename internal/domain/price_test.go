package domain

import "testing"

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{name: "plain integer", input: "12", want: ptrFloat(12)},
		{name: "decimal", input: "17.50", want: ptrFloat(17.5)},
		{name: "zero", input: "0", want: ptrFloat(0)},
		{name: "surrounding spaces", input: " 9.90 ", want: ptrFloat(9.9)},
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "   ", want: nil},
		{name: "not a number", input: "not-a-number", want: nil},
		{name: "nan literal", input: "NaN", want: nil},
		{name: "positive infinity", input: "+Inf", want: nil},
		{name: "negative infinity", input: "-Inf", want: nil},
		{name: "negative amount", input: "-5", want: nil},
		{name: "trailing junk", input: "12 pesos", want: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParsePrice(tt.input)
			switch {
			case got == nil && tt.want == nil:
				// ok
			case got == nil || tt.want == nil:
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.want)
			case *got != *tt.want:
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, *got, *tt.want)
			}
		})
	}
}

func ptrFloat(v float64) *float64 { return &v }
