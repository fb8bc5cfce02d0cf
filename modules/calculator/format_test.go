package calculator

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integral", 15, "15"},
		{"integral negative", -19, "-19"},
		{"zero", 0, "0"},
		{"fractional kept", 2.5, "2.5"},
		{"near-integral untouched", 10.0001, "10.0001"},
		{"small fraction", 0.5, "0.5"},
		{"negative fraction", -0.25, "-0.25"},
		{"large integral", 123456789, "123456789"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.v); got != tc.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tc.v, got, tc.want)
			}
		})
	}
}
