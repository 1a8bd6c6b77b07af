package decimal

import (
	"errors"
	"testing"
)

func TestScanLiteral(t *testing.T) {
	tests := []struct {
		s       string
		want    literal
		wantErr bool
	}{
		{"123.45", literal{neg: false, intDigits: "123", fracDigits: "45"}, false},
		{"-0.5", literal{neg: true, intDigits: "0", fracDigits: "5"}, false},
		{"1e3", literal{neg: false, intDigits: "1", exponent: 3}, false},
		{".5", literal{neg: false, fracDigits: "5"}, false},
		{"", literal{}, true},
		{"abc", literal{}, true},
		{"1.2.3", literal{}, true},
	}
	for _, tt := range tests {
		got, err := scanLiteral(tt.s)
		if tt.wantErr {
			if err == nil {
				t.Errorf("scanLiteral(%q) should fail", tt.s)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("scanLiteral(%q) = (%+v, %v), want (%+v, nil)", tt.s, got, err, tt.want)
		}
	}
}

func TestParseUnscaled(t *testing.T) {
	tests := []struct {
		s     string
		scale int
		mode  RoundingMode
		want  int64
	}{
		{"123.456", 2, HalfUp, 12346},
		{"123.456", 2, Down, 12345},
		{"1", 0, Down, 1},
		{"-1.5", 0, HalfUp, -2},
		{"1e3", 0, Down, 1000},
		{"0.0001", 2, Down, 0},
	}
	for _, tt := range tests {
		got, err := parseUnscaled(tt.s, tt.scale, Policy{Rounding: tt.mode, Overflow: Unchecked})
		if err != nil || got != tt.want {
			t.Errorf("parseUnscaled(%q, %d, %v) = (%d, %v), want (%d, nil)", tt.s, tt.scale, tt.mode, got, err, tt.want)
		}
	}
}

func TestParseUnscaledRoundingNecessary(t *testing.T) {
	if _, err := parseUnscaled("1.005", 2, Policy{Rounding: Unnecessary, Overflow: Unchecked}); !errors.Is(err, ErrRoundingNecessary) {
		t.Errorf("parseUnscaled(1.005, scale 2, UNNECESSARY) should fail, got %v", err)
	}
}

func TestNaturalScale(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"123.45", 2},
		{"123", 0},
		{"1e3", 0},
		{"1.5e-2", 3},
	}
	for _, tt := range tests {
		got, err := naturalScale(tt.s)
		if err != nil || got != tt.want {
			t.Errorf("naturalScale(%q) = (%d, %v), want (%d, nil)", tt.s, got, err, tt.want)
		}
	}
}
