package decimal

import (
	"errors"
	"testing"
)

func TestMulPow10(t *testing.T) {
	tests := []struct {
		u, n int64
		want int64
	}{
		{5, 2, 500},
		{500, -2, 5},
		{123, 0, 123},
	}
	for _, tt := range tests {
		got, err := mulPow10(tt.u, int(tt.n), PolicyDownUnchecked)
		if err != nil || got != tt.want {
			t.Errorf("mulPow10(%d, %d) = (%d, %v), want (%d, nil)", tt.u, tt.n, got, err, tt.want)
		}
	}
}

func TestMulPow10Rounding(t *testing.T) {
	// 127 / 10 with different rounding modes.
	tests := []struct {
		mode RoundingMode
		want int64
	}{
		{Down, 12},
		{Up, 13},
		{HalfEven, 13}, // 127/10 = 12.7, tp greater-than-half regardless of mode's tie rule
	}
	for _, tt := range tests {
		got, err := mulPow10(127, -1, Policy{Rounding: tt.mode, Overflow: Unchecked})
		if err != nil || got != tt.want {
			t.Errorf("mulPow10(127, -1, %v) = (%d, %v), want (%d, nil)", tt.mode, got, err, tt.want)
		}
	}
}

func TestShiftCoefficientDownBeyondMaxScale(t *testing.T) {
	// n == MaxScale+1 exercises shiftRightByScale19; n beyond that exercises
	// shiftRightFarApprox. Both should round a nonzero positive dividend up
	// to 1 under Up, and to 0 under Down.
	if got, err := mulPow10(5, -(MaxScale + 1), Policy{Rounding: Up, Overflow: Unchecked}); err != nil || got != 1 {
		t.Errorf("mulPow10(5, -%d, Up) = (%d, %v), want (1, nil)", MaxScale+1, got, err)
	}
	if got, err := mulPow10(5, -(MaxScale + 5), Policy{Rounding: Down, Overflow: Unchecked}); err != nil || got != 0 {
		t.Errorf("mulPow10(5, -%d, Down) = (%d, %v), want (0, nil)", MaxScale+5, got, err)
	}
}

func TestMulPow10Overflow(t *testing.T) {
	if _, err := mulPow10(1, MaxScale+1, Policy{Rounding: Down, Overflow: Checked}); !errors.Is(err, ErrOverflow) {
		t.Errorf("mulPow10(1, %d, Checked) should overflow", MaxScale+1)
	}
}
