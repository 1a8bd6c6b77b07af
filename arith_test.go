package decimal

import (
	"errors"
	"math"
	"testing"
)

func TestAddUnscaledSameScale(t *testing.T) {
	got, err := addUnscaled(500, 2, 300, 2, PolicyDownUnchecked)
	if err != nil || got != 800 {
		t.Errorf("addUnscaled(5.00, 3.00) = (%d, %v), want (800, nil)", got, err)
	}
}

func TestAddUnscaledCrossScale(t *testing.T) {
	// 1.1 (11@1) + 0.11 (11@2): the result is returned at a's scale (1), so
	// the exact sum 1.21 is truncated to one fractional digit. b is finer
	// than a, so it's split into its contribution at scale 1 (q=1, i.e.
	// 0.1) plus a leftover tenth (r=1 of 10) that Down discards.
	got, err := addUnscaled(11, 1, 11, 2, PolicyDownUnchecked)
	if err != nil || got != 12 {
		t.Errorf("addUnscaled(1.1@1, 0.11@2, DOWN) = (%d, %v), want (12, nil)", got, err)
	}
	// 1.1 (11@1) + 0.15 (15@2) = 1.25 exactly: at scale 1 the leftover
	// 0.05 (r=5 of 10) is a clean tie, so DOWN truncates to 1.2 and HALF_UP rounds
	// away from zero to 1.3.
	gotDown, err := addUnscaled(11, 1, 15, 2, PolicyDownUnchecked)
	if err != nil || gotDown != 12 {
		t.Errorf("addUnscaled(1.1@1, 0.15@2, DOWN) = (%d, %v), want (12, nil)", gotDown, err)
	}
	gotUp, err := addUnscaled(11, 1, 15, 2, PolicyHalfUpUnchecked)
	if err != nil || gotUp != 13 {
		t.Errorf("addUnscaled(1.1@1, 0.15@2, HALF_UP) = (%d, %v), want (13, nil)", gotUp, err)
	}

	// a finer than b: 1.234567890 (scale 9) + 1.00000011 (scale 8), result
	// at scale 9: b is scaled up exactly to 1.000000110, so nothing is rounded.
	got2, err := addUnscaled(1_234_567_890, 9, 100_000_011, 8, PolicyHalfUpUnchecked)
	if err != nil || got2 != 2_234_568_000 {
		t.Errorf("addUnscaled(1.234567890, 1.00000011) = (%d, %v), want (2234568000, nil)", got2, err)
	}
}

func TestMulUnscaledSameScale(t *testing.T) {
	got, err := mulUnscaled(200, 300, 2, PolicyHalfEvenUnchecked) // 2.00 * 3.00
	if err != nil || got != 600 {
		t.Errorf("mulUnscaled(2.00, 3.00) = (%d, %v), want (600, nil)", got, err)
	}
}

func TestMulUnscaledWide(t *testing.T) {
	got, err := mulUnscaled(50_000_000_000_000, 50_000_000_000_000, 2, PolicyDownChecked)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("mulUnscaled of a huge product should overflow in Checked mode, got (%d, %v)", got, err)
	}
}

func TestQuoUnscaledSpecialCases(t *testing.T) {
	if got, err := quoUnscaled(0, 5, 2, PolicyDownUnchecked); err != nil || got != 0 {
		t.Errorf("quoUnscaled(0, 5) = (%d, %v), want (0, nil)", got, err)
	}
	if _, err := quoUnscaled(5, 0, 2, PolicyDownUnchecked); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("quoUnscaled(5, 0) should fail with ErrDivideByZero, got %v", err)
	}
	if got, err := quoUnscaled(500, 100, 2, PolicyDownUnchecked); err != nil || got != 500 {
		t.Errorf("quoUnscaled(u2 == 10^f) = (%d, %v), want (500, nil)", got, err)
	}
	if got, err := quoUnscaled(700, 700, 2, PolicyDownUnchecked); err != nil || got != 100 {
		t.Errorf("quoUnscaled(|u1| == |u2|) = (%d, %v), want (100, nil)", got, err)
	}
	if got, err := quoUnscaled(500, 1000, 2, PolicyDownUnchecked); err != nil || got != 50 {
		t.Errorf("quoUnscaled(u2 power of ten) = (%d, %v), want (50, nil)", got, err)
	}
}

func TestAvgUnscaled(t *testing.T) {
	got, err := avgUnscaled(math.MaxInt64, math.MaxInt64-2, PolicyDownUnchecked)
	if err != nil || got != math.MaxInt64-1 {
		t.Errorf("avgUnscaled(MaxInt64, MaxInt64-2) = (%d, %v), want (%d, nil)", got, err, int64(math.MaxInt64-1))
	}
	got2, err := avgUnscaled(3, 4, PolicyHalfEvenUnchecked)
	if err != nil || got2 != 4 {
		t.Errorf("avgUnscaled(3, 4, HALF_EVEN) = (%d, %v), want (4, nil)", got2, err)
	}
	got3, err := avgUnscaled(3, 4, Policy{Rounding: Down, Overflow: Unchecked})
	if err != nil || got3 != 3 {
		t.Errorf("avgUnscaled(3, 4, DOWN) = (%d, %v), want (3, nil)", got3, err)
	}
}

func TestShiftLeftRightUnscaled(t *testing.T) {
	got, err := shiftLeftUnscaled(5, 3, PolicyDownUnchecked) // 5*8
	if err != nil || got != 40 {
		t.Errorf("shiftLeftUnscaled(5, 3) = (%d, %v), want (40, nil)", got, err)
	}
	got2, err := shiftRightUnscaled(40, 3, PolicyDownUnchecked) // 40/8
	if err != nil || got2 != 5 {
		t.Errorf("shiftRightUnscaled(40, 3) = (%d, %v), want (5, nil)", got2, err)
	}
	got3, err := shiftRightUnscaled(5, 1, PolicyHalfUpUnchecked) // 5/2 = 2.5 -> 3
	if err != nil || got3 != 3 {
		t.Errorf("shiftRightUnscaled(5, 1, HALF_UP) = (%d, %v), want (3, nil)", got3, err)
	}
}

func TestCmpNumeric(t *testing.T) {
	if got := cmpNumeric(100, 2, 1, 0); got != 0 {
		t.Errorf("cmpNumeric(1.00, 1) = %d, want 0", got)
	}
	if got := cmpNumeric(99, 2, 1, 0); got != -1 {
		t.Errorf("cmpNumeric(0.99, 1) = %d, want -1", got)
	}
}

func TestRoundToPrecisionUnscaled(t *testing.T) {
	got, err := roundToPrecisionUnscaled(12345, 2, 1, PolicyHalfUpUnchecked)
	if err != nil || got != 12350 {
		t.Errorf("roundToPrecisionUnscaled(12345@2, p=1, HALF_UP) = (%d, %v), want (12350, nil)", got, err)
	}
	got2, err := roundToPrecisionUnscaled(12345, 2, 2, PolicyHalfUpUnchecked)
	if err != nil || got2 != 12345 {
		t.Errorf("roundToPrecisionUnscaled at the value's own scale should be a no-op, got (%d, %v)", got2, err)
	}
}
