package decimal

import (
	"errors"
	"testing"
)

func TestShiftBintFitsInt64(t *testing.T) {
	z := getBint()
	defer putBint(z)
	z.setInt64(1234500)
	got, err := shiftBint(z, 2, 1, PolicyHalfUpUnchecked)
	if err != nil || got != 12345 {
		t.Errorf("shiftBint(1234500, 2, HALF_UP) = (%d, %v), want (12345, nil)", got, err)
	}
}

func TestShiftBintBeyondInt64(t *testing.T) {
	// 10^25 doesn't fit in an int64; Checked mode should fail.
	z := getBint()
	defer putBint(z)
	z.big().SetString("10000000000000000000000000", 10)
	if _, err := shiftBint(z, 0, 1, Policy{Rounding: Down, Overflow: Checked}); !errors.Is(err, ErrOverflow) {
		t.Errorf("shiftBint of a 26-digit magnitude should overflow in Checked mode, got %v", err)
	}
}

func TestQuoBint(t *testing.T) {
	num := newBintFromInt64(100)
	defer putBint(num)
	denom := newBintFromInt64(3)
	defer putBint(denom)
	got, err := quoBint(num, denom, 1, PolicyHalfEvenUnchecked)
	if err != nil || got != 33 {
		t.Errorf("quoBint(100, 3, HALF_EVEN) = (%d, %v), want (33, nil)", got, err)
	}

	num2 := newBintFromInt64(100)
	defer putBint(num2)
	denom2 := newBintFromInt64(3)
	defer putBint(denom2)
	if got, err := quoBint(num2, denom2, 1, Policy{Rounding: Ceiling, Overflow: Unchecked}); err != nil || got != 34 {
		t.Errorf("quoBint(100, 3, CEILING) = (%d, %v), want (34, nil)", got, err)
	}
}

func TestPow10At(t *testing.T) {
	if got := pow10At(3).string(); got != "1000" {
		t.Errorf("pow10At(3) = %q, want %q", got, "1000")
	}
	if got := pow10At(40).string(); got != "10000000000000000000000000000000000000000" {
		t.Errorf("pow10At(40) should compute beyond the cache correctly, got %q", got)
	}
}

func TestWrapBintToInt64(t *testing.T) {
	z := getBint()
	defer putBint(z)
	z.big().SetString("18446744073709551616", 10) // 2^64, wraps to 0
	if got := wrapBintToInt64(z, 1); got != 0 {
		t.Errorf("wrapBintToInt64(2^64) = %d, want 0", got)
	}
}
