package decimal

// truncatedPart classifies the digits a shift-right or division discards,
// which together with the sign and the last kept digit fully determines
// the rounding increment for every mode.
type truncatedPart int8

const (
	tpZero truncatedPart = iota
	tpLessThanHalf
	tpEqualToHalf
	tpGreaterThanHalf
)

// truncatedPartFor classifies a discarded remainder r against divisor d.
// It compares r against d-r instead of doubling r, so it never overflows
// even when d is scale19, which does not fit in an int64.
func truncatedPartFor(r, d uint64) truncatedPart {
	switch {
	case r == 0:
		return tpZero
	case r < d-r:
		return tpLessThanHalf
	case r == d-r:
		return tpEqualToHalf
	default:
		return tpGreaterThanHalf
	}
}

// truncatedPartForPow2 is the d = 2^n specialization used by shift-right.
func truncatedPartForPow2(r uint64, n uint) truncatedPart {
	if n == 0 {
		return tpZero
	}
	if n > 64 {
		// Half of 2^n is at least 2^64, so any nonzero 64-bit remainder is
		// below half of such a divisor.
		if r == 0 {
			return tpZero
		}
		return tpLessThanHalf
	}
	half := uint64(1) << (n - 1)
	switch {
	case r == 0:
		return tpZero
	case r < half:
		return tpLessThanHalf
	case r == half:
		return tpEqualToHalf
	default:
		return tpGreaterThanHalf
	}
}

// roundingIncrement computes the signed adjustment {-1, 0, +1} to apply to
// a truncated result, given the sign of the original value, the parity of
// the last kept digit (needed only by HalfEven), and the truncated part.
func roundingIncrement(mode RoundingMode, sign int, lastDigitKept int64, tp truncatedPart) (int64, error) {
	switch mode {
	case Up:
		if tp != tpZero {
			return int64(sign), nil
		}
		return 0, nil
	case Down:
		return 0, nil
	case Ceiling:
		if sign > 0 && tp != tpZero {
			return 1, nil
		}
		return 0, nil
	case Floor:
		if sign < 0 && tp != tpZero {
			return -1, nil
		}
		return 0, nil
	case HalfUp:
		if tp == tpEqualToHalf || tp == tpGreaterThanHalf {
			return int64(sign), nil
		}
		return 0, nil
	case HalfDown:
		if tp == tpGreaterThanHalf {
			return int64(sign), nil
		}
		return 0, nil
	case HalfEven:
		if tp == tpGreaterThanHalf || (tp == tpEqualToHalf && lastDigitKept%2 != 0) {
			return int64(sign), nil
		}
		return 0, nil
	case Unnecessary:
		if tp != tpZero {
			return 0, ErrRoundingNecessary
		}
		return 0, nil
	default:
		return 0, errIllegalArgument("unknown rounding mode %v", mode)
	}
}

// signReversion returns the mode that makes round(-x, mode) == -round(x, signReversion(mode)).
// Ceiling and Floor swap; every other mode is symmetric in sign already.
func signReversion(mode RoundingMode) RoundingMode {
	switch mode {
	case Ceiling:
		return Floor
	case Floor:
		return Ceiling
	default:
		return mode
	}
}

// additiveReversion returns the mode to use for a remainder that flows into
// a sum of opposite sign (the second-operand split in cross-scale add/sub).
// Up/Down and HalfUp/HalfDown swap; direction-sensitive modes are unaffected
// because their sign argument already captures the crossing.
func additiveReversion(mode RoundingMode) RoundingMode {
	switch mode {
	case Up:
		return Down
	case Down:
		return Up
	case HalfUp:
		return HalfDown
	case HalfDown:
		return HalfUp
	default:
		return mode
	}
}

func signOf(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
