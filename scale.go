package decimal

import "math/bits"

// MaxScale is the largest number of fractional decimal digits a Decimal may carry.
const MaxScale = 18

// pow10 caches 10^0 .. 10^18; every value fits in an int64 since 10^18 < 2^63.
var pow10 = [MaxScale + 1]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// scale19 is 10^19. It exceeds int64's range but fits in uint64, which is
// exactly the case the spec calls out for the dedicated scale-19 helpers in
// div_pow10/mul_pow10 and truncated-part computation.
const scale19 uint64 = 10_000_000_000_000_000_000

// isValidScale reports whether f is a legal scale for a Decimal.
func isValidScale(f int) bool {
	return f >= 0 && f <= MaxScale
}

// scaleFactor returns 10^f for f in [0, MaxScale].
func scaleFactor(f int) int64 {
	return pow10[f]
}

// mulByScaleUnchecked computes x * 10^f, wrapping on overflow.
func mulByScaleUnchecked(f int, x int64) int64 {
	return x * pow10[f]
}

// mulByScaleExact computes x * 10^f and reports whether the exact
// mathematical result fits in an int64.
func mulByScaleExact(f int, x int64) (int64, bool) {
	if x == 0 {
		return 0, true
	}
	y := pow10[f]
	z := x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// divByScale computes x / 10^f, truncating toward zero the way Go's
// built-in integer division already does.
func divByScale(f int, x int64) int64 {
	return x / pow10[f]
}

// isValidIntegerValue reports whether x * 10^f fits in an int64.
func isValidIntegerValue(f int, x int64) bool {
	_, ok := mulByScaleExact(f, x)
	return ok
}

// mullo returns the low 64 bits of 10^f * u, where u is treated as unsigned
// and widened to 64 bits; 10^f * u can need more than 64 bits since
// 10^18 * (2^32-1) is far larger than 2^64.
func mullo(f int, u uint32) uint64 {
	_, lo := bits.Mul64(uint64(pow10[f]), uint64(u))
	return lo
}

// mulhi returns the high 64 bits of 10^f * u, the companion to mullo.
func mulhi(f int, u uint32) uint64 {
	hi, _ := bits.Mul64(uint64(pow10[f]), uint64(u))
	return hi
}
