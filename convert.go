package decimal

import (
	"math"
	"math/big"
	"strconv"
)

// This file is the conversion half of component G: every exported
// conversion between a Decimal's (unscaled, scale) pair and a host numeric
// type funnels through one of these functions. Float conversions round
// through math/big rather than hand-rolled IEEE-754 bit decomposition,
// matching the teacher's own reliance on strconv/big.Float for NewFromFloat64
// and Float64 rather than manual mantissa/exponent extraction.

// unscaledFromInt64 computes v * 10^scale, the unscaled representation of
// the integer v at the given scale.
func unscaledFromInt64(v int64, scale int, p Policy) (int64, error) {
	return mulPow10(v, scale, p)
}

// unscaledToInt64 truncates a Decimal's unscaled value toward zero to its
// integral part.
func unscaledToInt64(unscaled int64, scale int) int64 {
	if scale == 0 {
		return unscaled
	}
	return divByScale(scale, unscaled)
}

// unscaledToFloat64 converts an unscaled/scale pair to the nearest float64,
// going through the exact decimal string form (strconv.ParseFloat) rather
// than a plain float division, so the result is the correctly-rounded
// float64 for the exact decimal value rather than compounding two roundings.
func unscaledToFloat64(unscaled int64, scale int) float64 {
	s := formatUnscaled(unscaled, scale)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func unscaledToFloat32(unscaled int64, scale int) float32 {
	s := formatUnscaled(unscaled, scale)
	f, _ := strconv.ParseFloat(s, 32)
	return float32(f)
}

// unscaledFromFloat64 converts f to an unscaled value at the given scale,
// failing for NaN/Inf inputs and for magnitudes the scale or the int64
// range cannot hold.
func unscaledFromFloat64(f float64, scale int, p Policy) (int64, error) {
	if math.IsNaN(f) {
		return 0, errIllegalArgument("cannot convert NaN to Decimal")
	}
	if math.IsInf(f, 0) {
		return 0, errIllegalArgument("cannot convert infinite value to Decimal")
	}
	bf := new(big.Float).SetPrec(200).SetFloat64(f)
	bf.Mul(bf, new(big.Float).SetPrec(200).SetInt64(pow10[scale]))
	return bigFloatToInt64Rounded(bf, p)
}

// unscaledFromBigInt converts v * 10^scale to an unscaled int64.
func unscaledFromBigInt(v *big.Int, scale int, p Policy) (int64, error) {
	if v.IsInt64() {
		return unscaledFromInt64(v.Int64(), scale, p)
	}
	z := getBint()
	defer putBint(z)
	z.big().Set(v)
	sign := 1
	if z.sign() < 0 {
		sign = -1
		z.abs(z)
	}
	z.lsh(z, scale)
	qv, ok := z.int64()
	if !ok {
		if p.Overflow == Checked {
			return 0, errOverflow("fromBigInt")
		}
		return wrapSign(wrapBintToInt64(z, 1), sign), nil
	}
	return wrapSign(qv, sign), nil
}

// unscaledToBigInt returns the truncated integer part of unscaled/10^scale
// as an arbitrary-precision integer.
func unscaledToBigInt(unscaled int64, scale int) *big.Int {
	z := big.NewInt(unscaled)
	if scale == 0 {
		return z
	}
	return z.Quo(z, pow10At(scale).big())
}

// unscaledToBigFloat returns unscaled/10^scale rounded to a 200-bit binary
// mantissa; a decimal fraction such as 0.1 has no exact binary form.
func unscaledToBigFloat(unscaled int64, scale int) *big.Float {
	num := new(big.Float).SetPrec(200).SetInt64(unscaled)
	if scale == 0 {
		return num
	}
	den := new(big.Float).SetPrec(200).SetInt64(pow10[scale])
	return num.Quo(num, den)
}

// unscaledFromBigFloat converts v * 10^scale to an unscaled int64.
func unscaledFromBigFloat(v *big.Float, scale int, p Policy) (int64, error) {
	if v.IsInf() {
		return 0, errIllegalArgument("cannot convert infinite value to Decimal")
	}
	bf := new(big.Float).SetPrec(max(v.Prec(), 200)).Set(v)
	bf.Mul(bf, new(big.Float).SetPrec(bf.Prec()).SetInt64(pow10[scale]))
	return bigFloatToInt64Rounded(bf, p)
}

func max(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
