package decimal

import "math/big"

// Square root and integer power round through math/big rather than
// replicating the teacher's Taylor-series bexp/bfact tables (decimal.go's
// Log/Exp family): both operations have closed stdlib primitives — big.Int
// carries an exact integer Sqrt, and a fixed-precision big.Float gives
// repeated-squaring exponentiation whose cost is bounded by the working
// precision rather than by the exponent's magnitude, which is what the
// spec's bespoke UnsignedDecimal9i36f accumulator is for in a language
// without arbitrary-precision floats in the standard library.

// sqrtUnscaled computes round(sqrt(u / 10^f)) at scale f.
func sqrtUnscaled(u int64, f int, p Policy) (int64, error) {
	if u < 0 {
		return 0, errIllegalArgument("square root of negative value %d", u)
	}
	if u == 0 {
		return 0, nil
	}
	target := new(big.Int).SetInt64(u)
	target.Mul(target, pow10At(f).big())
	q := new(big.Int).Sqrt(target)
	r := new(big.Int).Sub(target, new(big.Int).Mul(q, q))
	divisor := new(big.Int).Add(new(big.Int).Lsh(q, 1), big.NewInt(1))

	var tp truncatedPart
	switch {
	case r.Sign() == 0:
		tp = tpZero
	default:
		twice := new(big.Int).Lsh(r, 1)
		switch twice.Cmp(divisor) {
		case -1:
			tp = tpLessThanHalf
		case 0:
			tp = tpEqualToHalf
		default:
			tp = tpGreaterThanHalf
		}
	}

	if !q.IsInt64() {
		return 0, errOverflow("sqrt", u)
	}
	qi := q.Int64()
	inc, err := roundingIncrement(p.Rounding, 1, qi%10, tp)
	if err != nil {
		return 0, err
	}
	if p.Overflow == Checked {
		return checkedAdd(qi, inc)
	}
	return qi + inc, nil
}

// powPrecisionBits is the working precision of the big.Float accumulator
// powUnscaled uses, comfortably larger than the ~63 bits a result needs to
// round correctly to int64.
const powPrecisionBits = 256

// powUnscaled computes round((u / 10^f)^n) at scale f, for n in
// [-999999999, 999999999]. n == 0 returns 1 regardless of u (per the spec,
// including 0^0); u == 0 with n < 0 fails with ErrDivideByZero.
func powUnscaled(u int64, f int, n int, p Policy) (int64, error) {
	if n < -999_999_999 || n > 999_999_999 {
		return 0, errIllegalArgument("power exponent %d out of range", n)
	}
	if n == 0 {
		return pow10[f], nil
	}
	if u == 0 {
		if n < 0 {
			return 0, ErrDivideByZero
		}
		return 0, nil
	}
	base := new(big.Float).SetPrec(powPrecisionBits).SetInt64(u)
	base.Quo(base, new(big.Float).SetPrec(powPrecisionBits).SetInt64(pow10[f]))

	neg := n < 0
	exp := n
	if neg {
		exp = -exp
	}
	result := new(big.Float).SetPrec(powPrecisionBits).SetInt64(1)
	b := new(big.Float).SetPrec(powPrecisionBits).Set(base)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
	}
	if neg {
		if result.Sign() == 0 {
			return 0, ErrDivideByZero
		}
		one := new(big.Float).SetPrec(powPrecisionBits).SetInt64(1)
		result.Quo(one, result)
	}
	result.Mul(result, new(big.Float).SetPrec(powPrecisionBits).SetInt64(pow10[f]))
	return bigFloatToInt64Rounded(result, p)
}

// bigFloatToInt64Rounded rounds x to the nearest integer under Policy p and
// returns it as an int64, failing if the truncated integer part itself
// doesn't fit.
func bigFloatToInt64Rounded(x *big.Float, p Policy) (int64, error) {
	if x.Sign() == 0 {
		return 0, nil
	}
	sign := 1
	if x.Sign() < 0 {
		sign = -1
		x = new(big.Float).Abs(x)
	}
	intPart, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(x.Prec()).Sub(x, new(big.Float).SetInt(intPart))
	half := big.NewFloat(0.5)

	var tp truncatedPart
	switch frac.Cmp(half) {
	case -1:
		if frac.Sign() == 0 {
			tp = tpZero
		} else {
			tp = tpLessThanHalf
		}
	case 0:
		tp = tpEqualToHalf
	default:
		tp = tpGreaterThanHalf
	}

	if !intPart.IsInt64() {
		return 0, errOverflow("pow")
	}
	qi := intPart.Int64()
	inc, err := roundingIncrement(p.Rounding, sign, qi%10, tp)
	if err != nil {
		return 0, err
	}
	if sign < 0 {
		qi = -qi
	}
	if p.Overflow == Checked {
		return checkedAdd(qi, inc)
	}
	return qi + inc, nil
}
