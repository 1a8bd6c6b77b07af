package decimal

import "math"

// This file is the unscaled arithmetic core (component E): every exported
// Decimal method in decimal.go is a thin wrapper around one of these
// functions. Division and multiplication beyond the cheap fits-in-int64
// fast path drive into the 128-bit helpers of uint128.go, falling back to
// the big.Int machinery of bigint.go only when the rounded quotient of the
// 128-bit intermediate does not fit in 64 bits — which Go's math/bits gives us as O(1) hardware
// primitives, so (unlike the systems-language source this generalizes)
// there is little reason to additionally hand-split operands by 10^9 the
// way the teacher's mulFint/mulBint dispatch does; one 128-bit path plus
// one big.Int fallback covers every case the spec describes.

// sqrtMaxInt64 is floor(sqrt(math.MaxInt64)): operands at or below this
// magnitude can be multiplied directly in an int64 without risking overflow
// of the intermediate product.
const sqrtMaxInt64 = 3_037_000_499

// pow10Index reports the index k such that pow10[k] == x, if any.
func pow10Index(x uint64) (int, bool) {
	for i, v := range pow10 {
		if uint64(v) == x {
			return i, true
		}
	}
	return 0, false
}

// wrapUint64SignedAdd reinterprets q's low 64 bits as signed, applies sign,
// and adds the rounding increment — the wrap-on-overflow path for Unchecked
// arithmetic whose unsigned magnitude exceeds math.MaxInt64.
func wrapUint64SignedAdd(q uint64, sign int, inc int64) int64 {
	v := int64(q)
	if sign < 0 {
		v = -v
	}
	return v + inc
}

// ---- Addition / subtraction (§4.5) ----

// addUnscaled computes a@fa + b@fb and returns the unscaled result at scale fa.
func addUnscaled(a int64, fa int, b int64, fb int, p Policy) (int64, error) {
	if fa == fb {
		if p.Overflow == Checked {
			return checkedAdd(a, b)
		}
		return a + b, nil
	}
	delta := fb - fa
	if delta < 0 {
		// b is coarser than a: scale b up by 10^-delta, then add directly.
		bs, err := mulPow10(b, -delta, Policy{Rounding: Down, Overflow: p.Overflow})
		if err != nil {
			return 0, err
		}
		if p.Overflow == Checked {
			return checkedAdd(a, bs)
		}
		return a + bs, nil
	}
	// delta > 0: b is finer than a. Split b = q*10^delta + r.
	div := uint64(pow10[delta])
	sign := signOf(b)
	ab := absU64(b)
	q := int64(ab / div)
	r := ab % div
	if sign < 0 {
		q = -q
	}
	var sum int64
	var err error
	if p.Overflow == Checked {
		sum, err = checkedAdd(a, q)
	} else {
		sum = a + q
	}
	if err != nil {
		return 0, err
	}
	mode := p.Rounding
	if sign != 0 && signOf(sum) != sign {
		mode = additiveReversion(mode)
	}
	tp := truncatedPartFor(r, div)
	inc, err := roundingIncrement(mode, sign, sum%10, tp)
	if err != nil {
		return 0, err
	}
	if p.Overflow == Checked {
		return checkedAdd(sum, inc)
	}
	return sum + inc, nil
}

// subUnscaled computes a@fa - b@fb via negation plus addUnscaled.
func subUnscaled(a int64, fa int, b int64, fb int, p Policy) (int64, error) {
	var nb int64
	var err error
	if p.Overflow == Checked {
		nb, err = checkedNeg(b)
		if err != nil {
			return 0, err
		}
	} else {
		nb = uncheckedNeg(b)
	}
	return addUnscaled(a, fa, nb, fb, p)
}

// ---- Multiplication (§4.5) ----

// mulUnscaled computes round(u1 * u2 / 10^shift): shift == 0 performs an
// exact integer multiply (used for "multiply by a long" and for Mul by a
// scale-0 operand), and
// shift > 0 additionally rounds away the low shift decimal digits of the
// product (the same-scale and foreign-scale-with-g>0 cases of the spec).
func mulUnscaled(u1, u2 int64, shift int, p Policy) (int64, error) {
	if u1 == 0 || u2 == 0 {
		return 0, nil
	}
	sign := signOf(u1) * signOf(u2)
	a1, a2 := absU64(u1), absU64(u2)
	var prod uint128
	if a1 <= sqrtMaxInt64 && a2 <= sqrtMaxInt64 {
		prod = uint128{lo: a1 * a2}
	} else {
		prod = mulTo128(a1, a2)
	}
	return shiftUint128(prod, shift, sign, p)
}

// shiftUint128 rounds a 128-bit unsigned magnitude down by 10^shift
// (shift == 0 means "no rounding, just verify it fits") and reapplies sign.
func shiftUint128(prod uint128, shift int, sign int, p Policy) (int64, error) {
	if shift == 0 {
		if prod.hi != 0 || prod.lo > uint64(math.MaxInt64) {
			if p.Overflow == Checked {
				return 0, errOverflow("mul", int64(prod.hi), int64(prod.lo))
			}
			return wrapSign(int64(prod.lo), sign), nil
		}
		return signedAddChecked(wrapSign(int64(prod.lo), sign), 0, p)
	}
	div := uint64(pow10[shift])
	q, r, overflow := div128By64(prod, div)
	if overflow {
		return shiftUint128Big(prod, shift, sign, p)
	}
	tp := truncatedPartFor(r, div)
	inc, err := roundingIncrement(p.Rounding, sign, int64(q%10), tp)
	if err != nil {
		return 0, err
	}
	if q > uint64(math.MaxInt64) {
		if p.Overflow == Checked {
			return 0, errOverflow("mul", int64(q), inc)
		}
		return wrapUint64SignedAdd(q, sign, inc), nil
	}
	return signedAddChecked(wrapSign(int64(q), sign), inc, p)
}

func wrapSign(v int64, sign int) int64 {
	if sign < 0 {
		return -v
	}
	return v
}

func signedAddChecked(base, inc int64, p Policy) (int64, error) {
	if p.Overflow == Checked {
		return checkedAdd(base, inc)
	}
	return base + inc, nil
}

func bintFromUint128(u uint128) *bint {
	z := getBint()
	z.setUint64(u.hi)
	z.big().Lsh(z.big(), 64)
	lo := getBint()
	defer putBint(lo)
	lo.setUint64(u.lo)
	z.big().Or(z.big(), lo.big())
	return z
}

func shiftUint128Big(prod uint128, shift, sign int, p Policy) (int64, error) {
	z := bintFromUint128(prod)
	defer putBint(z)
	return shiftBint(z, shift, sign, p)
}

// squareUnscaled computes round(u^2 / 10^f), the spec's Square primitive.
func squareUnscaled(u int64, f int, p Policy) (int64, error) {
	return mulUnscaled(u, u, f, p)
}

// ---- Division (§4.5) ----

// quoUnscaled computes round(u1 * 10^f / u2), where f is u2's scale; the
// result stays at u1's scale, so it serves same-scale and foreign-scale
// division alike.
func quoUnscaled(u1, u2 int64, f int, p Policy) (int64, error) {
	if u1 == 0 {
		return 0, nil
	}
	if u2 == 0 {
		return 0, ErrDivideByZero
	}
	sign := signOf(u1) * signOf(u2)
	absU2 := absU64(u2)
	if absU2 == uint64(pow10[f]) {
		if signOf(u2) > 0 {
			return u1, nil
		}
		if p.Overflow == Checked {
			return checkedNeg(u1)
		}
		return uncheckedNeg(u1), nil
	}
	absU1 := absU64(u1)
	if absU1 == absU2 {
		r := pow10[f]
		if sign < 0 {
			if p.Overflow == Checked {
				return checkedNeg(r)
			}
			return uncheckedNeg(r), nil
		}
		return r, nil
	}
	if k, ok := pow10Index(absU2); ok {
		adjU1 := u1
		if signOf(u2) < 0 {
			var err error
			if p.Overflow == Checked {
				adjU1, err = checkedNeg(u1)
			} else {
				adjU1 = uncheckedNeg(u1)
			}
			if err != nil {
				return 0, err
			}
		}
		return mulPow10(adjU1, f-k, p)
	}
	numerator := mulTo128(absU1, uint64(pow10[f]))
	q, r, overflow := div128By64(numerator, absU2)
	if overflow {
		return quoUnscaledBig(absU1, f, absU2, sign, p)
	}
	tp := truncatedPartFor(r, absU2)
	inc, err := roundingIncrement(p.Rounding, sign, int64(q%10), tp)
	if err != nil {
		return 0, err
	}
	if q > uint64(math.MaxInt64) {
		if p.Overflow == Checked {
			return 0, errOverflow("div", u1, u2)
		}
		return wrapUint64SignedAdd(q, sign, inc), nil
	}
	return signedAddChecked(wrapSign(int64(q), sign), inc, p)
}

func quoUnscaledBig(absU1 uint64, f int, absU2 uint64, sign int, p Policy) (int64, error) {
	num := getBint()
	defer putBint(num)
	num.setUint64(absU1)
	num.lsh(num, f)
	denom := getBint()
	defer putBint(denom)
	denom.setUint64(absU2)
	return quoBint(num, denom, sign, p)
}

// invertUnscaled computes round(1 / (u / 10^f)) at the same scale f.
func invertUnscaled(u int64, f int, p Policy) (int64, error) {
	if u == 0 {
		return 0, ErrDivideByZero
	}
	return quoUnscaled(pow10[f], u, f, p)
}

// quoByLong computes round(u / l), treating l as a plain integer divisor
// rather than another decimal.
func quoByLong(u, l int64, p Policy) (int64, error) {
	if l == 0 {
		return 0, ErrDivideByZero
	}
	sign := signOf(u) * signOf(l)
	var q int64
	var err error
	if p.Overflow == Checked {
		q, err = checkedDiv(u, l)
	} else {
		q = uncheckedDiv(u, l)
	}
	if err != nil {
		return 0, err
	}
	var prod int64
	if p.Overflow == Checked {
		prod, err = checkedMul(q, l)
		if err != nil {
			return 0, err
		}
	} else {
		prod = q * l
	}
	r := u - prod
	tp := truncatedPartFor(absU64(r), absU64(l))
	inc, err := roundingIncrement(p.Rounding, sign, q%10, tp)
	if err != nil {
		return 0, err
	}
	return signedAddChecked(q, inc, p)
}

// quoRemUnscaled computes divide-to-integral-value and remainder of d/e in a
// single pass: q is the truncated quotient and r the remainder, both
// re-expressed at f1 (d's scale), so that d == q_value*e + r_value (exactly
// when f1 >= f2; for f2 > f1 the remainder is rounded to f1 under p). u1 is
// at scale f1, u2 at scale f2; the two scales need not match (spec.md's
// "division with foreign scale" applies here exactly as it does to Quo).
func quoRemUnscaled(u1 int64, f1 int, u2 int64, f2 int, p Policy) (q, r int64, err error) {
	if u2 == 0 {
		return 0, 0, ErrDivideByZero
	}
	if f1 == f2 {
		var qTrunc int64
		if p.Overflow == Checked {
			qTrunc, err = checkedDiv(u1, u2)
		} else {
			qTrunc = uncheckedDiv(u1, u2)
		}
		if err != nil {
			return 0, 0, err
		}
		qScaled, err := mulPow10(qTrunc, f1, Policy{Rounding: Down, Overflow: p.Overflow})
		if err != nil {
			return 0, 0, err
		}
		var prod int64
		if p.Overflow == Checked {
			prod, err = checkedMul(qTrunc, u2)
		} else {
			prod = qTrunc * u2
		}
		if err != nil {
			return 0, 0, err
		}
		if p.Overflow == Checked {
			r, err = checkedSub(u1, prod)
			if err != nil {
				return 0, 0, err
			}
		} else {
			r = u1 - prod
		}
		return qScaled, r, nil
	}
	return quoRemUnscaledForeign(u1, f1, u2, f2, p)
}

// quoRemUnscaledForeign is quoRemUnscaled's cross-scale path: it aligns both
// operands to their common finer scale via bint before dividing, exactly as
// quoUnscaledBig aligns a single operand to fall back to arbitrary
// precision, then re-expresses the truncated quotient and remainder at f1
// using mulPow10/shiftBint the way every other cross-scale result in this
// kernel is rounded down to its output scale.
func quoRemUnscaledForeign(u1 int64, f1 int, u2 int64, f2 int, p Policy) (int64, int64, error) {
	fmax := f1
	if f2 > fmax {
		fmax = f2
	}
	sign := signOf(u1) * signOf(u2)

	a := getBint()
	defer putBint(a)
	a.setInt64(u1)
	a.abs(a)
	a.lsh(a, fmax-f1)

	b := getBint()
	defer putBint(b)
	b.setInt64(u2)
	b.abs(b)
	b.lsh(b, fmax-f2)

	qTrunc := getBint()
	defer putBint(qTrunc)
	remFmax := getBint()
	defer putBint(remFmax)
	qTrunc.quoRem(a, b, remFmax)

	qv, ok := qTrunc.int64()
	if !ok {
		if p.Overflow == Checked {
			return 0, 0, errOverflow("quorem", u1, u2)
		}
		qv = wrapBintToInt64(qTrunc, sign)
	} else if sign < 0 {
		qv = -qv
	}
	qScaled, err := mulPow10(qv, f1, Policy{Rounding: Down, Overflow: p.Overflow})
	if err != nil {
		return 0, 0, err
	}

	// The truncated remainder takes the dividend's sign.
	rVal, err := shiftBint(remFmax, fmax-f1, signOf(u1), p)
	if err != nil {
		return 0, 0, err
	}
	return qScaled, rVal, nil
}

// ---- Average (§4.5) ----

// avgUnscaled computes round((a + b) / 2) without ever forming a+b, which
// could overflow where the average itself cannot.
func avgUnscaled(a, b int64, p Policy) (int64, error) {
	base := (a & b) + ((a ^ b) >> 1) // floor((a + b) / 2)
	remBit := (a ^ b) & 1
	sign := signOf(base)
	if remBit != 0 {
		if base < 0 {
			// The exact average is base + 1/2; truncate toward zero instead.
			base++
			sign = -1
		} else {
			sign = 1
		}
	}
	tp := tpZero
	if remBit != 0 {
		tp = tpEqualToHalf
	}
	inc, err := roundingIncrement(p.Rounding, sign, base, tp)
	if err != nil {
		return 0, err
	}
	return signedAddChecked(base, inc, p)
}

// ---- Bit shift (§4.5) ----

func shiftLeftUnscaled(u int64, n int, p Policy) (int64, error) {
	if n < 0 {
		return shiftRightUnscaled(u, -n, p)
	}
	if u == 0 || n == 0 {
		return u, nil
	}
	if n >= 64 {
		if p.Overflow == Checked {
			return 0, errOverflow("shl", u, int64(n))
		}
		return 0, nil
	}
	shifted := u << uint(n)
	if shifted>>uint(n) != u {
		if p.Overflow == Checked {
			return 0, errOverflow("shl", u, int64(n))
		}
		return shifted, nil
	}
	return shifted, nil
}

func shiftRightUnscaled(u int64, n int, p Policy) (int64, error) {
	if n < 0 {
		return shiftLeftUnscaled(u, -n, p)
	}
	if u == 0 || n == 0 {
		return u, nil
	}
	sign := signOf(u)
	au := absU64(u)
	if n >= 64 {
		tp := truncatedPartForPow2(au, uint(n))
		inc, err := roundingIncrement(p.Rounding, sign, 0, tp)
		if err != nil {
			return 0, err
		}
		return inc, nil
	}
	q := au >> uint(n)
	r := au - (q << uint(n))
	tp := truncatedPartForPow2(r, uint(n))
	inc, err := roundingIncrement(p.Rounding, sign, int64(q%10), tp)
	if err != nil {
		return 0, err
	}
	return signedAddChecked(wrapSign(int64(q), sign), inc, p)
}

// ---- Round to precision (§4.5) ----

// roundToPrecisionUnscaled zeros the digits to the right of the precision-th
// fractional digit (a negative precision zeroes integer digits too) while
// preserving scale f.
func roundToPrecisionUnscaled(u int64, f int, precision int, p Policy) (int64, error) {
	shift := f - precision
	if shift > MaxScale {
		return 0, errIllegalArgument("precision %d out of range for scale %d", precision, f)
	}
	if shift <= 0 {
		return u, nil
	}
	rounded, err := shiftCoefficientDown(u, shift, p)
	if err != nil {
		return 0, err
	}
	return shiftCoefficientUp(rounded, shift, p)
}

// ---- Comparison (§4.5) ----

// cmpNumeric compares u1@f1 and u2@f2 as rational numbers, independent of
// how each is scaled.
func cmpNumeric(u1 int64, f1 int, u2 int64, f2 int) int {
	if f1 == f2 {
		switch {
		case u1 < u2:
			return -1
		case u1 > u2:
			return 1
		default:
			return 0
		}
	}
	a := getBint()
	defer putBint(a)
	a.setInt64(u1)
	b := getBint()
	defer putBint(b)
	b.setInt64(u2)
	switch {
	case f1 < f2:
		a.lsh(a, f2-f1)
	case f2 < f1:
		b.lsh(b, f1-f2)
	}
	return a.cmp(b)
}
