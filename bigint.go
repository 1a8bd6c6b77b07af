package decimal

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) wraps big.Int the way the teacher's integer.go does,
// so arithmetic reads as a sequence of named mutations instead of a chain
// of *big.Int method calls. It backs the arbitrary-precision fallback used
// when a multiplication's or division's rounded quotient does not fit in
// 64 bits, cross-scale comparison, remainder and parsing, and the big.Int
// conversion of component G, which the spec explicitly permits to allocate.
type bint big.Int

// bpow10 caches 10^0 .. 10^38, covering every intermediate this kernel's
// fallback paths can produce (at most two 19-digit coefficients multiplied
// together, i.e. up to 38 digits).
var bpow10 = func() [39]*bint {
	var arr [39]*bint
	ten := big.NewInt(10)
	v := big.NewInt(1)
	for i := range arr {
		z := new(big.Int).Set(v)
		arr[i] = (*bint)(z)
		v.Mul(v, ten)
	}
	return arr
}()

func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

// bpool recycles *big.Int scratch values the way the teacher's sync.Pool
// (integer.go's bpool) avoids per-call allocation in hot arithmetic paths.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

func getBint() *bint {
	return bpool.Get().(*bint)
}

func putBint(b *bint) {
	bpool.Put(b)
}

func newBintFromInt64(x int64) *bint {
	b := getBint()
	b.setInt64(x)
	return b
}

func (z *bint) big() *big.Int { return (*big.Int)(z) }

func (z *bint) sign() int { return z.big().Sign() }

func (z *bint) cmp(x *bint) int { return z.big().Cmp(x.big()) }

func (z *bint) string() string { return z.big().String() }

func (z *bint) setBint(x *bint) { z.big().Set(x.big()) }

func (z *bint) setInt64(x int64) { z.big().SetInt64(x) }

func (z *bint) setUint64(x uint64) { z.big().SetUint64(x) }

// int64 reports whether z fits in an int64 and, if so, its value.
func (z *bint) int64() (int64, bool) {
	if !z.big().IsInt64() {
		return 0, false
	}
	return z.big().Int64(), true
}

func (z *bint) add(x, y *bint) { z.big().Add(x.big(), y.big()) }

func (z *bint) sub(x, y *bint) { z.big().Sub(x.big(), y.big()) }

func (z *bint) neg(x *bint) { z.big().Neg(x.big()) }

func (z *bint) abs(x *bint) { z.big().Abs(x.big()) }

func (z *bint) mul(x, y *bint) { z.big().Mul(x.big(), y.big()) }

// quoRem computes z = x/y (truncated toward zero) and r = x - y*z.
func (z *bint) quoRem(x, y, r *bint) {
	z.big().QuoRem(x.big(), y.big(), r.big())
}

// pow10At returns 10^power as a *bint, using the cache when possible.
func pow10At(power int) *bint {
	if power >= 0 && power < len(bpow10) {
		return bpow10[power]
	}
	z := getBint()
	ten := newBintFromInt64(10)
	defer putBint(ten)
	p := newBintFromInt64(int64(power))
	defer putBint(p)
	z.big().Exp(ten.big(), p.big(), nil)
	return z
}

// lsh computes z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	y := pow10At(shift)
	z.mul(x, y)
}

// shiftBint computes round(x / 10^shift) for an arbitrary-magnitude x,
// applying the requested Policy's rounding mode and returning an int64 iff
// the rounded result fits (Checked mode fails otherwise; Unchecked mode
// truncates to the low 64 bits, matching two's-complement wraparound).
func shiftBint(x *bint, shift int, sign int, p Policy) (int64, error) {
	if shift <= 0 {
		v, ok := x.int64()
		if ok {
			if sign < 0 {
				return negChecked(v, p)
			}
			return v, nil
		}
		if p.Overflow == Checked {
			return 0, errOverflow("shift", 0)
		}
		return wrapBintToInt64(x, sign), nil
	}
	y := pow10At(shift)
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.quoRem(x, y, r)

	// Classify the remainder against the divisor without assuming either
	// fits in 64 bits.
	var tp truncatedPart
	switch {
	case r.sign() == 0:
		tp = tpZero
	default:
		dbl := getBint()
		defer putBint(dbl)
		dbl.big().Lsh(r.big(), 1)
		switch dbl.cmp(y) {
		case -1:
			tp = tpLessThanHalf
		case 0:
			tp = tpEqualToHalf
		default:
			tp = tpGreaterThanHalf
		}
	}

	var lastDigit int64
	if lv, ok := q.int64(); ok {
		lastDigit = lv % 10
	} else {
		ten := newBintFromInt64(10)
		defer putBint(ten)
		m := getBint()
		defer putBint(m)
		rq := getBint()
		defer putBint(rq)
		rq.quoRem(q, ten, m)
		lastDigit, _ = m.int64()
	}

	inc, err := roundingIncrement(p.Rounding, sign, lastDigit, tp)
	if err != nil {
		return 0, err
	}

	qv, ok := q.int64()
	if !ok {
		if p.Overflow == Checked {
			return 0, errOverflow("shift", 0)
		}
		return wrapBintToInt64(q, sign) + inc, nil
	}
	if sign < 0 {
		qv = -qv
	}
	if p.Overflow == Checked {
		return checkedAdd(qv, inc)
	}
	return qv + inc, nil
}

// quoBint computes round(num / denom) for arbitrary-magnitude non-negative
// num and denom, applying the requested Policy's rounding mode. Unlike
// shiftBint (which always divides by a power of ten), denom here is an
// arbitrary big.Int magnitude — the path quoUnscaled falls back to once the
// quotient of its 128-bit scaled numerator would not fit in 64 bits.
func quoBint(num, denom *bint, sign int, p Policy) (int64, error) {
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.quoRem(num, denom, r)

	var tp truncatedPart
	switch {
	case r.sign() == 0:
		tp = tpZero
	default:
		dbl := getBint()
		defer putBint(dbl)
		dbl.big().Lsh(r.big(), 1)
		switch dbl.cmp(denom) {
		case -1:
			tp = tpLessThanHalf
		case 0:
			tp = tpEqualToHalf
		default:
			tp = tpGreaterThanHalf
		}
	}

	var lastDigit int64
	if lv, ok := q.int64(); ok {
		lastDigit = lv % 10
	} else {
		ten := newBintFromInt64(10)
		defer putBint(ten)
		m := getBint()
		defer putBint(m)
		rq := getBint()
		defer putBint(rq)
		rq.quoRem(q, ten, m)
		lastDigit, _ = m.int64()
	}

	inc, err := roundingIncrement(p.Rounding, sign, lastDigit, tp)
	if err != nil {
		return 0, err
	}

	qv, ok := q.int64()
	if !ok {
		if p.Overflow == Checked {
			return 0, errOverflow("div", 0, 0)
		}
		return wrapBintToInt64(q, sign) + inc, nil
	}
	if sign < 0 {
		qv = -qv
	}
	if p.Overflow == Checked {
		return checkedAdd(qv, inc)
	}
	return qv + inc, nil
}

func negChecked(v int64, p Policy) (int64, error) {
	if p.Overflow == Checked {
		return checkedNeg(v)
	}
	return uncheckedNeg(v), nil
}

// wrapBintToInt64 truncates a non-negative magnitude to the low 64 bits and
// reapplies sign, the big.Int analogue of plain two's-complement wrap.
func wrapBintToInt64(x *bint, sign int) int64 {
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	m := new(big.Int).Mod(x.big(), mod)
	v := int64(m.Uint64())
	if sign < 0 {
		return -v
	}
	return v
}
