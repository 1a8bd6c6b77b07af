package decimal

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// Decimal is a signed fixed-point number: an unscaled int64 coefficient
// together with a scale in [0, MaxScale] giving the number of digits to its
// right of the decimal point. The zero value is 0 at scale 0.
//
// Every arithmetic method takes a Policy explicitly rather than storing one
// on the value, so the same Decimal can be combined under different
// rounding/overflow rules at different call sites — the scale lives on the
// value, the rest of the "arithmetic instance" travels with the call.
type Decimal struct {
	unscaled int64
	scale    int8
}

// Zero is the Decimal 0 at scale 0.
var Zero = Decimal{}

// New constructs a Decimal directly from its unscaled coefficient and scale.
func New(unscaled int64, scale int) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	return Decimal{unscaled: unscaled, scale: int8(scale)}, nil
}

// MustNew is like New but panics on error.
func MustNew(unscaled int64, scale int) Decimal {
	d, err := New(unscaled, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromInt64 constructs a Decimal representing the integer v at scale.
func NewFromInt64(v int64, scale int, p Policy) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	u, err := unscaledFromInt64(v, scale, p)
	if err != nil {
		return Decimal{}, rethrow("NewFromInt64", err, v, int64(scale))
	}
	return Decimal{unscaled: u, scale: int8(scale)}, nil
}

// Int64 truncates d to its integral part.
func (d Decimal) Int64() int64 {
	return unscaledToInt64(d.unscaled, int(d.scale))
}

// NewFromFloat64 constructs a Decimal approximating f at scale.
func NewFromFloat64(f float64, scale int, p Policy) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	u, err := unscaledFromFloat64(f, scale, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: int8(scale)}, nil
}

// Float64 converts d to the nearest float64.
func (d Decimal) Float64() float64 {
	return unscaledToFloat64(d.unscaled, int(d.scale))
}

// Float32 converts d to the nearest float32.
func (d Decimal) Float32() float32 {
	return unscaledToFloat32(d.unscaled, int(d.scale))
}

// NewFromBigInt constructs a Decimal representing v at scale.
func NewFromBigInt(v *big.Int, scale int, p Policy) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	u, err := unscaledFromBigInt(v, scale, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: int8(scale)}, nil
}

// BigInt returns the truncated integer part of d as an arbitrary-precision integer.
func (d Decimal) BigInt() *big.Int {
	return unscaledToBigInt(d.unscaled, int(d.scale))
}

// NewFromBigFloat constructs a Decimal approximating v at scale.
func NewFromBigFloat(v *big.Float, scale int, p Policy) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	u, err := unscaledFromBigFloat(v, scale, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: int8(scale)}, nil
}

// BigFloat returns d as a 200-bit-precision binary float, which is exact
// only when d's fractional part has an exact binary form.
func (d Decimal) BigFloat() *big.Float {
	return unscaledToBigFloat(d.unscaled, int(d.scale))
}

// Parse parses s as a decimal literal at the given target scale.
func Parse(s string, scale int, p Policy) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	u, err := parseUnscaled(s, scale, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: int8(scale)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string, scale int, p Policy) Decimal {
	d, err := Parse(s, scale, p)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseExact parses s, inferring its scale from the number of fractional
// digits (and any exponent) the literal itself carries, so no information
// is rounded away.
func ParseExact(s string) (Decimal, error) {
	scale, err := naturalScale(s)
	if err != nil {
		return Decimal{}, err
	}
	return Parse(s, scale, PolicyDownUnchecked)
}

// String renders d in canonical form: exactly Scale() fractional digits, a
// leading zero for magnitudes below one, and a leading "-" when negative.
func (d Decimal) String() string {
	return formatUnscaled(d.unscaled, int(d.scale))
}

// Unscaled returns d's unscaled coefficient.
func (d Decimal) Unscaled() int64 { return d.unscaled }

// Scale returns the number of fractional digits d carries.
func (d Decimal) Scale() int { return int(d.scale) }

// Sign returns -1, 0, or 1 according to the sign of d.
func (d Decimal) Sign() int { return signOf(d.unscaled) }

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool { return d.unscaled == 0 }

// IsNeg reports whether d is strictly negative.
func (d Decimal) IsNeg() bool { return d.unscaled < 0 }

// IsPos reports whether d is strictly positive.
func (d Decimal) IsPos() bool { return d.unscaled > 0 }

// ---- Arithmetic ----

// Add returns d + e, at d's scale.
func (d Decimal) Add(e Decimal, p Policy) (Decimal, error) {
	u, err := addUnscaled(d.unscaled, int(d.scale), e.unscaled, int(e.scale), p)
	if err != nil {
		return Decimal{}, rethrow("Add", err, d.unscaled, e.unscaled)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Sub returns d - e, at d's scale.
func (d Decimal) Sub(e Decimal, p Policy) (Decimal, error) {
	u, err := subUnscaled(d.unscaled, int(d.scale), e.unscaled, int(e.scale), p)
	if err != nil {
		return Decimal{}, rethrow("Sub", err, d.unscaled, e.unscaled)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Mul returns d * e, at d's scale.
func (d Decimal) Mul(e Decimal, p Policy) (Decimal, error) {
	u, err := mulUnscaled(d.unscaled, e.unscaled, int(e.scale), p)
	if err != nil {
		return Decimal{}, rethrow("Mul", err, d.unscaled, e.unscaled)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// MulInt64 returns d * l, at d's scale.
func (d Decimal) MulInt64(l int64, p Policy) (Decimal, error) {
	u, err := mulUnscaled(d.unscaled, l, 0, p)
	if err != nil {
		return Decimal{}, rethrow("MulInt64", err, d.unscaled, l)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Square returns d * d, at d's scale.
func (d Decimal) Square(p Policy) (Decimal, error) {
	u, err := squareUnscaled(d.unscaled, int(d.scale), p)
	if err != nil {
		return Decimal{}, rethrow("Square", err, d.unscaled)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Quo returns d / e, at d's scale.
func (d Decimal) Quo(e Decimal, p Policy) (Decimal, error) {
	u, err := quoUnscaled(d.unscaled, e.unscaled, int(e.scale), p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// QuoInt64 returns d / l, at d's scale.
func (d Decimal) QuoInt64(l int64, p Policy) (Decimal, error) {
	u, err := quoByLong(d.unscaled, l, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// QuoRem returns the truncated quotient and remainder of d / e, both at d's scale.
func (d Decimal) QuoRem(e Decimal, p Policy) (q, r Decimal, err error) {
	qu, ru, err := quoRemUnscaled(d.unscaled, int(d.scale), e.unscaled, int(e.scale), p)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return Decimal{unscaled: qu, scale: d.scale}, Decimal{unscaled: ru, scale: d.scale}, nil
}

// Invert returns 1 / d, at d's scale.
func (d Decimal) Invert(p Policy) (Decimal, error) {
	u, err := invertUnscaled(d.unscaled, int(d.scale), p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Sqrt returns the square root of d, at d's scale. Fails for negative d.
func (d Decimal) Sqrt(p Policy) (Decimal, error) {
	u, err := sqrtUnscaled(d.unscaled, int(d.scale), p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Pow returns d^n, at d's scale, for n in [-999999999, 999999999]. A result
// whose integer part does not fit in an int64 fails with ErrOverflow under
// either overflow mode; it is not wrapped.
func (d Decimal) Pow(n int, p Policy) (Decimal, error) {
	u, err := powUnscaled(d.unscaled, int(d.scale), n, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Avg returns the average of d and e, rescaling e to d's scale first if needed.
func (d Decimal) Avg(e Decimal, p Policy) (Decimal, error) {
	eu := e.unscaled
	if e.scale != d.scale {
		rescaled, err := e.Rescale(int(d.scale), p)
		if err != nil {
			return Decimal{}, err
		}
		eu = rescaled.unscaled
	}
	u, err := avgUnscaled(d.unscaled, eu, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Neg returns -d.
func (d Decimal) Neg(p Policy) (Decimal, error) {
	var u int64
	var err error
	if p.Overflow == Checked {
		u, err = checkedNeg(d.unscaled)
	} else {
		u = uncheckedNeg(d.unscaled)
	}
	if err != nil {
		return Decimal{}, rethrow("Neg", err, d.unscaled)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// Abs returns |d|.
func (d Decimal) Abs(p Policy) (Decimal, error) {
	var u int64
	var err error
	if p.Overflow == Checked {
		u, err = checkedAbs(d.unscaled)
	} else {
		u = uncheckedAbs(d.unscaled)
	}
	if err != nil {
		return Decimal{}, rethrow("Abs", err, d.unscaled)
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// CopySign returns a value with the magnitude of d and the sign of e.
func (d Decimal) CopySign(e Decimal) Decimal {
	u := uncheckedAbs(d.unscaled)
	if e.unscaled < 0 {
		u = uncheckedNeg(u)
	}
	return Decimal{unscaled: u, scale: d.scale}
}

// ShiftLeft returns round(d * 2^n), at d's scale.
func (d Decimal) ShiftLeft(n int, p Policy) (Decimal, error) {
	u, err := shiftLeftUnscaled(d.unscaled, n, p)
	if err != nil {
		return Decimal{}, rethrow("ShiftLeft", err, d.unscaled, int64(n))
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// ShiftRight returns round(d / 2^n), at d's scale.
func (d Decimal) ShiftRight(n int, p Policy) (Decimal, error) {
	u, err := shiftRightUnscaled(d.unscaled, n, p)
	if err != nil {
		return Decimal{}, rethrow("ShiftRight", err, d.unscaled, int64(n))
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// ---- Scale manipulation ----

// Rescale returns d re-expressed at the given scale, rounding if the new
// scale is coarser.
func (d Decimal) Rescale(scale int, p Policy) (Decimal, error) {
	if !isValidScale(scale) {
		return Decimal{}, errIllegalArgument("scale %d out of range [0, %d]", scale, MaxScale)
	}
	u, err := mulPow10(d.unscaled, scale-int(d.scale), p)
	if err != nil {
		return Decimal{}, rethrow("Rescale", err, d.unscaled, int64(scale))
	}
	return Decimal{unscaled: u, scale: int8(scale)}, nil
}

// Round returns d rounded to the given scale using p.Rounding, without
// changing d's own scale — the discarded digits are folded back in at the
// original scale. It rescales down to the target scale, then back up,
// both steps sharing the same overflow mode.
func (d Decimal) Round(scale int, p Policy) (Decimal, error) {
	r, err := d.Rescale(scale, p)
	if err != nil {
		return Decimal{}, err
	}
	return r.Rescale(int(d.scale), Policy{Rounding: Down, Overflow: p.Overflow})
}

// Trunc is Round with Down rounding.
func (d Decimal) Trunc(scale int, overflow OverflowMode) (Decimal, error) {
	return d.Round(scale, Policy{Rounding: Down, Overflow: overflow})
}

// Ceil is Round with Ceiling rounding.
func (d Decimal) Ceil(scale int, overflow OverflowMode) (Decimal, error) {
	return d.Round(scale, Policy{Rounding: Ceiling, Overflow: overflow})
}

// Floor is Round with Floor rounding.
func (d Decimal) Floor(scale int, overflow OverflowMode) (Decimal, error) {
	return d.Round(scale, Policy{Rounding: Floor, Overflow: overflow})
}

// RoundToPrecision zeros the digits beyond the given fractional precision
// (negative precision also zeros integer digits), preserving scale.
func (d Decimal) RoundToPrecision(precision int, p Policy) (Decimal, error) {
	u, err := roundToPrecisionUnscaled(d.unscaled, int(d.scale), precision, p)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: u, scale: d.scale}, nil
}

// ---- Comparison ----

// Cmp compares d and e numerically, independent of scale.
func (d Decimal) Cmp(e Decimal) int {
	return cmpNumeric(d.unscaled, int(d.scale), e.unscaled, int(e.scale))
}

// CmpAbs compares |d| and |e| numerically.
func (d Decimal) CmpAbs(e Decimal) int {
	a := getBint()
	defer putBint(a)
	a.setInt64(d.unscaled)
	a.abs(a)
	b := getBint()
	defer putBint(b)
	b.setInt64(e.unscaled)
	b.abs(b)
	switch {
	case d.scale < e.scale:
		a.lsh(a, int(e.scale-d.scale))
	case e.scale < d.scale:
		b.lsh(b, int(d.scale-e.scale))
	}
	return a.cmp(b)
}

// CmpTotal imposes a total order that also distinguishes representations of
// the same numeric value at different scales (e.g. 1.0 orders before 1.00).
func (d Decimal) CmpTotal(e Decimal) int {
	if c := d.Cmp(e); c != 0 {
		return c
	}
	switch {
	case d.scale < e.scale:
		return -1
	case d.scale > e.scale:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and e are numerically equal.
func (d Decimal) Equal(e Decimal) bool { return d.Cmp(e) == 0 }

// Min returns whichever of d and e is numerically smaller.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns whichever of d and e is numerically larger.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Clamp restricts d to the closed interval [lo, hi].
func (d Decimal) Clamp(lo, hi Decimal) Decimal {
	if d.Cmp(lo) < 0 {
		return lo
	}
	if d.Cmp(hi) > 0 {
		return hi
	}
	return d
}

// ---- Aggregation ----

// Sum returns the sum of ds, at the scale of ds[0]. It fails if ds is empty.
func Sum(p Policy, ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, errIllegalArgument("Sum requires at least one value")
	}
	acc := ds[0]
	var err error
	for _, d := range ds[1:] {
		acc, err = acc.Add(d, p)
		if err != nil {
			return Decimal{}, err
		}
	}
	return acc, nil
}

// Prod returns the product of ds, at the scale of ds[0]. It fails if ds is empty.
func Prod(p Policy, ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, errIllegalArgument("Prod requires at least one value")
	}
	acc := ds[0]
	var err error
	for _, d := range ds[1:] {
		acc, err = acc.Mul(d, p)
		if err != nil {
			return Decimal{}, err
		}
	}
	return acc, nil
}

// Mean returns the arithmetic mean of ds, at the scale of ds[0].
func Mean(p Policy, ds ...Decimal) (Decimal, error) {
	sum, err := Sum(p, ds...)
	if err != nil {
		return Decimal{}, err
	}
	return sum.QuoInt64(int64(len(ds)), p)
}

// AddMul returns d + e*f.
func (d Decimal) AddMul(e, f Decimal, p Policy) (Decimal, error) {
	ef, err := e.Mul(f, p)
	if err != nil {
		return Decimal{}, err
	}
	return d.Add(ef, p)
}

// SubMul returns d - e*f.
func (d Decimal) SubMul(e, f Decimal, p Policy) (Decimal, error) {
	ef, err := e.Mul(f, p)
	if err != nil {
		return Decimal{}, err
	}
	return d.Sub(ef, p)
}

// AddQuo returns d + e/f.
func (d Decimal) AddQuo(e, f Decimal, p Policy) (Decimal, error) {
	ef, err := e.Quo(f, p)
	if err != nil {
		return Decimal{}, err
	}
	return d.Add(ef, p)
}

// SubQuo returns d - e/f.
func (d Decimal) SubQuo(e, f Decimal, p Policy) (Decimal, error) {
	ef, err := e.Quo(f, p)
	if err != nil {
		return Decimal{}, err
	}
	return d.Sub(ef, p)
}

// ---- Marshaling ----

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, inferring scale from
// the literal the way ParseExact does.
func (d *Decimal) UnmarshalText(data []byte) error {
	v, err := ParseExact(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler, encoding d as a quoted string so
// its exact decimal value survives round-tripping through float64-backed
// JSON decoders.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a quoted
// string or a bare numeric JSON token.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseExact(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler as a fixed 9-byte
// encoding: one scale byte followed by the big-endian unscaled coefficient.
func (d Decimal) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 9)
	buf[0] = byte(d.scale)
	binary.BigEndian.PutUint64(buf[1:], uint64(d.unscaled))
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 9 {
		return errIllegalArgument("invalid Decimal binary encoding length %d", len(data))
	}
	scale := int(data[0])
	if !isValidScale(scale) {
		return errIllegalArgument("invalid Decimal binary scale %d", scale)
	}
	d.unscaled = int64(binary.BigEndian.Uint64(data[1:]))
	d.scale = int8(scale)
	return nil
}

// Scan implements database/sql.Scanner.
func (d *Decimal) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Decimal{}
		return nil
	case []byte:
		return d.UnmarshalText(v)
	case string:
		return d.UnmarshalText([]byte(v))
	case int64:
		nd, err := NewFromInt64(v, 0, PolicyHalfEvenUnchecked)
		if err != nil {
			return err
		}
		*d = nd
		return nil
	case float64:
		nd, err := NewFromFloat64(v, MaxScale, PolicyHalfEvenUnchecked)
		if err != nil {
			return err
		}
		*d = nd
		return nil
	default:
		return errIllegalArgument("unsupported Scan source type %T", value)
	}
}

// Value implements database/sql/driver.Valuer.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements fmt.Formatter, supporting %v, %s and %q.
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(state, d.String())
	case 'q':
		io.WriteString(state, strconv.Quote(d.String()))
	default:
		fmt.Fprintf(state, "%%!%c(Decimal=%s)", verb, d.String())
	}
}
