/*
Package decimal implements signed fixed-point decimal numbers with
explicit, per-call control over rounding and overflow behavior.

# Internal Representation

Decimal is a struct with two fields:

  - Unscaled:
    A signed int64 carrying the numeric value without its decimal point.
  - Scale:
    A non-negative integer indicating how many of the unscaled value's
    rightmost digits fall after the decimal point.
    For example, an unscaled value of 12345 with scale 2 represents 123.45.
    The scale can be understood as the inverse of the exponent in
    scientific notation: a scale of 2 corresponds to an exponent of -2.
    The range of allowed scales is 0 to [MaxScale].

The numerical value of a Decimal is Unscaled / 10^Scale. This allows the
same numeric value to have multiple representations — 1, 1.0 and 1.00 are
numerically equal but carry different scales — which [Decimal.Cmp] treats
as equal and [Decimal.CmpTotal] does not.

# Policy: Rounding and Overflow

Every method that can lose precision or exceed an int64's range takes a
[Policy] rather than assuming one. A Policy bundles:

  - [RoundingMode]: how a discarded remainder is folded back into the kept
    digits (Up, Down, Ceiling, Floor, HalfUp, HalfDown, HalfEven, or
    Unnecessary, which fails instead of rounding).
  - [OverflowMode]: whether an out-of-range result wraps silently
    (Unchecked, matching plain two's-complement int64 arithmetic) or fails
    with [ErrOverflow] ([Checked]).

A Decimal's scale together with the Policy passed to a given call form the
complete "arithmetic instance" governing that operation; the scale lives on
the value itself so it is never forgotten between calls, while the
rounding and overflow rules are chosen fresh at each call site.

# Constraints

An unscaled int64 can represent at most 19 significant decimal digits.
Increasing scale narrows the representable integer range accordingly: at
scale 0 a Decimal can hold any value from math.MinInt64 to math.MaxInt64,
while at [MaxScale] it can only hold integer values in [-9, 9].

# Error Handling

Every fallible operation returns a plain Go error wrapping exactly one of
four sentinel values — [ErrDivideByZero], [ErrOverflow],
[ErrRoundingNecessary], or [ErrIllegalArgument] — checkable with
errors.Is. There is no bespoke error type hierarchy; additional context is
carried in the error's message, not in its type.

# Conversions

Decimal converts to and from int64, float64, *big.Int and *big.Float, and
to float32 (there is no constructor from float32), and implements the standard marshaling interfaces
(encoding.TextMarshaler, json.Marshaler, encoding.BinaryMarshaler,
database/sql.Scanner and database/sql/driver.Valuer) so it can be used
directly as a struct field, a JSON value, or a database column.
*/
package decimal
