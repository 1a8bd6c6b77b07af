package decimal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RoundingMode selects how a discarded remainder is folded back into the
// kept digits of an arithmetic result.
type RoundingMode int8

const (
	// Up rounds away from zero whenever any discarded digit is non-zero.
	Up RoundingMode = iota
	// Down truncates toward zero, discarding any remainder.
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to the nearest value, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest value, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest value, ties to the even neighbor.
	HalfEven
	// Unnecessary asserts that no rounding is required; a non-zero
	// discarded remainder fails with ErrRoundingNecessary.
	Unnecessary
)

func (r RoundingMode) String() string {
	switch r {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfEven:
		return "HalfEven"
	case Unnecessary:
		return "Unnecessary"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int8(r))
	}
}

// OverflowMode selects whether an operation that cannot represent its exact
// result as an unscaled int64 wraps silently (Unchecked) or fails with
// ErrOverflow (Checked).
type OverflowMode int8

const (
	// Unchecked wraps on overflow, matching plain two's-complement int64 arithmetic.
	Unchecked OverflowMode = iota
	// Checked fails with ErrOverflow instead of wrapping.
	Checked
)

func (o OverflowMode) String() string {
	if o == Checked {
		return "Checked"
	}
	return "Unchecked"
}

// Policy bundles the rounding and overflow behaviour that an arithmetic
// instance applies to every operation it performs. A Policy together with a
// scale forms the "arithmetic instance" of the kernel: Decimal values carry
// their own scale, so only Policy needs to be threaded through call sites.
type Policy struct {
	Rounding RoundingMode
	Overflow OverflowMode
}

// Standard policies covering the most common combinations.
var (
	PolicyHalfEvenUnchecked = Policy{Rounding: HalfEven, Overflow: Unchecked}
	PolicyHalfEvenChecked   = Policy{Rounding: HalfEven, Overflow: Checked}
	PolicyHalfUpUnchecked   = Policy{Rounding: HalfUp, Overflow: Unchecked}
	PolicyHalfUpChecked     = Policy{Rounding: HalfUp, Overflow: Checked}
	PolicyDownUnchecked     = Policy{Rounding: Down, Overflow: Unchecked}
	PolicyDownChecked       = Policy{Rounding: Down, Overflow: Checked}
)

// Sentinel error kinds. Every fallible kernel primitive fails with an error
// that wraps exactly one of these via fmt.Errorf's %w, never a bespoke
// error struct hierarchy.
var (
	ErrDivideByZero      = errors.New("division by zero")
	ErrOverflow          = errors.New("overflow")
	ErrRoundingNecessary = errors.New("rounding was necessary")
	ErrIllegalArgument   = errors.New("illegal argument")
)

// errOverflow builds a Checked-mode diagnostic naming the failing operation
// and its operand string forms, per the spec's requirement that Overflow
// diagnostics "include both operand string forms to aid debugging."
func errOverflow(op string, args ...int64) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.FormatInt(a, 10)
	}
	return fmt.Errorf("%s(%s): %w", op, strings.Join(parts, ", "), ErrOverflow)
}

func errIllegalArgument(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrIllegalArgument)...)
}

// rethrow implements the composed-operation propagation rule of the spec:
// a RoundingNecessary, DivideByZero or IllegalArgument failure is returned
// unchanged, every other failure is wrapped as Overflow with the enclosing
// operation's operand strings.
func rethrow(op string, err error, args ...int64) error {
	if errors.Is(err, ErrRoundingNecessary) || errors.Is(err, ErrDivideByZero) || errors.Is(err, ErrIllegalArgument) {
		return err
	}
	return errOverflow(op, args...)
}
