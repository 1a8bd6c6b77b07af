package decimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics on error.
func (d Decimal) MustAdd(e Decimal, p Policy) Decimal {
	f, err := d.Add(e, p)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics on error.
func (d Decimal) MustSub(e Decimal, p Policy) Decimal {
	f, err := d.Sub(e, p)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics on error.
func (d Decimal) MustMul(e Decimal, p Policy) Decimal {
	f, err := d.Mul(e, p)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics on error.
func (d Decimal) MustQuo(e Decimal, p Policy) Decimal {
	f, err := d.Quo(e, p)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", d, e, err))
	}
	return f
}
