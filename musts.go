package bigint

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustDigit is like [BigInt.Digit] but panics if i is out of range.
func (x BigInt) MustDigit(i int) int {
	d, err := x.Digit(i)
	if err != nil {
		panic(fmt.Sprintf("MustDigit(%v) failed: %v", i, err))
	}
	return d
}

// MustQuo is like [BigInt.Quo] but panics if computing error.
func (x BigInt) MustQuo(y BigInt) BigInt {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustRem is like [BigInt.Rem] but panics if computing error.
func (x BigInt) MustRem(y BigInt) BigInt {
	z, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return z
}

// MustQuoRem is like [BigInt.QuoRem] but panics if computing error.
func (x BigInt) MustQuoRem(y BigInt) (BigInt, BigInt) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}

// MustPow is like [BigInt.Pow] but panics if computing error.
func (x BigInt) MustPow(exp int) BigInt {
	z, err := x.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return z
}
