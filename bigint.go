package bigint

import (
	"errors"
	"fmt"
	"math"
)

// BigInt type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
//
// A BigInt is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: the absolute value of the integer, stored as a sequence of
//     decimal digits, least significant digit first.
//
// The magnitude never has leading zeros, and a BigInt with magnitude 0 is
// never negative.
//
// Methods with value receivers never change their operands and are safe for
// concurrent use by multiple goroutines.
// Methods with pointer receivers ([BigInt.Halve], [BigInt.Inc], [BigInt.Dec],
// [BigInt.Set] and their relatives) mutate the receiver and require external
// synchronization if the variable is shared.
// The digits of a BigInt are never modified once stored: mutating methods
// attach new digits instead.
// This means that an ordinary assignment produces an independent copy:
//
//	a := bigint.MustParse("9")
//	b := a
//	a.Inc() // a == 10, b == 9
type BigInt struct {
	neg bool // indicates whether the integer is negative
	abs dint // the magnitude of the integer
}

var (
	// ErrInvalidFormat is returned when a string is not a valid decimal integer.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrIndexOutOfRange is returned when a digit position is out of range.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidOperation is returned when an operation has no integer result.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInexact is returned when a conversion would lose a fractional part.
	ErrInexact = errors.New("inexact conversion")
	// ErrOverflow is returned when a value does not fit into the target type.
	ErrOverflow = errors.New("overflow")
)

func newBigInt(neg bool, abs dint) BigInt {
	abs = abs.norm()
	if abs.isZero() {
		neg = false
	}
	return BigInt{neg: neg, abs: abs}
}

// New returns an integer equal to n.
func New(n uint64) BigInt {
	return newBigInt(false, newDint(n))
}

// NewFromInt64 returns an integer equal to n.
func NewFromInt64(n int64) BigInt {
	if n == math.MinInt64 {
		return newBigInt(true, newDint(uint64(math.MaxInt64)+1))
	}
	if n < 0 {
		return newBigInt(true, newDint(uint64(-n)))
	}
	return newBigInt(false, newDint(uint64(n)))
}

// Parse converts a string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	007
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros, so "007" is 7 and "-0" is 0.
//
// Parse returns an error wrapping [ErrInvalidFormat] if the string is empty,
// contains no digits, or contains any character other than a leading '-'
// and digits.
// On error the returned integer is always 0.
func Parse(s string) (BigInt, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	if width == 0 {
		return BigInt{}, fmt.Errorf("empty string: %w", ErrInvalidFormat)
	}

	// Sign
	if s[pos] == '-' {
		neg = true
		pos++
	}

	// Leading zeros
	start := pos
	for pos < width && s[pos] == '0' {
		pos++
	}
	lead := pos

	// Digits
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}

	if pos != width {
		return BigInt{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if pos == start {
		return BigInt{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}

	abs := make(dint, width-lead)
	for i := range abs {
		abs[i] = s[width-1-i] - '0'
	}

	return newBigInt(neg, abs), nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x BigInt) String() string {
	buf := make([]byte, 0, x.Len()+1)
	if x.neg {
		buf = append(buf, '-')
	}
	buf = x.abs.appendDigits(buf)
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *BigInt) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	x.Set(y)
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [BigInt.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -1234
//	%q:        "-1234"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x BigInt) Format(state fmt.State, verb rune) {

	// Digits
	digs := x.Len()

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + digs + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case x.IsNeg():
			buf = append(buf, '-')
		case state.Flag('+'):
			buf = append(buf, '+')
		default:
			buf = append(buf, ' ')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = x.abs.appendDigits(buf)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.BigInt="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Len returns number of digits in the magnitude of x.
// The length of 0 is 1.
func (x BigInt) Len() int {
	if x.abs.isZero() {
		return 1
	}
	return x.abs.prec()
}

// Digit returns the digit of the magnitude at position i, where position 0
// is the least significant digit.
//
// Digit returns an error wrapping [ErrIndexOutOfRange] if i is negative
// or not less than [BigInt.Len].
func (x BigInt) Digit(i int) (int, error) {
	if i < 0 || i >= x.Len() {
		return 0, fmt.Errorf("digit %v of %v-digit integer: %w", i, x.Len(), ErrIndexOutOfRange)
	}
	if x.abs.isZero() {
		return 0, nil
	}
	return int(x.abs[i]), nil
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x BigInt) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.abs.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x BigInt) IsPos() bool {
	return !x.abs.isZero() && !x.neg
}

// IsNeg returns true if x < 0.
func (x BigInt) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x BigInt) IsZero() bool {
	return x.abs.isZero()
}

// IsOdd returns true if x is not divisible by 2.
func (x BigInt) IsOdd() bool {
	return x.abs.isOdd()
}

// IsEven returns true if x is divisible by 2.
func (x BigInt) IsEven() bool {
	return !x.abs.isOdd()
}

// Clone returns a copy of x.
// Since the digits of x are never modified in place, Clone is equivalent to
// an assignment and exists for readability at call sites.
func (x BigInt) Clone() BigInt {
	return x
}

// Set sets x to the value of y and returns x.
// Setting x to itself leaves x unchanged.
func (x *BigInt) Set(y BigInt) *BigInt {
	x.neg = y.neg
	x.abs = y.abs
	return x
}

// Halve divides x by 2 in place, discarding the remainder, and returns x.
// The magnitude is halved and the sign is kept, so the result is rounded
// towards zero: 7 becomes 3 and -7 becomes -3.
func (x *BigInt) Halve() *BigInt {
	*x = newBigInt(x.neg, x.abs.hlf())
	return x
}

// Inc adds 1 to x in place and returns x.
// Also see method [BigInt.PostInc].
func (x *BigInt) Inc() *BigInt {
	if x.neg {
		*x = newBigInt(true, x.abs.dec())
	} else {
		*x = newBigInt(false, x.abs.inc())
	}
	return x
}

// PostInc adds 1 to x in place and returns the value x had before.
func (x *BigInt) PostInc() BigInt {
	old := *x
	x.Inc()
	return old
}

// Dec subtracts 1 from x in place and returns x.
// Also see method [BigInt.PostDec].
func (x *BigInt) Dec() *BigInt {
	if x.IsPos() {
		*x = newBigInt(false, x.abs.dec())
	} else {
		*x = newBigInt(true, x.abs.inc())
	}
	return x
}

// PostDec subtracts 1 from x in place and returns the value x had before.
func (x *BigInt) PostDec() BigInt {
	old := *x
	x.Dec()
	return old
}

// Neg returns x with opposite sign.
func (x BigInt) Neg() BigInt {
	return newBigInt(!x.neg, x.abs)
}

// Abs returns absolute value of x.
func (x BigInt) Abs() BigInt {
	return newBigInt(false, x.abs)
}

// CopySign returns x with the same sign as y.
// If y is zero, sign of the result remains unchanged.
func (x BigInt) CopySign(y BigInt) BigInt {
	switch {
	case y.IsZero():
		return x
	case x.IsNeg() != y.IsNeg():
		return x.Neg()
	default:
		return x
	}
}

// Add returns the sum of x and y.
func (x BigInt) Add(y BigInt) BigInt {
	// Same signs
	if x.neg == y.neg {
		return newBigInt(x.neg, x.abs.add(y.abs))
	}
	// Different signs
	neg := x.neg
	if x.abs.cmp(y.abs) < 0 {
		neg = y.neg
	}
	return newBigInt(neg, x.abs.dist(y.abs))
}

// Sub returns the difference of x and y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// Mul returns the product of x and y.
func (x BigInt) Mul(y BigInt) BigInt {
	return newBigInt(x.neg != y.neg, x.abs.mul(y.abs))
}

// Pow returns x raised to the power of exp.
// Pow(0) is 1 for every x, including 0.
//
// Pow returns an error wrapping [ErrInvalidOperation] if exp is negative.
func (x BigInt) Pow(exp int) (BigInt, error) {
	if exp < 0 {
		return BigInt{}, fmt.Errorf("negative exponent %v: %w", exp, ErrInvalidOperation)
	}
	z, b := New(1), x
	for exp > 0 {
		if exp&1 != 0 {
			z = z.Mul(b)
		}
		exp >>= 1
		if exp > 0 {
			b = b.Mul(b)
		}
	}
	return z, nil
}

// QuoRem returns the quotient q and remainder r of x divided by y such that
//
//	x = q * y + r
//
// The quotient is rounded towards zero and the remainder has the same sign
// as x, which matches the convention of [BigInt.Halve].
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt, err error) {
	if y.IsZero() {
		return BigInt{}, BigInt{}, fmt.Errorf("%v / %v: %w", x, y, ErrDivisionByZero)
	}
	qabs, rabs := x.abs.quoRem(y.abs)
	q = newBigInt(x.neg != y.neg, qabs)
	r = newBigInt(x.neg, rabs)
	return q, r, nil
}

// Quo returns the quotient of x divided by y, rounded towards zero.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) Quo(y BigInt) (BigInt, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x divided by y.
// The remainder has the same sign as x.
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) Rem(y BigInt) (BigInt, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x BigInt) Cmp(y BigInt) int {

	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case
	c := x.abs.cmp(y.abs)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares absolute values of x and y and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x BigInt) CmpAbs(y BigInt) int {
	return x.abs.cmp(y.abs)
}

// Equal returns true if x == y.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}

// Max returns maximum of x and y.
// Also see method [BigInt.Cmp].
func (x BigInt) Max(y BigInt) BigInt {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
// Also see method [BigInt.Cmp].
func (x BigInt) Min(y BigInt) BigInt {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
