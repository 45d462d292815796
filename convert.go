package bigint

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// NewFromBigInt returns an integer equal to b.
// A nil b is treated as 0.
func NewFromBigInt(b *big.Int) BigInt {
	if b == nil {
		return BigInt{}
	}
	return newBigInt(b.Sign() < 0, newDintFromBig(b))
}

// BigInt returns x as a newly allocated [big.Int].
//
// [big.Int]: https://pkg.go.dev/math/big#Int
func (x BigInt) BigInt() *big.Int {
	z := new(big.Int)
	ten := big.NewInt(10)
	d := new(big.Int)
	for i := len(x.abs) - 1; i >= 0; i-- {
		z.Mul(z, ten)
		z.Add(z, d.SetInt64(int64(x.abs[i])))
	}
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Uint64 returns x as uint64.
// If x cannot be represented as uint64 (it is negative or too large),
// the result is 0 and ok is false.
func (x BigInt) Uint64() (u uint64, ok bool) {
	if x.neg {
		return 0, false
	}
	return x.abs.uint64()
}

// Int64 returns x as int64.
// If x cannot be represented as int64, the result is 0 and ok is false.
func (x BigInt) Int64() (i int64, ok bool) {
	u, ok := x.abs.uint64()
	if !ok {
		return 0, false
	}
	switch {
	case x.neg && u == uint64(math.MaxInt64)+1:
		return math.MinInt64, true
	case u > math.MaxInt64:
		return 0, false
	case x.neg:
		return -int64(u), true
	}
	return int64(u), true
}

// NewFromDecimal converts a decimal to an integer.
//
// NewFromDecimal returns an error wrapping [ErrInexact] if d has a non-zero
// fractional part.
// Trailing zeros after the decimal point are allowed, so 12.00 is 12.
func NewFromDecimal(d decimal.Decimal) (BigInt, error) {
	if !d.IsInt() {
		return BigInt{}, fmt.Errorf("fractional part of %v: %w", d, ErrInexact)
	}
	coef := d.Coef()
	for i := 0; i < d.Scale(); i++ {
		coef /= 10
	}
	return newBigInt(d.IsNeg(), newDint(coef)), nil
}

// Decimal converts x to a decimal with scale 0.
//
// Decimal returns an error wrapping [ErrOverflow] if x has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
func (x BigInt) Decimal() (decimal.Decimal, error) {
	if x.Len() > decimal.MaxPrec {
		return decimal.Decimal{}, fmt.Errorf("a decimal can have at most %v digit(s), but %v has %v digit(s): %w", decimal.MaxPrec, x, x.Len(), ErrOverflow)
	}
	d, err := decimal.Parse(x.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}

// Scan implements the [sql.Scanner] interface.
// Values of type string, []byte and int64 are accepted.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *BigInt) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = Parse(value)
	case []byte:
		*x, err = Parse(string(value))
	case int64:
		*x = NewFromInt64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, BigInt{}, ErrInvalidFormat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [BigInt.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x BigInt) Value() (driver.Value, error) {
	return x.String(), nil
}

// NullBigInt represents an integer that can be null.
// Its zero value is null.
// NullBigInt is not thread-safe.
type NullBigInt struct {
	BigInt BigInt
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [BigInt.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullBigInt) Scan(value any) error {
	if value == nil {
		n.BigInt = BigInt{}
		n.Valid = false
		return nil
	}
	err := n.BigInt.Scan(value)
	if err != nil {
		n.BigInt = BigInt{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [BigInt.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullBigInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.BigInt.Value()
}
