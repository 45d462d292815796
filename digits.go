package bigint

import (
	"math"
	"math/big"
)

// dint (Decimal INTeger) is an unsigned integer stored as a slice of decimal
// digits, least significant digit first:
//
//	x = x[n-1]*10^(n-1) + ... + x[1]*10 + x[0]
//
// A dint is normalized if it has no most significant zero digits.
// The normalized representation of 0 is the empty (or nil) slice.
//
// Methods of dint never modify their receivers or arguments.
// Every result is a freshly allocated slice, so a dint stored in a [BigInt]
// can be shared between copies of that BigInt.
type dint []byte

// newDint converts uint64 to dint.
func newDint(u uint64) dint {
	if u == 0 {
		return nil
	}
	z := make(dint, 0, 20)
	for u > 0 {
		z = append(z, byte(u%10))
		u /= 10
	}
	return z
}

// newDintFromBig converts the absolute value of b to dint.
func newDintFromBig(b *big.Int) dint {
	s := new(big.Int).Abs(b).Text(10)
	if s == "0" {
		return nil
	}
	z := make(dint, len(s))
	for i := 0; i < len(s); i++ {
		z[len(s)-1-i] = s[i] - '0'
	}
	return z
}

// norm removes most significant zero digits.
// norm reslices x; it does not copy.
func (x dint) norm() dint {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return x[:i]
}

func (x dint) isZero() bool {
	return len(x) == 0
}

func (x dint) isOdd() bool {
	return len(x) > 0 && x[0]&1 != 0
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x dint) prec() int {
	return len(x)
}

// cmp compares x and y and returns -1, 0 or +1.
func (x dint) cmp(y dint) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x dint) add(y dint) dint {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(dint, len(x)+1)
	var carry byte
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % 10
		carry = s / 10
	}
	z[len(x)] = carry
	return z.norm()
}

// sub calculates x - y.
// sub assumes that x >= y.
func (x dint) sub(y dint) dint {
	z := make(dint, len(x))
	var borrow byte
	for i := range x {
		d := borrow
		if i < len(y) {
			d += y[i]
		}
		if x[i] < d {
			z[i] = x[i] + 10 - d
			borrow = 1
		} else {
			z[i] = x[i] - d
			borrow = 0
		}
	}
	return z.norm()
}

// dist calculates |x - y|.
func (x dint) dist(y dint) dint {
	if x.cmp(y) >= 0 {
		return x.sub(y)
	}
	return y.sub(x)
}

// inc calculates x + 1.
func (x dint) inc() dint {
	z := make(dint, len(x)+1)
	copy(z, x)
	i := 0
	for z[i] == 9 {
		z[i] = 0
		i++
	}
	z[i]++
	return z.norm()
}

// dec calculates x - 1.
// dec assumes that x > 0.
func (x dint) dec() dint {
	z := make(dint, len(x))
	copy(z, x)
	i := 0
	for z[i] == 0 {
		z[i] = 9
		i++
	}
	z[i]--
	return z.norm()
}

// hlf (Half) calculates ⌊x / 2⌋.
// The digits are scanned from the most significant one, carrying the
// remainder of each step into the next.
func (x dint) hlf() dint {
	z := make(dint, len(x))
	var carry byte
	for i := len(x) - 1; i >= 0; i-- {
		cur := carry*10 + x[i]
		z[i] = cur / 2
		carry = cur % 2
	}
	return z.norm()
}

// mul calculates x * y.
func (x dint) mul(y dint) dint {
	// Special cases
	switch {
	case x.isZero() || y.isZero():
		return nil
	case len(y) == 1:
		return x.mulDigit(y[0])
	case len(x) == 1:
		return y.mulDigit(x[0])
	}
	// General case
	acc := make([]uint64, len(x)+len(y))
	for i, a := range x {
		if a == 0 {
			continue
		}
		for j, b := range y {
			acc[i+j] += uint64(a) * uint64(b)
		}
	}
	z := make(dint, len(acc))
	var carry uint64
	for i, s := range acc {
		s += carry
		z[i] = byte(s % 10)
		carry = s / 10
	}
	return z.norm()
}

// mulDigit calculates x * d, where d is a single decimal digit.
func (x dint) mulDigit(d byte) dint {
	if d == 0 || x.isZero() {
		return nil
	}
	z := make(dint, len(x)+1)
	var carry byte
	for i, a := range x {
		p := a*d + carry
		z[i] = p % 10
		carry = p / 10
	}
	z[len(x)] = carry
	return z.norm()
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// quoRem assumes that y > 0.
func (x dint) quoRem(y dint) (q, r dint) {
	// Special cases
	switch {
	case x.cmp(y) < 0:
		return nil, x
	case len(y) == 1:
		q, d := x.quoDigit(y[0])
		return q, newDint(uint64(d))
	}
	// General case: schoolbook long division, one quotient digit per
	// dividend digit. rem is owned by this function and reused in place.
	q = make(dint, len(x))
	rem := make(dint, 0, len(y)+1)
	for i := len(x) - 1; i >= 0; i-- {
		// rem = rem * 10 + x[i]
		rem = append(rem, 0)
		copy(rem[1:], rem)
		rem[0] = x[i]
		rem = rem.norm()
		var d byte
		for rem.cmp(y) >= 0 {
			rem.subInPlace(y)
			rem = rem.norm()
			d++
		}
		q[i] = d
	}
	r = make(dint, len(rem))
	copy(r, rem)
	return q.norm(), r.norm()
}

// quoDigit calculates q = ⌊x / d⌋, r = x - d * q, where d is a non-zero
// single decimal digit.
func (x dint) quoDigit(d byte) (q dint, r byte) {
	q = make(dint, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		cur := r*10 + x[i]
		q[i] = cur / d
		r = cur % d
	}
	return q.norm(), r
}

// subInPlace calculates x = x - y, without normalization.
// subInPlace assumes that x >= y and must only be used on slices that are
// not shared.
func (x dint) subInPlace(y dint) {
	var borrow byte
	for i := range x {
		d := borrow
		if i < len(y) {
			d += y[i]
		}
		if x[i] < d {
			x[i] = x[i] + 10 - d
			borrow = 1
		} else {
			x[i] -= d
			borrow = 0
		}
	}
}

// uint64 converts x to uint64 and reports whether the conversion was exact.
func (x dint) uint64() (uint64, bool) {
	if len(x) > 20 {
		return 0, false
	}
	var u uint64
	for i := len(x) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(x[i]))/10 {
			return 0, false
		}
		u = u*10 + uint64(x[i])
	}
	return u, true
}

// appendDigits appends the digits of x, most significant first, to buf.
// 0 is written as "0".
func (x dint) appendDigits(buf []byte) []byte {
	if x.isZero() {
		return append(buf, '0')
	}
	for i := len(x) - 1; i >= 0; i-- {
		buf = append(buf, x[i]+'0')
	}
	return buf
}
