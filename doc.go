/*
Package bigint implements arbitrary-precision signed integers stored as
decimal digits.
It is designed for code that thinks about numbers digit by digit: counting,
indexing and halving decimal representations, as well as ordinary integer
arithmetic without an upper bound.

# Representation

[BigInt] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of decimal digits (0 to 9), least significant digit
    first. Position 0 is the ones digit, position 1 the tens digit, and so on.

The magnitude never has leading zeros, so every integer has exactly one
representation.
The value 0 has an empty magnitude, a length of 1, and is never negative.
The zero value of [BigInt] is 0 and is ready to use.

# Value semantics

Stored digits are never modified.
Methods that change an integer in place, such as [BigInt.Inc], [BigInt.Dec]
and [BigInt.Halve], compute new digits and attach them to the receiver.
As a result, copying a [BigInt] by assignment always yields an independent
value, and integers can be passed by value freely.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [BigInt.String], [BigInt.Format].
  - from/to uint64 and int64:
    [New], [NewFromInt64], [BigInt.Uint64], [BigInt.Int64].
  - from/to [big.Int]:
    [NewFromBigInt], [BigInt.BigInt].
  - from/to [decimal.Decimal]:
    [NewFromDecimal], [BigInt.Decimal].

See the documentation for each method for more details.

# Operations

Digit-level operations:

  - [BigInt.Len] and [BigInt.Digit] query the decimal representation.
  - [BigInt.Halve] divides by 2 in place in a single pass over the digits.
  - [BigInt.Inc], [BigInt.Dec], [BigInt.PostInc] and [BigInt.PostDec]
    add or subtract 1 in place.

Arithmetic operations [BigInt.Add], [BigInt.Sub], [BigInt.Mul],
[BigInt.Pow], [BigInt.Quo], [BigInt.Rem] and [BigInt.QuoRem] return new
integers and never modify their operands.
Division truncates towards zero and the remainder takes the sign of the
dividend, so -7 / 2 is -3 with remainder -1.
All operations cost time proportional to the number of digits, except
multiplication and division, which are quadratic.

# Errors

All methods are panic-free, except for the Must variants.
Errors are returned in the following cases:

  - Invalid Format.
    [Parse] returns an error wrapping [ErrInvalidFormat] if the input is empty,
    has a sign without digits, or contains any other character.

  - Index Out of Range.
    [BigInt.Digit] returns an error wrapping [ErrIndexOutOfRange].

  - Division by Zero.
    [BigInt.Quo], [BigInt.Rem] and [BigInt.QuoRem] return an error wrapping
    [ErrDivisionByZero] if the divisor is 0.

  - Invalid Operation.
    [BigInt.Pow] returns an error wrapping [ErrInvalidOperation] if the
    exponent is negative.

Use [errors.Is] to check the kind of an error.

[big.Int]: https://pkg.go.dev/math/big#Int
[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bigint
