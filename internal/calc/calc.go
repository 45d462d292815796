// Package calc evaluates integer expressions written in prefix (Polish)
// notation, such as "+ 1 * 2 3".
package calc

import (
	"math"
	"strings"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/log"
	"github.com/pkg/errors"
)

var clog = log.New("module", "calc")

// ErrSyntax is returned for malformed expressions.
var ErrSyntax = errors.New("syntax error")

type unaryFunc func(x bigint.BigInt) (bigint.BigInt, error)

type binaryFunc func(x, y bigint.BigInt) (bigint.BigInt, error)

var unary = map[string]unaryFunc{
	"neg": func(x bigint.BigInt) (bigint.BigInt, error) { return x.Neg(), nil },
	"abs": func(x bigint.BigInt) (bigint.BigInt, error) { return x.Abs(), nil },
	"inc": func(x bigint.BigInt) (bigint.BigInt, error) { return *x.Inc(), nil },
	"dec": func(x bigint.BigInt) (bigint.BigInt, error) { return *x.Dec(), nil },
	"half": func(x bigint.BigInt) (bigint.BigInt, error) {
		return *x.Halve(), nil
	},
}

var binary = map[string]binaryFunc{
	"+": func(x, y bigint.BigInt) (bigint.BigInt, error) { return x.Add(y), nil },
	"-": func(x, y bigint.BigInt) (bigint.BigInt, error) { return x.Sub(y), nil },
	"*": func(x, y bigint.BigInt) (bigint.BigInt, error) { return x.Mul(y), nil },
	"/": func(x, y bigint.BigInt) (bigint.BigInt, error) { return x.Quo(y) },
	"%": func(x, y bigint.BigInt) (bigint.BigInt, error) { return x.Rem(y) },
	"^": pow,
}

func pow(x, y bigint.BigInt) (bigint.BigInt, error) {
	exp, ok := y.Int64()
	if !ok || exp > math.MaxInt32 {
		return bigint.BigInt{}, errors.Wrapf(bigint.ErrOverflow, "exponent %v", y)
	}
	return x.Pow(int(exp))
}

// IsOperator reports whether token is a known operator.
func IsOperator(token string) bool {
	_, u := unary[token]
	_, b := binary[token]
	return u || b
}

// Evaluate computes the value of a prefix expression.
// Tokens are separated by whitespace.
// Binary operators are + - * / % ^, unary operators are neg, abs, inc,
// dec and half.
// Errors from bigint keep their identity, so errors.Is(err,
// bigint.ErrDivisionByZero) works on the result.
func Evaluate(input string) (bigint.BigInt, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return bigint.BigInt{}, errors.Wrap(err, "parsing tokens")
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return bigint.BigInt{}, errors.Wrap(err, "processing tokens")
	}
	if len(stack) != 1 {
		return bigint.BigInt{}, errors.Wrapf(ErrSyntax, "post-processed stack contains %v, expected exactly one item", stack)
	}
	clog.Debug("evaluate", "input", input, "result", stack[0])
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, errors.Wrap(ErrSyntax, "no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]bigint.BigInt, error) {
	stack := make([]bigint.BigInt, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if f, ok := unary[token]; ok {
			stack, err = processUnary(stack, token, f)
		} else if f, ok := binary[token]; ok {
			stack, err = processBinary(stack, token, f)
		} else {
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "processing token %q", token)
		}
	}
	return stack, nil
}

func processUnary(stack []bigint.BigInt, token string, f unaryFunc) ([]bigint.BigInt, error) {
	if len(stack) < 1 {
		return nil, errors.Wrap(ErrSyntax, "not enough operands")
	}
	x := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	z, err := f(x)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%s %s\"", token, x)
	}
	return append(stack, z), nil
}

func processBinary(stack []bigint.BigInt, token string, f binaryFunc) ([]bigint.BigInt, error) {
	if len(stack) < 2 {
		return nil, errors.Wrap(ErrSyntax, "not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	z, err := f(left, right)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%s %s %s\"", left, token, right)
	}
	return append(stack, z), nil
}

func processOperand(stack []bigint.BigInt, token string) ([]bigint.BigInt, error) {
	x, err := bigint.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}
