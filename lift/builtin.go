// SPDX-License-Identifier: MIT
// File: builtin.go
// Role: capabilities for Go's predeclared value types, which have no
// methods to introspect. Method names line up with DefaultOperators so
// that tokens such as "+" or "<" work out of the box.

package lift

import (
	"math"
	"strings"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type integer interface {
	signed | unsigned
}

type float interface {
	~float32 | ~float64
}

type number interface {
	integer | float
}

// Builtins returns the capabilities registered by NewRegistry by default:
// every sized and unsized integer type, float32, float64, string and bool.
func Builtins() []Capability {
	return []Capability{
		Declare[int](integerOps[int]()...),
		Declare[int8](integerOps[int8]()...),
		Declare[int16](integerOps[int16]()...),
		Declare[int32](integerOps[int32]()...),
		Declare[int64](integerOps[int64]()...),
		Declare[uint](integerOps[uint]()...),
		Declare[uint8](integerOps[uint8]()...),
		Declare[uint16](integerOps[uint16]()...),
		Declare[uint32](integerOps[uint32]()...),
		Declare[uint64](integerOps[uint64]()...),
		Declare[uintptr](integerOps[uintptr]()...),
		Declare[float32](floatOps[float32]()...),
		Declare[float64](floatOps[float64]()...),
		Declare[string](stringOps()...),
		Declare[bool](boolOps()...),
	}
}

func numberOps[N number]() []Operation {
	return []Operation{
		Binary("Add", func(a, b N) (N, error) { return a + b, nil }),
		Binary("Sub", func(a, b N) (N, error) { return a - b, nil }),
		Binary("Mul", func(a, b N) (N, error) { return a * b, nil }),
		Binary("Div", func(a, b N) (N, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		}),
		Binary("Min", func(a, b N) (N, error) { return min(a, b), nil }),
		Binary("Max", func(a, b N) (N, error) { return max(a, b), nil }),
		Binary("Less", func(a, b N) (bool, error) { return a < b, nil }),
		Binary("Greater", func(a, b N) (bool, error) { return a > b, nil }),
		Binary("Equal", func(a, b N) (bool, error) { return a == b, nil }),
		Nullary("Neg", func(a N) (N, error) { return -a, nil }),
		Nullary("Abs", func(a N) (N, error) {
			if a < 0 {
				return -a, nil
			}
			return a, nil
		}),
	}
}

func integerOps[I integer]() []Operation {
	return append(numberOps[I](),
		Binary("Mod", func(a, b I) (I, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a % b, nil
		}),
		Binary("Pow", func(a, b I) (I, error) {
			if b < 0 {
				return 0, ErrNegativeExponent
			}
			out := I(1)
			for ; b > 0; b >>= 1 {
				if b&1 == 1 {
					out *= a
				}
				a *= a
			}
			return out, nil
		}),
		Binary("And", func(a, b I) (I, error) { return a & b, nil }),
		Binary("Or", func(a, b I) (I, error) { return a | b, nil }),
		Binary("Xor", func(a, b I) (I, error) { return a ^ b, nil }),
	)
}

func floatOps[F float]() []Operation {
	return append(numberOps[F](),
		Binary("Mod", func(a, b F) (F, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return F(math.Mod(float64(a), float64(b))), nil
		}),
		Binary("Pow", func(a, b F) (F, error) {
			return F(math.Pow(float64(a), float64(b))), nil
		}),
		Nullary("Floor", func(a F) (F, error) { return F(math.Floor(float64(a))), nil }),
		Nullary("Ceil", func(a F) (F, error) { return F(math.Ceil(float64(a))), nil }),
		Nullary("Sqrt", func(a F) (F, error) { return F(math.Sqrt(float64(a))), nil }),
	)
}

func stringOps() []Operation {
	return []Operation{
		Binary("Add", func(a, b string) (string, error) { return a + b, nil }),
		Binary("Contains", func(a, b string) (bool, error) { return strings.Contains(a, b), nil }),
		Binary("HasPrefix", func(a, b string) (bool, error) { return strings.HasPrefix(a, b), nil }),
		Binary("HasSuffix", func(a, b string) (bool, error) { return strings.HasSuffix(a, b), nil }),
		Binary("Repeat", func(a string, n int) (string, error) {
			if n < 0 {
				return "", ErrNegativeExponent
			}
			return strings.Repeat(a, n), nil
		}),
		Binary("Less", func(a, b string) (bool, error) { return a < b, nil }),
		Binary("Equal", func(a, b string) (bool, error) { return a == b, nil }),
		Nullary("Len", func(a string) (int, error) { return len(a), nil }),
		Nullary("Upper", func(a string) (string, error) { return strings.ToUpper(a), nil }),
		Nullary("Lower", func(a string) (string, error) { return strings.ToLower(a), nil }),
		Nullary("TrimSpace", func(a string) (string, error) { return strings.TrimSpace(a), nil }),
	}
}

func boolOps() []Operation {
	return []Operation{
		Binary("And", func(a, b bool) (bool, error) { return a && b, nil }),
		Binary("Or", func(a, b bool) (bool, error) { return a || b, nil }),
		Binary("Xor", func(a, b bool) (bool, error) { return a != b, nil }),
		Binary("Equal", func(a, b bool) (bool, error) { return a == b, nil }),
		Nullary("Not", func(a bool) (bool, error) { return !a, nil }),
	}
}
