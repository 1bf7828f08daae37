// Package scalar implements Q16.16 fixed-point arithmetic.
//
// Every operation depends only on the bit pattern of its integer
// inputs, never on the host FPU, endianness, or optimization level.
// Overflow on Add, Sub and Mul wraps, matching plain int32 semantics;
// it is the caller's responsibility to keep values in range.
package scalar

import "fmt"

// Scalar is a signed Q16.16 fixed-point number: value = raw / 65536.
type Scalar int32

const fracBits = 16

var (
	Zero = Scalar(0)
	One  = Scalar(1 << fracBits)
	Two  = Scalar(2 << fracBits)
	Half = Scalar(1 << (fracBits - 1))
)

// FromBits builds a Scalar directly from its raw Q16.16 representation.
func FromBits(bits int32) Scalar { return Scalar(bits) }

// Bits returns the raw Q16.16 representation.
func (s Scalar) Bits() int32 { return int32(s) }

// FromFloat32 converts a float32 to Scalar. I/O boundary only: never call
// this from the integration, collision, force or hashing paths.
func FromFloat32(f float32) Scalar {
	return Scalar(int32(f * (1 << fracBits)))
}

// ToFloat32 converts a Scalar to float32. I/O boundary only.
func (s Scalar) ToFloat32() float32 {
	return float32(s) / (1 << fracBits)
}

// FromInt builds a Scalar representing the integer n exactly.
func FromInt(n int32) Scalar { return Scalar(n << fracBits) }

// Int returns the integer part, floored (arithmetic shift discards the
// fractional bits).
func (s Scalar) Int() int32 { return int32(s) >> fracBits }

func (s Scalar) Add(o Scalar) Scalar { return s + o }
func (s Scalar) Sub(o Scalar) Scalar { return s - o }
func (s Scalar) Neg() Scalar         { return -s }

// Mul multiplies two Q16.16 values, promoting to 64 bits before shifting
// back down by the fractional width.
func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar((int64(s) * int64(o)) >> fracBits)
}

// Div divides two Q16.16 values, promoting the numerator to 64 bits and
// shifting left before dividing. Panics if the divisor's raw
// representation is zero: division by zero is a structural fault the
// caller must guard against, never a recoverable runtime error (spec
// §4.1, §7).
func (s Scalar) Div(o Scalar) Scalar {
	if o == 0 {
		panic("scalar: division by zero")
	}
	return Scalar((int64(s) << fracBits) / int64(o))
}

func (s Scalar) Abs() Scalar {
	if s < 0 {
		return -s
	}
	return s
}

func (s Scalar) Cmp(o Scalar) int {
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	default:
		return 0
	}
}

func (s Scalar) LessThan(o Scalar) bool    { return s < o }
func (s Scalar) GreaterThan(o Scalar) bool { return s > o }
func (s Scalar) Equal(o Scalar) bool       { return s == o }

// Sqrt computes the square root via Newton-Raphson with a fixed 8
// iterations and initial guess x>>1 (One when x>>1 is zero, so the
// smallest positive input does not divide by zero). Non-positive input
// returns zero. For inputs in (0, 16384] the square of the result is
// within 1% of the input; above roughly 29000 eight iterations from
// the x>>1 guess are no longer that close.
// The iteration count is unconditional — no early exit on convergence —
// so the result is bit-stable regardless of how quickly a given input
// happens to converge (spec §4.1, normative over the early-exit variant
// in the reference Rust prototype).
func (s Scalar) Sqrt() Scalar {
	if s <= 0 {
		return Zero
	}
	guess := Scalar(s >> 1)
	if guess == 0 {
		guess = One
	}
	for i := 0; i < 8; i++ {
		guess = (guess + s.Div(guess)).Div(Two)
	}
	return guess
}

func (s Scalar) String() string {
	return fmt.Sprintf("%.4f", s.ToFloat32())
}
