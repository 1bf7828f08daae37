// Package vec2 implements 2-component vector algebra over the Q16.16
// fixed-point scalar type. The fixed-point domain is closed: there is
// no NaN and no infinity, so every operation below is total except Div
// by a zero scalar, which panics like scalar.Div.
package vec2

import (
	"fmt"

	"github.com/determinisk/kernel/scalar"
)

// Vec2 is a pair of fixed-point components.
type Vec2 struct {
	X, Y scalar.Scalar
}

var Zero = Vec2{}

func New(x, y scalar.Scalar) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)} }
func (v Vec2) Neg() Vec2       { return Vec2{X: v.X.Neg(), Y: v.Y.Neg()} }

// Scale multiplies both components by a scalar.
func (v Vec2) Scale(s scalar.Scalar) Vec2 {
	return Vec2{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// Div divides both components by a scalar.
func (v Vec2) Div(s scalar.Scalar) Vec2 {
	return Vec2{X: v.X.Div(s), Y: v.Y.Div(s)}
}

func (v Vec2) Dot(o Vec2) scalar.Scalar {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

func (v Vec2) MagnitudeSquared() scalar.Scalar {
	return v.X.Mul(v.X).Add(v.Y.Mul(v.Y))
}

func (v Vec2) Magnitude() scalar.Scalar {
	return v.MagnitudeSquared().Sqrt()
}

// Normalize returns v/|v|, or v unchanged if v is the zero vector.
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == scalar.Zero {
		return v
	}
	return v.Div(mag)
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: v.Y.Neg(), Y: v.X}
}

// Lerp linearly interpolates between v and o by t.
func (v Vec2) Lerp(o Vec2, t scalar.Scalar) Vec2 {
	return v.Add(o.Sub(v).Scale(t))
}

func (v Vec2) IsZero() bool { return v.X == scalar.Zero && v.Y == scalar.Zero }

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}
