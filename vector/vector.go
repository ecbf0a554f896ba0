// seehuhn.de/go/raytrace - building blocks for a software raytracer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package vector implements a three-component float32 vector type.
//
// All operations work on values and return new values.  The only methods
// which modify their receiver are the "Assign" variants, which replace the
// whole vector by the result of the corresponding binary operation.
//
// No operation in this package reports errors.  Division by zero, or
// normalizing the zero vector, produces IEEE 754 infinities or NaNs in the
// affected components, and these propagate through later computations.
package vector

import (
	"math"
	"strconv"

	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/vec"
)

// Vec3 is a vector in three-dimensional space.
//
// Two vectors are equal (using ==) if and only if all three components
// compare equal.  In particular, a vector with a NaN component is not equal
// to itself.
type Vec3 struct {
	X, Y, Z float32
}

var (
	// Zero is the zero vector.
	Zero = Vec3{0, 0, 0}

	// One is the vector with all components equal to 1.
	One = Vec3{1, 1, 1}
)

// New returns the vector (x, y, z).
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns the vector with all three components set to s.
func Splat(s float32) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// FromArray converts a [f32.Vec3] into a Vec3.
func FromArray(a f32.Vec3) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components of v as a [f32.Vec3].
func (v Vec3) Array() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// XY projects v orthogonally onto the x-y plane.
func (v Vec3) XY() vec.Vec2 {
	return vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// String formats the vector as "(x, y, z)".
func (v Vec3) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, float64(v.X), 'f', -1, 32)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, float64(v.Y), 'f', -1, 32)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, float64(v.Z), 'f', -1, 32)
	buf = append(buf, ')')
	return string(buf)
}

// WithX returns a copy of v with the x component replaced.
func (v Vec3) WithX(x float32) Vec3 {
	v.X = x
	return v
}

// WithY returns a copy of v with the y component replaced.
func (v Vec3) WithY(y float32) Vec3 {
	v.Y = y
	return v
}

// WithZ returns a copy of v with the z component replaced.
func (v Vec3) WithZ(z float32) Vec3 {
	v.Z = z
	return v
}

// Add returns the component-wise sum v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the component-wise difference v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the component-wise product of v and w.
// Use [Dot] for the scalar product.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Div returns the component-wise quotient v/w.
func (v Vec3) Div(w Vec3) Vec3 {
	return Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// AddScalar adds s to every component of v.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar subtracts s from every component of v.
func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Scale multiplies every component of v by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides every component of v by s.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// ScalarAdd returns (s+v.X, s+v.Y, s+v.Z).
func ScalarAdd(s float32, v Vec3) Vec3 {
	return Vec3{s + v.X, s + v.Y, s + v.Z}
}

// ScalarSub returns (s-v.X, s-v.Y, s-v.Z).
func ScalarSub(s float32, v Vec3) Vec3 {
	return Vec3{s - v.X, s - v.Y, s - v.Z}
}

// ScalarMul returns (s*v.X, s*v.Y, s*v.Z).
func ScalarMul(s float32, v Vec3) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// ScalarDiv returns (s/v.X, s/v.Y, s/v.Z).
func ScalarDiv(s float32, v Vec3) Vec3 {
	return Vec3{s / v.X, s / v.Y, s / v.Z}
}

// AddAssign sets v to v+w.
func (v *Vec3) AddAssign(w Vec3) {
	*v = v.Add(w)
}

// SubAssign sets v to v-w.
func (v *Vec3) SubAssign(w Vec3) {
	*v = v.Sub(w)
}

// MulAssign sets v to the component-wise product of v and w.
func (v *Vec3) MulAssign(w Vec3) {
	*v = v.Mul(w)
}

// DivAssign sets v to the component-wise quotient v/w.
func (v *Vec3) DivAssign(w Vec3) {
	*v = v.Div(w)
}

// AddAssignScalar adds s to every component of v.
func (v *Vec3) AddAssignScalar(s float32) {
	*v = v.AddScalar(s)
}

// SubAssignScalar subtracts s from every component of v.
func (v *Vec3) SubAssignScalar(s float32) {
	*v = v.SubScalar(s)
}

// ScaleAssign multiplies every component of v by s.
func (v *Vec3) ScaleAssign(s float32) {
	*v = v.Scale(s)
}

// DivAssignScalar divides every component of v by s.
func (v *Vec3) DivAssignScalar(s float32) {
	*v = v.DivScalar(s)
}

// Dot returns the scalar product of a and b.
func Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b in a right-handed coordinate system.
// Swapping the arguments negates the result.
func Cross(a, b Vec3) Vec3 {
	// Each product must be rounded on its own (no FMA), otherwise
	// Cross(a, b) == -Cross(b, a) does not hold exactly.
	return Vec3{
		X: float32(a.Y*b.Z) - float32(a.Z*b.Y),
		Y: float32(a.Z*b.X) - float32(a.X*b.Z),
		Z: float32(a.X*b.Y) - float32(a.Y*b.X),
	}
}

// LenSquared returns the square of the Euclidean length of v.
func (v Vec3) LenSquared() float32 {
	return Dot(v, v)
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSquared())))
}

// Normalize returns the unit vector pointing in the direction of v.
//
// The zero vector has no direction; normalizing it gives a vector of NaNs.
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Len())
}

// Min returns the component-wise minimum of a and b.
// If one of two compared components is NaN, the other one is used.
func Min(a, b Vec3) Vec3 {
	return Vec3{min32(a.X, b.X), min32(a.Y, b.Y), min32(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
// If one of two compared components is NaN, the other one is used.
func Max(a, b Vec3) Vec3 {
	return Vec3{max32(a.X, b.X), max32(a.Y, b.Y), max32(a.Z, b.Z)}
}

// Min returns the component-wise minimum of v and w.
// This is the same as [Min], in a form which can be chained.
func (v Vec3) Min(w Vec3) Vec3 {
	return Min(v, w)
}

// Max returns the component-wise maximum of v and w.
// This is the same as [Max], in a form which can be chained.
func (v Vec3) Max(w Vec3) Vec3 {
	return Max(v, w)
}

// PartialCompare orders a and b lexicographically by (X, Y, Z).
// The result c is -1, 0 or +1.  If a NaN is encountered before the order is
// decided, the vectors are unordered and ok is false.
func PartialCompare(a, b Vec3) (c int, ok bool) {
	for _, pair := range [3][2]float32{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}} {
		x, y := pair[0], pair[1]
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		case x != y: // at least one NaN
			return 0, false
		}
	}
	return 0, true
}

func min32(x, y float32) float32 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	case y < x:
		return y
	}
	return x
}

func max32(x, y float32) float32 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	case y > x:
		return y
	}
	return x
}
