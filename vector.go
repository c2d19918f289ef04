package trackball

import (
	"strconv"

	"github.com/solarlune/trackball/math32"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed OpenGL coordinate system (right).
var WorldRight = NewVector3(1, 0, 0)

// WorldUp represents a unit vector in the global direction of +Y on the right-handed OpenGL coordinate system (upwards).
var WorldUp = NewVector3(0, 1, 0)

// WorldBack represents a unit vector in the global direction of +Z on the right-handed OpenGL coordinate system (backwards, towards you).
var WorldBack = NewVector3(0, 0, 1)

// Vector3 represents a 3D Vector. Drag points are lifted onto the trackball surface as Vector3s, and Matrix4s transform them.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Invert returns a copy of the Vector3 with all components inverted.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Scale scales a Vector3 by the given scalar, returning a copy.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector3 by the given scalar, returning a copy.
func (vec Vector3) Divide(scalar float32) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using math32.Sqrt().
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) Distance(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A (near) zero-length Vector3 is returned unmodified.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vector3s are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {

	eps := float32(1e-4)

	if math32.Abs(vec.X-other.X) > eps || math32.Abs(vec.Y-other.Y) > eps || math32.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	eps := float32(1e-4)
	return math32.Abs(vec.X) <= eps && math32.Abs(vec.Y) <= eps && math32.Abs(vec.Z) <= eps
}

func (vec Vector3) String() string {
	return "{" + strconv.FormatFloat(float64(vec.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Z), 'f', -1, 32) + "}"
}
