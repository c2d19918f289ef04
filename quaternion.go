package trackball

import (
	"errors"
	"strconv"

	"github.com/solarlune/trackball/math32"
)

// ErrZeroQuaternion is returned when normalizing a Quaternion with a length of 0.
var ErrZeroQuaternion = errors.New("trackball: cannot normalize a zero-length quaternion")

// ErrNonFinite is returned when normalizing a Quaternion that has a NaN or infinite component.
var ErrNonFinite = errors.New("trackball: quaternion has non-finite components")

// Quaternion represents the number W + Xi + Yj + Zk. It's a plain value type; a Quaternion can be a general
// quaternion (a 3D point embedded with W = 0, for example) or, at the call sites that say so, a unit quaternion
// representing an orientation. See UnitQuaternion for the type that guarantees the latter.
// Any Quaternion functions that modify the calling Quaternion return copies of the modified Quaternion.
type Quaternion struct {
	W, X, Y, Z float32
}

// NewQuaternion creates a new Quaternion out of the components given.
func NewQuaternion(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// NewQuaternionZero returns a Quaternion with all components set to 0.
func NewQuaternionZero() Quaternion {
	return Quaternion{}
}

// NewQuaternionIdentity returns the identity Quaternion (W = 1, X = Y = Z = 0); this is the neutral element for Mult, and the
// orientation of an unrotated object.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromVector embeds a 3D Vector3 as a pure Quaternion (W = 0).
func NewQuaternionFromVector(vec Vector3) Quaternion {
	return Quaternion{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// Vector returns the vector (X, Y, Z) part of the Quaternion.
func (quat Quaternion) Vector() Vector3 {
	return Vector3{X: quat.X, Y: quat.Y, Z: quat.Z}
}

// Add returns the component-wise sum of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.W += other.W
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	return quat
}

// Sub returns the component-wise difference of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	quat.W -= other.W
	quat.X -= other.X
	quat.Y -= other.Y
	quat.Z -= other.Z
	return quat
}

// Mult returns the quaternion product quat * other. It's not commutative. The cross term is subtracted, so in the
// usual textbook notation quat.Mult(other) is other·quat; every rotation helper in this package (RotateVector,
// NewMatrix4RotateFromQuaternion, NewQuaternionFromAxisAngle, the Trackball) follows the same order. For
// rotations, last.Mult(current) applies last after current, in world space.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
		X: quat.W*other.X + quat.X*other.W - quat.Y*other.Z + quat.Z*other.Y,
		Y: quat.W*other.Y + quat.X*other.Z + quat.Y*other.W - quat.Z*other.X,
		Z: quat.W*other.Z - quat.X*other.Y + quat.Y*other.X + quat.Z*other.W,
	}
}

// Scale returns the Quaternion with every component multiplied by the scalar given.
func (quat Quaternion) Scale(scalar float32) Quaternion {
	quat.W *= scalar
	quat.X *= scalar
	quat.Y *= scalar
	quat.Z *= scalar
	return quat
}

// Divide returns the Quaternion with every component divided by the scalar given. Dividing by 0 is not
// checked; the result carries the IEEE infinities or NaNs.
func (quat Quaternion) Divide(scalar float32) Quaternion {
	quat.W /= scalar
	quat.X /= scalar
	quat.Y /= scalar
	quat.Z /= scalar
	return quat
}

// MagnitudeSquared returns the sum of the squares of all four components.
func (quat Quaternion) MagnitudeSquared() float32 {
	return quat.W*quat.W + quat.X*quat.X + quat.Y*quat.Y + quat.Z*quat.Z
}

// Magnitude returns the norm of the Quaternion; this is 0 for the zero Quaternion.
func (quat Quaternion) Magnitude() float32 {
	return math32.Sqrt(quat.MagnitudeSquared())
}

// Conjugate returns the Quaternion with its vector part negated. For a unit Quaternion, this is the inverse rotation.
func (quat Quaternion) Conjugate() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Dot returns the 4D dot product of the two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// RotateVector rotates the vector given by the (unit) Quaternion, computing (quat * v) * conjugate(quat) with Mult.
// This matches what the Quaternion's rotation Matrix4 does through MultVec.
func (quat Quaternion) RotateVector(vec Vector3) Vector3 {
	return quat.Mult(NewQuaternionFromVector(vec)).Mult(quat.Conjugate()).Vector()
}

// IsFinite returns true if none of the Quaternion's components are NaN or infinite.
func (quat Quaternion) IsFinite() bool {
	return math32.IsFinite(quat.W) && math32.IsFinite(quat.X) && math32.IsFinite(quat.Y) && math32.IsFinite(quat.Z)
}

// Equals returns true if the two Quaternions are close enough in all components.
func (quat Quaternion) Equals(other Quaternion) bool {
	eps := float32(1e-4)
	return math32.Abs(quat.W-other.W) <= eps &&
		math32.Abs(quat.X-other.X) <= eps &&
		math32.Abs(quat.Y-other.Y) <= eps &&
		math32.Abs(quat.Z-other.Z) <= eps
}

// Normalize divides the Quaternion by its own norm and returns it as a UnitQuaternion. An error is returned
// if the Quaternion has a zero length or non-finite components.
func (quat Quaternion) Normalize() (UnitQuaternion, error) {

	if !quat.IsFinite() {
		return UnitQuaternion{}, ErrNonFinite
	}

	n := quat.Magnitude()

	if n == 0 {
		return UnitQuaternion{}, ErrZeroQuaternion
	}

	// Squaring overflows for very large components; bring them down to [-1, 1] first.
	if math32.IsInf(n, 1) {
		largest := math32.Max(math32.Max(math32.Abs(quat.W), math32.Abs(quat.X)), math32.Max(math32.Abs(quat.Y), math32.Abs(quat.Z)))
		quat = quat.Divide(largest)
		n = quat.Magnitude()
	}

	return UnitQuaternion{quat: quat.Divide(n)}, nil

}

// ToMatrix4 returns a rotation Matrix4 built from the Quaternion. See NewMatrix4RotateFromQuaternion.
func (quat Quaternion) ToMatrix4() Matrix4 {
	return NewMatrix4RotateFromQuaternion(quat)
}

func (quat Quaternion) String() string {
	return "{W: " + strconv.FormatFloat(float64(quat.W), 'f', -1, 32) +
		", X: " + strconv.FormatFloat(float64(quat.X), 'f', -1, 32) +
		", Y: " + strconv.FormatFloat(float64(quat.Y), 'f', -1, 32) +
		", Z: " + strconv.FormatFloat(float64(quat.Z), 'f', -1, 32) + "}"
}

// UnitQuaternion is a Quaternion known to have been normalized; it can only be created through Quaternion.Normalize()
// or UnitQuaternionIdentity(). Use it to hand orientations to code that assumes unit length, like the matrix builder.
type UnitQuaternion struct {
	quat Quaternion
}

// UnitQuaternionIdentity returns the identity rotation as a UnitQuaternion.
func UnitQuaternionIdentity() UnitQuaternion {
	return UnitQuaternion{quat: NewQuaternionIdentity()}
}

// Quaternion returns the underlying Quaternion.
func (unit UnitQuaternion) Quaternion() Quaternion {
	return unit.quat
}

// Mult composes two unit rotations and renormalizes the product.
func (unit UnitQuaternion) Mult(other UnitQuaternion) UnitQuaternion {
	product := unit.quat.Mult(other.quat)
	return UnitQuaternion{quat: product.Divide(product.Magnitude())}
}

// ToMatrix4 returns the rotation Matrix4 for the UnitQuaternion.
func (unit UnitQuaternion) ToMatrix4() Matrix4 {
	return NewMatrix4RotateFromQuaternion(unit.quat)
}

func (unit UnitQuaternion) String() string {
	return unit.quat.String()
}
