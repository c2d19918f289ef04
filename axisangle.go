package trackball

import "github.com/solarlune/trackball/math32"

// AxisAngle represents a counter-clockwise rotation in radians around a given 3D axis. It's separated from a Quaternion
// here into a 3D Vector3 and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector3 // 3 dimensional axis for rotating
	Angle float32 // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation.
func NewAxisAngle(axis Vector3, angle float32) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// NewQuaternionFromAxisAngle returns the unit Quaternion that rotates by aa.Angle radians around aa.Axis through RotateVector
// and its Matrix4. Because of Mult's product order, the vector part points against the axis: (cos(a/2), -axis*sin(a/2)).
func NewQuaternionFromAxisAngle(aa AxisAngle) Quaternion {
	axis := aa.Axis.Unit()
	s := math32.Sin(aa.Angle / 2)
	return NewQuaternion(math32.Cos(aa.Angle/2), -axis.X*s, -axis.Y*s, -axis.Z*s)
}

// ToAxisAngle decomposes the (unit) Quaternion into an axis and an angle in the range [0, 2π]; it's the inverse of
// NewQuaternionFromAxisAngle. A rotation of (nearly) 0 radians has no meaningful axis, so +Y is returned for it.
func (quat Quaternion) ToAxisAngle() AxisAngle {

	w := math32.Clamp(quat.W, -1, 1)
	angle := 2 * math32.Acos(w)
	s := math32.Sqrt(1 - w*w)

	if s < 1e-6 {
		return AxisAngle{Axis: WorldUp, Angle: angle}
	}

	return AxisAngle{Axis: quat.Vector().Divide(-s), Angle: angle}

}

// RotateVector rotates the given Vector3 by the axis and angle given, returning a rotated copy of it. For example, assuming the
// AxisAngle had an Axis of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, RotateVector(Vector3{1, 0, 0}) would return
// Vector3{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec Vector3) Vector3 {
	return NewQuaternionFromAxisAngle(aa).RotateVector(vec)
}
