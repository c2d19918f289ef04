package trackball

import "github.com/solarlune/trackball/math32"

// DefaultRadius is the radius of the virtual trackball, in normalized window coordinates (the window spans -1 to 1 on both axes).
const DefaultRadius = 0.8

const invSqrt2 = 0.70710678118654752440

// ProjectToSphere lifts the 2D point (x, y) onto the trackball surface and returns its height (z). Inside the radius, the point
// lands on a sphere of radius √2 * radius; outside of it, on the hyperbola z = radius² / d, which meets the sphere at d = radius
// and flattens out far from the center.
func ProjectToSphere(x, y, radius float32) float32 {

	dSqr := x*x + y*y
	d := math32.Sqrt(dSqr)

	if d < radius {
		return math32.Sqrt(2*radius*radius - dSqr)
	}

	return radius * radius / d

}

// Trackball turns pairs of 2D points from a drag gesture into rotations, by projecting them onto a virtual sphere.
// The zero value is ready to use and has a radius of DefaultRadius.
type Trackball struct {
	Radius float32 // Radius of the trackball; values <= 0 use DefaultRadius
}

// NewTrackball returns a new Trackball with the provided radius.
func NewTrackball(radius float32) Trackball {
	return Trackball{Radius: radius}
}

func (tb Trackball) radius() float32 {
	if tb.Radius <= 0 {
		return DefaultRadius
	}
	return tb.Radius
}

// Project returns the height of the point (x, y) on the Trackball's surface. See ProjectToSphere.
func (tb Trackball) Project(x, y float32) float32 {
	return ProjectToSphere(x, y, tb.radius())
}

// Lift returns the 3D point on the Trackball's surface under the 2D point (x, y).
func (tb Trackball) Lift(x, y float32) Vector3 {
	return NewVector3(x, y, tb.Project(x, y))
}

// Rotation returns the unit Quaternion that rotates the trackball surface point under (p1x, p1y) towards the one under
// (p2x, p2y). Both points are in normalized window coordinates. If the points are exactly equal, the identity is returned.
//
// The rotation axis comes from the product of the two lifted points; the sine of the half-angle is their distance, clamped to 1 so
// that fast drags can't step outside of Asin's domain. If the axis has no length (which takes lifted points that are parallel to
// float32 precision), the result has NaN components; Orientation.Drag guards against that.
func (tb Trackball) Rotation(p1x, p1y, p2x, p2y float32) Quaternion {

	if p1x == p2x && p1y == p2y {
		return NewQuaternionIdentity()
	}

	p1 := NewQuaternionFromVector(tb.Lift(p1x, p1y))
	p2 := NewQuaternionFromVector(tb.Lift(p2x, p2y))

	axis := p1.Mult(p2)
	axis.W = 0
	axis = axis.Divide(axis.Magnitude())

	t := p1.Sub(p2).Magnitude() / (2 * tb.radius() * invSqrt2)
	if t > 1 {
		t = 1
	}

	return NewQuaternion(math32.Cos(math32.Asin(t)), axis.X*t, axis.Y*t, axis.Z*t)

}

// InitialOrientation returns the orientation an interactive view starts with: the rotation of a drag that didn't move,
// which is the identity.
func InitialOrientation() Quaternion {
	return Trackball{}.Rotation(0, 0, 0, 0)
}

// OrientationToMatrix returns the rotation Matrix4 for an orientation, for the renderer to use for the current frame.
func OrientationToMatrix(q Quaternion) Matrix4 {
	return NewMatrix4RotateFromQuaternion(q)
}
