package trackball

import "github.com/solarlune/trackball/math32"

// DefaultRenormalizePeriod is how many drag updates an Orientation accumulates before dividing its current rotation by its norm.
const DefaultRenormalizePeriod = 97

// Orientation accumulates the rotations of successive drags. Every drag computes an incremental rotation with the Trackball
// and composes it on the left (in world space) with the current orientation; every RenormalizePeriod updates, the current
// orientation is rescaled to unit length to keep floating-point drift in check. Between renormalizations, the current
// orientation's norm is only approximately 1.
//
// Create one with NewOrientation. An Orientation isn't safe for concurrent use; it's meant to be owned by whatever drives the interactive view.
type Orientation struct {
	Trackball         Trackball
	RenormalizePeriod int // Values below 1 turn renormalizing off

	current    Quaternion
	last       Quaternion
	count      int
	degenerate int
}

// NewOrientation returns a new Orientation starting at the identity, using a Trackball of the given radius.
func NewOrientation(radius float32) *Orientation {
	o := &Orientation{
		Trackball:         NewTrackball(radius),
		RenormalizePeriod: DefaultRenormalizePeriod,
	}
	o.Reset()
	return o
}

// Reset sets the Orientation back to its initial (identity) rotation and clears its update counters.
func (o *Orientation) Reset() {
	o.current = InitialOrientation()
	o.last = NewQuaternionIdentity()
	o.count = 0
	o.degenerate = 0
}

// Drag applies the rotation of a drag from (p1x, p1y) to (p2x, p2y), in normalized window coordinates, and returns the
// updated orientation. A drag whose rotation comes out non-finite is counted, but composed as the identity so that the
// orientation stays usable.
func (o *Orientation) Drag(p1x, p1y, p2x, p2y float32) Quaternion {

	o.last = o.Trackball.Rotation(p1x, p1y, p2x, p2y)

	if !o.last.IsFinite() {
		o.last = NewQuaternionIdentity()
		o.degenerate++
	}

	o.current = o.last.Mult(o.current)

	o.count++
	if o.RenormalizePeriod > 0 && o.count%o.RenormalizePeriod == 0 {
		o.Renormalize()
	}

	return o.current

}

// OnDrag takes the previous and current pointer positions in pixels, along with the view's size, normalizes them,
// and applies the drag between them. See NormalizePointer and Drag.
func (o *Orientation) OnDrag(prevX, prevY, x, y, viewWidth, viewHeight float32) Quaternion {
	p1x, p1y := NormalizePointer(prevX, prevY, viewWidth, viewHeight)
	p2x, p2y := NormalizePointer(x, y, viewWidth, viewHeight)
	return o.Drag(p1x, p1y, p2x, p2y)
}

// Renormalize divides the current orientation by its norm. It does nothing if the norm is 0 or not finite.
func (o *Orientation) Renormalize() {
	n := o.current.Magnitude()
	if n == 0 || !math32.IsFinite(n) {
		return
	}
	o.current = o.current.Divide(n)
}

// Current returns the accumulated orientation.
func (o *Orientation) Current() Quaternion {
	return o.current
}

// Last returns the incremental rotation of the most recent drag (the identity before any drag).
func (o *Orientation) Last() Quaternion {
	return o.last
}

// Set replaces the accumulated orientation, for example with one loaded from a file. The update counters are left alone.
func (o *Orientation) Set(q UnitQuaternion) {
	o.current = q.Quaternion()
}

// Count returns how many drags have been applied since the Orientation was created or reset.
func (o *Orientation) Count() int {
	return o.count
}

// Degenerate returns how many drags produced a non-finite rotation and were composed as the identity instead.
func (o *Orientation) Degenerate() int {
	return o.degenerate
}

// Unit returns the current orientation normalized, as a UnitQuaternion.
func (o *Orientation) Unit() (UnitQuaternion, error) {
	return o.current.Normalize()
}

// Matrix4 returns the rotation Matrix4 of the current orientation.
func (o *Orientation) Matrix4() Matrix4 {
	return OrientationToMatrix(o.current)
}

// NormalizePointer maps a pointer position in pixels to normalized window coordinates, where the window spans -1 to 1 on both
// axes and +Y points up (the reverse of screen space).
func NormalizePointer(px, py, viewWidth, viewHeight float32) (float32, float32) {
	return (2*px - viewWidth) / viewWidth, (viewHeight - 2*py) / viewHeight
}
