package trackball

// DefaultViewSize is the width and height a View starts at.
const DefaultViewSize = 512

// View is an interactive trackball view: it tracks a pointer drag across a window of Width x Height pixels, and turns it into
// either a rotation of its Orientation or, for a scaling drag, a change of its Scale.
type View struct {
	Width, Height int
	Orientation   *Orientation
	Scale         float32 // Uniform zoom factor of the view; 1 is the default

	dragging bool
	scaling  bool
	beginX   int
	beginY   int
}

// NewView returns a new View of the given size, with an identity Orientation using a Trackball of the given radius.
func NewView(width, height int, radius float32) *View {
	return &View{
		Width:       width,
		Height:      height,
		Orientation: NewOrientation(radius),
		Scale:       1,
	}
}

// Resize changes the size of the View in pixels.
func (view *View) Resize(width, height int) {
	view.Width = width
	view.Height = height
}

// Press starts a drag at the pointer position (px, py). If scaling is true (the demo binds it to shift + left button),
// the drag changes the View's Scale instead of rotating it.
func (view *View) Press(px, py int, scaling bool) {
	view.dragging = true
	view.scaling = scaling
	view.beginX = px
	view.beginY = py
}

// Motion continues the current drag to (px, py) and returns the current orientation. Scaling drags multiply Scale by
// 1 + (the upwards distance moved / Height). Motion does nothing if no drag is in progress.
func (view *View) Motion(px, py int) Quaternion {

	if !view.dragging || view.Width <= 0 || view.Height <= 0 {
		return view.Orientation.Current()
	}

	if view.scaling {
		view.Scale *= 1 + float32(view.beginY-py)/float32(view.Height)
	} else {
		view.Orientation.OnDrag(float32(view.beginX), float32(view.beginY), float32(px), float32(py), float32(view.Width), float32(view.Height))
	}

	view.beginX = px
	view.beginY = py

	return view.Orientation.Current()

}

// Release ends the current drag.
func (view *View) Release() {
	view.dragging = false
	view.scaling = false
}

// Dragging returns true if a drag is in progress.
func (view *View) Dragging() bool {
	return view.dragging
}

// Scaling returns true if the drag in progress is a scaling drag.
func (view *View) Scaling() bool {
	return view.dragging && view.scaling
}

// Matrix returns the Matrix4 to transform the View's model with (through Matrix4.MultVec): the zoom scale, followed by the
// current orientation's rotation.
func (view *View) Matrix() Matrix4 {
	return NewMatrix4Scale(view.Scale, view.Scale, view.Scale).Mult(view.Orientation.Matrix4())
}

// ResetScale sets the View's Scale back to 1.
func (view *View) ResetScale() {
	view.Scale = 1
}

// Reset ends any drag, and resets both the orientation and the scale.
func (view *View) Reset() {
	view.Release()
	view.Orientation.Reset()
	view.ResetScale()
}
