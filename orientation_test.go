package trackball

import (
	"math"
	"math/rand"
	"testing"

	"github.com/solarlune/trackball/math32"
)

func TestOrientationTwoDrags(t *testing.T) {

	o := NewOrientation(DefaultRadius)

	if o.Current() != NewQuaternionIdentity() {
		t.Fatalf("new Orientation\nhave %v\nwant identity", o.Current())
	}

	o.Drag(0, 0, 0.5, 0)
	curr := o.Drag(0.5, 0, 0.5, 0.5)

	if curr.Equals(NewQuaternionIdentity()) {
		t.Fatal("two drags left the orientation at the identity")
	}

	if n := curr.Magnitude(); !closeTo(n, 1, 1e-4) {
		t.Fatalf("orientation after two drags\nhave norm %v\nwant 1", n)
	}

	if m := o.Matrix4(); !m.IsOrthonormal(1e-4) {
		t.Fatalf("orientation matrix is not orthonormal:\n%v", m)
	}

	if o.Count() != 2 {
		t.Fatalf("Orientation.Count\nhave %d\nwant 2", o.Count())
	}

	// The second drag is the last one, and was composed in world space.
	if want := NewTrackball(DefaultRadius).Rotation(0.5, 0, 0.5, 0.5); o.Last() != want {
		t.Fatalf("Orientation.Last\nhave %v\nwant %v", o.Last(), want)
	}

	// The same gesture in pixels on a 512x512 view.
	px := NewOrientation(DefaultRadius)
	px.OnDrag(256, 256, 384, 256, 512, 512)
	px.OnDrag(384, 256, 384, 128, 512, 512)

	if px.Current() != curr {
		t.Fatalf("OnDrag\nhave %v\nwant %v", px.Current(), curr)
	}

}

func TestOrientationRenormalizes(t *testing.T) {

	perturbed := NewQuaternion(1.001, 0.0005, 0, -0.0005)

	o := NewOrientation(DefaultRadius)
	o.RenormalizePeriod = 3
	o.current = perturbed

	// Drags that don't move compose the identity, so only renormalizing changes the orientation.
	o.Drag(0.1, 0.1, 0.1, 0.1)
	o.Drag(0.1, 0.1, 0.1, 0.1)

	if o.Current() != perturbed {
		t.Fatalf("orientation renormalized early\nhave %v\nwant %v", o.Current(), perturbed)
	}

	o.Drag(0.1, 0.1, 0.1, 0.1)

	if n := o.Current().Magnitude(); !closeTo(n, 1, 1e-6) {
		t.Fatalf("orientation after renormalizing\nhave norm %v\nwant 1", n)
	}

	off := NewOrientation(DefaultRadius)
	off.RenormalizePeriod = 0
	off.current = perturbed

	for i := 0; i < DefaultRenormalizePeriod*2; i++ {
		off.Drag(0.1, 0.1, 0.1, 0.1)
	}

	if off.Current() != perturbed {
		t.Fatalf("orientation renormalized with renormalizing off\nhave %v\nwant %v", off.Current(), perturbed)
	}

	zero := NewOrientation(DefaultRadius)
	zero.current = NewQuaternionZero()
	zero.Renormalize()

	if zero.Current() != NewQuaternionZero() {
		t.Fatalf("renormalizing a zero orientation\nhave %v\nwant zero", zero.Current())
	}

}

func TestOrientationDefaultPeriod(t *testing.T) {

	o := NewOrientation(DefaultRadius)

	r := rand.New(rand.NewSource(7))

	x, y := float32(0), float32(0)

	for i := 0; i < DefaultRenormalizePeriod; i++ {
		nx := math32.Clamp(x+r.Float32()*0.1-0.05, -1, 1)
		ny := math32.Clamp(y+r.Float32()*0.1-0.05, -1, 1)
		o.Drag(x, y, nx, ny)
		x, y = nx, ny
	}

	if n := o.Current().Magnitude(); !closeTo(n, 1, 1e-6) {
		t.Fatalf("orientation after %d drags\nhave norm %v\nwant 1", DefaultRenormalizePeriod, n)
	}

	for i := 0; i < 1000; i++ {
		nx := math32.Clamp(x+r.Float32()*0.1-0.05, -1, 1)
		ny := math32.Clamp(y+r.Float32()*0.1-0.05, -1, 1)
		o.Drag(x, y, nx, ny)
		x, y = nx, ny
	}

	if n := o.Current().Magnitude(); !closeTo(n, 1, 1e-4) {
		t.Fatalf("orientation after a long drag\nhave norm %v\nwant 1", n)
	}

	if m := o.Matrix4(); !m.IsOrthonormal(1e-4) {
		t.Fatalf("orientation matrix after a long drag is not orthonormal:\n%v", m)
	}

	unit, err := o.Unit()
	if err != nil {
		t.Fatal(err)
	}

	if !unit.Quaternion().Equals(o.Current()) {
		t.Fatalf("Orientation.Unit\nhave %v\nwant %v", unit, o.Current())
	}

}

func TestOrientationDegenerateDrag(t *testing.T) {

	o := NewOrientation(DefaultRadius)
	o.Drag(0, 0, 0.3, 0.1)

	before := o.Current()

	o.Drag(0, 0, float32(math.SmallestNonzeroFloat32), 0)

	if o.Current() != before || !o.Current().IsFinite() {
		t.Fatalf("degenerate drag\nhave %v\nwant %v", o.Current(), before)
	}

	if o.Last() != NewQuaternionIdentity() {
		t.Fatalf("degenerate drag\nhave last %v\nwant identity", o.Last())
	}

	if o.Degenerate() != 1 || o.Count() != 2 {
		t.Fatalf("degenerate drag\nhave %d degenerate of %d\nwant 1 of 2", o.Degenerate(), o.Count())
	}

	o.Reset()

	if o.Current() != NewQuaternionIdentity() || o.Count() != 0 || o.Degenerate() != 0 {
		t.Fatalf("Orientation.Reset\nhave %v (%d, %d)", o.Current(), o.Count(), o.Degenerate())
	}

}

func TestNormalizePointer(t *testing.T) {

	cases := []struct {
		px, py, w, h float32
		x, y         float32
	}{
		{0, 0, 512, 512, -1, 1},
		{512, 512, 512, 512, 1, -1},
		{256, 256, 512, 512, 0, 0},
		{384, 128, 512, 512, 0.5, 0.5},
		{200, 50, 400, 200, 0, 0.5},
	}

	for _, c := range cases {
		if x, y := NormalizePointer(c.px, c.py, c.w, c.h); x != c.x || y != c.y {
			t.Fatalf("NormalizePointer(%v, %v, %v, %v)\nhave %v, %v\nwant %v, %v", c.px, c.py, c.w, c.h, x, y, c.x, c.y)
		}
	}

}

func BenchmarkOrientationDrag(b *testing.B) {

	b.ReportAllocs()

	o := NewOrientation(DefaultRadius)

	for i := 0; i < b.N; i++ {
		o.Drag(0.1, 0.2, 0.12, 0.19)
	}

	b.Log(o.Current())

}
