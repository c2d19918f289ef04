package trackball

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func randomUnitQuaternion(r *rand.Rand) Quaternion {
	for {
		q, err := randomQuaternion(r).Normalize()
		if err == nil {
			return q.Quaternion()
		}
	}
}

func TestMatrixFromIdentity(t *testing.T) {

	if m := NewMatrix4RotateFromQuaternion(NewQuaternionIdentity()); m != NewMatrix4() {
		t.Fatalf("NewMatrix4RotateFromQuaternion(identity)\nhave %v\nwant %v", m, NewMatrix4())
	}

	if m := UnitQuaternionIdentity().ToMatrix4(); !m.IsIdentity() {
		t.Fatalf("UnitQuaternionIdentity().ToMatrix4()\nhave %v\nwant identity", m)
	}

}

func TestMatrixFromQuaternion(t *testing.T) {

	r := rand.New(rand.NewSource(5))

	for n := 0; n < 100; n++ {

		q := randomUnitQuaternion(r)
		m := q.ToMatrix4()

		want := mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}.Mat4()

		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				if !closeTo(m[i][j], want.At(i, j), 1e-5) {
					t.Fatalf("element [%d][%d] of %v\nhave %v\nwant %v", i, j, q, m[i][j], want.At(i, j))
				}
			}
		}

		if !m.IsOrthonormal(1e-5) {
			t.Fatalf("rotation matrix of %v is not orthonormal:\n%v", q, m)
		}

		if m[3] != [4]float32{0, 0, 0, 1} || m[0][3] != 0 || m[1][3] != 0 || m[2][3] != 0 {
			t.Fatalf("rotation matrix of %v is not homogeneous:\n%v", q, m)
		}

		// The Matrix4 and the Quaternion rotate vectors the same way.
		v := NewVector3(r.Float32(), r.Float32(), r.Float32())

		if a, b := m.MultVec(v), q.RotateVector(v); !a.Equals(b) {
			t.Fatalf("MultVec and RotateVector disagree for %v\nhave %v\nwant %v", q, a, b)
		}

		// Transposing a rotation inverts it.
		if inv := m.Mult(m.Transposed()); !inv.IsIdentity() {
			t.Fatalf("m * transpose(m) is not identity:\n%v", inv)
		}

		if inv := q.Conjugate().ToMatrix4(); !inv.Equals(m.Transposed()) {
			t.Fatalf("matrix of the conjugate\nhave %v\nwant %v", inv, m.Transposed())
		}

	}

}

func TestMatrixComposition(t *testing.T) {

	r := rand.New(rand.NewSource(6))

	for n := 0; n < 50; n++ {

		a := randomUnitQuaternion(r)
		b := randomUnitQuaternion(r)

		// b applied after a, with both the quaternions and the matrices.
		quats := b.Mult(a).ToMatrix4()
		mats := a.ToMatrix4().Mult(b.ToMatrix4())

		if !quats.Equals(mats) {
			t.Fatalf("composition order differs\nquaternions:\n%v\nmatrices:\n%v", quats, mats)
		}

	}

}

func TestMatrixNotOrthonormal(t *testing.T) {

	// Only the products of components show up off the diagonal, so a pure real quaternion of any length gives the identity.
	if m := NewQuaternion(2, 0, 0, 0).ToMatrix4(); !m.IsIdentity() {
		t.Fatalf("matrix of a pure real quaternion\nhave %v\nwant identity", m)
	}

	if m := NewQuaternion(1, 1, 0, 0).ToMatrix4(); m.IsOrthonormal(1e-5) {
		t.Fatalf("matrix of a non-unit quaternion should not be orthonormal:\n%v", m)
	}

	if m := NewQuaternion(1, 0, 0, 0).Divide(0).ToMatrix4(); m.IsFinite() {
		t.Fatalf("matrix of a non-finite quaternion should not be finite:\n%v", m)
	}

}

func TestMatrixScale(t *testing.T) {

	m := NewMatrix4Scale(2, 3, 4)

	if v := m.MultVec(NewVector3(1, 1, 1)); v != NewVector3(2, 3, 4) {
		t.Fatalf("NewMatrix4Scale MultVec\nhave %v\nwant {2, 3, 4}", v)
	}

	if f := m.ToFloats(); f[0] != 2 || f[5] != 3 || f[10] != 4 || f[15] != 1 {
		t.Fatalf("ToFloats\nhave %v", f)
	}

}

func BenchmarkMatrixFromQuaternion(b *testing.B) {

	b.ReportAllocs()

	q := NewQuaternion(0.9, 0.1, -0.3, 0.2)

	var m Matrix4

	for i := 0; i < b.N; i++ {
		m = NewMatrix4RotateFromQuaternion(q)
	}

	b.Log(m)

}
