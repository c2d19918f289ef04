package trackball

import (
	"strconv"

	"github.com/solarlune/trackball/math32"
)

// Matrix4 represents a 4x4 homogeneous matrix. Element matrix[i][j] holds m_ij of the rotation table, so matrix[0] is the
// X axis of a rotation matrix and matrix[3] holds translation; laid out flat, a Matrix4 is a column-major OpenGL matrix.
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewEmptyMatrix4 returns a new Matrix4 with every element set to 0.
func NewEmptyMatrix4() Matrix4 {
	return Matrix4{}
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4RotateFromQuaternion returns a rotation Matrix4 built from the Quaternion given. The Quaternion is expected to be
// of unit length; if it isn't, the result isn't orthogonal. Non-finite components propagate into the Matrix4.
func NewMatrix4RotateFromQuaternion(q Quaternion) Matrix4 {

	mat := NewMatrix4()

	mat[0][0] = 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	mat[0][1] = 2 * (q.X*q.Y - q.Z*q.W)
	mat[0][2] = 2 * (q.Z*q.X + q.W*q.Y)

	mat[1][0] = 2 * (q.X*q.Y + q.Z*q.W)
	mat[1][1] = 1 - 2*(q.Z*q.Z+q.X*q.X)
	mat[1][2] = 2 * (q.Y*q.Z - q.W*q.X)

	mat[2][0] = 2 * (q.Z*q.X - q.W*q.Y)
	mat[2][1] = 2 * (q.Y*q.Z + q.X*q.W)
	mat[2][2] = 1 - 2*(q.Y*q.Y+q.X*q.X)

	return mat

}

// Transposed transposes a Matrix4. For orthonormalized Matrices (like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	new := NewMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
// With the row-vector convention MultVec uses, matrix is applied first and other second.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := NewEmptyMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				newMat[i][j] += matrix[i][k] * other[k][j]
			}
		}
	}

	return newMat

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// Row returns the indiced row from the Matrix4 as a Vector3 (dropping the fourth element).
func (matrix Matrix4) Row(rowIndex int) Vector3 {
	return Vector3{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
	}
}

// Column returns the indiced column from the Matrix4 as a Vector3 (dropping the fourth element).
func (matrix Matrix4) Column(columnIndex int) Vector3 {
	return Vector3{
		X: matrix[0][columnIndex],
		Y: matrix[1][columnIndex],
		Z: matrix[2][columnIndex],
	}
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {

	eps := float32(0.0001) // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

// IsOrthonormal returns true if the columns of the upper-left 3x3 block are of unit length and pairwise orthogonal, within eps.
func (matrix Matrix4) IsOrthonormal(eps float32) bool {

	for i := 0; i < 3; i++ {

		if math32.Abs(matrix.Column(i).Magnitude()-1) > eps {
			return false
		}

		for j := i + 1; j < 3; j++ {
			if math32.Abs(matrix.Column(i).Dot(matrix.Column(j))) > eps {
				return false
			}
		}

	}

	return true

}

// IsFinite returns true if no element of the Matrix4 is NaN or infinite.
func (matrix Matrix4) IsFinite() bool {
	for i := range matrix {
		for j := range matrix[i] {
			if !math32.IsFinite(matrix[i][j]) {
				return false
			}
		}
	}
	return true
}

// ToFloats returns the Matrix4 as 16 floats, in the order a column-major graphics API expects.
func (matrix Matrix4) ToFloats() [16]float32 {
	return [16]float32{
		matrix[0][0],
		matrix[0][1],
		matrix[0][2],
		matrix[0][3],

		matrix[1][0],
		matrix[1][1],
		matrix[1][2],
		matrix[1][3],

		matrix[2][0],
		matrix[2][1],
		matrix[2][2],
		matrix[2][3],

		matrix[3][0],
		matrix[3][1],
		matrix[3][2],
		matrix[3][3],
	}
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
