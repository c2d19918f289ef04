package trackball

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
)

// DefaultGLTFNodeName is the name of the node SaveOrientationGLTF stores an orientation in when no name is given.
const DefaultGLTFNodeName = "Orientation"

// ErrNodeNotFound is returned when loading an orientation from a glTF document that has no node of the requested name.
var ErrNodeNotFound = errors.New("trackball: glTF node not found")

// NewOrientationGLTFDocument returns a glTF document containing a single node, named as provided, that is rotated by the
// orientation given. glTF rotations follow the textbook product order, so the node's rotation is the conjugate of q
// (stored X, Y, Z, W, as glTF expects).
func NewOrientationGLTFDocument(name string, q UnitQuaternion) *gltf.Document {

	if name == "" {
		name = DefaultGLTFNodeName
	}

	quat := q.Quaternion()

	doc := gltf.NewDocument()

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:     name,
		Rotation: [4]float64{-float64(quat.X), -float64(quat.Y), -float64(quat.Z), float64(quat.W)},
	})

	if len(doc.Scenes) > 0 {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc

}

// OrientationFromGLTFDocument reads the rotation of the node with the given name out of a glTF document. An empty name
// picks the first node. A node without a rotation is at the identity.
func OrientationFromGLTFDocument(doc *gltf.Document, name string) (UnitQuaternion, error) {

	for _, node := range doc.Nodes {

		if name != "" && node.Name != name {
			continue
		}

		r := node.Rotation

		if r == [4]float64{} {
			return UnitQuaternionIdentity(), nil
		}

		q, err := NewQuaternion(float32(r[3]), -float32(r[0]), -float32(r[1]), -float32(r[2])).Normalize()
		if err != nil {
			return UnitQuaternion{}, fmt.Errorf("node %q: %w", node.Name, err)
		}

		return q, nil

	}

	return UnitQuaternion{}, fmt.Errorf("%w: %q", ErrNodeNotFound, name)

}

// SaveOrientationGLTF writes the orientation given to w as a (JSON) glTF document. See NewOrientationGLTFDocument.
func SaveOrientationGLTF(w io.Writer, name string, q UnitQuaternion) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = false
	return encoder.Encode(NewOrientationGLTFDocument(name, q))
}

// LoadOrientationGLTF reads a .gltf or .glb document from r and returns the rotation of the named node. See OrientationFromGLTFDocument.
func LoadOrientationGLTF(r io.Reader, name string) (UnitQuaternion, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return UnitQuaternion{}, err
	}

	return OrientationFromGLTFDocument(doc, name)

}

// SaveOrientationGLTFFile writes the orientation given to a .gltf file at the path provided, replacing it if it exists.
func SaveOrientationGLTFFile(path, name string, q UnitQuaternion) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := SaveOrientationGLTF(f, name, q); err != nil {
		f.Close()
		return err
	}

	return f.Close()

}

// LoadOrientationGLTFFile loads a .gltf or .glb file from the filepath given, and returns the rotation of the named node.
func LoadOrientationGLTFFile(path, name string) (UnitQuaternion, error) {

	f, err := os.Open(path)
	if err != nil {
		return UnitQuaternion{}, err
	}
	defer f.Close()

	return LoadOrientationGLTF(f, name)

}
