package trackball

// Wireframe is a set of vertices connected by edges, used to show a View's orientation on screen. Drawing it is left to the caller.
type Wireframe struct {
	Vertices []Vector3
	Edges    [][2]int // Pairs of indices into Vertices
}

// NewFrameWireframe returns the outline of the three faces of an axis-aligned cube of the given half extent that sit on the -X,
// -Y, and -Z sides; this “frame” makes the orientation of the object it surrounds easier to see.
func NewFrameWireframe(halfExtent float32) *Wireframe {

	l := halfExtent

	vertices := []Vector3{
		{-l, -l, -l}, {l, -l, -l}, {l, l, -l}, {-l, l, -l},
		{-l, -l, l}, {l, -l, l}, {l, l, l}, {-l, l, l},
	}

	faces := [][]int{
		{0, 1, 2, 3},
		{0, 1, 5, 4},
		{3, 0, 4, 7},
	}

	return newWireframe(vertices, faces)

}

// NewIcosahedronWireframe returns a regular icosahedron (12 vertices, 20 faces, 30 edges) with a circumradius of scale.
func NewIcosahedronWireframe(scale float32) *Wireframe {

	const x = 0.525731112119133606
	const z = 0.850650808352039932

	vertices := []Vector3{
		{-x, 0, z}, {x, 0, z}, {-x, 0, -z},
		{x, 0, -z}, {0, z, x}, {0, z, -x},
		{0, -z, x}, {0, -z, -x}, {z, x, 0},
		{-z, x, 0}, {z, -x, 0}, {-z, -x, 0},
	}

	for i := range vertices {
		vertices[i] = vertices[i].Scale(scale)
	}

	faces := [][]int{
		{0, 4, 1}, {0, 9, 4}, {9, 5, 4}, {4, 5, 8},
		{4, 8, 1}, {8, 10, 1}, {8, 3, 10}, {5, 3, 8},
		{5, 2, 3}, {2, 7, 3}, {7, 10, 3}, {7, 6, 10},
		{7, 11, 6}, {11, 0, 6}, {0, 1, 6}, {6, 1, 10},
		{9, 0, 11}, {9, 11, 2}, {9, 2, 5}, {7, 2, 11},
	}

	return newWireframe(vertices, faces)

}

// newWireframe collects the edges of the polygons given, keeping only one copy of edges shared by two faces.
func newWireframe(vertices []Vector3, faces [][]int) *Wireframe {

	wf := &Wireframe{Vertices: vertices}

	seen := map[[2]int]bool{}

	for _, face := range faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			edge := [2]int{a, b}
			if !seen[edge] {
				seen[edge] = true
				wf.Edges = append(wf.Edges, edge)
			}
		}
	}

	return wf

}

// Transform returns the Wireframe's vertices transformed by the Matrix4 provided.
func (wf *Wireframe) Transform(matrix Matrix4) []Vector3 {
	out := make([]Vector3, len(wf.Vertices))
	for i, v := range wf.Vertices {
		out[i] = matrix.MultVec(v)
	}
	return out
}
