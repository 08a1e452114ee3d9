package renderer

import "github.com/Carmen-Shannon/oxy-viewer/common"

// FloatsPerVertex is the interleaved vertex width: position (3), uv (2), normal (3).
const FloatsPerVertex = 8

// VertexStride is the byte stride of one interleaved vertex.
const VertexStride = FloatsPerVertex * 4

// Mesh is a non-indexed triangle list of interleaved position/uv/normal vertices.
type Mesh struct {
	Label    string
	Vertices []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Bytes returns the vertex data as a byte view for upload.
func (m Mesh) Bytes() []byte {
	return common.SliceToBytes(m.Vertices)
}

// CubeMesh returns a unit cube centred on the origin, 6 faces of 2 triangles each.
func CubeMesh() Mesh {
	return Mesh{
		Label: "Cube",
		Vertices: []float32{
			// back (-Z)
			-0.5, -0.5, -0.5, 0, 0, 0, 0, -1,
			0.5, -0.5, -0.5, 1, 0, 0, 0, -1,
			0.5, 0.5, -0.5, 1, 1, 0, 0, -1,
			0.5, 0.5, -0.5, 1, 1, 0, 0, -1,
			-0.5, 0.5, -0.5, 0, 1, 0, 0, -1,
			-0.5, -0.5, -0.5, 0, 0, 0, 0, -1,
			// front (+Z)
			-0.5, -0.5, 0.5, 0, 0, 0, 0, 1,
			0.5, -0.5, 0.5, 1, 0, 0, 0, 1,
			0.5, 0.5, 0.5, 1, 1, 0, 0, 1,
			0.5, 0.5, 0.5, 1, 1, 0, 0, 1,
			-0.5, 0.5, 0.5, 0, 1, 0, 0, 1,
			-0.5, -0.5, 0.5, 0, 0, 0, 0, 1,
			// left (-X)
			-0.5, 0.5, 0.5, 1, 0, -1, 0, 0,
			-0.5, 0.5, -0.5, 1, 1, -1, 0, 0,
			-0.5, -0.5, -0.5, 0, 1, -1, 0, 0,
			-0.5, -0.5, -0.5, 0, 1, -1, 0, 0,
			-0.5, -0.5, 0.5, 0, 0, -1, 0, 0,
			-0.5, 0.5, 0.5, 1, 0, -1, 0, 0,
			// right (+X)
			0.5, 0.5, 0.5, 1, 0, 1, 0, 0,
			0.5, 0.5, -0.5, 1, 1, 1, 0, 0,
			0.5, -0.5, -0.5, 0, 1, 1, 0, 0,
			0.5, -0.5, -0.5, 0, 1, 1, 0, 0,
			0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
			0.5, 0.5, 0.5, 1, 0, 1, 0, 0,
			// bottom (-Y)
			-0.5, -0.5, -0.5, 0, 1, 0, -1, 0,
			0.5, -0.5, -0.5, 1, 1, 0, -1, 0,
			0.5, -0.5, 0.5, 1, 0, 0, -1, 0,
			0.5, -0.5, 0.5, 1, 0, 0, -1, 0,
			-0.5, -0.5, 0.5, 0, 0, 0, -1, 0,
			-0.5, -0.5, -0.5, 0, 1, 0, -1, 0,
			// top (+Y)
			-0.5, 0.5, -0.5, 0, 1, 0, 1, 0,
			0.5, 0.5, -0.5, 1, 1, 0, 1, 0,
			0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
			0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
			-0.5, 0.5, 0.5, 0, 0, 0, 1, 0,
			-0.5, 0.5, -0.5, 0, 1, 0, 1, 0,
		},
	}
}
