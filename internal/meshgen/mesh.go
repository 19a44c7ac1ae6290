package meshgen

import "cogentcore.org/core/math32"

// Vertex is one mesh vertex. Vertices at the same position on different faces are
// separate values because their normals and UVs differ.
type Vertex struct {
	Position math32.Vector3 `json:"position" yaml:"position"`
	UV       math32.Vector2 `json:"uv" yaml:"uv"`
	Normal   math32.Vector3 `json:"normal" yaml:"normal"`
}

// Mesh is an indexed triangle list. Every three consecutive indices form one
// triangle, wound counter-clockwise when seen from its front side.
type Mesh struct {
	Vertices []Vertex `json:"vertices" yaml:"vertices"`
	Indices  []uint32 `json:"indices" yaml:"indices"`
}

// TriangleCount returns the number of triangles described by Indices.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangles returns the index list grouped into triangles.
func (m Mesh) Triangles() [][3]uint32 {
	out := make([][3]uint32, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		out = append(out, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}
	return out
}

// faceVertices returns the four vertices of a cube face. Only meaningful for meshes
// built by BuildCube; returns nil when the mesh is too short.
func (m Mesh) faceVertices(f Face) []Vertex {
	start := int(f) * verticesPerFace
	if f < 0 || start+verticesPerFace > len(m.Vertices) {
		return nil
	}
	out := make([]Vertex, verticesPerFace)
	copy(out, m.Vertices[start:start+verticesPerFace])
	return out
}

// Positions returns vertex positions as a flat xyz buffer.
func (m Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.Position.X, v.Position.Y, v.Position.Z)
	}
	return out
}

// Texcoords returns vertex UVs as a flat uv buffer.
func (m Mesh) Texcoords() []float32 {
	out := make([]float32, 0, len(m.Vertices)*2)
	for _, v := range m.Vertices {
		out = append(out, v.UV.X, v.UV.Y)
	}
	return out
}

// Normals returns vertex normals as a flat xyz buffer.
func (m Mesh) Normals() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	return out
}

// Indices16 returns the indices narrowed to uint16, the index type raylib meshes use.
// ok is false if any index does not fit.
func (m Mesh) Indices16() (out []uint16, ok bool) {
	out = make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		if idx > 0xFFFF {
			return nil, false
		}
		out[i] = uint16(idx)
	}
	return out, true
}
