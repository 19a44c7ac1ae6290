package meshgen

import (
	"sort"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uvTol = 1e-4

func TestBuildCubeCounts(t *testing.T) {
	m := BuildCube()
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, 12, m.TriangleCount())
	assert.Len(t, m.Positions(), 24*3)
	assert.Len(t, m.Texcoords(), 24*2)
	assert.Len(t, m.Normals(), 24*3)
	for _, idx := range m.Indices {
		assert.Less(t, idx, uint32(24))
	}
}

func TestBuildCubeTopFace(t *testing.T) {
	m := BuildCube()
	top := m.faceVertices(Top)
	require.Len(t, top, 4)
	want := []math32.Vector3{
		math32.Vec3(-0.5, 0.5, -0.5),
		math32.Vec3(0.5, 0.5, -0.5),
		math32.Vec3(0.5, 0.5, 0.5),
		math32.Vec3(-0.5, 0.5, 0.5),
	}
	for i, v := range top {
		assert.Equal(t, want[i], v.Position, "vertex %d", i)
		assert.Equal(t, math32.Vec3(0, 1, 0), v.Normal, "vertex %d", i)
	}
	tris := m.Triangles()
	assert.Equal(t, [3]uint32{0, 3, 1}, tris[0])
	assert.Equal(t, [3]uint32{1, 3, 2}, tris[1])
}

func TestBuildCubeReferenceIndices(t *testing.T) {
	want := []uint32{
		0, 3, 1, 1, 3, 2,
		4, 5, 7, 5, 6, 7,
		8, 11, 9, 9, 11, 10,
		12, 13, 15, 13, 14, 15,
		16, 19, 17, 17, 19, 18,
		20, 21, 23, 21, 22, 23,
	}
	assert.Equal(t, want, BuildCube().Indices)
}

func TestBuildCubeTrianglesStayOnOneFace(t *testing.T) {
	m := BuildCube()
	for i, tri := range m.Triangles() {
		face := tri[0] / 4
		assert.Equal(t, face, tri[1]/4, "triangle %d", i)
		assert.Equal(t, face, tri[2]/4, "triangle %d", i)
		n := m.Vertices[tri[0]].Normal
		assert.Equal(t, n, m.Vertices[tri[1]].Normal, "triangle %d", i)
		assert.Equal(t, n, m.Vertices[tri[2]].Normal, "triangle %d", i)
	}
}

func TestBuildCubeWinding(t *testing.T) {
	m := BuildCube()
	for i, tri := range m.Triangles() {
		v0 := m.Vertices[tri[0]]
		v1 := m.Vertices[tri[1]]
		v2 := m.Vertices[tri[2]]
		cross := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))
		assert.Greater(t, cross.Dot(v0.Normal), float32(0), "triangle %d faces inward", i)
		// the cross product points along the normal and nowhere else
		assert.InDelta(t, cross.Length(), cross.Dot(v0.Normal), 1e-6, "triangle %d", i)
	}
}

func TestBuildCubeNormals(t *testing.T) {
	m := BuildCube()
	counts := make(map[math32.Vector3]int)
	for _, v := range m.Vertices {
		counts[v.Normal]++
	}
	want := map[math32.Vector3]int{
		math32.Vec3(1, 0, 0):  4,
		math32.Vec3(-1, 0, 0): 4,
		math32.Vec3(0, 1, 0):  4,
		math32.Vec3(0, -1, 0): 4,
		math32.Vec3(0, 0, 1):  4,
		math32.Vec3(0, 0, -1): 4,
	}
	assert.Equal(t, want, counts)
	for _, f := range Faces {
		for _, v := range m.faceVertices(f) {
			assert.Equal(t, f.Normal(), v.Normal, "face %s", f)
		}
	}
}

func TestBuildCubeUVStrips(t *testing.T) {
	for _, step := range []float32{TruncatedUVStep, ExactUVStep} {
		m := BuildCubeWithStep(step)
		var us []float32
		for _, f := range Faces {
			vs := m.faceVertices(f)
			lo := float32(f) / 6
			hi := float32(f+1) / 6
			for _, v := range vs {
				assert.True(t, v.UV.Y == 0 || v.UV.Y == 1, "face %s: V=%g", f, v.UV.Y)
				assert.GreaterOrEqual(t, v.UV.X, lo-uvTol, "face %s", f)
				assert.LessOrEqual(t, v.UV.X, hi+uvTol, "face %s", f)
				us = append(us, v.UV.X)
			}
			// bottom-left, top-left, top-right, bottom-right
			assert.Equal(t, vs[0].UV.X, vs[1].UV.X, "face %s", f)
			assert.Equal(t, vs[2].UV.X, vs[3].UV.X, "face %s", f)
			assert.Less(t, vs[1].UV.X, vs[2].UV.X, "face %s", f)
			assert.Equal(t, float32(1), vs[0].UV.Y)
			assert.Equal(t, float32(0), vs[1].UV.Y)
			assert.Equal(t, float32(0), vs[2].UV.Y)
			assert.Equal(t, float32(1), vs[3].UV.Y)
			assert.InDelta(t, 1.0/6, vs[2].UV.X-vs[1].UV.X, uvTol, "face %s", f)
		}
		sort.Slice(us, func(i, j int) bool { return us[i] < us[j] })
		assert.Equal(t, float32(0), us[0])
		assert.Equal(t, float32(1), us[len(us)-1])
	}
}

func TestBuildCubeAdjacentStripsShareSeams(t *testing.T) {
	m := BuildCube()
	for i := 1; i < FaceCount; i++ {
		prev := m.faceVertices(Faces[i-1])
		cur := m.faceVertices(Faces[i])
		assert.Equal(t, prev[2].UV.X, cur[0].UV.X, "seam %d", i)
	}
}

func TestStripUMatchesMesh(t *testing.T) {
	for _, step := range []float32{TruncatedUVStep, ExactUVStep} {
		m := BuildCubeWithStep(step)
		for _, f := range Faces {
			u0, u1 := stripU(f, step)
			vs := m.faceVertices(f)
			assert.Equal(t, u0, vs[0].UV.X, "face %s", f)
			assert.Equal(t, u1, vs[2].UV.X, "face %s", f)
		}
	}
	_, last := stripU(Forward, TruncatedUVStep)
	assert.Equal(t, float32(1), last)
}

func TestBuildCubeDeterministic(t *testing.T) {
	assert.Equal(t, BuildCube(), BuildCube())
	assert.Equal(t, BuildCubeWithStep(ExactUVStep), BuildCubeWithStep(0))
}

func TestBuildCubeIsValidAndClosed(t *testing.T) {
	for _, step := range []float32{TruncatedUVStep, ExactUVStep} {
		m := BuildCubeWithStep(step)
		assert.NoError(t, m.Validate())
		assert.NoError(t, m.CheckClosed())
	}
}

func TestValidateReportsBrokenMesh(t *testing.T) {
	m := BuildCube()
	// flip the first triangle
	m.Indices[1], m.Indices[2] = m.Indices[2], m.Indices[1]
	assert.Error(t, m.Validate())
	assert.Error(t, m.CheckClosed())

	m = BuildCube()
	m.Indices[0] = 99
	assert.Error(t, m.Validate())
	assert.Error(t, m.CheckClosed())

	m = BuildCube()
	m.Indices = m.Indices[:30]
	assert.NoError(t, m.Validate())
	assert.Error(t, m.CheckClosed(), "missing a face leaves open edges")
}

func TestBuildCubeResultIsOwnedByCaller(t *testing.T) {
	m := BuildCube()
	m.Vertices[0].Position = math32.Vec3(9, 9, 9)
	m.Indices[0] = 7
	fresh := BuildCube()
	assert.Equal(t, math32.Vec3(-0.5, 0.5, -0.5), fresh.Vertices[0].Position)
	assert.Equal(t, uint32(0), fresh.Indices[0])
}

func TestIndices16(t *testing.T) {
	m := BuildCube()
	idx, ok := m.Indices16()
	require.True(t, ok)
	require.Len(t, idx, 36)
	for i := range idx {
		assert.Equal(t, uint32(idx[i]), m.Indices[i])
	}
	m.Indices[0] = 70000
	_, ok = m.Indices16()
	assert.False(t, ok)
}

func TestFaceNames(t *testing.T) {
	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "unknown", Face(42).String())
	assert.Nil(t, Mesh{}.faceVertices(Top))
}
