package meshgen

import "cogentcore.org/core/math32"

const (
	verticesPerFace = 4
	indicesPerFace  = 6
)

// TruncatedUVStep is the width of one atlas strip as written in the reference data.
// It is slightly less than 1/6; the last strip is stretched to end at U=1.
const TruncatedUVStep float32 = 0.16666

// ExactUVStep is the exact width of one atlas strip.
const ExactUVStep float32 = 1.0 / FaceCount

// Coordinates are right-handed: x right, y up, z back, so "forward" is -Z.
// The cube is centred on the origin so rotations keep its centre in place.
// Each face lists its corners as bottom-left, top-left, top-right, bottom-right
// with respect to its strip in the atlas.
var cubePositions = [FaceCount][verticesPerFace]math32.Vector3{
	Top: {
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	},
	Bottom: {
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
	},
	Right: {
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
	},
	Left: {
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
	},
	Back: {
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
	},
	Forward: {
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
	},
}

// Local triangle patterns, relative to a face's first vertex. The position table
// lists top, right and back corners clockwise as seen from outside, and bottom,
// left and forward counter-clockwise. Each group gets the pattern that winds its
// triangles counter-clockwise from outside.
//
// Top face seen from above (+Y), -Z up the page:
//
//	0---1
//	|  /|
//	| / |
//	|/  |
//	3---2
var (
	patternTopRightBack    = [indicesPerFace]uint32{0, 3, 1, 1, 3, 2}
	patternBottomLeftFront = [indicesPerFace]uint32{0, 1, 3, 1, 2, 3}
)

var cubeFacePattern = [FaceCount]*[indicesPerFace]uint32{
	Top:     &patternTopRightBack,
	Bottom:  &patternBottomLeftFront,
	Right:   &patternTopRightBack,
	Left:    &patternBottomLeftFront,
	Back:    &patternTopRightBack,
	Forward: &patternBottomLeftFront,
}

// stripU returns the U range of face f's atlas strip. The last strip ends at U=1.
func stripU(f Face, step float32) (u0, u1 float32) {
	u0 = float32(f) * step
	u1 = float32(f+1) * step
	if f == Faces[FaceCount-1] {
		u1 = 1
	}
	return u0, u1
}

// BuildCube returns the unit cube with the reference atlas layout
// (strip width TruncatedUVStep). The result is the same on every call.
func BuildCube() Mesh {
	return BuildCubeWithStep(TruncatedUVStep)
}

// BuildCubeWithStep returns the unit cube with U strips of the given width. Face i
// of Faces covers [i*step, (i+1)*step] x [0, 1]; the last face always ends at U=1.
// V=0 is the top row of the texture.
// A non-positive step falls back to ExactUVStep.
func BuildCubeWithStep(step float32) Mesh {
	if step <= 0 {
		step = ExactUVStep
	}
	m := Mesh{
		Vertices: make([]Vertex, 0, FaceCount*verticesPerFace),
		Indices:  make([]uint32, 0, FaceCount*indicesPerFace),
	}
	for _, f := range Faces {
		base := uint32(len(m.Vertices))
		u0, u1 := stripU(f, step)
		// bottom left, top left, top right, bottom right in UV space
		uvs := [verticesPerFace]math32.Vector2{
			math32.Vec2(u0, 1),
			math32.Vec2(u0, 0),
			math32.Vec2(u1, 0),
			math32.Vec2(u1, 1),
		}
		n := f.Normal()
		for i, p := range cubePositions[f] {
			m.Vertices = append(m.Vertices, Vertex{Position: p, UV: uvs[i], Normal: n})
		}
		for _, idx := range cubeFacePattern[f] {
			m.Indices = append(m.Indices, base+idx)
		}
	}
	return m
}
