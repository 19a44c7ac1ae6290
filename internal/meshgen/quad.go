package meshgen

import "cogentcore.org/core/math32"

// BuildQuad returns a width x height rectangle centred on the origin in the XY
// plane, facing +Z, with UVs covering the whole texture (V=0 at the top edge).
// Its corners are listed like the top face, so it shares that index pattern.
// Non-positive sizes are treated as 1.
func BuildQuad(width, height float32) Mesh {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	hw, hh := width/2, height/2
	n := math32.Vec3(0, 0, 1)
	return Mesh{
		Vertices: []Vertex{
			{Position: math32.Vec3(-hw, -hh, 0), UV: math32.Vec2(0, 1), Normal: n},
			{Position: math32.Vec3(-hw, hh, 0), UV: math32.Vec2(0, 0), Normal: n},
			{Position: math32.Vec3(hw, hh, 0), UV: math32.Vec2(1, 0), Normal: n},
			{Position: math32.Vec3(hw, -hh, 0), UV: math32.Vec2(1, 1), Normal: n},
		},
		Indices: append([]uint32(nil), patternTopRightBack[:]...),
	}
}
