package meshgen

import "cogentcore.org/core/math32"

// Face is one side of the cube. The order of the constants is the order in which
// faces are emitted into the vertex buffer and laid out left to right in the UV atlas.
type Face int

const (
	Top     Face = iota // +Y
	Bottom              // -Y
	Right               // +X
	Left                // -X
	Back                // +Z
	Forward             // -Z
)

// FaceCount is the number of cube faces (and atlas strips).
const FaceCount = 6

// Faces lists every face in emission order.
var Faces = [FaceCount]Face{Top, Bottom, Right, Left, Back, Forward}

var faceNames = [FaceCount]string{"top", "bottom", "right", "left", "back", "forward"}

func (f Face) String() string {
	if f < 0 || int(f) >= FaceCount {
		return "unknown"
	}
	return faceNames[f]
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() math32.Vector3 {
	switch f {
	case Top:
		return math32.Vec3(0, 1, 0)
	case Bottom:
		return math32.Vec3(0, -1, 0)
	case Right:
		return math32.Vec3(1, 0, 0)
	case Left:
		return math32.Vec3(-1, 0, 0)
	case Back:
		return math32.Vec3(0, 0, 1)
	case Forward:
		return math32.Vec3(0, 0, -1)
	}
	return math32.Vector3{}
}
