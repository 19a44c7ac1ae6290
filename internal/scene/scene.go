package scene

import (
	"cubetext/internal/primitives"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh names in the primitives registry.
const (
	CubeMesh = "cube"
	QuadMesh = "quad"
)

// Per-second spin about world X and Y, scaled by Options.RotationSpeed.
const (
	spinX = 1.0
	spinY = 0.7
)

// Options configure the demo scene.
type Options struct {
	Quad          bool    // show the atlas on a flat quad instead of the cube
	CubeScale     float32 // uniform scale of the unit cube
	RotationSpeed float32
}

// Transform places a mesh in the world: scale, then rotate, then translate.
type Transform struct {
	Position rl.Vector3
	Scale    rl.Vector3
	Rotation rl.Quaternion
}

// Matrix returns the model matrix for t.
func (t Transform) Matrix() rl.Matrix {
	s := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	r := rl.QuaternionToMatrix(t.Rotation)
	tr := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(s, r), tr)
}

// RotateWorld rotates t by angle radians about a world-space axis.
func (t *Transform) RotateWorld(axis rl.Vector3, angle float32) {
	q := rl.QuaternionFromAxisAngle(axis, angle)
	t.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(q, t.Rotation))
}

// Scene holds the camera and the textured object and draws them.
// In cube mode the camera is a perspective camera at (0,0,15) looking at the origin;
// in quad mode an orthographic camera maps one world unit to one pixel.
type Scene struct {
	Camera rl.Camera3D
	Object Transform

	opts    Options
	reg     *primitives.Registry
	texture rl.Texture2D
}

// New returns a scene drawing meshes from reg with tex.
func New(reg *primitives.Registry, tex rl.Texture2D, opts Options) *Scene {
	if opts.CubeScale <= 0 {
		opts.CubeScale = 1
	}
	s := &Scene{opts: opts, reg: reg, texture: tex}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Object.Rotation = rl.QuaternionIdentity()
	if opts.Quad {
		s.Camera.Position = rl.NewVector3(0, 0, 10)
		s.Camera.Projection = rl.CameraOrthographic
		s.Camera.Fovy = float32(rl.GetScreenHeight())
		s.Object.Scale = rl.NewVector3(1, 1, 1)
		return s
	}
	s.Camera.Position = rl.NewVector3(0, 0, 15)
	s.Camera.Projection = rl.CameraPerspective
	s.Camera.Fovy = 45
	s.Object.Position = rl.NewVector3(0, 0, 1.5)
	s.Object.Scale = rl.NewVector3(opts.CubeScale, opts.CubeScale, opts.CubeScale)
	s.Object.RotateWorld(rl.NewVector3(1, 0, 0), -math32.Pi/5)
	return s
}

// Update advances the cube's spin by dt seconds. The quad is static; its camera follows
// the window height so the quad keeps its pixel size.
func (s *Scene) Update(dt float32) {
	if s.opts.Quad {
		s.Camera.Fovy = float32(rl.GetScreenHeight())
		return
	}
	s.Object.RotateWorld(rl.NewVector3(1, 0, 0), spinX*dt*s.opts.RotationSpeed)
	s.Object.RotateWorld(rl.NewVector3(0, 1, 0), spinY*dt*s.opts.RotationSpeed)
}

// Draw renders the textured object. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	name := CubeMesh
	if s.opts.Quad {
		name = QuadMesh
	}
	p := s.Camera.Position
	s.reg.SetView([3]float32{p.X, p.Y, p.Z}, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(s.Camera)
	s.reg.DrawWithTexture(name, s.Object.Matrix(), s.texture)
	rl.EndMode3D()
}
