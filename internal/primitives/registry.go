package primitives

import (
	"fmt"

	"cubetext/internal/meshgen"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds an uploaded mesh and the CPU buffers it points into. raylib keeps raw
// pointers to the buffers, so they must stay reachable for the mesh's lifetime.
type cached struct {
	mesh      rl.Mesh
	positions []float32
	texcoords []float32
	normals   []float32
	indices   []uint16
}

// Registry maps names to uploaded meshes and draws them with a textured material.
// It must be used after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]*cached
	mtl      rl.Material
	lit      bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns an empty registry. When lit is false meshes are drawn with raylib's
// default shader (texture times tint, no lighting); otherwise with a directional-light shader.
func NewRegistry(lit bool) *Registry {
	r := &Registry{
		cache:    make(map[string]*cached),
		lit:      lit,
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if lit {
		if ts := loadLitTexturedShader(); rl.IsShaderValid(ts) {
			r.mtl.Shader = ts
		}
	}
	return r
}

// Upload converts m into a raylib mesh and sends it to the GPU under name, replacing any
// mesh already registered with that name.
func (r *Registry) Upload(name string, m meshgen.Mesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("primitives: mesh %q is empty", name)
	}
	idx, ok := m.Indices16()
	if !ok {
		return fmt.Errorf("primitives: mesh %q has indices beyond 16 bits", name)
	}
	c := &cached{
		positions: m.Positions(),
		texcoords: m.Texcoords(),
		normals:   m.Normals(),
		indices:   idx,
	}
	c.mesh = rl.Mesh{
		VertexCount:   int32(len(m.Vertices)),
		TriangleCount: int32(m.TriangleCount()),
		Vertices:      &c.positions[0],
		Texcoords:     &c.texcoords[0],
		Normals:       &c.normals[0],
		Indices:       &c.indices[0],
	}
	rl.UploadMesh(&c.mesh, false)
	r.Unload(name)
	r.cache[name] = c
	return nil
}

// Unload frees the GPU buffers of the named mesh.
func (r *Registry) Unload(name string) {
	c, ok := r.cache[name]
	if !ok {
		return
	}
	// The CPU buffers are Go memory; detach them so raylib only frees GPU state.
	c.mesh.Vertices, c.mesh.Texcoords, c.mesh.Normals, c.mesh.Indices = nil, nil, nil, nil
	rl.UnloadMesh(&c.mesh)
	delete(r.cache, name)
}

// Close unloads every mesh and the lit shader.
func (r *Registry) Close() {
	for name := range r.cache {
		r.Unload(name)
	}
	if r.lit && rl.IsShaderValid(r.mtl.Shader) {
		rl.UnloadShader(r.mtl.Shader)
	}
}

// SetView sets camera position and direction-to-light for this frame. Only used when lit.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// DrawWithTexture draws the named mesh with tex as its base colour and the given model
// transform. Must be called between BeginMode3D and EndMode3D. Unknown names are skipped.
func (r *Registry) DrawWithTexture(name string, transform rl.Matrix, tex rl.Texture2D) {
	c, ok := r.cache[name]
	if !ok {
		return
	}
	rl.SetMaterialTexture(&r.mtl, rl.MapAlbedo, tex)
	if r.lit {
		r.setLitShaderUniforms(r.mtl.Shader)
	}
	rl.DrawMesh(c.mesh, r.mtl, transform)
}
