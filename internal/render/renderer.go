package render

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"demo-scenes/internal/logger"
	"demo-scenes/internal/m4"
	"demo-scenes/internal/mesh"
	"demo-scenes/internal/scene"
	"demo-scenes/internal/texture"
)

// cached is an uploaded mesh. buffers owns the arrays the raylib mesh points into, so it
// must live as long as the mesh; never pass mesh to rl.UnloadMesh, which would free Go memory.
type cached struct {
	mesh    rl.Mesh
	buffers mesh.Buffers
}

// Renderer uploads a demo's meshes and textures and draws its frames. GPU work is
// deferred to the first Draw so it runs after the window and GL context exist.
type Renderer struct {
	log      *logger.Logger
	pending  map[string]mesh.Mesh
	texPaths map[string]string
	texOpts  texture.Options

	loaded      bool
	cache       map[string]*cached
	textures    map[string]rl.Texture2D
	mtl         rl.Material
	texturedMtl rl.Material
}

// New returns a renderer for d. Nothing touches the GPU until the first Draw.
func New(log *logger.Logger, d scene.Demo, opts texture.Options) *Renderer {
	return &Renderer{
		log:      log,
		pending:  d.Meshes(),
		texPaths: d.Textures(),
		texOpts:  opts,
		cache:    make(map[string]*cached),
		textures: make(map[string]rl.Texture2D),
	}
}

// ensureLoaded runs once, on the first Draw.
func (r *Renderer) ensureLoaded() {
	if r.loaded {
		return
	}
	r.loaded = true

	r.mtl = rl.LoadMaterialDefault()
	if s := loadColorShader(); rl.IsShaderValid(s) {
		r.mtl.Shader = s
	}
	r.texturedMtl = rl.LoadMaterialDefault()
	if s := loadTexturedShader(); rl.IsShaderValid(s) {
		r.texturedMtl.Shader = s
	}

	for _, key := range sortedKeys(r.pending) {
		r.upload(key, r.pending[key])
	}
	r.pending = nil
	for _, key := range sortedKeys(r.texPaths) {
		r.loadTexture(key, r.texPaths[key])
	}
}

// upload validates m and sends it to the GPU. Invalid meshes are logged and uploaded anyway.
func (r *Renderer) upload(key string, m mesh.Mesh) {
	if err := m.Validate(); err != nil {
		r.log.Logf("mesh %s: %v", key, err)
	}
	b := m.Buffers()
	if b.Triangles == 0 {
		r.log.Logf("mesh %s: nothing to draw", key)
		return
	}
	c := &cached{buffers: b}
	c.mesh.VertexCount = int32(len(b.Positions) / 3)
	c.mesh.TriangleCount = int32(b.Triangles)
	c.mesh.Vertices = &c.buffers.Positions[0]
	c.mesh.Texcoords = &c.buffers.TexCoords[0]
	c.mesh.Colors = &c.buffers.Colors[0]
	if len(c.buffers.Normals) > 0 {
		c.mesh.Normals = &c.buffers.Normals[0]
	}
	rl.UploadMesh(&c.mesh, false)
	r.cache[key] = c
}

func (r *Renderer) loadTexture(key, path string) {
	img, err := texture.Load(path, r.texOpts)
	if err != nil {
		r.log.Logf("texture %s: %v", key, err)
		return
	}
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if !rl.IsTextureValid(tex) {
		r.log.Logf("texture %s: upload failed", key)
		return
	}
	r.textures[key] = tex
}

// Draw renders one frame of d. Call between BeginDrawing and EndDrawing, before any 2D overlay.
func (r *Renderer) Draw(d scene.Demo) {
	r.ensureLoaded()
	view, proj := d.Camera()
	begin(view, proj, d.DepthTest())
	for _, dc := range d.Draws() {
		c, ok := r.cache[dc.Mesh]
		if !ok {
			continue
		}
		if tex, ok := r.textures[dc.Texture]; ok && dc.Texture != "" {
			rl.SetMaterialTexture(&r.texturedMtl, rl.MapAlbedo, tex)
			rl.DrawMesh(c.mesh, r.texturedMtl, Matrix(dc.Model))
			continue
		}
		rl.DrawMesh(c.mesh, r.mtl, Matrix(dc.Model))
	}
	end()
}

// Close releases textures and shaders. Mesh buffers go away with the GL context.
func (r *Renderer) Close() {
	for key, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, key)
	}
	if !r.loaded {
		return
	}
	if rl.IsShaderValid(r.mtl.Shader) {
		rl.UnloadShader(r.mtl.Shader)
	}
	if rl.IsShaderValid(r.texturedMtl.Shader) {
		rl.UnloadShader(r.texturedMtl.Shader)
	}
}

// Matrix converts to raylib. Both store translation in elements 12–14, so element k maps to Mk.
func Matrix(m m4.Matrix) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// begin replaces raylib's projection and modelview for the demo's draws, the way
// BeginMode3D does for a Camera3D.
func begin(view, proj m4.Matrix, depth bool) {
	rl.DrawRenderBatchActive()
	rl.MatrixMode(rl.Projection)
	rl.PushMatrix()
	rl.SetMatrixProjection(Matrix(proj))
	rl.MatrixMode(rl.Modelview)
	rl.SetMatrixModelview(Matrix(view))
	if depth {
		rl.EnableDepthTest()
	}
	rl.DisableBackfaceCulling()
}

// end restores the 2D state for overlays.
func end() {
	rl.DrawRenderBatchActive()
	rl.MatrixMode(rl.Projection)
	rl.PopMatrix()
	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	rl.DisableDepthTest()
	rl.EnableBackfaceCulling()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
