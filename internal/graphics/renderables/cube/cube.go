package cube

import (
	"time"

	"glcube/internal/config"
	"glcube/internal/graphics"
	"glcube/internal/graphics/handle"
	renderer "glcube/internal/graphics/renderer"
	"glcube/internal/meshing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const ShaderName = "default"

// Uniform names the default shader must declare
const (
	UniformProj    = "m_proj"
	UniformView    = "m_view"
	UniformModel   = "m_model"
	UniformTexture = "u_texture_0"
)

// RotationAxis is the vertical axis the cube spins around
var RotationAxis = mgl32.Vec3{0, 1, 0}

// Cube implements the textured spinning cube
type Cube struct {
	shaderDir    string
	texturePath  string
	rotationRate float32

	program     *graphics.Program
	vao         uint32
	vbo         uint32
	texture     uint32
	vertexCount int32

	proj    graphics.Uniform
	view    graphics.Uniform
	model   graphics.Uniform
	sampler graphics.Uniform

	baseModel mgl32.Mat4
	resources handle.Set
}

// NewCube creates a cube renderable; GL objects are created in Init
func NewCube(cfg config.Settings) *Cube {
	return &Cube{
		shaderDir:    cfg.ShaderDir,
		texturePath:  cfg.TexturePath,
		rotationRate: cfg.RotationRate,
		baseModel:    mgl32.Ident4(),
	}
}

// Init uploads geometry, links the shader, binds the vertex layout and
// loads the texture
func (c *Cube) Init() error {
	data := meshing.Interleave(meshing.Cube())
	c.vertexCount = meshing.TexturedLayout.VertexCount(data)

	c.vbo = graphics.NewVertexBuffer(data)
	c.resources.Add("vertex buffer", func() { gl.DeleteBuffers(1, &c.vbo) })

	program, err := graphics.LoadProgram(c.shaderDir, ShaderName,
		UniformProj, UniformView, UniformModel, UniformTexture)
	if err != nil {
		return err
	}
	c.program = program
	c.resources.Add("shader program", c.program.Delete)

	c.vao, err = graphics.NewVertexArray(c.program, c.vbo, meshing.TexturedLayout)
	if err != nil {
		return err
	}
	c.resources.Add("vertex array", func() { gl.DeleteVertexArrays(1, &c.vao) })

	c.texture, err = graphics.LoadTexture(c.texturePath)
	if err != nil {
		return err
	}
	c.resources.Add("texture", func() { gl.DeleteTextures(1, &c.texture) })

	// resolved above, so these lookups cannot fail
	c.proj, _ = c.program.Uniform(UniformProj)
	c.view, _ = c.program.Uniform(UniformView)
	c.model, _ = c.program.Uniform(UniformModel)
	c.sampler, _ = c.program.Uniform(UniformTexture)

	c.program.Use()
	c.sampler.SetInt(0)
	c.model.SetMat4(c.baseModel)

	return nil
}

// Render draws the cube rotated by the elapsed wall-clock time
func (c *Cube) Render(ctx renderer.RenderContext) {
	if c.resources.Released() || c.program == nil {
		return
	}

	c.program.Use()
	c.proj.SetMat4(ctx.Proj)
	c.view.SetMat4(ctx.View)
	c.model.SetMat4(ModelMatrix(c.baseModel, ctx.Elapsed, c.rotationRate))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.texture)

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, c.vertexCount)
	gl.BindVertexArray(0)
}

// Dispose releases buffer, program, vertex array and texture, once
func (c *Cube) Dispose() {
	c.resources.Release()
}

// Resources exposes the owned GL objects, mostly for diagnostics
func (c *Cube) Resources() *handle.Set {
	return &c.resources
}

// ModelMatrix rotates base about the vertical axis by elapsed*rate radians.
// It depends only on elapsed, never on an earlier frame's matrix.
func ModelMatrix(base mgl32.Mat4, elapsed time.Duration, rate float32) mgl32.Mat4 {
	angle := float32(elapsed.Seconds()) * rate
	return base.Mul4(mgl32.HomogRotate3D(angle, RotationAxis))
}
