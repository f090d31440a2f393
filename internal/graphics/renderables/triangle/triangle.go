package triangle

import (
	"glcube/internal/config"
	"glcube/internal/graphics"
	"glcube/internal/graphics/handle"
	renderer "glcube/internal/graphics/renderer"
	"glcube/internal/meshing"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const ShaderName = "triangle"

// Triangle is the single flat-shaded triangle of the first tutorial step
type Triangle struct {
	shaderDir string

	program     *graphics.Program
	vao         uint32
	vbo         uint32
	vertexCount int32

	proj graphics.Uniform
	view graphics.Uniform

	resources handle.Set
}

func NewTriangle(cfg config.Settings) *Triangle {
	return &Triangle{shaderDir: cfg.ShaderDir}
}

func (t *Triangle) Init() error {
	data := meshing.FlattenPositions(meshing.TriangleVertices)
	t.vertexCount = meshing.PositionLayout.VertexCount(data)

	t.vbo = graphics.NewVertexBuffer(data)
	t.resources.Add("vertex buffer", func() { gl.DeleteBuffers(1, &t.vbo) })

	program, err := graphics.LoadProgram(t.shaderDir, ShaderName, "m_proj", "m_view")
	if err != nil {
		return err
	}
	t.program = program
	t.resources.Add("shader program", t.program.Delete)

	t.vao, err = graphics.NewVertexArray(t.program, t.vbo, meshing.PositionLayout)
	if err != nil {
		return err
	}
	t.resources.Add("vertex array", func() { gl.DeleteVertexArrays(1, &t.vao) })

	t.proj, _ = t.program.Uniform("m_proj")
	t.view, _ = t.program.Uniform("m_view")
	return nil
}

func (t *Triangle) Render(ctx renderer.RenderContext) {
	if t.resources.Released() || t.program == nil {
		return
	}

	t.program.Use()
	t.proj.SetMat4(ctx.Proj)
	t.view.SetMat4(ctx.View)

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, t.vertexCount)
	gl.BindVertexArray(0)
}

func (t *Triangle) Dispose() {
	t.resources.Release()
}
