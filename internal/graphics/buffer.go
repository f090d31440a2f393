package graphics

import (
	"fmt"

	"glcube/internal/meshing"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// NewVertexBuffer uploads data once into a STATIC_DRAW array buffer.
func NewVertexBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

// NewVertexArray binds the interleaved layout of vbo to the program's inputs,
// matching attributes by name.
func NewVertexArray(p *Program, vbo uint32, layout meshing.Layout) (uint32, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := layout.Stride()
	offsets := layout.Offsets()
	for i, attr := range layout {
		loc, err := p.AttribLocation(attr.Name)
		if err != nil {
			gl.BindVertexArray(0)
			gl.BindBuffer(gl.ARRAY_BUFFER, 0)
			gl.DeleteVertexArrays(1, &vao)
			return 0, fmt.Errorf("vertex layout: %w", err)
		}
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, attr.Size, gl.FLOAT, false, stride, offsets[i])
	}

	// unbind to reduce accidental state changes
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, nil
}
