package graphics

import (
	"fmt"
	"strings"

	"glcube/internal/assets"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is a uniform slot resolved once at link time.
type Uniform struct {
	name     string
	location int32
}

func (u Uniform) Name() string { return u.name }

func (u Uniform) Location() int32 { return u.location }

// SetMat4 writes a 4x4 matrix. The owning program must be in use.
func (u Uniform) SetMat4(m mgl32.Mat4) {
	gl.UniformMatrix4fv(u.location, 1, false, &m[0])
}

// SetInt writes an integer (or sampler unit).
func (u Uniform) SetInt(v int32) {
	gl.Uniform1i(u.location, v)
}

// Program is a linked shader program together with its uniform table.
type Program struct {
	ID       uint32
	Name     string
	uniforms map[string]Uniform
}

// LoadProgram reads <dir>/<name>.vert and <dir>/<name>.frag, links them and
// resolves the listed uniforms.
func LoadProgram(dir, name string, uniforms ...string) (*Program, error) {
	src, err := assets.LoadShaderSource(dir, name)
	if err != nil {
		return nil, err
	}
	return NewProgram(src, uniforms...)
}

// NewProgram compiles and links src. Every listed uniform must be an active
// uniform of the linked program; otherwise the program is deleted and an
// error is returned.
func NewProgram(src assets.ShaderSource, uniforms ...string) (*Program, error) {
	id, err := compileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", src.Name, err)
	}

	table, err := resolveUniforms(uniforms, func(name string) int32 {
		return gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	})
	if err != nil {
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("shader %q: %w", src.Name, err)
	}

	return &Program{ID: id, Name: src.Name, uniforms: table}, nil
}

// Use activates the shader program
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the handle for a uniform resolved at link time.
func (p *Program) Uniform(name string) (Uniform, error) {
	u, ok := p.uniforms[name]
	if !ok {
		return Uniform{}, fmt.Errorf("shader %q: uniform %q was not resolved at link time", p.Name, name)
	}
	return u, nil
}

// AttribLocation looks up a vertex shader input by name.
func (p *Program) AttribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("shader %q has no active attribute %q", p.Name, name)
	}
	return uint32(loc), nil
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func resolveUniforms(names []string, locate func(name string) int32) (map[string]Uniform, error) {
	table := make(map[string]Uniform, len(names))
	var missing []string
	for _, name := range names {
		loc := locate(name)
		if loc < 0 {
			missing = append(missing, name)
			continue
		}
		table[name] = Uniform{name: name, location: loc}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("unknown uniforms: %s", strings.Join(missing, ", "))
	}
	return table, nil
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// shaders can be deleted after linking
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
