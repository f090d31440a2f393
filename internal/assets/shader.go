package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	VertexExt   = ".vert"
	FragmentExt = ".frag"
)

// ShaderSource is the vertex/fragment source pair of one named program.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// ShaderPaths returns the two files a shader name maps to.
func ShaderPaths(dir, name string) (vertexPath, fragmentPath string) {
	return filepath.Join(dir, name+VertexExt), filepath.Join(dir, name+FragmentExt)
}

// LoadShaderSource reads <dir>/<name>.vert and <dir>/<name>.frag.
func LoadShaderSource(dir, name string) (ShaderSource, error) {
	vertexPath, fragmentPath := ShaderPaths(dir, name)

	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("could not read vertex shader %q: %w", vertexPath, err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("could not read fragment shader %q: %w", fragmentPath, err)
	}

	return ShaderSource{
		Name:     name,
		Vertex:   string(vertexSource),
		Fragment: string(fragmentSource),
	}, nil
}
