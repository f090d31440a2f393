package meshing

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one interleaved record of a textured mesh: texture coordinate
// first, position second.
type Vertex struct {
	UV       mgl32.Vec2
	Position mgl32.Vec3
}

const (
	CubeTriangleCount = 12
	CubeVertexCount   = CubeTriangleCount * 3
)

// CubeCorners are the 8 unique corner positions of a 2x2x2 cube centred at the origin.
var CubeCorners = []mgl32.Vec3{
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	{-1, 1, -1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
}

// CubeTexCorners are the 4 unique texture coordinates.
var CubeTexCorners = []mgl32.Vec2{
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 1},
}

// Triangles wind counter-clockwise when seen from outside the cube.
var cubeFaces = [][3]int{
	{0, 2, 3}, {0, 1, 2}, // front
	{1, 7, 2}, {1, 6, 7}, // right
	{6, 5, 4}, {4, 7, 6}, // back
	{3, 4, 5}, {3, 5, 0}, // left
	{3, 7, 4}, {3, 2, 7}, // top
	{0, 6, 1}, {0, 5, 6}, // bottom
}

var cubeTexFaces = [][3]int{
	{0, 2, 3}, {0, 1, 2},
	{0, 2, 3}, {0, 1, 2},
	{0, 1, 2}, {2, 3, 0},
	{2, 3, 0}, {2, 0, 1},
	{0, 2, 3}, {0, 1, 2},
	{3, 1, 2}, {3, 0, 1},
}

// expand walks the index table and emits one element per referenced corner.
// Vertices are duplicated per triangle rather than shared.
func expand[T any](corners []T, faces [][3]int) []T {
	out := make([]T, 0, len(faces)*3)
	for _, f := range faces {
		for _, idx := range f {
			out = append(out, corners[idx])
		}
	}
	return out
}

// Cube builds the 36 vertex records of the textured cube.
func Cube() []Vertex {
	positions := expand(CubeCorners, cubeFaces)
	uvs := expand(CubeTexCorners, cubeTexFaces)

	verts := make([]Vertex, len(positions))
	for i := range positions {
		verts[i] = Vertex{UV: uvs[i], Position: positions[i]}
	}
	return verts
}

// Interleave flattens vertex records to the "2f 3f" float stream uploaded to the GPU.
func Interleave(verts []Vertex) []float32 {
	out := make([]float32, 0, len(verts)*TexturedLayout.Floats())
	for _, v := range verts {
		out = append(out, v.UV[0], v.UV[1], v.Position[0], v.Position[1], v.Position[2])
	}
	return out
}
