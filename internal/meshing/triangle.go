package meshing

import "github.com/go-gl/mathgl/mgl32"

// TriangleVertices is the tutorial triangle in the z=0 plane.
var TriangleVertices = []mgl32.Vec3{
	{-0.6, -0.8, 0.0},
	{0.6, -0.8, 0.0},
	{0.0, 0.8, 0.0},
}

// FlattenPositions packs positions into a "3f" float stream.
func FlattenPositions(ps []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(ps)*3)
	for _, p := range ps {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}
