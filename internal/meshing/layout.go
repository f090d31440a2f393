package meshing

const floatSize = 4

// Attribute is one named float vector inside an interleaved vertex.
// Name must match the shader input it feeds.
type Attribute struct {
	Name string
	Size int32 // components
}

// Layout describes an interleaved float vertex, in memory order.
type Layout []Attribute

// TexturedLayout matches Vertex / Interleave.
var TexturedLayout = Layout{
	{Name: "in_texcoord_0", Size: 2},
	{Name: "in_position", Size: 3},
}

// PositionLayout matches FlattenPositions.
var PositionLayout = Layout{
	{Name: "in_position", Size: 3},
}

// Floats is the number of floats per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride is the vertex size in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * floatSize)
}

// Offsets returns the byte offset of each attribute.
func (l Layout) Offsets() []uintptr {
	offs := make([]uintptr, len(l))
	var at uintptr
	for i, a := range l {
		offs[i] = at
		at += uintptr(a.Size) * floatSize
	}
	return offs
}

// VertexCount returns how many whole vertices a float stream holds.
func (l Layout) VertexCount(data []float32) int32 {
	if f := l.Floats(); f > 0 {
		return int32(len(data) / f)
	}
	return 0
}
