package rendering

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of a textured quad as it sits in the vertex buffer.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Attribute describes one float vector inside Vertex.
type Attribute struct {
	Location   uint32
	Components int32
	Offset     uintptr
}

type Layout struct {
	Stride     int32
	Attributes []Attribute
}

// VertexLayout is derived from the Vertex type, so the attribute pointers
// can't drift from the struct.
var VertexLayout = Layout{
	Stride: int32(unsafe.Sizeof(Vertex{})),
	Attributes: []Attribute{
		{Location: 0, Components: int32(len(Vertex{}.Position)), Offset: unsafe.Offsetof(Vertex{}.Position)},
		{Location: 1, Components: int32(len(Vertex{}.UV)), Offset: unsafe.Offsetof(Vertex{}.UV)},
	},
}

// The shaders read tightly packed float32s: 3 for position then 2 for UV.
var (
	_ [unsafe.Sizeof(Vertex{}) - 5*f32]struct{}
	_ [5*f32 - unsafe.Sizeof(Vertex{})]struct{}
	_ [unsafe.Offsetof(Vertex{}.UV) - 3*f32]struct{}
	_ [3*f32 - unsafe.Offsetof(Vertex{}.UV)]struct{}
)
