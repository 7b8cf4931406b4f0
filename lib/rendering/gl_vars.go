package rendering

import (
	"errors"

	"github.com/quadgl/quadgl/lib/platform"
)

// ErrNoObject is returned when the driver hands out 0 for a new vertex array
// or buffer, which only happens when it is out of memory.
var ErrNoObject = errors.New("could not allocate vertex array or buffer")

const f32 = 4

const (
	TextureUniform    = "OutTexture"
	ProjectionUniform = "ProjMatrix"
)

// QuadBuffers holds the vertex array and buffer every quad is streamed
// through, and the uniforms of the program that draws them.
type QuadBuffers struct {
	gl platform.GL

	Program uint32

	// GL IDs
	VAO               uint32
	VBO               uint32
	TexUniform        int32
	ProjectionUniform int32
}

// NewQuadBuffers allocates one vertex array and one buffer, describes
// VertexLayout on them and sets the blend and depth state for drawing quads
// with program, which must be in use. On error nothing is left allocated.
func NewQuadBuffers(g platform.GL, program uint32) (*QuadBuffers, error) {
	q := &QuadBuffers{gl: g, Program: program}

	g.ActiveTexture(0)
	q.VAO = g.GenVertexArray()
	q.VBO = g.GenBuffer()
	if q.VAO == 0 || q.VBO == 0 {
		q.Release()
		return nil, ErrNoObject
	}
	g.BindVertexArray(q.VAO)
	g.BindArrayBuffer(q.VBO)

	for _, attr := range VertexLayout.Attributes {
		g.VertexAttribPointer(attr.Location, attr.Components, VertexLayout.Stride, attr.Offset)
		g.EnableVertexAttribArray(attr.Location)
	}

	g.EnableBlend()
	g.EnableDepthTest()
	g.BlendAlpha()

	q.TexUniform = g.UniformLocation(program, TextureUniform)
	g.Uniform1i(q.TexUniform, 0)
	q.ProjectionUniform = g.UniformLocation(program, ProjectionUniform)

	return q, nil
}

// SetProjection uploads the projection for a width x height drawing area.
func (q *QuadBuffers) SetProjection(width, height int, depth float32) {
	m := [16]float32(Projection(width, height, depth))
	q.gl.UniformMatrix4fv(q.ProjectionUniform, &m)
}

// Release deletes the vertex array and buffer. It is safe to call more than
// once.
func (q *QuadBuffers) Release() {
	if q.VBO != 0 {
		q.gl.DeleteBuffer(q.VBO)
		q.VBO = 0
	}
	if q.VAO != 0 {
		q.gl.DeleteVertexArray(q.VAO)
		q.VAO = 0
	}
}
