package rendering

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/quadgl/quadgl/lib/platform/fake"
	"github.com/quadgl/quadgl/lib/rendering/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, int32(20), VertexLayout.Stride)
	require.Len(t, VertexLayout.Attributes, 2)

	assert.Equal(t, Attribute{Location: 0, Components: 3, Offset: 0}, VertexLayout.Attributes[0])
	assert.Equal(t, Attribute{Location: 1, Components: 2, Offset: 12}, VertexLayout.Attributes[1])
}

func TestNewQuadBuffers(t *testing.T) {
	g := fake.NewGL()
	program, err := shaders.BuildGLProgram(g, nil)
	require.NoError(t, err)
	g.UseProgram(program)

	q, err := NewQuadBuffers(g, program)
	require.NoError(t, err)

	assert.NotZero(t, q.VAO)
	assert.NotZero(t, q.VBO)
	assert.NotEqual(t, q.VAO, q.VBO)
	assert.Equal(t, 1, g.Count("GenVertexArray"))
	assert.Equal(t, 1, g.Count("GenBuffer"))
	assert.Equal(t, q.VAO, g.BoundVAO)
	assert.Equal(t, q.VBO, g.BoundVBO)

	assert.Equal(t, fake.Attrib{Size: 3, Stride: 20, Offset: 0, Enabled: true}, g.Attribs[0])
	assert.Equal(t, fake.Attrib{Size: 2, Stride: 20, Offset: 12, Enabled: true}, g.Attribs[1])

	assert.True(t, g.Blend)
	assert.True(t, g.AlphaBlending)
	assert.True(t, g.DepthTest)
	assert.Equal(t, uint32(0), g.ActiveUnit)
	assert.Equal(t, int32(0), g.Uniforms[TextureUniform])

	q.SetProjection(800, 600, 0)
	assert.Equal(t, [16]float32(Projection(800, 600, 1)), g.Uniforms[ProjectionUniform])

	q.Release()
	q.Release()
	assert.Zero(t, q.VAO)
	assert.Zero(t, q.VBO)
	assert.Equal(t, 1, g.Count("DeleteVertexArray"))
	assert.Equal(t, 1, g.Count("DeleteBuffer"))
	assert.Len(t, g.Live(), 1) // only the program is left
}

func TestNewQuadBuffersOutOfObjects(t *testing.T) {
	g := fake.NewGL()
	g.FailGen = true

	q, err := NewQuadBuffers(g, 0)
	assert.Nil(t, q)
	assert.ErrorIs(t, err, ErrNoObject)
	assert.Empty(t, g.Live())
}

func TestProjection(t *testing.T) {
	m := Projection(800, 600, 2)

	topLeft := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1, topLeft.X(), 1e-6)
	assert.InDelta(t, 1, topLeft.Y(), 1e-6)

	bottomRight := m.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	assert.InDelta(t, 1, bottomRight.X(), 1e-6)
	assert.InDelta(t, -1, bottomRight.Y(), 1e-6)

	assert.InDelta(t, 2.0/800, m.At(0, 0), 1e-9)
	assert.InDelta(t, -2.0/600, m.At(1, 1), 1e-9)
	assert.InDelta(t, -0.5, m.At(2, 2), 1e-9)
}

func TestProjectionClampsDepth(t *testing.T) {
	assert.Equal(t, Projection(10, 10, 1), Projection(10, 10, 0))
	assert.Equal(t, Projection(10, 10, 1), Projection(10, 10, -3))
}

func TestInit(t *testing.T) {
	g := fake.NewGL()
	require.NoError(t, Init(g, nil))
	assert.True(t, g.Loaded)

	g = fake.NewGL()
	g.FailLoad = true
	err := Init(g, nil)
	assert.ErrorIs(t, err, fake.ErrLoad)
}
