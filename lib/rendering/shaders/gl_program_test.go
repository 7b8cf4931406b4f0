package shaders

import (
	"errors"
	"testing"

	"github.com/quadgl/quadgl/lib/platform"
	"github.com/quadgl/quadgl/lib/platform/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderTemplates(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{VertexShaderName, FragmentShaderName}, s.TemplateNames())

	vert, err := s.GetShaderSource(VertexShaderName, nil)
	require.NoError(t, err)
	assert.Contains(t, vert, "#version 330 core")
	assert.Contains(t, vert, "uniform mat4 ProjMatrix;")
	assert.Contains(t, vert, "layout(location = 1) in vec2 aTexCoord;")

	frag, err := s.GetShaderSource(FragmentShaderName, &ShaderData{GLSLVersion: "410 core"})
	require.NoError(t, err)
	assert.Contains(t, frag, "#version 410 core")
	assert.Contains(t, frag, "uniform sampler2D OutTexture;")

	_, err = s.GetShaderSource("nope.frag", nil)
	assert.Error(t, err)
}

func TestBuildGLProgram(t *testing.T) {
	g := fake.NewGL()

	program, err := BuildGLProgram(g, nil)
	require.NoError(t, err)
	assert.NotZero(t, program)
	assert.True(t, g.IsProgram(program))

	// stage objects are not needed once the program is linked
	assert.Equal(t, []string{"program 3"}, g.Live())
	assert.Equal(t, 2, g.Count("DetachShader"))
}

func TestCompileFailure(t *testing.T) {
	for _, stage := range []platform.ShaderStage{platform.VertexShader, platform.FragmentShader} {
		t.Run(stage.String(), func(t *testing.T) {
			g := fake.NewGL()
			g.FailCompile[stage] = true

			program, err := BuildGLProgram(g, nil)
			assert.Zero(t, program)

			var shaderErr *Error
			require.True(t, errors.As(err, &shaderErr))
			assert.Equal(t, stage.String(), shaderErr.Stage)
			assert.Contains(t, shaderErr.Log, "rejected")

			assert.Empty(t, g.Live())
			assert.Zero(t, g.Count("CreateProgram"))
		})
	}
}

func TestLinkFailure(t *testing.T) {
	g := fake.NewGL()
	g.FailLink = true

	program, err := BuildGLProgram(g, nil)
	assert.Zero(t, program)

	var shaderErr *Error
	require.True(t, errors.As(err, &shaderErr))
	assert.Equal(t, LinkStage, shaderErr.Stage)
	assert.EqualError(t, err, "failed to link program: error: linking failed")
	assert.Empty(t, g.Live())
}

func TestCompileEmptySource(t *testing.T) {
	g := fake.NewGL()

	shader, err := CompileShader(g, "", platform.VertexShader)
	assert.Zero(t, shader)
	assert.EqualError(t, err, "failed to compile vertex shader: empty source")
	assert.Zero(t, g.Count("CreateShader"))
}
