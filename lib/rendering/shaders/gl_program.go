package shaders

import (
	"fmt"
	"log/slog"

	"github.com/quadgl/quadgl/lib/platform"
)

// LinkStage marks a failure that happened while linking rather than while
// compiling one of the shader stages.
const LinkStage = "link"

// Error is returned when a shader stage fails to compile or the program fails
// to link. Log holds the driver's diagnostic.
type Error struct {
	Stage string
	Log   string
}

func (e *Error) Error() string {
	if e.Stage == LinkStage {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// BuildGLProgram renders both shader templates, compiles them and links them
// into a program. Either a linked program is returned, or every object created
// on the way has been deleted again.
func BuildGLProgram(g platform.GL, shaderData *ShaderData) (uint32, error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}

	vertexSource, err := shaderer.GetShaderSource(VertexShaderName, shaderData)
	if err != nil {
		return 0, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentSource, err := shaderer.GetShaderSource(FragmentShaderName, shaderData)
	if err != nil {
		return 0, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return NewProgram(g, vertexSource, fragmentSource)
}

func NewProgram(g platform.GL, vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := CompileShader(g, vertexShaderSource, platform.VertexShader)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := CompileShader(g, fragmentShaderSource, platform.FragmentShader)
	if err != nil {
		g.DeleteShader(vertexShader)
		return 0, err
	}

	return LinkProgram(g, vertexShader, fragmentShader)
}

// LinkProgram consumes both shader objects: they are deleted whether or not
// linking succeeds.
func LinkProgram(g platform.GL, vertexShader, fragmentShader uint32) (uint32, error) {
	defer g.DeleteShader(fragmentShader)
	defer g.DeleteShader(vertexShader)

	program := g.CreateProgram()
	if program == 0 {
		return 0, &Error{Stage: LinkStage, Log: "could not create program object"}
	}

	g.AttachShader(program, vertexShader)
	g.AttachShader(program, fragmentShader)
	g.LinkProgram(program)

	ok, infoLog := g.ProgramStatus(program)
	if !ok {
		slog.Error(infoLog, slog.String("module", "shaders"), slog.String("stage", LinkStage))
		g.DeleteProgram(program)
		return 0, &Error{Stage: LinkStage, Log: infoLog}
	}

	g.DetachShader(program, vertexShader)
	g.DetachShader(program, fragmentShader)

	return program, nil
}

func CompileShader(g platform.GL, source string, stage platform.ShaderStage) (uint32, error) {
	if source == "" {
		return 0, &Error{Stage: stage.String(), Log: "empty source"}
	}
	shader := g.CreateShader(stage)
	if shader == 0 {
		return 0, &Error{Stage: stage.String(), Log: "could not create shader object"}
	}

	g.ShaderSource(shader, source)
	g.CompileShader(shader)

	ok, infoLog := g.ShaderStatus(shader)
	if !ok {
		slog.Error(infoLog, slog.String("module", "shaders"), slog.String("stage", stage.String()))
		g.DeleteShader(shader)
		return 0, &Error{Stage: stage.String(), Log: infoLog}
	}

	return shader, nil
}
