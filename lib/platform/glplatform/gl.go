// Package glplatform implements platform.GL with the OpenGL 3.3 core bindings.
package glplatform

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/quadgl/quadgl/lib/platform"
)

type GL struct{}

var _ platform.GL = GL{}

func New() GL {
	return GL{}
}

func (GL) Load(procAddr platform.ProcAddrFunc) error {
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return fmt.Errorf("could not load OpenGL function pointers: %w", err)
	}
	return nil
}

func (GL) Version() string {
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	return fmt.Sprintf("%s / %s / %s", vendor, renderer, version)
}

func (GL) CreateShader(stage platform.ShaderStage) uint32 {
	switch stage {
	case platform.VertexShader:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case platform.FragmentShader:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GL) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return false, strings.TrimRight(clog, "\x00")
}

func (GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GL) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GL) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return false, strings.TrimRight(logmsg, "\x00")
}

func (GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (GL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (GL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (GL) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (GL) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (GL) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

// VertexAttribPointer describes a float attribute; stride and offset are in
// bytes.
func (GL) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// ActiveTexture selects texture unit n, counted from TEXTURE0.
func (GL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (GL) EnableBlend() {
	gl.Enable(gl.BLEND)
}

func (GL) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (GL) BlendAlpha() {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (GL) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}
