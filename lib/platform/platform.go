// Package platform describes the two native systems quadgl is built on: a
// windowing toolkit that owns windows and GL contexts, and the OpenGL API
// itself. The real implementations live in glfwplatform and glplatform.
package platform

import "unsafe"

// WindowHints are applied to the next window created by a Windowing.
type WindowHints struct {
	ContextVersionMajor int
	ContextVersionMinor int
	CoreProfile         bool
	ForwardCompatible   bool
	Resizable           bool
}

type SizeCallback func(w Window, width, height int)

// Platform bundles the windowing toolkit with the GL implementation that
// drives contexts created by it.
type Platform struct {
	Windowing Windowing
	GL        GL
}

type Windowing interface {
	// Init brings up the windowing subsystem. It is process-wide and may be
	// called any number of times.
	Init() error
	Hint(hints WindowHints)
	CreateWindow(width, height int, title string) (Window, error)
	SwapInterval(interval int)
	PollEvents()
	// ProcAddress resolves a GL entry point for the context current on the
	// calling thread.
	ProcAddress(name string) unsafe.Pointer
	Terminate()
}

type Window interface {
	MakeContextCurrent()
	SetFramebufferSizeCallback(cb SizeCallback)
	SetSizeCallback(cb SizeCallback)

	// SetOwner stores a back-reference from the window to whatever owns it.
	SetOwner(owner any)
	Owner() any

	FramebufferSize() (int, int)
	Size() (int, int)
	SetSize(width, height int)
	SetTitle(title string)
	SetShouldClose(closing bool)
	ShouldClose() bool
	SwapBuffers()
	Destroy()
}

// ProcAddrFunc resolves GL function pointers, see Windowing.ProcAddress.
type ProcAddrFunc func(name string) unsafe.Pointer

// GL is the part of the OpenGL API the renderer uses.
type GL interface {
	Load(procAddr ProcAddrFunc) error
	Version() string

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderStatus reports whether compilation succeeded and the info log.
	ShaderStatus(shader uint32) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramStatus(program uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	DeleteBuffer(vbo uint32)
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	ActiveTexture(unit uint32)
	EnableBlend()
	EnableDepthTest()
	BlendAlpha()

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	UniformMatrix4fv(location int32, m *[16]float32)

	Viewport(x, y, width, height int32)
}

type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}
