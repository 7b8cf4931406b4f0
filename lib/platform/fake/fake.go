// Package fake provides in-memory platform.Windowing and platform.GL
// implementations. They record every call and track live objects so tests can
// check the init sequence for leaks without a display or GPU.
package fake

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/quadgl/quadgl/lib/platform"
)

var (
	ErrInit   = errors.New("fake: windowing init failed")
	ErrWindow = errors.New("fake: window creation failed")
	ErrLoad   = errors.New("fake: function pointer load failed")
)

type Windowing struct {
	FailInit   bool
	FailWindow bool

	// FramebufferScale multiplies the window size to get the framebuffer
	// size, like a HiDPI display. Zero means 1.
	FramebufferScale int

	Calls       []string
	Hints       platform.WindowHints
	Interval    int
	Initialised bool
	Windows     []*Window
}

var _ platform.Windowing = (*Windowing)(nil)

func (f *Windowing) Init() error {
	f.Calls = append(f.Calls, "Init")
	if f.FailInit {
		return ErrInit
	}
	f.Initialised = true
	return nil
}

func (f *Windowing) Hint(hints platform.WindowHints) {
	f.Calls = append(f.Calls, "Hint")
	f.Hints = hints
}

func (f *Windowing) CreateWindow(width, height int, title string) (platform.Window, error) {
	f.Calls = append(f.Calls, "CreateWindow")
	if f.FailWindow {
		return nil, ErrWindow
	}
	scale := f.FramebufferScale
	if scale == 0 {
		scale = 1
	}
	w := &Window{Width: width, Height: height, Title: title, Scale: scale, Resizable: f.Hints.Resizable}
	f.Windows = append(f.Windows, w)
	return w, nil
}

func (f *Windowing) SwapInterval(interval int) {
	f.Calls = append(f.Calls, "SwapInterval")
	f.Interval = interval
}

func (f *Windowing) PollEvents() {
	f.Calls = append(f.Calls, "PollEvents")
}

func (f *Windowing) ProcAddress(name string) unsafe.Pointer {
	return nil
}

func (f *Windowing) Terminate() {
	f.Calls = append(f.Calls, "Terminate")
	f.Initialised = false
}

// LiveWindows counts windows that were created and not destroyed.
func (f *Windowing) LiveWindows() int {
	n := 0
	for _, w := range f.Windows {
		if !w.Destroyed {
			n++
		}
	}
	return n
}

type Window struct {
	Width, Height int
	Title         string
	Scale         int
	Resizable     bool

	Current   bool
	Destroyed bool
	Closing   bool
	Swaps     int

	owner             any
	framebufferSizeCb platform.SizeCallback
	sizeCb            platform.SizeCallback
}

var _ platform.Window = (*Window)(nil)

func (w *Window) MakeContextCurrent() {
	w.Current = true
}

func (w *Window) SetFramebufferSizeCallback(cb platform.SizeCallback) {
	w.framebufferSizeCb = cb
}

func (w *Window) SetSizeCallback(cb platform.SizeCallback) {
	w.sizeCb = cb
}

func (w *Window) SetOwner(owner any) {
	w.owner = owner
}

func (w *Window) Owner() any {
	return w.owner
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Width * w.Scale, w.Height * w.Scale
}

func (w *Window) Size() (int, int) {
	return w.Width, w.Height
}

// SetSize resizes the window and fires the installed callbacks, the way the
// event loop would after a user drags the window edge.
func (w *Window) SetSize(width, height int) {
	w.Width, w.Height = width, height
	if w.framebufferSizeCb != nil {
		fw, fh := w.FramebufferSize()
		w.framebufferSizeCb(w, fw, fh)
	}
	if w.sizeCb != nil {
		w.sizeCb(w, width, height)
	}
}

func (w *Window) SetTitle(title string) {
	w.Title = title
}

func (w *Window) SetShouldClose(closing bool) {
	w.Closing = closing
}

func (w *Window) ShouldClose() bool {
	return w.Closing
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

func (w *Window) Destroy() {
	w.Destroyed = true
	w.Current = false
	w.owner = nil
}

type shader struct {
	stage  platform.ShaderStage
	source string
}

// GL is a fake OpenGL. Object names are handed out from a single counter
// starting at 1, so 0 always means "no object".
type GL struct {
	FailLoad bool
	// FailCompile makes compilation of the given stages fail.
	FailCompile map[platform.ShaderStage]bool
	FailLink    bool
	// FailGen makes the driver return 0 for new vertex arrays and buffers.
	FailGen bool

	Calls []string

	Loaded        bool
	ActiveUnit    uint32
	Blend         bool
	DepthTest     bool
	AlphaBlending bool
	BoundVAO      uint32
	BoundVBO      uint32
	ActiveProgram uint32
	ViewportRect  [4]int32
	Attribs       map[uint32]Attrib
	Uniforms      map[string]any

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32][]uint32
	linked   map[uint32]bool
	vaos     map[uint32]bool
	vbos     map[uint32]bool
	locs     map[string]int32
}

type Attrib struct {
	Size    int32
	Stride  int32
	Offset  uintptr
	Enabled bool
}

var _ platform.GL = (*GL)(nil)

func NewGL() *GL {
	return &GL{
		FailCompile: map[platform.ShaderStage]bool{},
		Attribs:     map[uint32]Attrib{},
		Uniforms:    map[string]any{},
		shaders:     map[uint32]*shader{},
		programs:    map[uint32][]uint32{},
		linked:      map[uint32]bool{},
		vaos:        map[uint32]bool{},
		vbos:        map[uint32]bool{},
		locs:        map[string]int32{},
	}
}

func (g *GL) name() uint32 {
	g.next++
	return g.next
}

func (g *GL) call(format string, args ...any) {
	g.Calls = append(g.Calls, fmt.Sprintf(format, args...))
}

func (g *GL) Load(procAddr platform.ProcAddrFunc) error {
	g.call("Load")
	if g.FailLoad {
		return ErrLoad
	}
	g.Loaded = true
	return nil
}

func (g *GL) Version() string {
	return "fake / fake / 3.3"
}

func (g *GL) CreateShader(stage platform.ShaderStage) uint32 {
	g.call("CreateShader %s", stage)
	id := g.name()
	g.shaders[id] = &shader{stage: stage}
	return id
}

func (g *GL) ShaderSource(id uint32, source string) {
	g.call("ShaderSource %d", id)
	if s, ok := g.shaders[id]; ok {
		s.source = source
	}
}

func (g *GL) CompileShader(id uint32) {
	g.call("CompileShader %d", id)
}

func (g *GL) ShaderStatus(id uint32) (bool, string) {
	s, ok := g.shaders[id]
	if !ok {
		return false, "no such shader"
	}
	if s.source == "" {
		return false, "empty source"
	}
	if g.FailCompile[s.stage] {
		return false, fmt.Sprintf("0:1(1): error: %s shader rejected", s.stage)
	}
	return true, ""
}

func (g *GL) DeleteShader(id uint32) {
	g.call("DeleteShader %d", id)
	delete(g.shaders, id)
}

func (g *GL) CreateProgram() uint32 {
	g.call("CreateProgram")
	id := g.name()
	g.programs[id] = nil
	return id
}

func (g *GL) AttachShader(program, id uint32) {
	g.call("AttachShader %d %d", program, id)
	g.programs[program] = append(g.programs[program], id)
}

func (g *GL) DetachShader(program, id uint32) {
	g.call("DetachShader %d %d", program, id)
	attached := g.programs[program]
	for i, s := range attached {
		if s == id {
			g.programs[program] = append(attached[:i], attached[i+1:]...)
			break
		}
	}
}

func (g *GL) LinkProgram(program uint32) {
	g.call("LinkProgram %d", program)
	g.linked[program] = !g.FailLink && len(g.programs[program]) == 2
}

func (g *GL) ProgramStatus(program uint32) (bool, string) {
	if g.linked[program] {
		return true, ""
	}
	return false, "error: linking failed"
}

func (g *GL) UseProgram(program uint32) {
	g.call("UseProgram %d", program)
	g.ActiveProgram = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.call("DeleteProgram %d", program)
	delete(g.programs, program)
	delete(g.linked, program)
	if g.ActiveProgram == program {
		g.ActiveProgram = 0
	}
}

func (g *GL) GenVertexArray() uint32 {
	g.call("GenVertexArray")
	if g.FailGen {
		return 0
	}
	id := g.name()
	g.vaos[id] = true
	return id
}

func (g *GL) BindVertexArray(vao uint32) {
	g.call("BindVertexArray %d", vao)
	g.BoundVAO = vao
}

func (g *GL) DeleteVertexArray(vao uint32) {
	g.call("DeleteVertexArray %d", vao)
	delete(g.vaos, vao)
	if g.BoundVAO == vao {
		g.BoundVAO = 0
	}
}

func (g *GL) GenBuffer() uint32 {
	g.call("GenBuffer")
	if g.FailGen {
		return 0
	}
	id := g.name()
	g.vbos[id] = true
	return id
}

func (g *GL) BindArrayBuffer(vbo uint32) {
	g.call("BindArrayBuffer %d", vbo)
	g.BoundVBO = vbo
}

func (g *GL) DeleteBuffer(vbo uint32) {
	g.call("DeleteBuffer %d", vbo)
	delete(g.vbos, vbo)
	if g.BoundVBO == vbo {
		g.BoundVBO = 0
	}
}

func (g *GL) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	g.call("VertexAttribPointer %d", index)
	a := g.Attribs[index]
	a.Size, a.Stride, a.Offset = size, stride, offset
	g.Attribs[index] = a
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.call("EnableVertexAttribArray %d", index)
	a := g.Attribs[index]
	a.Enabled = true
	g.Attribs[index] = a
}

func (g *GL) ActiveTexture(unit uint32) {
	g.call("ActiveTexture %d", unit)
	g.ActiveUnit = unit
}

func (g *GL) EnableBlend() {
	g.call("EnableBlend")
	g.Blend = true
}

func (g *GL) EnableDepthTest() {
	g.call("EnableDepthTest")
	g.DepthTest = true
}

func (g *GL) BlendAlpha() {
	g.call("BlendAlpha")
	g.AlphaBlending = true
}

func (g *GL) UniformLocation(program uint32, name string) int32 {
	if !g.linked[program] {
		return -1
	}
	loc, ok := g.locs[name]
	if !ok {
		loc = int32(len(g.locs))
		g.locs[name] = loc
	}
	return loc
}

func (g *GL) uniformName(location int32) string {
	for name, loc := range g.locs {
		if loc == location {
			return name
		}
	}
	return ""
}

func (g *GL) Uniform1i(location int32, v int32) {
	g.call("Uniform1i %d", location)
	if name := g.uniformName(location); name != "" {
		g.Uniforms[name] = v
	}
}

func (g *GL) UniformMatrix4fv(location int32, m *[16]float32) {
	g.call("UniformMatrix4fv %d", location)
	if name := g.uniformName(location); name != "" {
		g.Uniforms[name] = *m
	}
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.call("Viewport")
	g.ViewportRect = [4]int32{x, y, width, height}
}

// Live lists every GL object that has been created and not deleted, sorted
// by kind and name.
func (g *GL) Live() []string {
	var live []string
	for id := range g.shaders {
		live = append(live, fmt.Sprintf("shader %d", id))
	}
	for id := range g.programs {
		live = append(live, fmt.Sprintf("program %d", id))
	}
	for id := range g.vaos {
		live = append(live, fmt.Sprintf("vao %d", id))
	}
	for id := range g.vbos {
		live = append(live, fmt.Sprintf("vbo %d", id))
	}
	sort.Strings(live)
	return live
}

// Count returns how many recorded calls start with prefix.
func (g *GL) Count(prefix string) int {
	n := 0
	for _, c := range g.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// IsProgram reports whether program exists and linked successfully.
func (g *GL) IsProgram(program uint32) bool {
	_, ok := g.programs[program]
	return ok && g.linked[program]
}
