// Package glfwplatform implements platform.Windowing on top of GLFW 3.3.
//
// All calls must be made from the thread that called Init, see
// runtime.LockOSThread.
package glfwplatform

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"
	"github.com/quadgl/quadgl/lib/platform"
)

type Windowing struct {
	mu          sync.Mutex
	initialised bool
}

var _ platform.Windowing = (*Windowing)(nil)

var shared = New()

func New() *Windowing {
	return &Windowing{}
}

// Shared returns the process-wide instance; GLFW itself is a singleton.
func Shared() *Windowing {
	return shared
}

func (g *Windowing) Init() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.initialised {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	g.initialised = true
	slog.Debug("GLFW initialized", slog.String("module", "glfw"))
	return nil
}

func (g *Windowing) Hint(hints platform.WindowHints) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, hints.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.ContextVersionMinor)
	if hints.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if hints.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(hints.Resizable))
}

func (g *Windowing) CreateWindow(width, height int, title string) (platform.Window, error) {
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Window{win: win}, nil
}

func (g *Windowing) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (g *Windowing) PollEvents() {
	glfw.PollEvents()
}

func (g *Windowing) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (g *Windowing) Terminate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.initialised {
		return
	}
	glfw.Terminate()
	g.initialised = false
	slog.Debug("GLFW terminated", slog.String("module", "glfw"))
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

type Window struct {
	win   *glfw.Window
	owner unsafe.Pointer
}

var _ platform.Window = (*Window)(nil)

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window {
	return w.win
}

func (w *Window) MakeContextCurrent() {
	w.win.MakeContextCurrent()
}

func (w *Window) SetFramebufferSizeCallback(cb platform.SizeCallback) {
	if cb == nil {
		w.win.SetFramebufferSizeCallback(nil)
		return
	}
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		cb(w, width, height)
	})
}

func (w *Window) SetSizeCallback(cb platform.SizeCallback) {
	if cb == nil {
		w.win.SetSizeCallback(nil)
		return
	}
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		cb(w, width, height)
	})
}

// SetOwner keeps owner reachable from the native window through the GLFW
// user pointer. The Go value never crosses into C; only a go-pointer token
// does.
func (w *Window) SetOwner(owner any) {
	w.releaseOwner()
	if owner == nil {
		w.win.SetUserPointer(nil)
		return
	}
	w.owner = gopointer.Save(owner)
	w.win.SetUserPointer(w.owner)
}

func (w *Window) Owner() any {
	ptr := w.win.GetUserPointer()
	if ptr == nil {
		return nil
	}
	return gopointer.Restore(ptr)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

func (w *Window) SetSize(width, height int) {
	w.win.SetSize(width, height)
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *Window) SetShouldClose(closing bool) {
	w.win.SetShouldClose(closing)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.releaseOwner()
	w.win.Destroy()
	w.win = nil
}

func (w *Window) releaseOwner() {
	if w.owner != nil {
		gopointer.Unref(w.owner)
		w.owner = nil
	}
}
