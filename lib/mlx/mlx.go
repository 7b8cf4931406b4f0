// Package mlx opens a window with an OpenGL context and prepares everything
// needed to draw textured 2D quads into it: a linked shader program, one
// vertex array and buffer, blend and depth state, and a projection that
// tracks the window size.
//
// All methods must be called from the thread that called Init.
package mlx

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/quadgl/quadgl/lib/metrics"
	"github.com/quadgl/quadgl/lib/platform"
	"github.com/quadgl/quadgl/lib/rendering"
	"github.com/quadgl/quadgl/lib/rendering/shaders"
	"github.com/quadgl/quadgl/lib/stats"
)

const (
	ContextVersionMajor = 3
	ContextVersionMinor = 3
	DefaultSwapInterval = 1
)

// State is how far Init got.
type State int

const (
	Uninit State = iota
	WindowCreated
	ContextReady
	ShadersLinked
	BuffersReady
	Failed
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninit:
		return "uninit"
	case WindowCreated:
		return "window created"
	case ContextReady:
		return "context ready"
	case ShadersLinked:
		return "shaders linked"
	case BuffersReady:
		return "buffers ready"
	case Failed:
		return "failed"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MLX is one window and its rendering session.
type MLX struct {
	windowing platform.Windowing
	gl        platform.GL
	window    platform.Window
	context   *renderContext

	width  int
	height int
	title  string

	state      State
	resizeHook func(width, height int)
	cleanup    teardown
	log        *slog.Logger
	metrics    metrics.WindowMetrics
	stats      *stats.Stats
}

type renderContext struct {
	program uint32
	buffers *rendering.QuadBuffers

	// zdepth grows with every depth handed out by NextDepth.
	zdepth        int32
	initialWidth  int
	initialHeight int
	stretchImage  bool
}

type options struct {
	swapInterval int
	stretchImage bool
	glslVersion  string
	logger       *slog.Logger
}

type Option func(*options)

// WithSwapInterval sets the number of screen refreshes between buffer swaps.
// 0 disables vsync.
func WithSwapInterval(interval int) Option {
	return func(o *options) {
		o.swapInterval = interval
	}
}

// WithStretchImage keeps the projection at the initial window size, so that
// the drawing stretches with the window instead of revealing more of it.
func WithStretchImage(stretch bool) Option {
	return func(o *options) {
		o.stretchImage = stretch
	}
}

func WithGLSLVersion(version string) Option {
	return func(o *options) {
		o.glslVersion = version
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Init creates a width x height window titled title and sets up rendering in
// it. On failure nothing that Init acquired is left behind and the returned
// error is an *Error; use errors.Is with a Kind to tell failures apart.
func Init(p platform.Platform, width, height int, title string, resizable bool, opts ...Option) (*MLX, error) {
	metrics.InitAttempts.Inc()
	m, err := initialise(p, width, height, title, resizable, opts)
	if err != nil {
		metrics.InitFailures.WithLabelValues(KindOf(err).Label()).Inc()
		return nil, err
	}
	return m, nil
}

func initialise(p platform.Platform, width, height int, title string, resizable bool, opts []Option) (*MLX, error) {
	if width <= 0 || height <= 0 {
		return nil, &Error{Kind: InvalidArgument, Op: "init", Err: fmt.Errorf("window size %dx%d is not positive", width, height)}
	}
	if title == "" {
		return nil, &Error{Kind: InvalidArgument, Op: "init", Err: fmt.Errorf("window title is empty")}
	}
	if p.Windowing == nil || p.GL == nil {
		return nil, &Error{Kind: InvalidArgument, Op: "init", Err: fmt.Errorf("incomplete platform")}
	}

	o := options{
		swapInterval: DefaultSwapInterval,
		glslVersion:  shaders.DefaultGLSLVersion,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := p.Windowing.Init(); err != nil {
		return nil, &Error{Kind: WindowingFailure, Op: "init windowing", Err: err}
	}

	m := &MLX{
		windowing: p.Windowing,
		gl:        p.GL,
		width:     width,
		height:    height,
		title:     title,
		context: &renderContext{
			initialWidth:  width,
			initialHeight: height,
			stretchImage:  o.stretchImage,
		},
		log:     o.logger.With(slog.String("module", "mlx")),
		metrics: metrics.NewWindowMetrics(title),
		stats:   stats.New(),
	}
	m.cleanup.push(p.Windowing.Terminate)

	if err := m.createWindow(resizable); err != nil {
		return nil, m.fail(err)
	}
	if err := m.initRender(o); err != nil {
		return nil, m.fail(err)
	}
	if err := m.createBuffers(); err != nil {
		return nil, m.fail(err)
	}

	m.log.Debug(fmt.Sprintf("window %q ready", title), slog.Int("width", width), slog.Int("height", height))
	return m, nil
}

func (m *MLX) fail(err error) error {
	m.cleanup.run()
	m.state = Failed
	m.log.Error(err.Error())
	return err
}

func (m *MLX) createWindow(resizable bool) error {
	m.windowing.Hint(platform.WindowHints{
		ContextVersionMajor: ContextVersionMajor,
		ContextVersionMinor: ContextVersionMinor,
		CoreProfile:         true,
		ForwardCompatible:   runtime.GOOS == "darwin",
		Resizable:           resizable,
	})
	window, err := m.windowing.CreateWindow(m.width, m.height, m.title)
	if err != nil {
		return &Error{Kind: WindowCreateFailure, Op: "create window", Err: err}
	}
	m.window = window
	m.cleanup.push(window.Destroy)
	m.state = WindowCreated
	return nil
}

func (m *MLX) initRender(o options) error {
	m.window.MakeContextCurrent()
	m.window.SetFramebufferSizeCallback(onFramebufferSize)
	m.window.SetOwner(m)
	m.windowing.SwapInterval(o.swapInterval)

	if err := rendering.Init(m.gl, m.windowing.ProcAddress); err != nil {
		return &Error{Kind: FunctionLoadFailure, Op: "load gl", Err: err}
	}
	fbWidth, fbHeight := m.window.FramebufferSize()
	m.gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	m.state = ContextReady

	program, err := shaders.BuildGLProgram(m.gl, &shaders.ShaderData{GLSLVersion: o.glslVersion})
	if err != nil {
		return &Error{Kind: ShaderFailure, Op: "build shaders", Err: err}
	}
	m.cleanup.push(func() {
		m.gl.UseProgram(0)
		m.gl.DeleteProgram(program)
	})
	m.context.program = program
	m.gl.UseProgram(program)
	m.state = ShadersLinked
	return nil
}

func (m *MLX) createBuffers() error {
	buffers, err := rendering.NewQuadBuffers(m.gl, m.context.program)
	if err != nil {
		return &Error{Kind: OutOfMemory, Op: "create buffers", Err: err}
	}
	m.context.buffers = buffers
	m.cleanup.push(buffers.Release)

	// Call manually once to calculate the projection.
	m.window.SetSizeCallback(onResize)
	m.resize(m.width, m.height)

	m.state = BuffersReady
	return nil
}

// Terminate destroys the window and every GL object Init created and shuts
// the windowing subsystem down. Calling it again does nothing.
func (m *MLX) Terminate() {
	if m.state == Terminated {
		return
	}
	m.cleanup.run()
	m.state = Terminated
	m.log.Debug(fmt.Sprintf("window %q terminated", m.title))
}

func (m *MLX) Width() int {
	return m.width
}

func (m *MLX) Height() int {
	return m.height
}

func (m *MLX) State() State {
	return m.state
}

func (m *MLX) Program() uint32 {
	return m.context.program
}

// Buffers returns the quad vertex array and buffer names.
func (m *MLX) Buffers() (vao, vbo uint32) {
	if m.context.buffers == nil {
		return 0, 0
	}
	return m.context.buffers.VAO, m.context.buffers.VBO
}

func (m *MLX) Window() platform.Window {
	return m.window
}

func (m *MLX) Stats() *stats.Stats {
	return m.stats
}

// Depth is the highest depth handed out so far.
func (m *MLX) Depth() int32 {
	return m.context.zdepth
}

// NextDepth hands out the next depth for draw ordering; later quads are drawn
// on top. The projection is widened to keep the new depth visible.
func (m *MLX) NextDepth() int32 {
	m.context.zdepth++
	m.updateProjection()
	return m.context.zdepth
}

// SetResizeHook registers fn to be called after every window resize, once
// the projection has been updated. A nil fn removes the hook.
func (m *MLX) SetResizeHook(fn func(width, height int)) {
	m.resizeHook = fn
}

// CloseWindow asks the window to close; Loop returns after the current frame.
func (m *MLX) CloseWindow() {
	m.window.SetShouldClose(true)
}
