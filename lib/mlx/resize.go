package mlx

import (
	"github.com/quadgl/quadgl/lib/platform"
)

func owner(w platform.Window) *MLX {
	m, _ := w.Owner().(*MLX)
	return m
}

// onFramebufferSize keeps the viewport in sync with the framebuffer, which
// differs from the window size on HiDPI screens.
func onFramebufferSize(w platform.Window, width, height int) {
	m := owner(w)
	if m == nil {
		return
	}
	m.gl.Viewport(0, 0, int32(width), int32(height))
}

func onResize(w platform.Window, width, height int) {
	m := owner(w)
	if m == nil {
		return
	}
	m.metrics.ResizeEvents.Inc()
	m.resize(width, height)
}

func (m *MLX) resize(width, height int) {
	m.width = width
	m.height = height
	m.updateProjection()
	if m.resizeHook != nil {
		m.resizeHook(width, height)
	}
}

func (m *MLX) updateProjection() {
	ctx := m.context
	if ctx.buffers == nil {
		return
	}
	width, height := m.width, m.height
	if ctx.stretchImage {
		width, height = ctx.initialWidth, ctx.initialHeight
	}
	ctx.buffers.SetProjection(width, height, float32(ctx.zdepth))
}
