package mlx

import (
	"context"
	"time"
)

// Loop presents frames until the window is asked to close or ctx is
// cancelled. frame, if not nil, is called before every swap with the time
// since the previous frame.
func (m *MLX) Loop(ctx context.Context, frame func(dt time.Duration)) error {
	var dt time.Duration
	for !m.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if frame != nil {
			frame(dt)
		}
		m.window.SwapBuffers()
		m.metrics.FramesPresented.Inc()
		dt = m.stats.Update()
		m.windowing.PollEvents()
	}
	return nil
}
