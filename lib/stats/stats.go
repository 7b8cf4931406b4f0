package stats

import (
	"time"
)

// Stats keeps frame timing for a render loop. It is not safe for concurrent
// use; it belongs to the render thread.
type Stats struct {
	FPS    uint64  `json:"fps"`
	Frames uint64  `json:"frames"`
	Uptime float64 `json:"uptime"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	last         time.Time
	now          func() time.Time
}

func New() *Stats {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Stats {
	s := &Stats{now: now}
	s.start = now()
	s.frameTimer = s.start
	return s
}

// Update records one presented frame and returns the time since the previous
// one, or 0 for the first frame.
func (s *Stats) Update() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := s.now()

	s.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9

	var dt time.Duration
	if !s.last.IsZero() {
		dt = now.Sub(s.last)
	}
	s.last = now
	return dt
}
