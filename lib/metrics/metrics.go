package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	InitAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadgl_init_attempts_total",
		Help: "Total number of window initializations attempted",
	})
	InitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadgl_init_failures_total",
		Help: "Total number of window initializations that failed, by error kind",
	}, []string{"kind"})
	ResizeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadgl_resize_events_total",
		Help: "Total number of window resize events handled",
	}, []string{"title"})
	FramesPresented = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadgl_frames_presented_total",
		Help: "Total number of frames swapped to the screen",
	}, []string{"title"})
)

type WindowMetrics struct {
	ResizeEvents    prometheus.Counter
	FramesPresented prometheus.Counter
}

func NewWindowMetrics(title string) WindowMetrics {
	w := WindowMetrics{
		ResizeEvents:    ResizeEvents.WithLabelValues(title),
		FramesPresented: FramesPresented.WithLabelValues(title),
	}
	w.ResizeEvents.Add(0)
	w.FramesPresented.Add(0)
	return w
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
