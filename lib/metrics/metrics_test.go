package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWindowMetrics(t *testing.T) {
	w := NewWindowMetrics("metrics-test")
	assert.Equal(t, float64(0), testutil.ToFloat64(w.ResizeEvents))

	w.ResizeEvents.Inc()
	w.FramesPresented.Add(3)
	assert.Equal(t, float64(1), testutil.ToFloat64(w.ResizeEvents))
	assert.Equal(t, float64(3), testutil.ToFloat64(FramesPresented.WithLabelValues("metrics-test")))
}

func TestHandler(t *testing.T) {
	InitFailures.WithLabelValues("handler-test").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `quadgl_init_failures_total{kind="handler-test"} 1`)
}
