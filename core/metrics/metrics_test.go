package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetMissing("interface", false, 3)
	m.SetMissing("interface", true, 1)
	m.AddCreated("power port", 2)
	m.AddCreated("power port", 0)
	m.ObserveJob("apply", "completed", 150*time.Millisecond)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.missingComponents.WithLabelValues("interface", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.missingComponents.WithLabelValues("interface", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.componentsCreated.WithLabelValues("power port")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("apply", "completed")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SetMissing("interface", false, 1)
		m.AddCreated("interface", 1)
		m.ObserveJob("scan", "completed", time.Second)
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.AddCreated("device bay", 1)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `devicesync_components_created_total{category="device bay"} 1`)
}
