package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value значение метрики name с набором меток labels из reg
func value(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	nextMetric:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue nextMetric
				}
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("appointments", reg)

	m.RecordVerdict("accepted")
	m.RecordVerdict("rejected_overlap")
	m.RecordVerdict("rejected_overlap")
	m.ObserveHTTPRequest("POST", "/api/v1/companies/{companyId}/appointments", 201, 5*time.Millisecond)
	m.ObserveDBQuery("insert", time.Millisecond, errors.New("unique violation"))
	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.SetDBPoolStats(4, 1, 3, 0)

	assert.Equal(t, 2.0, value(t, reg, "availability_verdicts_total", map[string]string{"verdict": "rejected_overlap"}))
	assert.Equal(t, 1.0, value(t, reg, "availability_verdicts_total", map[string]string{"verdict": "accepted"}))
	assert.Equal(t, 1.0, value(t, reg, "http_requests_total", map[string]string{"status": "201", "service": "appointments"}))
	assert.Equal(t, 1.0, value(t, reg, "db_query_errors_total", map[string]string{"operation": "insert"}))
	assert.Equal(t, 1.0, value(t, reg, "db_query_duration_seconds", map[string]string{"operation": "select"}))
	assert.Equal(t, 1.0, value(t, reg, "db_query_duration_seconds", map[string]string{"operation": "insert"}))
	assert.Equal(t, 3.0, value(t, reg, "db_idle_connections", nil))
}
