package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/pkg/metrics"
)

func TestMetrics_ObserveMovement(t *testing.T) {
	m := metrics.NewWithRegisterer("garage", prometheus.NewRegistry())

	m.ObserveMovement("hold", 9000)
	m.ObserveMovement("hold", 1000)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.LedgerMovementsTotal.WithLabelValues("garage", "hold")))
	assert.Equal(t, float64(10000), testutil.ToFloat64(m.LedgerAmountCentsTotal.WithLabelValues("garage", "hold")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := metrics.NewWithRegisterer("garage", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/v1/reservations", 201, 0.01)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("garage", "POST", "/api/v1/reservations", "201")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, 0.1)
		m.ObserveMovement("hold", 100)
		m.ObserveTransition("paid")
		m.ObserveCache(true)
	})
}
