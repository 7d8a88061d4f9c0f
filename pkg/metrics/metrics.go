// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов Prometheus сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	LedgerMovementsTotal   *prometheus.CounterVec
	LedgerAmountCentsTotal *prometheus.CounterVec
	ReservationTransitions *prometheus.CounterVec
	SearchCacheResults     *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		LedgerMovementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_movements_total",
			Help: "Wallet movements written to the ledger",
		}, []string{"service", "type"}),
		LedgerAmountCentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_amount_cents_total",
			Help: "Sum of wallet movement amounts in cents",
		}, []string{"service", "type"}),
		ReservationTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_transitions_total",
			Help: "Reservation state transitions by target status",
		}, []string{"service", "status"}),
		SearchCacheResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "search_cache_results_total",
			Help: "Search cache lookups by result (hit/miss)",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.LedgerMovementsTotal,
		m.LedgerAmountCentsTotal,
		m.ReservationTransitions,
		m.SearchCacheResults,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос.
// Все Observe* методы безопасны для nil *Metrics (метрики выключены).
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(seconds)
}

// ObserveMovement фиксирует движение по кошельку
func (m *Metrics) ObserveMovement(movementType string, amountCents int64) {
	if m == nil {
		return
	}
	m.LedgerMovementsTotal.WithLabelValues(m.serviceName, movementType).Inc()
	m.LedgerAmountCentsTotal.WithLabelValues(m.serviceName, movementType).Add(float64(amountCents))
}

// ObserveTransition фиксирует переход бронирования в новый статус
func (m *Metrics) ObserveTransition(status string) {
	if m == nil {
		return
	}
	m.ReservationTransitions.WithLabelValues(m.serviceName, status).Inc()
}

// ObserveCache фиксирует попадание/промах кэша поиска
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.SearchCacheResults.WithLabelValues(m.serviceName, result).Inc()
}
