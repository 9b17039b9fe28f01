package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingOperations *prometheus.CounterVec
	conflictChecks    *prometheus.CounterVec
	syncOperations    *prometheus.CounterVec
	textGenRequests   *prometheus.CounterVec
	roomsOccupied     prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики в указанном registry (удобно для тестов)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		bookingOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pethotel_booking_operations_total",
				Help: "Booking repository operations by result",
			},
			[]string{"operation", "result"},
		),
		conflictChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pethotel_conflict_checks_total",
				Help: "Room conflict checks by outcome",
			},
			[]string{"outcome"},
		),
		syncOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pethotel_sync_operations_total",
				Help: "Snapshot push/pull operations by backend",
			},
			[]string{"backend", "direction", "result"},
		),
		textGenRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pethotel_textgen_requests_total",
				Help: "Text generation requests by kind and result",
			},
			[]string{"kind", "result"},
		),
		roomsOccupied: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pethotel_rooms_occupied",
				Help: "Rooms with a checked-in booking at last dashboard refresh",
			},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingOperations,
		m.conflictChecks,
		m.syncOperations,
		m.textGenRequests,
		m.roomsOccupied,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// IncBookingOperation operation: create/update/set_status, result: ok/conflict/invalid/error
func (m *Metrics) IncBookingOperation(operation, result string) {
	if m == nil {
		return
	}
	m.bookingOperations.WithLabelValues(operation, result).Inc()
}

// IncConflictCheck outcome: free/conflict
func (m *Metrics) IncConflictCheck(outcome string) {
	if m == nil {
		return
	}
	m.conflictChecks.WithLabelValues(outcome).Inc()
}

// IncSyncOperation direction: push/pull
func (m *Metrics) IncSyncOperation(backend, direction, result string) {
	if m == nil {
		return
	}
	m.syncOperations.WithLabelValues(backend, direction, result).Inc()
}

func (m *Metrics) IncTextGeneration(kind, result string) {
	if m == nil {
		return
	}
	m.textGenRequests.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) SetRoomsOccupied(n int) {
	if m == nil {
		return
	}
	m.roomsOccupied.Set(float64(n))
}
