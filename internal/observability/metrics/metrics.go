package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics instruments the gin request path.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Metrics exposes application-level instruments.
type Metrics struct {
	invoicesCreated *prometheus.CounterVec
	autoInvoices    *prometheus.CounterVec
}

// NewRegistry builds the registry served at /metrics.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewHTTPMetrics(reg *prometheus.Registry) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicecenter_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "servicecenter_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		invoicesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicecenter_invoices_created_total",
			Help: "Invoices created, by origin (manual or auto).",
		}, []string{"origin"}),
		autoInvoices: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicecenter_auto_invoice_total",
			Help: "Auto-invoice attempts on service request completion, by outcome.",
		}, []string{"outcome"}),
	}
}

// RecordInvoiceCreated increments the created-invoice counter.
func (m *Metrics) RecordInvoiceCreated(origin string) {
	if m == nil {
		return
	}
	m.invoicesCreated.WithLabelValues(normalizeLabel(origin)).Inc()
}

// RecordAutoInvoice records one completion-triggered invoice attempt.
// Outcome is one of: created, skipped_existing, skipped_no_jobs, failed.
func (m *Metrics) RecordAutoInvoice(outcome string) {
	if m == nil {
		return
	}
	m.autoInvoices.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// GinMiddleware records request counts and latency.
func GinMiddleware(h *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		h.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		h.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func normalizeLabel(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "unknown"
	}
	return v
}
