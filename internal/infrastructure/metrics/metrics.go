// Package metrics exposes ledger and HTTP activity as Prometheus collectors.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopledger/internal/domain/documents/sale"
	"shopledger/internal/domain/ledger"
)

var _ ledger.Observer = (*Metrics)(nil)

// Metrics holds every collector, registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SalesPosted  *prometheus.CounterVec
	SalesRevenue *prometheus.CounterVec
	SaleItems    prometheus.Histogram

	LowStockProducts prometheus.Gauge

	LoginAttempts *prometheus.CounterVec
}

// New creates the collectors with names starting with prefix.
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		SalesPosted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_sales_posted_total",
				Help: "Total number of posted sales",
			},
			[]string{"document_type", "payment_method"},
		),
		SalesRevenue: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_sales_revenue_total",
				Help: "Sum of posted sale totals, tax included",
			},
			[]string{"document_type"},
		),
		SaleItems: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_sale_items",
				Help:    "Units per posted sale",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),

		LowStockProducts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_low_stock_products",
				Help: "Products with stock at or below their minimum",
			},
		),

		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_login_attempts_total",
				Help: "Operator login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// SalePosted implements ledger.Observer.
func (m *Metrics) SalePosted(_ context.Context, s sale.Sale) {
	docType := string(s.DocumentType)
	m.SalesPosted.WithLabelValues(docType, string(s.PaymentMethod)).Inc()
	m.SalesRevenue.WithLabelValues(docType).Add(s.Total.InexactFloat64())

	units := 0
	for _, item := range s.Items {
		units += item.Quantity
	}
	m.SaleItems.Observe(float64(units))
}

// StockLevels implements ledger.Observer.
func (m *Metrics) StockLevels(_ context.Context, lowStock int) {
	m.LowStockProducts.Set(float64(lowStock))
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

// ObserveLogin records a login attempt outcome ("success" or "failure").
func (m *Metrics) ObserveLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}
