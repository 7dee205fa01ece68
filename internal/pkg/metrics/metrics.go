package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orehaul"

// Metrics holds all transport service metrics behind a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Fleet and crew metrics
	VehiclesRegistered  *prometheus.CounterVec
	OperatorsRegistered *prometheus.CounterVec

	// Operation lifecycle metrics
	OperationsOpened    prometheus.Counter
	OperationsFinalized prometheus.Counter
	ValidationFailures  *prometheus.CounterVec

	// Warehouse metrics
	IngestedTons   *prometheus.CounterVec
	StockTons      *prometheus.GaugeVec
	TotalStockTons prometheus.Gauge
}

// New creates a Metrics instance with its own registry.
// Go runtime and process collectors are registered alongside the
// business metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
	}

	m.VehiclesRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vehicles_registered_total",
			Help:      "Total number of vehicles registered in the fleet",
		},
		[]string{"kind"},
	)

	m.OperatorsRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operators_registered_total",
			Help:      "Total number of operators registered in the crew",
		},
		[]string{"role"},
	)

	m.OperationsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_opened_total",
			Help:      "Total number of transport operations opened",
		},
	)

	m.OperationsFinalized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_finalized_total",
			Help:      "Total number of transport operations finalized",
		},
	)

	m.ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_validation_failures_total",
			Help:      "Total number of operation validations that failed",
		},
		[]string{"reason"},
	)

	m.IngestedTons = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warehouse_ingested_tons_total",
			Help:      "Total tons of mineral ingested by the warehouse",
		},
		[]string{"mineral_type"},
	)

	m.StockTons = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "warehouse_stock_tons",
			Help:      "Current warehouse stock per mineral type in tons",
		},
		[]string{"mineral_type"},
	)

	m.TotalStockTons = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "warehouse_total_stock_tons",
			Help:      "Current warehouse stock across all minerals in tons",
		},
	)

	registry.MustRegister(
		m.VehiclesRegistered,
		m.OperatorsRegistered,
		m.OperationsOpened,
		m.OperationsFinalized,
		m.ValidationFailures,
		m.IngestedTons,
		m.StockTons,
		m.TotalStockTons,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordVehicleRegistered counts a fleet registration by vehicle kind.
func (m *Metrics) RecordVehicleRegistered(kind string) {
	m.VehiclesRegistered.WithLabelValues(kind).Inc()
}

// RecordOperatorRegistered counts a crew registration by role.
func (m *Metrics) RecordOperatorRegistered(role string) {
	m.OperatorsRegistered.WithLabelValues(role).Inc()
}

// RecordOperationOpened counts an opened transport operation.
func (m *Metrics) RecordOperationOpened() {
	m.OperationsOpened.Inc()
}

// RecordOperationFinalized counts a finalized transport operation.
func (m *Metrics) RecordOperationFinalized() {
	m.OperationsFinalized.Inc()
}

// RecordValidationFailure counts a failed operation validation.
func (m *Metrics) RecordValidationFailure(reason string) {
	m.ValidationFailures.WithLabelValues(reason).Inc()
}

// RecordCargoIngested counts ingested tons per mineral type.
func (m *Metrics) RecordCargoIngested(mineralType string, tons float64) {
	m.IngestedTons.WithLabelValues(mineralType).Add(tons)
}

// SetStock sets the current stock gauge for a mineral type.
func (m *Metrics) SetStock(mineralType string, tons float64) {
	m.StockTons.WithLabelValues(mineralType).Set(tons)
}

// SetTotalStock sets the current stock gauge across all minerals.
func (m *Metrics) SetTotalStock(tons float64) {
	m.TotalStockTons.Set(tons)
}
