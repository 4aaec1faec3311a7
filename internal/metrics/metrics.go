package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"sales-ledger/internal/domain"
)

// Metrics bundles sales ledger metrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	SalesRecorded  prometheus.Counter
	SalesRejected  *prometheus.CounterVec
	ReportsWritten *prometheus.CounterVec
	Revenue        prometheus.Gauge
}

// New constructs and registers metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SalesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_ledger_sales_recorded_total",
			Help: "Total sales recorded in the ledger",
		}),
		SalesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ledger_sales_rejected_total",
				Help: "Total rejected sale insertions by reason",
			},
			[]string{"reason"},
		),
		ReportsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ledger_reports_written_total",
				Help: "Total reports written by format",
			},
			[]string{"format"},
		),
		Revenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sales_ledger_revenue_total",
			Help: "Revenue of all recorded sales",
		}),
	}
	m.registry.MustRegister(
		m.SalesRecorded,
		m.SalesRejected,
		m.ReportsWritten,
		m.Revenue,
	)
	return m
}

// Registry exposes the registry the metrics are bound to.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSale records the outcome of one insertion.
func (m *Metrics) ObserveSale(err error) {
	if err != nil {
		m.SalesRejected.WithLabelValues(RejectionReason(err)).Inc()
		return
	}
	m.SalesRecorded.Inc()
}

// ObserveImport records the outcome of every row of an import.
func (m *Metrics) ObserveImport(result domain.ImportResult) {
	m.SalesRecorded.Add(float64(result.Imported))
	for _, rejected := range result.Rejected {
		m.SalesRejected.WithLabelValues(RejectionReason(rejected.Err)).Inc()
	}
}

// ObserveRevenue sets the revenue gauge.
func (m *Metrics) ObserveRevenue(total decimal.Decimal) {
	m.Revenue.Set(total.InexactFloat64())
}

// ObserveReport counts a report written in format.
func (m *Metrics) ObserveReport(format string) {
	m.ReportsWritten.WithLabelValues(format).Inc()
}

// WriteTextfile writes every metric in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// RejectionReason maps an insertion error to a metric label.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrInvalidUnitPrice):
		return "invalid_unit_price"
	case errors.Is(err, domain.ErrInvalidDate):
		return "invalid_date"
	default:
		return "other"
	}
}
