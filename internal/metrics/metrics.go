// Package metrics defines Prometheus metrics for wastelog.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	MutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastelog_mutations_total",
			Help: "Total inventory mutations by event kind",
		},
		[]string{"kind"},
	)

	AuditRecordsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wastelog_audit_records_total",
			Help: "Total audit records written",
		},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastelog_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(MutationsTotal, AuditRecordsTotal, ErrorsTotal)
}
