package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FaultsTriggered counts degraded responses served because a fault
	// was enabled, labeled by fault name.
	FaultsTriggered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glitchmart_faults_triggered_total",
		Help: "The total number of requests served a degraded response due to an enabled fault",
	}, []string{"fault"})

	logsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glitchmart_log_entries_emitted_total",
		Help: "The total number of log entries accepted by the ingestion endpoint",
	})
	logEmitFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glitchmart_log_emit_failures_total",
		Help: "The total number of log emissions that failed (transport error or non-2xx status)",
	})
	logEmitSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glitchmart_log_emit_skipped_total",
		Help: "The total number of log emissions skipped because the sink is not configured",
	})
	logEmitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glitchmart_log_emit_duration_seconds",
		Help:    "Time taken to ship a log entry to the ingestion endpoint",
		Buckets: prometheus.DefBuckets,
	})
)
