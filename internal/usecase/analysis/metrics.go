package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the analysis pipeline
type Metrics struct {
	AnalysesTotal      *prometheus.CounterVec
	ExtractedTotal     *prometheus.CounterVec
	FallbacksTotal     *prometheus.CounterVec
	AnalysisDuration   prometheus.Histogram
	ArchivedBytesTotal prometheus.Counter
}

// DefaultMetrics registers the metrics with the default registry
func DefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

// NewMetrics creates the pipeline metrics on the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meeting_insights",
				Subsystem: "analysis",
				Name:      "runs_total",
				Help:      "Transcript analyses, by source and outcome.",
			},
			[]string{"source", "status"},
		),
		ExtractedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meeting_insights",
				Subsystem: "analysis",
				Name:      "extracted_total",
				Help:      "Decisions and action items extracted from transcripts.",
			},
			[]string{"kind"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meeting_insights",
				Subsystem: "analysis",
				Name:      "fallbacks_total",
				Help:      "Analyses that substituted the default list, by kind.",
			},
			[]string{"kind"},
		),
		AnalysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "meeting_insights",
				Subsystem: "analysis",
				Name:      "duration_seconds",
				Help:      "Time spent analyzing and persisting a transcript.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ArchivedBytesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "meeting_insights",
				Subsystem: "analysis",
				Name:      "archived_bytes_total",
				Help:      "Bytes of uploaded recordings and transcripts archived to object storage.",
			},
		),
	}
}
