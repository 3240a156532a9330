package transcript

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rowsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meeting_insights",
			Subsystem: "transcript",
			Name:      "rows_parsed_total",
			Help:      "CSV transcript rows parsed, by row shape.",
		},
		[]string{"shape"},
	)

	parseFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "meeting_insights",
			Subsystem: "transcript",
			Name:      "parse_fallbacks_total",
			Help:      "CSV uploads returned verbatim because no rows could be read.",
		},
	)
)
