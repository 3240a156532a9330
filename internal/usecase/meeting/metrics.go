package meeting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "meeting_insights",
		Subsystem: "projection_cache",
		Name:      "requests_total",
		Help:      "Meeting projection cache lookups, by result.",
	},
	[]string{"result"},
)
