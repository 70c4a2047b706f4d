package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var formatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "dtfmt",
	Name:      "format_requests_total",
	Help:      "Format requests, by mode and status.",
}, []string{"mode", "status"})
