package extractor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractor_fetch_total",
			Help: "Total number of product page fetches by status.",
		},
		[]string{"status"},
	)
	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extractor_fetch_duration_seconds",
			Help:    "Histogram of product page fetch durations.",
			Buckets: prometheus.DefBuckets,
		},
	)
)
