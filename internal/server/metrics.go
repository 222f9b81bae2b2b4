package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfbrank_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"route", "status"},
	)

	rankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cfbrank_ranking_duration_seconds",
			Help:    "Duration of full ranking pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	downloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cfbrank_download_duration_seconds",
			Help:    "Duration of full season downloads in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	downloadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cfbrank_download_failures_total",
			Help: "Total number of dataset downloads that failed",
		},
	)
)
