package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan2docx_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scan2docx_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Conversion metrics
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan2docx_conversions_total",
			Help: "Total number of conversion requests",
		},
		[]string{"status"}, // status: success, error
	)

	conversionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan2docx_conversion_duration_seconds",
			Help:    "Conversion duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 25, 50, 100},
		},
	)

	pagesPerDocument = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan2docx_pages_per_document",
			Help:    "Number of pages per converted document",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// File upload metrics
	uploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan2docx_upload_size_bytes",
			Help:    "Size of uploaded files in bytes",
			Buckets: []float64{1024, 10 * 1024, 100 * 1024, 1024 * 1024, 10 * 1024 * 1024, 50 * 1024 * 1024},
		},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scan2docx_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)
)
