package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scandefaults_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scandefaults_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Registry lookups
	settingLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scandefaults_setting_lookups_total",
			Help: "Total number of setting lookups",
		},
		[]string{"status"}, // status: found, unknown
	)

	presetLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scandefaults_preset_lookups_total",
			Help: "Total number of preset family lookups",
		},
		[]string{"family", "status"}, // status: found, unknown_family, unsupported
	)

	// Identity metrics
	barcodeHashesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scandefaults_barcode_hashes_total",
			Help: "Total number of barcode identities computed",
		},
		[]string{"source"}, // source: http, websocket
	)

	// Augmentation cache metrics
	trackedBarcodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scandefaults_tracked_barcodes",
			Help: "Number of barcodes currently tracked across sessions",
		},
	)

	augmentationsSetTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scandefaults_augmentations_set_total",
			Help: "Total number of highlight and annotation descriptors stored",
		},
		[]string{"kind"}, // kind: highlight, annotation
	)

	augmentationEvictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scandefaults_augmentation_evictions_total",
			Help: "Augmentations dropped because a session cache was full",
		},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scandefaults_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	websocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scandefaults_websocket_messages_total",
			Help: "Total number of WebSocket messages",
		},
		[]string{"direction"}, // direction: sent, received
	)
)
