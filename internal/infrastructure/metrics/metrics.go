// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "photobooth"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	sessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created",
	})

	photosUploadedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_uploaded_total",
			Help:      "Total number of stored uploads by content type",
		},
		[]string{"content_type"},
	)

	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_bytes_total",
		Help:      "Total bytes of stored uploads",
	})

	retentionDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retention_deleted_files_total",
		Help:      "Total number of media files removed by retention sweeps",
	})

	eventCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_cache_lookups_total",
			Help:      "Event cache lookups by result",
		},
		[]string{"result"},
	)

	panicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_recovered_total",
			Help:      "Handler panics turned into 500 responses, by route",
		},
		[]string{"route"},
	)
)

// ObserveHTTPRequest records one finished request. route should be the
// matched route template, never the raw path.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func SessionCreated() {
	sessionsCreatedTotal.Inc()
}

func PhotoUploaded(contentType string, size int) {
	photosUploadedTotal.WithLabelValues(contentType).Inc()
	uploadBytesTotal.Add(float64(size))
}

func RetentionDeleted(n int) {
	if n > 0 {
		retentionDeletedTotal.Add(float64(n))
	}
}

func EventCacheHit() {
	eventCacheLookups.WithLabelValues("hit").Inc()
}

func EventCacheMiss() {
	eventCacheLookups.WithLabelValues("miss").Inc()
}

func PanicRecovered(route string) {
	panicsRecoveredTotal.WithLabelValues(route).Inc()
}
