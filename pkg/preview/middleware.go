package preview

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rebuildsTotal   prometheus.Counter
	rebuildDuration prometheus.Histogram
	synthDuration   prometheus.Histogram
}

var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

// initMetrics registers the preview metrics on the default registerer.
func initMetrics() *metrics {
	return &metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "requests_total",
			Help:      "Total HTTP requests served by the preview server",
		}, []string{"path", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		rebuildsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "rebuilds_total",
			Help:      "Total template rebuilds",
		}),

		rebuildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "rebuild_duration_seconds",
			Help:      "Template rebuild duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		synthDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "synthesis_duration_seconds",
			Help:      "Output-tree synthesis duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func getMetrics() *metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = initMetrics()
	})
	return globalMetrics
}

// recordRebuild records one template rebuild.
func recordRebuild(elapsed time.Duration) {
	m := getMetrics()
	m.rebuildsTotal.Inc()
	m.rebuildDuration.Observe(elapsed.Seconds())
}

// recordSynthesis records one synthesis pass.
func recordSynthesis(elapsed time.Duration) {
	getMetrics().synthDuration.Observe(elapsed.Seconds())
}

// statusWriter captures the response status for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware counts requests and observes their duration.
func metricsMiddleware() func(http.Handler) http.Handler {
	m := getMetrics()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			m.requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(r.URL.Path, http.StatusText(sw.status)).Inc()
		})
	}
}

// tracingMiddleware opens one span per request.
func tracingMiddleware(tracerName string) func(http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
			defer span.End()

			span.SetAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.status_code", sw.status))
			if sw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sw.status))
			}
		})
	}
}

// requestLogger logs one line per request through slog.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"elapsed", time.Since(start))
		})
	}
}
