package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "data_sweepers"

type Metrics struct {
	gatherer      prometheus.Gatherer
	filesTotal    *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	exportedBytes *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		filesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "Processed files by input format and reached state.",
		}, []string{"format", "state"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_processing_seconds",
			Help:      "Time spent processing one file.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 4, 8),
		}, []string{"format"}),
		exportedBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exported_bytes_total",
			Help:      "Bytes written to export artifacts by output format.",
		}, []string{"format"}),
	}
}

func (m *Metrics) ObserveFile(format, state string, elapsed time.Duration) {
	m.filesTotal.WithLabelValues(format, state).Inc()
	m.duration.WithLabelValues(format).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveExport(format string, size int) {
	m.exportedBytes.WithLabelValues(format).Add(float64(size))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
