package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the dataset
// pipeline. Each Metrics value carries its own registry, so a one-shot CLI
// run (or a test) never collides with another instance; the registry can be
// dumped to a node-exporter textfile after the run.
type Metrics struct {
	registry *prometheus.Registry

	DatasetDownloads prometheus.Counter
	CacheHits        prometheus.Counter
	DownloadBytes    prometheus.Counter
	DownloadDuration prometheus.Histogram

	DatasetsLoaded prometheus.Counter
	ChartsRendered *prometheus.CounterVec // label: chart={plot,bars,stripe,close}
}

// NewMetrics creates and registers all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DatasetDownloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "dataset_downloads_total",
			Help:      "Dataset files fetched from the Met Office archive.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "dataset_cache_hits_total",
			Help:      "Dataset requests satisfied by the local file cache.",
		}),
		DownloadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "dataset_download_bytes_total",
			Help:      "Bytes streamed from the archive to the local cache.",
		}),
		DownloadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hadcrut5",
			Name:      "dataset_download_duration_seconds",
			Help:      "Duration of a single dataset file download.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		DatasetsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "datasets_loaded_total",
			Help:      "NetCDF dataset files parsed.",
		}),
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hadcrut5",
			Name:      "charts_rendered_total",
			Help:      "Charts rendered by kind.",
		}, []string{"chart"}),
	}

	m.registry.MustRegister(
		m.DatasetDownloads,
		m.CacheHits,
		m.DownloadBytes,
		m.DownloadDuration,
		m.DatasetsLoaded,
		m.ChartsRendered,
	)

	return m
}

// WriteTextfile dumps the registry in the text exposition format, the
// standard hand-off from batch jobs to the node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
