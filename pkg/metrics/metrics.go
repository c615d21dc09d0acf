package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Extraction pipeline metrics
	DocumentsProcessed *prometheus.CounterVec
	ExtractionLatency  prometheus.Histogram
	PagesExtracted     prometheus.Counter
	UploadsRejected    prometheus.Counter
	CacheHits          prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		DocumentsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "documents_processed_total",
			Help:      "Total number of documents processed, by outcome status",
		}, []string{"status"}),
		ExtractionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "extraction_duration_seconds",
			Help:      "Time spent extracting structured data from one document",
			Buckets:   prometheus.DefBuckets,
		}),
		PagesExtracted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pages_extracted_total",
			Help:      "Total number of PDF pages whose text was extracted",
		}),
		UploadsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "uploads_rejected_total",
			Help:      "Total number of uploads rejected before processing",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "result_cache_hits_total",
			Help:      "Total number of extraction results served from the dedupe cache",
		}),
	}
}

// RecordOutcome increments the processed counter for a status label.
func (m *Metrics) RecordOutcome(status string) {
	m.DocumentsProcessed.WithLabelValues(status).Inc()
}
