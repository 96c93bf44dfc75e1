package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var extractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "extractions_total",
	Help: "Total number of extraction requests labelled by outcome",
}, []string{"status"})

var extractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "extraction_duration_seconds",
	Help:    "Total time spent per extraction request.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"status"})

var pagesExtracted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pages_extracted_total",
	Help: "Number of pages whose text was extracted",
})

var artifactsWritten = promauto.NewCounter(prometheus.CounterOpts{
	Name: "artifacts_written_total",
	Help: "Number of artifact files written to the staging directory",
})

var sweeperDeletions = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sweeper_deletions_total",
	Help: "Number of stale artifacts removed by the retention sweeper",
})

var toolCallsRateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tool_calls_rate_limited_total",
	Help: "Number of tool invocations rejected by the rate limiter",
})

func CaptureExtractionMetrics(status string, timeElapsed time.Duration) {
	extractionsTotal.WithLabelValues(status).Inc()
	extractionDuration.WithLabelValues(status).Observe(timeElapsed.Seconds())
}

func IncrementPagesExtracted() {
	pagesExtracted.Inc()
}

func IncrementArtifactsWritten() {
	artifactsWritten.Inc()
}

func IncrementSweeperDeletions() {
	sweeperDeletions.Inc()
}

func IncrementRateLimited() {
	toolCallsRateLimited.Inc()
}
