package resolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

const (
	outcomeFound = "found"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

var (
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashaudit_resolutions_total",
			Help: "Total number of collector item resolutions by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashaudit_resolution_fallbacks_total",
			Help: "Total number of times a strategy delegated to a broader one",
		},
		[]string{"from", "to"},
	)

	staleReferences = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashaudit_stale_references_total",
			Help: "Collector item ids listed by a component but missing from the store",
		},
	)

	resolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashaudit_resolution_duration_seconds",
			Help:    "Duration of collector item resolution in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"strategy"},
	)
)

func observe(strategy Strategy, start time.Time, items []model.CollectorItem, err error) {
	resolutionDuration.WithLabelValues(strategy.String()).Observe(time.Since(start).Seconds())

	outcome := outcomeFound
	switch {
	case err != nil:
		outcome = outcomeError
	case len(items) == 0:
		outcome = outcomeEmpty
	}
	resolutionsTotal.WithLabelValues(strategy.String(), outcome).Inc()
}
