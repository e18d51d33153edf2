package orderevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProduceRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_produce_retries_total",
			Help: "Total number of order event produce retry attempts",
		},
		[]string{"topic", "result"},
	)

	ProduceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_events_produce_duration_seconds",
			Help:    "Duration of order event produce calls including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"topic", "result"},
	)
)
