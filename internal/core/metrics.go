package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paraphrase_inference_duration_seconds",
			Help:    "Time spent sampling candidates from the model",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	inferenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paraphrase_inference_failures_total",
			Help: "Total number of failed model invocations",
		},
		[]string{"provider"},
	)

	inferenceWaiting = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "paraphrase_inference_waiting",
			Help: "Requests queued for a model slot",
		},
	)

	inferenceInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "paraphrase_inference_in_flight",
			Help: "Model invocations currently running",
		},
	)

	candidatesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paraphrase_candidates_generated_total",
			Help: "Total number of raw candidates produced by the model",
		},
	)

	candidatesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paraphrase_candidates_dropped_total",
			Help: "Total number of candidates removed as echoes or duplicates",
		},
	)
)
