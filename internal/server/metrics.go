package server

import (
	"pwmeter/internal/strength"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(evaluationsCounter)
	prometheus.MustRegister(evaluationScores)
}

var evaluationsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pwmeter_evaluations_total",
		Help: "Total number of password evaluations by verdict",
	},
	[]string{"verdict"},
)

var evaluationScores = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "pwmeter_evaluation_score",
		Help:    "Distribution of password evaluation scores",
		Buckets: prometheus.LinearBuckets(0, 1, strength.MaxScore+1),
	},
)

func recordEvaluation(result strength.Result) {
	evaluationsCounter.With(prometheus.Labels{"verdict": string(result.Verdict)}).Inc()
	evaluationScores.Observe(float64(result.Score))
}
