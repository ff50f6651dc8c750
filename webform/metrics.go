package webform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/twipi/parseform/parseform"
)

// Submission outcomes reported in the outcome label.
const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parseform",
		Name:      "submissions_total",
		Help:      "Number of form submissions by outcome.",
	}, []string{"outcome"})

	submissionsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "parseform",
		Name:      "submissions_in_flight",
		Help:      "Number of form submissions waiting on the parsing service.",
	})
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case parseform.IsValidationError(err):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
