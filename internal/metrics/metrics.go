// Package metrics defines the prometheus counters of the portfolio service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultRejected = "rejected" // failed validation, nothing stored
)

var (
	// Submissions counts public form posts by form kind and result.
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "portfolio_submissions_total",
		Help: "Public form submissions, differentiated by kind and result.",
	}, []string{"kind", "result"})

	// Notifications counts email notifications by kind and result.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "portfolio_notifications_total",
		Help: "Email notifications, differentiated by kind and result.",
	}, []string{"kind", "result"})

	// Conversions counts audio conversions by result.
	Conversions = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "portfolio_conversions_total",
		Help: "Audio conversions, differentiated by result.",
	}, []string{"result"})
)

// Result maps an error onto a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultOK
}
