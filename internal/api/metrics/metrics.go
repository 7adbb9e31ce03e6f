// Package metrics defines and registers the custom Prometheus metrics of the
// education API. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "education"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts access token checks made by the auth middleware.
// Label:
//   - result: "success", "expired", "invalid", "unknown_subject" or "error"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of access token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful signups.
// Label:
//   - admin: "true" or "false"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
	[]string{"admin"},
)

// AuthRecorder feeds auth outcomes into the counters above.
type AuthRecorder struct{}

func (AuthRecorder) LoginAttempt(result string) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func (AuthRecorder) TokenVerification(result string) {
	TokenVerificationsTotal.WithLabelValues(result).Inc()
}
