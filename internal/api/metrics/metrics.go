// Package metrics defines and registers all custom Prometheus metrics for
// the investment platform. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "autovest"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// InvestmentsCreatedTotal counts completed investment purchases.
// Label:
//   - tier: the purchased package's tier (e.g. "Economy")
var InvestmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_created_total",
		Help:      "Total number of investments purchased, by package tier.",
	},
	[]string{"tier"},
)

// TransactionsRecordedTotal counts ledger entries by type.
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of ledger transactions recorded, by type.",
	},
	[]string{"type"},
)

// InvestmentsSettledTotal counts investments closed by the maturity sweep.
var InvestmentsSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_settled_total",
		Help:      "Total number of matured investments settled by the sweep.",
	},
)

// SweepDuration measures a full maturity sweep pass.
var SweepDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of a maturity sweep pass over all active investments.",
		Buckets:   prometheus.DefBuckets,
	},
)

// PaymentIntentsTotal counts mocked payment-intent requests.
// Label:
//   - result: "created" or "replayed" (Idempotency-Key hit)
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents issued, by result.",
	},
	[]string{"result"},
)
