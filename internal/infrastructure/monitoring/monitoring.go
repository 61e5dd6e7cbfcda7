// Package monitoring registers the service's Prometheus collectors.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Submissions counts checkout submissions by rail and immediate outcome
	// (success, pending_3ds, declined, transport_error, validation_error,
	// qr_opened).
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submissions_total",
		Help: "Checkout submissions by payment method and outcome.",
	}, []string{"payment_method", "outcome"})

	// ChallengeOutcomes counts 3-D-Secure challenge resolutions.
	ChallengeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_3ds_outcomes_total",
		Help: "3-D-Secure challenge outcomes.",
	}, []string{"outcome"})

	// WalletOutcomes counts QR confirmation resolutions.
	WalletOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_wallet_outcomes_total",
		Help: "Wallet QR confirmation outcomes.",
	}, []string{"outcome"})
)
