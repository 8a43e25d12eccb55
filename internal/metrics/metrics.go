package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteRequests counts calls against the hosted backend by table,
	// operation and outcome (ok | error | network_error).
	RemoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alwan_remote_requests_total",
			Help: "Total number of requests issued to the hosted backend",
		},
		[]string{"table", "op", "outcome"},
	)

	// FallbackActivations counts reads served from the bundled sample
	// catalog after a detected RLS misconfiguration.
	FallbackActivations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "alwan_fallback_activations_total",
			Help: "Total number of reads answered from the static fallback catalog",
		},
	)

	// CheckoutsTotal counts checkout attempts by outcome (ok | error).
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alwan_checkouts_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"outcome"},
	)

	// MediaUploads counts storage uploads by outcome (ok | error).
	MediaUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alwan_media_uploads_total",
			Help: "Total number of media uploads",
		},
		[]string{"outcome"},
	)

	// AuthAttempts counts login attempts by outcome (ok | fail).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alwan_auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)
)
