package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FunnelTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_transitions_total",
			Help: "Total application funnel transitions by action",
		},
		[]string{"action"},
	)

	MatchRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total ranked-match requests served",
		},
	)

	MatchScoreDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "match_rank_duration_seconds",
			Help: "Duration of pool ranking in seconds",
		},
	)

	MatchCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_cache_requests_total",
			Help: "Ranked-match cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	CommitmentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commitment_transitions_total",
			Help: "Soft-commitment lifecycle transitions by action",
		},
		[]string{"action"},
	)

	CommitmentsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "commitments_expired_total",
			Help: "Commitments flipped to expired by the sweep job",
		},
	)

	IntroTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intro_transitions_total",
			Help: "Intro-request lifecycle transitions by action",
		},
		[]string{"action"},
	)
)
