package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_provider_failures_total",
			Help: "Provider calls that failed or timed out and were replaced by empty results",
		},
		[]string{"source"},
	)

	CandidatesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_candidates_dropped_total",
			Help: "Candidates dropped during merge because of missing or invalid coordinates",
		},
		[]string{"kind"},
	)

	EmptySlots = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripplanner_empty_slots_total",
			Help: "Day slots filled with a placeholder because no candidate fit",
		},
	)

	ItinerariesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_itineraries_generated_total",
			Help: "Generated itineraries by resolved destination profile",
		},
		[]string{"profile"},
	)

	PlanningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripplanner_planning_duration_seconds",
			Help:    "Time spent generating an itinerary, including provider fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_search_cache_lookups_total",
			Help: "Place search cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tripplanner_circuit_breaker_state",
			Help: "Circuit breaker state per upstream (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
