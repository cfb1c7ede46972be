// Package metrics defines and registers all custom Prometheus metrics for the
// contest API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contest"

// ── Vote metrics ──────────────────────────────────────────────────────────────

// VotesCastTotal counts successful vote reconciliations.
// Label:
//   - outcome: "created" (first vote on the pair) or "updated" (score overwritten)
var VotesCastTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of votes reconciled on both the user and participant side.",
	},
	[]string{"outcome"},
)

// VoteErrorsTotal counts vote submissions that failed.
// Label:
//   - reason: "invalid_score", "not_found", "persist_failed"
var VoteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vote_errors_total",
		Help:      "Total number of vote submissions that failed.",
	},
	[]string{"reason"},
)

// VoteReconcileDuration measures load-modify-save of both vote mirrors.
var VoteReconcileDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vote_reconcile_duration_seconds",
		Help:      "Duration of a vote reconciliation from load to final persist.",
		Buckets:   prometheus.DefBuckets,
	},
)

// VotesRetractedTotal counts vote entries removed by a deletion cascade.
// Label:
//   - trigger: "user_deleted" or "participant_deleted"
var VotesRetractedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_retracted_total",
		Help:      "Total number of mirrored vote entries removed by deletion cascades.",
	},
	[]string{"trigger"},
)

// ── Tally cache metrics ──────────────────────────────────────────────────────

// TallyCacheTotal counts tally cache lookups and rejected writes.
// Label:
//   - result: "hit", "miss", "error" or "stale" (computed tally not stored
//     because the participant was invalidated meanwhile)
var TallyCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tally_cache_total",
		Help:      "Total number of tally cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of vote audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events by final disposition.
// Label:
//   - result: "stored", "failed" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of vote audit events, by result.",
	},
	[]string{"result"},
)
