package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Settlement outcomes used as the "result" label of SettlementsTotal.
const (
	SettlementApplied  = "applied"
	SettlementNoop     = "noop"
	SettlementNothing  = "nothing_to_settle"
	SettlementRejected = "rejected"
	SettlementConflict = "conflict"
	SettlementError    = "error"
)

var (
	// SessionsStarted counts sessions opened
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "x4pn_sessions_started_total",
			Help: "Total number of sessions started",
		},
	)

	// SessionsTerminated counts sessions moved to a terminal status
	SessionsTerminated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "x4pn_sessions_terminated_total",
			Help: "Total number of sessions ended or failed",
		},
		[]string{"status"},
	)

	// ActiveSessions is refreshed from the database by the sweeper
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "x4pn_active_sessions",
			Help: "Number of sessions currently active",
		},
	)

	// SettlementsTotal counts settle attempts by outcome
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "x4pn_settlements_total",
			Help: "Total number of settlement attempts by result",
		},
		[]string{"result"},
	)

	// SettlementRetries counts optimistic-lock retries
	SettlementRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "x4pn_settlement_retries_total",
			Help: "Settlement attempts retried after a concurrent modification",
		},
	)

	// SettledUSDC sums USDC charged
	SettledUSDC = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "x4pn_settled_usdc_total",
			Help: "Total USDC debited by settlements",
		},
	)

	// RewardedX4PN sums X4PN minted as rewards
	RewardedX4PN = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "x4pn_rewarded_x4pn_total",
			Help: "Total X4PN credited by settlements",
		},
	)

	// SettlementCost tracks the USDC size of individual settlements
	SettlementCost = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "x4pn_settlement_cost_usdc",
			Help:    "USDC charged per applied settlement",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 100},
		},
	)

	// NotificationFailures counts node notifications that could not be delivered
	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "x4pn_notification_failures_total",
			Help: "Session start notifications that failed to publish",
		},
	)

	// LedgerMovements counts deposits and withdrawals
	LedgerMovements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "x4pn_ledger_movements_total",
			Help: "Deposits and withdrawals by type and token",
		},
		[]string{"type", "token"},
	)

	// LoginsTotal counts wallet logins by result
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "x4pn_logins_total",
			Help: "Wallet login attempts by result",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration tracks API latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "x4pn_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// RateLimited counts requests rejected by the rate limiter
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "x4pn_http_rate_limited_total",
			Help: "Requests rejected with 429",
		},
	)

	// SweeperRuns counts sweeper passes by outcome
	SweeperRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "x4pn_sweeper_runs_total",
			Help: "Stale session sweeper passes by outcome",
		},
		[]string{"outcome"},
	)

	// FeedConnections tracks open node feed websockets
	FeedConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "x4pn_node_feed_connections",
			Help: "Open node session feed connections",
		},
	)
)
