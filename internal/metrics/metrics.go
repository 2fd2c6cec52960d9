package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsTotal counts applied and rejected ledger mutations,
	// labelled by transaction type and outcome (the error taxonomy code, or
	// "ok").
	TransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_transactions_total",
		Help: "Total ledger mutation attempts by type and outcome.",
	}, []string{"type", "outcome"})

	// ReversalsTotal counts reversal attempts by outcome.
	ReversalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_reversals_total",
		Help: "Total reversal attempts by outcome.",
	}, []string{"outcome"})

	// TransactionDuration observes the latency of ApplyTransaction,
	// lock wait included.
	TransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_transaction_duration_seconds",
		Help:    "Latency of ledger mutations, lock wait included.",
		Buckets: prometheus.DefBuckets,
	})

	// BalanceCacheHits counts balance reads served from cache.
	BalanceCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balance_cache_hits_total",
		Help: "Balance reads served from cache.",
	})

	// BalanceCacheMisses counts balance reads that fell through to the store.
	BalanceCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balance_cache_misses_total",
		Help: "Balance reads that fell through to the account store.",
	})
)
