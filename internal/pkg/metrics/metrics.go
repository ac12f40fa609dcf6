package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace   = "settlement"
	statusLabel = "status"
	methodLabel = "method"
)

var _ Metrics = (*metricsImpl)(nil)

// Metrics records indexer and ledger RPC activity
type Metrics interface {
	// Mark that an indexer run started
	IndexerStarted()
	// Mark that an indexer run ended with the given outcome after attempts polls
	IndexerFinished(outcome string, attempts int, elapsed time.Duration)
	// Mark one ledger RPC call
	ObserveRPC(method string, elapsed time.Duration, err error)
	// Mark a transfer that reached a terminal status
	TransferFinalized(status string)
}

type metricsImpl struct {
	indexersInFlight prometheus.Gauge
	indexerOutcomes  *prometheus.CounterVec
	indexerAttempts  prometheus.Histogram
	indexerDuration  prometheus.Histogram

	rpcCalls    *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	transfersFinalized *prometheus.CounterVec
}

// New builds the collectors and registers them on registerer
func New(registerer prometheus.Registerer) (Metrics, error) {
	m := &metricsImpl{
		indexersInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "indexers_in_flight",
			Help:      "Number of reference indexers currently running",
		}),
		indexerOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "indexer_outcomes_total",
				Help:      "Indexer runs by outcome",
			},
			[]string{statusLabel},
		),
		indexerAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "indexer_poll_attempts",
			Help:      "Number of polls an indexer run needed",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 30},
		}),
		indexerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "indexer_duration_seconds",
			Help:      "Wall time of an indexer run",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
		rpcCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_rpc_calls_total",
				Help:      "Ledger RPC calls by method and result",
			},
			[]string{methodLabel, statusLabel},
		),
		rpcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ledger_rpc_duration_seconds",
				Help:      "Latency of ledger RPC calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{methodLabel},
		),
		transfersFinalized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transfers_finalized_total",
				Help:      "Transfers that reached a terminal status",
			},
			[]string{statusLabel},
		),
	}

	err := errors.Join(
		registerer.Register(m.indexersInFlight),
		registerer.Register(m.indexerOutcomes),
		registerer.Register(m.indexerAttempts),
		registerer.Register(m.indexerDuration),
		registerer.Register(m.rpcCalls),
		registerer.Register(m.rpcDuration),
		registerer.Register(m.transfersFinalized),
	)
	return m, err
}

func (m *metricsImpl) IndexerStarted() {
	m.indexersInFlight.Inc()
}

func (m *metricsImpl) IndexerFinished(outcome string, attempts int, elapsed time.Duration) {
	m.indexersInFlight.Dec()
	m.indexerOutcomes.WithLabelValues(outcome).Inc()
	m.indexerAttempts.Observe(float64(attempts))
	m.indexerDuration.Observe(elapsed.Seconds())
}

func (m *metricsImpl) ObserveRPC(method string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.rpcCalls.WithLabelValues(method, status).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *metricsImpl) TransferFinalized(status string) {
	m.transfersFinalized.WithLabelValues(status).Inc()
}

type noop struct{}

// NewNoop returns a Metrics that records nothing
func NewNoop() Metrics { return noop{} }

func (noop) IndexerStarted()                            {}
func (noop) IndexerFinished(string, int, time.Duration) {}
func (noop) ObserveRPC(string, time.Duration, error)    {}
func (noop) TransferFinalized(string)                   {}
