package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(err)

	impl := m.(*metricsImpl)

	m.IndexerStarted()
	m.IndexerStarted()
	require.Equal(2.0, testutil.ToFloat64(impl.indexersInFlight))

	m.IndexerFinished("Completed", 3, 4*time.Second)
	require.Equal(1.0, testutil.ToFloat64(impl.indexersInFlight))
	require.Equal(1.0, testutil.ToFloat64(impl.indexerOutcomes.WithLabelValues("Completed")))

	m.ObserveRPC("getTransaction", time.Millisecond, nil)
	m.ObserveRPC("getTransaction", time.Millisecond, errors.New("boom"))
	require.Equal(1.0, testutil.ToFloat64(impl.rpcCalls.WithLabelValues("getTransaction", "error")))

	m.TransferFinalized("Rejected")
	require.Equal(1.0, testutil.ToFloat64(impl.transfersFinalized.WithLabelValues("Rejected")))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	require.Error(t, err)
}
