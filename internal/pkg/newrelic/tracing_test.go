package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	logger.SetGlobalLogger(logger.NewNopLogger())

	app := InitNewRelic(&models.Config{NewRelic: models.NewRelicConfig{Enabled: false}})

	assert.Nil(t, app)
}

func TestHelpers_NoTransaction(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))
	SetTransactionName(nil, "name")
	AddTransactionAttribute(nil, "k", "v")
	NoticeTransactionError(nil, errors.New("ignored"))

	called := false
	err := WithSegment(ctx, "segment", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	v, err := TraceUseCaseWithReturn(ctx, "usecase", func(context.Context) (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	bg, end := BackgroundTransaction(ctx, nil, "indexer")
	end()
	assert.Equal(t, ctx, bg)
}

func TestInstrumentHTTPRequest_NoTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	sentinel := errors.New("rpc failed")
	assert.Equal(t, sentinel, WithExternalSegment(context.Background(), "ledger", "getTransaction", srv.URL, func() error { return sentinel }))
}
