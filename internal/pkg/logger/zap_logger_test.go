package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "settlement.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Info("indexer started", Reference("ref-1"), Uint64("amount", 42))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"message":"indexer started"`)
	assert.Contains(t, out, `"reference":"ref-1"`)
	assert.Contains(t, out, `"amount":42`)
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settlement.log")

	zl, err := NewZapLogger(ZapConfig{Level: "loud", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Debug("hidden")
	zl.Warn("visible")
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestZapEchoMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "http.log")
	zl, err := NewZapLogger(ZapConfig{Service: "settlement-test", FilePath: path}, nil)
	require.NoError(t, err)

	e := echo.New()
	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/abc?x=1", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Client error")
	assert.Contains(t, out, `"path":"/api/v1/transfers/abc?x=1"`)
	assert.Contains(t, out, `"service":"settlement-test"`)
}

func TestGlobalLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global.log")
	zl, err := NewZapLogger(ZapConfig{FilePath: path}, nil)
	require.NoError(t, err)

	prev := GetGlobalLogger()
	SetGlobalLogger(zl)
	defer SetGlobalLogger(prev)

	Error("submit failed", Err(errors.New("boom")))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"error":"boom"`))
}
