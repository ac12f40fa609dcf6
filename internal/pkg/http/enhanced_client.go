package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/nebengjek-settlement/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/internal/pkg/retry"
)

// EnhancedClient wraps http.Client with retry and circuit breaker functionality
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, timeout time.Duration) *EnhancedClient {
	return NewEnhancedClientWithRetry(log, timeout, retry.DefaultConfig())
}

// NewEnhancedClientWithRetry lets callers tune the backoff, tests mostly
func NewEnhancedClientWithRetry(log *logger.ZapLogger, timeout time.Duration, cfg retry.Config) *EnhancedClient {
	return &EnhancedClient{
		client:         &http.Client{Timeout: timeout},
		retrier:        retry.New(cfg, log),
		circuitManager: circuitbreaker.NewManager(log),
		logger:         log,
	}
}

// PostJSON sends body to url and returns the response body of the first
// attempt that is not a 5xx. The request is rebuilt on every attempt so the
// body is never replayed from a drained reader.
func (c *EnhancedClient) PostJSON(ctx context.Context, url string, body []byte) ([]byte, error) {
	var out []byte

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	err := c.do(ctx, build, func(resp *http.Response) error {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		out = data
		return nil
	})
	return out, err
}

func (c *EnhancedClient) do(ctx context.Context, build func(context.Context) (*http.Request, error), consume func(*http.Response) error) error {
	probe, err := build(ctx)
	if err != nil {
		return err
	}
	serviceName := probe.URL.Host
	if serviceName == "" {
		serviceName = "unknown"
	}

	return c.circuitManager.Execute(ctx, serviceName, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := build(ctx)
			if err != nil {
				return retry.Permanent(err)
			}

			resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req)
			})
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				_, _ = io.Copy(io.Discard, resp.Body)
				return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("upstream returned %d", resp.StatusCode)}
			}
			if resp.StatusCode >= 400 {
				_, _ = io.Copy(io.Discard, resp.Body)
				return retry.Permanent(&HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("upstream returned %d", resp.StatusCode)})
			}
			return consume(resp)
		})
	})
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (c *EnhancedClient) GetCircuitBreakerStats() map[string]circuitbreaker.Stats {
	return c.circuitManager.GetStats()
}

// HTTPError represents an HTTP error
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Temporary marks 5xx and 429 responses as worth retrying
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}
