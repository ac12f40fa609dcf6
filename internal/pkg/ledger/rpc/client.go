// Package rpc is a JSON-RPC 2.0 client for the ledger node.
package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/piresc/nebengjek-settlement/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/nebengjek-settlement/internal/pkg/http"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/metrics"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
)

var (
	// ErrNetworkUnavailable means the node could not be reached after the
	// transport gave up retrying
	ErrNetworkUnavailable = errors.New("rpc: ledger network unavailable")
	// ErrNotFound means the node returned a null result
	ErrNotFound = errors.New("rpc: not found")
)

const library = "ledger-jsonrpc"

// Poster is the transport used for JSON-RPC calls
type Poster interface {
	PostJSON(ctx context.Context, url string, body []byte) ([]byte, error)
}

// Client talks to one ledger RPC endpoint
type Client struct {
	url        string
	commitment string
	transport  Poster
	metrics    metrics.Metrics
}

// NewClient builds a client on the retrying HTTP transport
func NewClient(url, commitment string, timeout time.Duration, log *logger.ZapLogger, m metrics.Metrics) *Client {
	return NewClientWithTransport(url, commitment, httpclient.NewEnhancedClient(log, timeout), m)
}

func NewClientWithTransport(url, commitment string, transport Poster, m metrics.Metrics) *Client {
	if commitment == "" {
		commitment = CommitmentConfirmed
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Client{url: url, commitment: commitment, transport: transport, metrics: m}
}

// call performs one JSON-RPC request. A null result maps to ErrNotFound,
// transport failures to ErrNetworkUnavailable and node errors pass through
// as *json2.Error.
func (c *Client) call(ctx context.Context, method string, params []interface{}, reply interface{}) error {
	start := time.Now()
	err := nrpkg.WithExternalSegment(ctx, library, method, c.url, func() error {
		body, err := json2.EncodeClientRequest(method, params)
		if err != nil {
			return fmt.Errorf("encode %s: %w", method, err)
		}

		resp, err := c.transport.PostJSON(ctx, c.url, body)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %s: %v", ErrNetworkUnavailable, method, err)
		}

		if err := json2.DecodeClientResponse(bytes.NewReader(resp), reply); err != nil {
			if errors.Is(err, json2.ErrNullResult) {
				return fmt.Errorf("%w: %s", ErrNotFound, method)
			}
			return fmt.Errorf("%s: %w", method, err)
		}
		return nil
	})
	c.metrics.ObserveRPC(method, time.Since(start), err)
	return err
}

// GetLatestBlockhash returns the blockhash new transactions should reference
func (c *Client) GetLatestBlockhash(ctx context.Context) (ledger.Hash, error) {
	var res latestBlockhashResult
	params := []interface{}{map[string]interface{}{"commitment": c.commitment}}
	if err := c.call(ctx, "getLatestBlockhash", params, &res); err != nil {
		return ledger.Hash{}, err
	}
	return ledger.ParseHash(res.Value.Blockhash)
}

// GetTransaction fetches and decodes a landed transaction
func (c *Client) GetTransaction(ctx context.Context, sig string) (*LandedTransaction, error) {
	var res transactionResult
	params := []interface{}{sig, map[string]interface{}{
		"encoding":                       "base64",
		"commitment":                     c.commitment,
		"maxSupportedTransactionVersion": 0,
	}}
	if err := c.call(ctx, "getTransaction", params, &res); err != nil {
		return nil, err
	}
	return res.decode()
}

// GetSignaturesForAddress lists signatures touching addr, newest first.
// before is exclusive and may be empty.
func (c *Client) GetSignaturesForAddress(ctx context.Context, addr ledger.PublicKey, before string, limit int) ([]SignatureInfo, error) {
	opts := map[string]interface{}{"limit": limit, "commitment": c.commitment}
	if before != "" {
		opts["before"] = before
	}
	var res []SignatureInfo
	if err := c.call(ctx, "getSignaturesForAddress", []interface{}{addr.String(), opts}, &res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

// SendTransaction broadcasts a signed transaction and returns its signature
func (c *Client) SendTransaction(ctx context.Context, tx *ledger.Transaction) (string, error) {
	encoded, err := tx.ToBase64()
	if err != nil {
		return "", err
	}
	var sig string
	params := []interface{}{encoded, map[string]interface{}{
		"encoding":            "base64",
		"preflightCommitment": c.commitment,
	}}
	if err := c.call(ctx, "sendTransaction", params, &sig); err != nil {
		return "", err
	}
	return sig, nil
}

// GetSignatureStatuses returns one status per signature, nil when unknown
func (c *Client) GetSignatureStatuses(ctx context.Context, sigs ...string) ([]*SignatureStatus, error) {
	var res signatureStatusesResult
	params := []interface{}{sigs, map[string]interface{}{"searchTransactionHistory": true}}
	if err := c.call(ctx, "getSignatureStatuses", params, &res); err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Commitment returns the commitment level used for reads
func (c *Client) Commitment() string {
	return c.commitment
}

// HealthDetails reports the transport's circuit breaker state when it keeps one
func (c *Client) HealthDetails() map[string]interface{} {
	sp, ok := c.transport.(interface {
		GetCircuitBreakerStats() map[string]circuitbreaker.Stats
	})
	if !ok {
		return nil
	}
	return map[string]interface{}{"circuit_breakers": sp.GetCircuitBreakerStats()}
}

// CheckHealth calls getHealth, used by the readiness probe
func (c *Client) CheckHealth(ctx context.Context) error {
	var res string
	if err := c.call(ctx, "getHealth", []interface{}{}, &res); err != nil {
		return err
	}
	if res != "ok" {
		return fmt.Errorf("ledger node unhealthy: %s", res)
	}
	return nil
}
