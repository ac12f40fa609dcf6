package rpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
)

// Commitment levels accepted by the ledger node
const (
	CommitmentProcessed = "processed"
	CommitmentConfirmed = "confirmed"
	CommitmentFinalized = "finalized"
)

type Context struct {
	Slot uint64 `json:"slot"`
}

type LatestBlockhash struct {
	Blockhash            string `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

type latestBlockhashResult struct {
	Context Context         `json:"context"`
	Value   LatestBlockhash `json:"value"`
}

// SignatureInfo is one entry of getSignaturesForAddress, newest first
type SignatureInfo struct {
	Signature          string          `json:"signature"`
	Slot               uint64          `json:"slot"`
	Err                json.RawMessage `json:"err,omitempty"`
	Memo               *string         `json:"memo,omitempty"`
	BlockTime          *int64          `json:"blockTime,omitempty"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
}

// Failed reports whether the ledger recorded an execution error
func (s SignatureInfo) Failed() bool {
	return hasError(s.Err)
}

// SignatureStatus is one entry of getSignatureStatuses. A nil entry in the
// response means the node has not seen the signature.
type SignatureStatus struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	Err                json.RawMessage `json:"err,omitempty"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
}

func (s SignatureStatus) Failed() bool {
	return hasError(s.Err)
}

// Reached reports whether the status is at least the given commitment
func (s SignatureStatus) Reached(commitment string) bool {
	rank := map[string]int{CommitmentProcessed: 1, CommitmentConfirmed: 2, CommitmentFinalized: 3}
	return rank[s.ConfirmationStatus] >= rank[commitment] && rank[s.ConfirmationStatus] > 0
}

type signatureStatusesResult struct {
	Context Context            `json:"context"`
	Value   []*SignatureStatus `json:"value"`
}

type UITokenAmount struct {
	Amount   string `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

// TokenBalance is a token account balance at a key table index
type TokenBalance struct {
	AccountIndex  int           `json:"accountIndex"`
	Mint          string        `json:"mint"`
	Owner         string        `json:"owner,omitempty"`
	UITokenAmount UITokenAmount `json:"uiTokenAmount"`
}

// RawAmount parses the base unit amount
func (b TokenBalance) RawAmount() (uint64, error) {
	v, err := strconv.ParseUint(b.UITokenAmount.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token balance amount %q: %w", b.UITokenAmount.Amount, err)
	}
	return v, nil
}

type TransactionMeta struct {
	Err               json.RawMessage `json:"err,omitempty"`
	Fee               uint64          `json:"fee"`
	PreTokenBalances  []TokenBalance  `json:"preTokenBalances"`
	PostTokenBalances []TokenBalance  `json:"postTokenBalances"`
}

type transactionResult struct {
	Slot        uint64           `json:"slot"`
	BlockTime   *int64           `json:"blockTime,omitempty"`
	Transaction []string         `json:"transaction"`
	Meta        *TransactionMeta `json:"meta"`
}

// LandedTransaction is a decoded confirmed transaction with its execution meta
type LandedTransaction struct {
	Slot        uint64
	BlockTime   *int64
	Transaction *ledger.Transaction
	Meta        TransactionMeta
}

// Failed reports whether execution failed on the ledger
func (l *LandedTransaction) Failed() bool {
	return hasError(l.Meta.Err)
}

func (r *transactionResult) decode() (*LandedTransaction, error) {
	if len(r.Transaction) < 1 {
		return nil, fmt.Errorf("%w: empty transaction payload", ledger.ErrMalformedTransaction)
	}
	if len(r.Transaction) > 1 && r.Transaction[1] != "base64" {
		return nil, fmt.Errorf("%w: unexpected encoding %q", ledger.ErrMalformedTransaction, r.Transaction[1])
	}
	raw, err := base64.StdEncoding.DecodeString(r.Transaction[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrMalformedTransaction, err)
	}
	tx := &ledger.Transaction{}
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, err
	}

	landed := &LandedTransaction{Slot: r.Slot, BlockTime: r.BlockTime, Transaction: tx}
	if r.Meta != nil {
		landed.Meta = *r.Meta
	}
	return landed, nil
}

func hasError(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
