package models

import (
	"time"
)

// TransferStatus represents the settlement state of a transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "Pending"
	TransferStatusCompleted TransferStatus = "Completed"
	TransferStatusRejected  TransferStatus = "Rejected"
)

// IsTerminal reports whether the status can no longer change
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusRejected
}

// Transfer represents one on-chain settlement attempt for a payment
type Transfer struct {
	ID                  int64          `json:"-" db:"id"`
	ReferenceKey        string         `json:"reference" db:"reference_key"`
	PaymentID           int64          `json:"-" db:"payment_id"`
	Signature           *string        `json:"signature,omitempty" db:"signature"`
	Status              TransferStatus `json:"status" db:"status"`
	SenderWalletAddress string         `json:"sender_wallet_address" db:"sender_wallet_address"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
}

// TransferResult is the terminal state written for a transfer
type TransferResult struct {
	Status    TransferStatus
	Signature *string
}

// CreateTransferRequest represents a request to build a transfer transaction
type CreateTransferRequest struct {
	SenderAddress string `json:"sender_address"`
}

// BuildTransferResponse carries the partially signed transaction back to the payer
type BuildTransferResponse struct {
	Transaction    string `json:"transaction"`
	Reference      string `json:"reference"`
	Fee            uint64 `json:"fee"`
	AmountAfterFee uint64 `json:"amount_after_fee"`
}

// SubmitTransferRequest carries a sender-signed transaction
type SubmitTransferRequest struct {
	Transaction string `json:"transaction"`
}

// TransferFinalizedEvent is published once a transfer reaches a terminal state
type TransferFinalizedEvent struct {
	ReferenceKey string         `json:"reference_key"`
	PaymentID    int64          `json:"payment_id"`
	Status       TransferStatus `json:"status"`
	Signature    *string        `json:"signature,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}
