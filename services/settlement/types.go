package settlement

import (
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
)

// TransferParams are the inputs of a fee-split transfer transaction
type TransferParams struct {
	Sender    string
	Receiver  string
	Mint      ledger.PublicKey
	Amount    uint64
	Reference ledger.PublicKey
}

// FeeSplit is the treasury fee and the remainder paid to the receiver
type FeeSplit struct {
	Fee            uint64
	AmountAfterFee uint64
}

// Expectation describes what a landed transaction must do to settle a transfer
type Expectation struct {
	Receiver  ledger.PublicKey
	Mint      ledger.PublicKey
	Reference ledger.PublicKey
	MinAmount uint64
}

// Verdict is the result of verifying a landed transaction. Reason is set
// when Status is Rejected.
type Verdict struct {
	Status    models.TransferStatus
	Signature string
	Reason    error
}

// WatchRequest asks the indexer to settle one Pending transfer
type WatchRequest struct {
	Reference   ledger.PublicKey
	PaymentID   int64
	Expectation Expectation
}
