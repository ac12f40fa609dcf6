package settlement

import "errors"

var (
	ErrInvalidAmount         = errors.New("settlement: invalid amount")
	ErrInvalidCategory       = errors.New("settlement: invalid payment category")
	ErrArithmeticOverflow    = errors.New("settlement: arithmetic overflow")
	ErrArithmeticUnderflow   = errors.New("settlement: arithmetic underflow")
	ErrPaymentNotFound       = errors.New("settlement: payment not found")
	ErrTransferNotFound      = errors.New("settlement: transfer not found")
	ErrReceiverWalletMissing = errors.New("settlement: payment owner has no wallet address")
	ErrReferenceReused       = errors.New("settlement: reference key already used")
	ErrAlreadyFinalized      = errors.New("settlement: transfer already finalized")
	ErrUntrustedSigner       = errors.New("settlement: operator did not sign")
	ErrUntrustedFeePayer     = errors.New("settlement: fee payer is not the operator")
	ErrLedgerExecutionFailed = errors.New("settlement: ledger execution failed")
	ErrDestinationMismatch   = errors.New("settlement: no transfer to the receiver account")
	ErrReferenceMissing      = errors.New("settlement: reference not attached to transfer")
	ErrInsufficientAmount    = errors.New("settlement: transferred amount below expected")
	ErrReferenceNotFound     = errors.New("settlement: reference not found on ledger yet")
	ErrSearchDepthExceeded   = errors.New("settlement: reference search depth exceeded")
	ErrConfirmationTimeout   = errors.New("settlement: transaction not confirmed in time")
	ErrIndexerAlreadyRunning = errors.New("settlement: indexer already running for reference")
	ErrTransactionMismatch   = errors.New("settlement: transaction does not settle this transfer")
	ErrCandidateMismatch     = errors.New("settlement: located transaction does not settle the transfer")
)
