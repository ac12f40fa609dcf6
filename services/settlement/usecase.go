package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
)

// SettlementUC defines the interface for payment and transfer business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-settlement/services/settlement SettlementUC,TransferVerifier,Finalizer,IndexerStarter
type SettlementUC interface {
	CreatePayment(ctx context.Context, userID int64, req models.CreatePaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, publicID uuid.UUID) (*models.Payment, error)
	BuildTransfer(ctx context.Context, publicID uuid.UUID, senderAddress string) (*models.BuildTransferResponse, error)
	SubmitTransfer(ctx context.Context, publicID uuid.UUID, signedTx string) (*models.Transfer, error)
	GetTransfer(ctx context.Context, reference string) (*models.Transfer, error)
	// ResumePending hands up to limit Pending transfers back to the indexer
	// and returns how many were started
	ResumePending(ctx context.Context, limit int) (int, error)
}

// TransferVerifier checks transactions against the operator and an expectation
type TransferVerifier interface {
	Verify(landed *rpc.LandedTransaction, exp Expectation) (Verdict, error)
	VerifySigned(tx *ledger.Transaction) error
}

// Finalizer writes a terminal transfer state and announces it
type Finalizer interface {
	Finalize(ctx context.Context, reference string, paymentID int64, verdict Verdict) error
}

// IndexerStarter hands a Pending transfer to the reference indexer without
// waiting for it
type IndexerStarter interface {
	Watch(req WatchRequest) error
}
