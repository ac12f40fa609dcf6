package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengjek-settlement/services/settlement PaymentRepo,TransferRepo,LeaseRepo
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetPaymentByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Payment, error)
	GetPaymentWithReceiver(ctx context.Context, publicID uuid.UUID) (*models.PaymentWithReceiver, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
}

// TransferRepo defines the interface for transfer data access
type TransferRepo interface {
	CreateTransfer(ctx context.Context, transfer *models.Transfer) (*models.Transfer, error)
	GetTransferByReference(ctx context.Context, reference string) (*models.Transfer, error)
	ListPendingTransfers(ctx context.Context, limit int) ([]*models.Transfer, error)
	// FinalizeTransfer moves a Pending transfer to a terminal state. Writing
	// the same terminal state twice succeeds.
	FinalizeTransfer(ctx context.Context, reference string, result models.TransferResult) error
}

// LeaseRepo guards against two indexers watching the same reference
type LeaseRepo interface {
	AcquireIndexerLease(ctx context.Context, reference, owner string, ttl time.Duration) (bool, error)
	ReleaseIndexerLease(ctx context.Context, reference, owner string) error
}
