package settlement

import (
	"context"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
)

// LedgerGW defines the ledger node operations used by settlement
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengjek-settlement/services/settlement LedgerGW,EventGW
type LedgerGW interface {
	GetLatestBlockhash(ctx context.Context) (ledger.Hash, error)
	GetTransaction(ctx context.Context, sig string) (*rpc.LandedTransaction, error)
	GetSignaturesForAddress(ctx context.Context, addr ledger.PublicKey, before string, limit int) ([]rpc.SignatureInfo, error)
	SendTransaction(ctx context.Context, tx *ledger.Transaction) (string, error)
	GetSignatureStatuses(ctx context.Context, sigs ...string) ([]*rpc.SignatureStatus, error)
}

// EventGW publishes settlement events
type EventGW interface {
	PublishTransferFinalized(ctx context.Context, event models.TransferFinalizedEvent) error
}
