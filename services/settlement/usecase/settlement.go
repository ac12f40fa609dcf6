package usecase

import (
	"fmt"

	"github.com/piresc/nebengjek-settlement/internal/pkg/config"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// settlementUC implements settlement.SettlementUC
type settlementUC struct {
	cfg          *models.Config
	paymentRepo  settlement.PaymentRepo
	transferRepo settlement.TransferRepo
	ledgerGW     settlement.LedgerGW
	builder      *TransferBuilder
	verifier     settlement.TransferVerifier
	finalizer    settlement.Finalizer
	indexer      settlement.IndexerStarter
	deriver      *token.Deriver
	mint         ledger.PublicKey
}

// NewSettlementUC creates the settlement use case
func NewSettlementUC(
	cfg *models.Config,
	paymentRepo settlement.PaymentRepo,
	transferRepo settlement.TransferRepo,
	ledgerGW settlement.LedgerGW,
	builder *TransferBuilder,
	verifier settlement.TransferVerifier,
	finalizer settlement.Finalizer,
	indexer settlement.IndexerStarter,
	deriver *token.Deriver,
) (settlement.SettlementUC, error) {
	mintAddr := cfg.Ledger.TokenMint
	if mintAddr == "" {
		mintAddr = config.DefaultTokenMint
	}
	mint, err := ledger.ParsePublicKey(mintAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid token mint: %w", err)
	}

	return &settlementUC{
		cfg:          cfg,
		paymentRepo:  paymentRepo,
		transferRepo: transferRepo,
		ledgerGW:     ledgerGW,
		builder:      builder,
		verifier:     verifier,
		finalizer:    finalizer,
		indexer:      indexer,
		deriver:      deriver,
		mint:         mint,
	}, nil
}
