package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// ResumePending restarts the indexer for transfers left Pending by a
// previous process. A transfer that cannot be resumed is logged and
// skipped.
func (uc *settlementUC) ResumePending(ctx context.Context, limit int) (int, error) {
	transfers, err := uc.transferRepo.ListPendingTransfers(ctx, limit)
	if err != nil {
		return 0, err
	}

	started := 0
	for _, transfer := range transfers {
		req, err := uc.watchRequestFor(ctx, transfer)
		if err == nil {
			err = uc.indexer.Watch(req)
		}
		if err != nil {
			logger.WarnCtx(ctx, "Failed to resume transfer",
				logger.Reference(transfer.ReferenceKey),
				logger.Err(err))
			continue
		}
		started++
	}

	logger.InfoCtx(ctx, "Pending transfers resumed",
		logger.Int("pending", len(transfers)),
		logger.Int("started", started))
	return started, nil
}

func (uc *settlementUC) watchRequestFor(ctx context.Context, transfer *models.Transfer) (settlement.WatchRequest, error) {
	reference, err := ledger.ParsePublicKey(transfer.ReferenceKey)
	if err != nil {
		return settlement.WatchRequest{}, fmt.Errorf("reference: %w", err)
	}

	payment, err := uc.paymentRepo.GetPaymentByID(ctx, transfer.PaymentID)
	if err != nil {
		return settlement.WatchRequest{}, err
	}
	withReceiver, receiver, err := uc.paymentReceiver(ctx, payment.PublicID)
	if err != nil {
		return settlement.WatchRequest{}, err
	}

	exp, err := uc.expectationFor(withReceiver, receiver, reference)
	if err != nil {
		return settlement.WatchRequest{}, err
	}
	return settlement.WatchRequest{Reference: reference, PaymentID: payment.ID, Expectation: exp}, nil
}
