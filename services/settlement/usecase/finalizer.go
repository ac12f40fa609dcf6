package usecase

import (
	"context"
	"time"

	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/metrics"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// TransferFinalizer implements settlement.Finalizer. The database write is
// authoritative; a failed publish is logged and not returned.
type TransferFinalizer struct {
	transferRepo settlement.TransferRepo
	eventGW      settlement.EventGW
	metrics      metrics.Metrics
}

func NewTransferFinalizer(transferRepo settlement.TransferRepo, eventGW settlement.EventGW, m metrics.Metrics) *TransferFinalizer {
	if m == nil {
		m = metrics.NewNoop()
	}
	return &TransferFinalizer{transferRepo: transferRepo, eventGW: eventGW, metrics: m}
}

func (f *TransferFinalizer) Finalize(ctx context.Context, reference string, paymentID int64, verdict settlement.Verdict) error {
	result := models.TransferResult{Status: verdict.Status}
	if verdict.Signature != "" {
		sig := verdict.Signature
		result.Signature = &sig
	}

	if err := f.transferRepo.FinalizeTransfer(ctx, reference, result); err != nil {
		return err
	}
	f.metrics.TransferFinalized(string(verdict.Status))

	fields := []logger.Field{logger.Reference(reference), logger.String("status", string(verdict.Status))}
	if verdict.Signature != "" {
		fields = append(fields, logger.Signature(verdict.Signature))
	}
	if verdict.Reason != nil {
		fields = append(fields, logger.String("reason", verdict.Reason.Error()))
	}
	logger.InfoCtx(ctx, "Transfer finalized", fields...)

	err := f.eventGW.PublishTransferFinalized(ctx, models.TransferFinalizedEvent{
		ReferenceKey: reference,
		PaymentID:    paymentID,
		Status:       verdict.Status,
		Signature:    result.Signature,
		Timestamp:    time.Now().UTC(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish transfer finalized event",
			logger.Reference(reference),
			logger.Err(err))
	}
	return nil
}
