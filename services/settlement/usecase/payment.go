package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// CreatePayment validates and stores a new payment owned by userID
func (uc *settlementUC) CreatePayment(ctx context.Context, userID int64, req models.CreatePaymentRequest) (*models.Payment, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "SettlementUC.CreatePayment", func(ctx context.Context) (*models.Payment, error) {
		if req.Amount <= 0 {
			return nil, fmt.Errorf("%w: %d", settlement.ErrInvalidAmount, req.Amount)
		}
		if !req.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", settlement.ErrInvalidCategory, req.Category)
		}

		payment := &models.Payment{
			PublicID:    uuid.New(),
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Amount:      req.Amount,
			UserID:      userID,
		}

		created, err := uc.paymentRepo.CreatePayment(ctx, payment)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to create payment",
				logger.Int64("user_id", userID),
				logger.Err(err))
			return nil, err
		}

		logger.InfoCtx(ctx, "Payment created",
			logger.String("payment_id", created.PublicID.String()),
			logger.Int64("amount", created.Amount))
		return created, nil
	})
}

// GetPayment returns a payment by public id
func (uc *settlementUC) GetPayment(ctx context.Context, publicID uuid.UUID) (*models.Payment, error) {
	return uc.paymentRepo.GetPaymentByPublicID(ctx, publicID)
}
