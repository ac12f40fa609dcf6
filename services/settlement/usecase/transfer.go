package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// BuildTransfer creates a Pending transfer for the payment and returns the
// operator-signed transaction for the sender to countersign. An indexer is
// started for the new reference but not waited on.
func (uc *settlementUC) BuildTransfer(ctx context.Context, publicID uuid.UUID, senderAddress string) (*models.BuildTransferResponse, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "SettlementUC.BuildTransfer", func(ctx context.Context) (*models.BuildTransferResponse, error) {
		payment, receiver, err := uc.paymentReceiver(ctx, publicID)
		if err != nil {
			return nil, err
		}

		if payment.Amount <= 0 {
			return nil, fmt.Errorf("%w: %d", settlement.ErrInvalidAmount, payment.Amount)
		}

		reference, err := ledger.NewReference()
		if err != nil {
			return nil, fmt.Errorf("failed to create reference: %w", err)
		}

		tx, split, err := uc.builder.Build(ctx, settlement.TransferParams{
			Sender:    senderAddress,
			Receiver:  receiver.String(),
			Mint:      uc.mint,
			Amount:    uint64(payment.Amount),
			Reference: reference,
		})
		if err != nil {
			return nil, err
		}

		encoded, err := tx.ToBase64()
		if err != nil {
			return nil, err
		}

		_, err = uc.transferRepo.CreateTransfer(ctx, &models.Transfer{
			ReferenceKey:        reference.String(),
			PaymentID:           payment.ID,
			Status:              models.TransferStatusPending,
			SenderWalletAddress: senderAddress,
		})
		if err != nil {
			return nil, err
		}

		err = uc.indexer.Watch(settlement.WatchRequest{
			Reference: reference,
			PaymentID: payment.ID,
			Expectation: settlement.Expectation{
				Receiver:  receiver,
				Mint:      uc.mint,
				Reference: reference,
				MinAmount: split.AmountAfterFee,
			},
		})
		if err != nil {
			// the resume sweep picks up Pending transfers on the next boot
			logger.WarnCtx(ctx, "Failed to start indexer",
				logger.Reference(reference.String()),
				logger.Err(err))
		}

		logger.InfoCtx(ctx, "Transfer created",
			logger.Reference(reference.String()),
			logger.String("payment_id", publicID.String()),
			logger.Uint64("fee", split.Fee),
			logger.Uint64("amount_after_fee", split.AmountAfterFee))

		return &models.BuildTransferResponse{
			Transaction:    encoded,
			Reference:      reference.String(),
			Fee:            split.Fee,
			AmountAfterFee: split.AmountAfterFee,
		}, nil
	})
}

// GetTransfer returns a transfer by reference key
func (uc *settlementUC) GetTransfer(ctx context.Context, reference string) (*models.Transfer, error) {
	return uc.transferRepo.GetTransferByReference(ctx, reference)
}

// paymentReceiver loads a payment and parses its owner's wallet
func (uc *settlementUC) paymentReceiver(ctx context.Context, publicID uuid.UUID) (*models.PaymentWithReceiver, ledger.PublicKey, error) {
	payment, err := uc.paymentRepo.GetPaymentWithReceiver(ctx, publicID)
	if err != nil {
		return nil, ledger.PublicKey{}, err
	}
	if payment.ReceiverWallet == nil || *payment.ReceiverWallet == "" {
		return nil, ledger.PublicKey{}, settlement.ErrReceiverWalletMissing
	}
	receiver, err := ledger.ParsePublicKey(*payment.ReceiverWallet)
	if err != nil {
		return nil, ledger.PublicKey{}, fmt.Errorf("receiver wallet: %w", err)
	}
	return payment, receiver, nil
}

// expectationFor rebuilds what a transaction must do to settle payment
func (uc *settlementUC) expectationFor(payment *models.PaymentWithReceiver, receiver, reference ledger.PublicKey) (settlement.Expectation, error) {
	split, err := SplitFee(uint64(payment.Amount), uc.builder.feeNumerator, uc.builder.feeDenominator)
	if err != nil {
		return settlement.Expectation{}, err
	}
	return settlement.Expectation{
		Receiver:  receiver,
		Mint:      uc.mint,
		Reference: reference,
		MinAmount: split.AmountAfterFee,
	}, nil
}
