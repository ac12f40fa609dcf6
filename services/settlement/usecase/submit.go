package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

const (
	defaultConfirmTimeout = 60 * time.Second
	defaultConfirmPoll    = 2 * time.Second
)

// SubmitTransfer takes a fully signed transaction for the payment, checks
// it, broadcasts it, waits for confirmation and records the outcome. If
// confirmation times out the transfer stays Pending for the indexer.
func (uc *settlementUC) SubmitTransfer(ctx context.Context, publicID uuid.UUID, signedTx string) (*models.Transfer, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "SettlementUC.SubmitTransfer", func(ctx context.Context) (*models.Transfer, error) {
		payment, receiver, err := uc.paymentReceiver(ctx, publicID)
		if err != nil {
			return nil, err
		}

		tx, err := ledger.TransactionFromBase64(signedTx)
		if err != nil {
			return nil, err
		}
		if err := uc.verifier.VerifySigned(tx); err != nil {
			return nil, err
		}

		transfer, reference, err := uc.matchTransfer(ctx, tx, payment, receiver)
		if err != nil {
			return nil, err
		}
		if transfer.Status.IsTerminal() {
			return nil, fmt.Errorf("%w: %s is %s", settlement.ErrAlreadyFinalized, transfer.ReferenceKey, transfer.Status)
		}

		exp, err := uc.expectationFor(payment, receiver, reference)
		if err != nil {
			return nil, err
		}

		sig, err := uc.ledgerGW.SendTransaction(ctx, tx)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to send transaction",
				logger.Reference(transfer.ReferenceKey),
				logger.Err(err))
			return nil, err
		}
		logger.InfoCtx(ctx, "Transaction sent",
			logger.Reference(transfer.ReferenceKey),
			logger.Signature(sig))

		if err := uc.awaitConfirmation(ctx, sig); err != nil {
			return nil, err
		}

		landed, err := uc.ledgerGW.GetTransaction(ctx, sig)
		if err != nil {
			return nil, err
		}

		verdict, err := uc.verifier.Verify(landed, exp)
		if err != nil {
			verdict = settlement.Verdict{Status: models.TransferStatusRejected, Signature: sig, Reason: err}
		}
		if err := uc.finalizer.Finalize(ctx, transfer.ReferenceKey, payment.ID, verdict); err != nil {
			return nil, err
		}

		return uc.transferRepo.GetTransferByReference(ctx, transfer.ReferenceKey)
	})
}

// matchTransfer finds the Pending transfer of payment that tx settles by
// looking up the trailing accounts of transfers into the receiver account
func (uc *settlementUC) matchTransfer(ctx context.Context, tx *ledger.Transaction, payment *models.PaymentWithReceiver, receiver ledger.PublicKey) (*models.Transfer, ledger.PublicKey, error) {
	receiverAccount, err := uc.deriver.Associated(receiver, uc.mint)
	if err != nil {
		return nil, ledger.PublicKey{}, err
	}

	for _, ci := range tx.Message.Instructions {
		ix, err := tx.Message.ResolveInstruction(ci)
		if err != nil {
			return nil, ledger.PublicKey{}, err
		}
		data, err := token.DecodeTransfer(ix)
		if err != nil || data.Destination != receiverAccount {
			continue
		}

		for _, acc := range data.Trailing {
			transfer, err := uc.transferRepo.GetTransferByReference(ctx, acc.PublicKey.String())
			if errors.Is(err, settlement.ErrTransferNotFound) {
				continue
			}
			if err != nil {
				return nil, ledger.PublicKey{}, err
			}
			if transfer.PaymentID == payment.ID {
				return transfer, acc.PublicKey, nil
			}
		}
	}
	return nil, ledger.PublicKey{}, settlement.ErrTransactionMismatch
}

// awaitConfirmation polls the signature status until it reaches the read
// commitment, fails on the ledger or the confirm timeout passes. A failed
// execution is not an error here; Verify turns it into Rejected.
func (uc *settlementUC) awaitConfirmation(ctx context.Context, sig string) error {
	timeout := uc.cfg.Ledger.ConfirmTimeout
	if timeout <= 0 {
		timeout = defaultConfirmTimeout
	}
	poll := uc.cfg.Ledger.ConfirmPoll
	if poll <= 0 {
		poll = defaultConfirmPoll
	}
	commitment := uc.cfg.Ledger.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		statuses, err := uc.ledgerGW.GetSignatureStatuses(ctx, sig)
		if err != nil && ctx.Err() == nil {
			return err
		}
		if len(statuses) > 0 && statuses[0] != nil {
			if statuses[0].Failed() || statuses[0].Reached(commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %s", settlement.ErrConfirmationTimeout, sig)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
