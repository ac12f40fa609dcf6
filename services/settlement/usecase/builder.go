package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// OperatorSigner is the custody side of the operator key
type OperatorSigner interface {
	PublicKey() ledger.PublicKey
	SignTransaction(tx *ledger.Transaction) error
}

// TransferBuilder assembles fee-split transfer transactions paid for and
// partially signed by the operator
type TransferBuilder struct {
	ledgerGW       settlement.LedgerGW
	operator       OperatorSigner
	deriver        *token.Deriver
	treasury       ledger.PublicKey
	feeNumerator   uint64
	feeDenominator uint64
}

func NewTransferBuilder(
	ledgerGW settlement.LedgerGW,
	operator OperatorSigner,
	deriver *token.Deriver,
	treasury ledger.PublicKey,
	feeNumerator, feeDenominator uint64,
) *TransferBuilder {
	if feeDenominator == 0 {
		feeNumerator, feeDenominator = DefaultFeeNumerator, DefaultFeeDenominator
	}
	return &TransferBuilder{
		ledgerGW:       ledgerGW,
		operator:       operator,
		deriver:        deriver,
		treasury:       treasury,
		feeNumerator:   feeNumerator,
		feeDenominator: feeDenominator,
	}
}

// Build returns a transaction with two token transfers out of the sender's
// account: the fee to the treasury and the rest to the receiver, the latter
// tagged with the reference. Only the operator slot is signed.
func (b *TransferBuilder) Build(ctx context.Context, params settlement.TransferParams) (*ledger.Transaction, settlement.FeeSplit, error) {
	sender, err := ledger.ParsePublicKey(params.Sender)
	if err != nil {
		return nil, settlement.FeeSplit{}, fmt.Errorf("sender: %w", err)
	}
	receiver, err := ledger.ParsePublicKey(params.Receiver)
	if err != nil {
		return nil, settlement.FeeSplit{}, fmt.Errorf("receiver: %w", err)
	}

	split, err := SplitFee(params.Amount, b.feeNumerator, b.feeDenominator)
	if err != nil {
		return nil, settlement.FeeSplit{}, err
	}

	senderAccount, err := b.deriver.Associated(sender, params.Mint)
	if err != nil {
		return nil, settlement.FeeSplit{}, err
	}
	receiverAccount, err := b.deriver.Associated(receiver, params.Mint)
	if err != nil {
		return nil, settlement.FeeSplit{}, err
	}
	treasuryAccount, err := b.deriver.Associated(b.treasury, params.Mint)
	if err != nil {
		return nil, settlement.FeeSplit{}, err
	}

	blockhash, err := b.ledgerGW.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, settlement.FeeSplit{}, fmt.Errorf("failed to get latest blockhash: %w", err)
	}

	tx, err := ledger.NewTransaction(b.operator.PublicKey(), []ledger.Instruction{
		token.NewTransfer(senderAccount, treasuryAccount, sender, split.Fee),
		token.NewTransfer(senderAccount, receiverAccount, sender, split.AmountAfterFee, params.Reference),
	}, blockhash)
	if err != nil {
		return nil, settlement.FeeSplit{}, err
	}
	if err := b.operator.SignTransaction(tx); err != nil {
		return nil, settlement.FeeSplit{}, fmt.Errorf("operator signing failed: %w", err)
	}

	logger.Debug("Built transfer transaction",
		logger.Reference(params.Reference.String()),
		logger.Uint64("fee", split.Fee),
		logger.Uint64("amount_after_fee", split.AmountAfterFee))

	return tx, split, nil
}
