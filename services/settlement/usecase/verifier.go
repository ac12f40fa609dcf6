package usecase

import (
	"errors"
	"fmt"

	safemath "github.com/luxfi/math"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// Verifier implements settlement.TransferVerifier
type Verifier struct {
	operator ledger.PublicKey
	deriver  *token.Deriver
}

func NewVerifier(operator ledger.PublicKey, deriver *token.Deriver) *Verifier {
	return &Verifier{operator: operator, deriver: deriver}
}

// VerifySigned checks every declared signature and that the operator is
// among the signers
func (v *Verifier) VerifySigned(tx *ledger.Transaction) error {
	if err := tx.VerifySignatures(); err != nil {
		return err
	}
	for _, pk := range tx.Signers() {
		if pk == v.operator {
			return nil
		}
	}
	return settlement.ErrUntrustedSigner
}

// Verify decides whether landed settles exp. Checks run in a fixed order:
// fee payer, execution status, destination, reference, amount. A failed
// execution is a Rejected verdict; the other checks fail with an error.
func (v *Verifier) Verify(landed *rpc.LandedTransaction, exp settlement.Expectation) (settlement.Verdict, error) {
	tx := landed.Transaction
	sig := tx.Signature().String()

	feePayer, err := tx.Message.FeePayer()
	if err != nil {
		return settlement.Verdict{}, err
	}
	if feePayer != v.operator {
		return settlement.Verdict{}, fmt.Errorf("%w: %s", settlement.ErrUntrustedFeePayer, feePayer)
	}

	if landed.Failed() {
		return settlement.Verdict{
			Status:    models.TransferStatusRejected,
			Signature: sig,
			Reason:    settlement.ErrLedgerExecutionFailed,
		}, nil
	}

	receiverAccount, err := v.deriver.Associated(exp.Receiver, exp.Mint)
	if err != nil {
		return settlement.Verdict{}, err
	}

	if err := v.checkTransfer(&tx.Message, receiverAccount, exp); err != nil {
		return settlement.Verdict{}, err
	}

	received, err := balanceDelta(landed, receiverAccount, exp.Mint)
	if err != nil {
		return settlement.Verdict{}, err
	}
	if received < exp.MinAmount {
		return settlement.Verdict{}, fmt.Errorf("%w: received %d, want %d", settlement.ErrInsufficientAmount, received, exp.MinAmount)
	}

	return settlement.Verdict{Status: models.TransferStatusCompleted, Signature: sig}, nil
}

// checkTransfer looks for a token transfer into receiverAccount carrying the
// reference among its trailing accounts
func (v *Verifier) checkTransfer(msg *ledger.Message, receiverAccount ledger.PublicKey, exp settlement.Expectation) error {
	toReceiver := false
	for _, ci := range msg.Instructions {
		ix, err := msg.ResolveInstruction(ci)
		if err != nil {
			return err
		}
		data, err := token.DecodeTransfer(ix)
		if errors.Is(err, token.ErrUnsupportedInstruction) {
			continue
		}
		if err != nil {
			return err
		}
		if data.Destination != receiverAccount {
			continue
		}
		if data.Mint != nil && *data.Mint != exp.Mint {
			continue
		}
		toReceiver = true
		if data.HasTrailing(exp.Reference) {
			return nil
		}
	}
	if !toReceiver {
		return settlement.ErrDestinationMismatch
	}
	return settlement.ErrReferenceMissing
}

// balanceDelta is post minus pre token balance of account; a missing entry
// counts as zero
func balanceDelta(landed *rpc.LandedTransaction, account, mint ledger.PublicKey) (uint64, error) {
	idx := landed.Transaction.Message.IndexOf(account)
	if idx < 0 {
		return 0, settlement.ErrDestinationMismatch
	}

	pre, err := balanceAt(landed.Meta.PreTokenBalances, idx, mint)
	if err != nil {
		return 0, err
	}
	post, err := balanceAt(landed.Meta.PostTokenBalances, idx, mint)
	if err != nil {
		return 0, err
	}

	delta, err := safemath.Sub(post, pre)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: balance fell from %d to %d", settlement.ErrInsufficientAmount, settlement.ErrArithmeticUnderflow, pre, post)
	}
	return delta, nil
}

func balanceAt(balances []rpc.TokenBalance, idx int, mint ledger.PublicKey) (uint64, error) {
	for _, b := range balances {
		if b.AccountIndex != idx {
			continue
		}
		if b.Mint != "" && b.Mint != mint.String() {
			continue
		}
		return b.RawAmount()
	}
	return 0, nil
}
