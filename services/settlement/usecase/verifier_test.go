package usecase

import (
	"encoding/json"
	"testing"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) expectation(min uint64) settlement.Expectation {
	return settlement.Expectation{Receiver: f.receiver, Mint: testMint, Reference: f.reference, MinAmount: min}
}

func TestVerifier_Completed(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)

	tx := f.signedTransfer(t, f.operator.PublicKey(), f.standardInstructions(t, 10_000, 990_000)...)
	verdict, err := v.Verify(f.landed(t, tx, 5, 990_005), f.expectation(990_000))

	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCompleted, verdict.Status)
	assert.Equal(t, tx.Signature().String(), verdict.Signature)
	assert.Nil(t, verdict.Reason)
}

func TestVerifier_MissingPreBalanceCountsAsZero(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)

	tx := f.signedTransfer(t, f.operator.PublicKey(), f.standardInstructions(t, 10_000, 990_000)...)
	verdict, err := v.Verify(f.landed(t, tx, -1, 990_000), f.expectation(990_000))

	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCompleted, verdict.Status)
}

func TestVerifier_RejectsNonOperatorFeePayer(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)

	// otherwise valid transfer paid for by the sender
	tx := f.signedTransfer(t, f.senderKey(), f.standardInstructions(t, 10_000, 990_000)...)
	_, err := v.Verify(f.landed(t, tx, 0, 990_000), f.expectation(990_000))

	assert.ErrorIs(t, err, settlement.ErrUntrustedFeePayer)
}

func TestVerifier_ExecutionFailureIsRejected(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)

	tx := f.signedTransfer(t, f.operator.PublicKey(), f.standardInstructions(t, 10_000, 990_000)...)
	landed := f.landed(t, tx, 0, 990_000)
	landed.Meta.Err = json.RawMessage(`{"InstructionError":[1,{"Custom":1}]}`)

	verdict, err := v.Verify(landed, f.expectation(990_000))
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusRejected, verdict.Status)
	assert.Equal(t, tx.Signature().String(), verdict.Signature)
	assert.ErrorIs(t, verdict.Reason, settlement.ErrLedgerExecutionFailed)
}

func TestVerifier_CheckFailures(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)
	src := f.account(t, f.senderKey())

	tests := []struct {
		name         string
		instructions []ledger.Instruction
		post         uint64
		want         error
	}{
		{
			name:         "destination is another account",
			instructions: []ledger.Instruction{token.NewTransfer(src, f.account(t, newKey(t)), f.senderKey(), 990_000, f.reference)},
			post:         990_000,
			want:         settlement.ErrDestinationMismatch,
		},
		{
			name:         "reference not attached",
			instructions: []ledger.Instruction{token.NewTransfer(src, f.account(t, f.receiver), f.senderKey(), 990_000)},
			post:         990_000,
			want:         settlement.ErrReferenceMissing,
		},
		{
			name:         "amount too small",
			instructions: f.standardInstructions(t, 10_000, 980_000),
			post:         980_000,
			want:         settlement.ErrInsufficientAmount,
		},
		{
			name: "checked transfer with another mint",
			instructions: []ledger.Instruction{
				token.NewTransferChecked(src, newKey(t), f.account(t, f.receiver), f.senderKey(), 990_000, 6, f.reference),
			},
			post: 990_000,
			want: settlement.ErrDestinationMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := f.signedTransfer(t, f.operator.PublicKey(), tt.instructions...)
			_, err := v.Verify(f.landed(t, tx, 0, tt.post), f.expectation(990_000))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerifier_AcceptsTransferChecked(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)
	src := f.account(t, f.senderKey())

	tx := f.signedTransfer(t, f.operator.PublicKey(),
		token.NewTransferChecked(src, testMint, f.account(t, f.receiver), f.senderKey(), 990_000, 6, f.reference))

	verdict, err := v.Verify(f.landed(t, tx, 0, 990_000), f.expectation(990_000))
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCompleted, verdict.Status)
}

func TestVerifier_BalanceDecrease(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)

	tx := f.signedTransfer(t, f.operator.PublicKey(), f.standardInstructions(t, 10_000, 990_000)...)
	_, err := v.Verify(f.landed(t, tx, 2_000_000, 1_000_000), f.expectation(990_000))
	assert.ErrorIs(t, err, settlement.ErrInsufficientAmount)
	assert.ErrorIs(t, err, settlement.ErrArithmeticUnderflow)
}

func TestVerifier_VerifySigned(t *testing.T) {
	f := newFixture(t)
	v := NewVerifier(f.operator.PublicKey(), f.deriver)

	tx := f.signedTransfer(t, f.operator.PublicKey(), f.standardInstructions(t, 1, 99)...)
	assert.NoError(t, v.VerifySigned(tx))

	unsigned, err := ledger.NewTransaction(f.operator.PublicKey(), f.standardInstructions(t, 1, 99), f.blockhash)
	require.NoError(t, err)
	require.NoError(t, f.operator.SignTransaction(unsigned))
	assert.ErrorIs(t, v.VerifySigned(unsigned), ledger.ErrSignatureVerification)

	withoutOperator := f.signedTransfer(t, f.senderKey(), f.standardInstructions(t, 1, 99)...)
	assert.ErrorIs(t, v.VerifySigned(withoutOperator), settlement.ErrUntrustedSigner)
}
