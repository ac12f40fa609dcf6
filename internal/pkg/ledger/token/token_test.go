package token

import (
	"testing"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(t *testing.T) ledger.PublicKey {
	t.Helper()
	pk, err := ledger.NewReference()
	require.NoError(t, err)
	return pk
}

func TestDecodeTransfer_RoundTrip(t *testing.T) {
	src, dst, auth, ref := key(t), key(t), key(t), key(t)

	got, err := DecodeTransfer(NewTransfer(src, dst, auth, 990_000, ref))
	require.NoError(t, err)
	assert.Equal(t, VariantTransfer, got.Variant)
	assert.Equal(t, src, got.Source)
	assert.Equal(t, dst, got.Destination)
	assert.Equal(t, auth, got.Authority)
	assert.Equal(t, uint64(990_000), got.Amount)
	assert.Nil(t, got.Mint)
	assert.Equal(t, []ledger.AccountMeta{ledger.Meta(ref, false, false)}, got.Trailing)
	assert.True(t, got.HasTrailing(ref))
	assert.False(t, got.HasTrailing(src))
}

func TestDecodeTransferChecked_RoundTrip(t *testing.T) {
	src, mint, dst, auth := key(t), key(t), key(t), key(t)

	got, err := DecodeTransfer(NewTransferChecked(src, mint, dst, auth, 1<<40, 6))
	require.NoError(t, err)
	assert.Equal(t, VariantTransferChecked, got.Variant)
	assert.Equal(t, src, got.Source)
	assert.Equal(t, dst, got.Destination)
	assert.Equal(t, auth, got.Authority)
	require.NotNil(t, got.Mint)
	assert.Equal(t, mint, *got.Mint)
	assert.Equal(t, uint8(6), got.Decimals)
	assert.Equal(t, uint64(1<<40), got.Amount)
	assert.Empty(t, got.Trailing)
}

func TestDecodeTransfer_Unsupported(t *testing.T) {
	src, dst, auth := key(t), key(t), key(t)
	valid := NewTransfer(src, dst, auth, 1)

	otherProgram := valid
	otherProgram.ProgramID = key(t)

	otherTag := NewTransfer(src, dst, auth, 1)
	otherTag.Data[0] = 7

	shortData := NewTransfer(src, dst, auth, 1)
	shortData.Data = shortData.Data[:5]

	fewAccounts := NewTransferChecked(src, key(t), dst, auth, 1, 6)
	fewAccounts.Accounts = fewAccounts.Accounts[:3]

	empty := valid
	empty.Data = nil

	for name, ix := range map[string]ledger.Instruction{
		"other program": otherProgram,
		"other tag":     otherTag,
		"short data":    shortData,
		"few accounts":  fewAccounts,
		"empty data":    empty,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTransfer(ix)
			assert.ErrorIs(t, err, ErrUnsupportedInstruction)
		})
	}
}

func TestDecodeTransfer_ThroughCompiledMessage(t *testing.T) {
	payer, src, dst, auth, ref := key(t), key(t), key(t), key(t), key(t)

	msg, err := ledger.NewMessage(payer, []ledger.Instruction{NewTransfer(src, dst, auth, 42, ref)}, ledger.Hash{})
	require.NoError(t, err)
	ix, err := msg.ResolveInstruction(msg.Instructions[0])
	require.NoError(t, err)

	got, err := DecodeTransfer(ix)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.Amount)
	assert.Equal(t, dst, got.Destination)
	assert.True(t, got.HasTrailing(ref))
}

func TestDeriver_CachesAssociatedAddress(t *testing.T) {
	d, err := NewDeriver(2)
	require.NoError(t, err)

	owner := key(t)
	mint := ledger.MustPublicKey("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	want, err := FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	assert.False(t, ledger.IsOnCurve(want))

	got, err := d.Associated(owner, mint)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, d.Len())

	got, err = d.Associated(owner, mint)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, d.Len())

	other, err := d.Associated(key(t), mint)
	require.NoError(t, err)
	assert.NotEqual(t, want, other)
	assert.Equal(t, 2, d.Len())
}
