package usecase

import (
	"strconv"
	"testing"

	"github.com/piresc/nebengjek-settlement/internal/pkg/custody"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

var testMint = ledger.MustPublicKey("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

type fixture struct {
	operator  *custody.Operator
	sender    ed25519.PrivateKey
	receiver  ledger.PublicKey
	treasury  ledger.PublicKey
	reference ledger.PublicKey
	blockhash ledger.Hash
	deriver   *token.Deriver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	opKey, err := ledger.NewKeypair()
	require.NoError(t, err)
	sender, err := ledger.NewKeypair()
	require.NoError(t, err)
	deriver, err := token.NewDeriver(64)
	require.NoError(t, err)

	return &fixture{
		operator:  custody.NewOperator(opKey),
		sender:    sender,
		receiver:  newKey(t),
		treasury:  newKey(t),
		reference: newKey(t),
		blockhash: newKey(t),
		deriver:   deriver,
	}
}

func newKey(t *testing.T) ledger.PublicKey {
	t.Helper()
	pk, err := ledger.NewReference()
	require.NoError(t, err)
	return pk
}

func (f *fixture) senderKey() ledger.PublicKey {
	return ledger.PublicKeyOf(f.sender)
}

func (f *fixture) account(t *testing.T, owner ledger.PublicKey) ledger.PublicKey {
	t.Helper()
	addr, err := f.deriver.Associated(owner, testMint)
	require.NoError(t, err)
	return addr
}

// signedTransfer builds the transaction the service would hand out, with
// both signatures filled in
func (f *fixture) signedTransfer(t *testing.T, feePayer ledger.PublicKey, instructions ...ledger.Instruction) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewTransaction(feePayer, instructions, f.blockhash)
	require.NoError(t, err)
	if feePayer == f.operator.PublicKey() {
		require.NoError(t, f.operator.SignTransaction(tx))
	}
	require.NoError(t, tx.Sign(f.sender))
	return tx
}

func (f *fixture) standardInstructions(t *testing.T, fee, after uint64) []ledger.Instruction {
	src := f.account(t, f.senderKey())
	return []ledger.Instruction{
		token.NewTransfer(src, f.account(t, f.treasury), f.senderKey(), fee),
		token.NewTransfer(src, f.account(t, f.receiver), f.senderKey(), after, f.reference),
	}
}

// landed wraps tx with receiver balances before and after. A negative pre
// omits the pre balance entry.
func (f *fixture) landed(t *testing.T, tx *ledger.Transaction, pre int64, post uint64) *rpc.LandedTransaction {
	t.Helper()
	idx := tx.Message.IndexOf(f.account(t, f.receiver))

	meta := rpc.TransactionMeta{}
	if idx >= 0 {
		if pre >= 0 {
			meta.PreTokenBalances = []rpc.TokenBalance{balance(idx, uint64(pre))}
		}
		meta.PostTokenBalances = []rpc.TokenBalance{balance(idx, post)}
	}
	return &rpc.LandedTransaction{Slot: 1, Transaction: tx, Meta: meta}
}

func balance(idx int, amount uint64) rpc.TokenBalance {
	return rpc.TokenBalance{
		AccountIndex:  idx,
		Mint:          testMint.String(),
		UITokenAmount: rpc.UITokenAmount{Amount: strconv.FormatUint(amount, 10), Decimals: 6},
	}
}
