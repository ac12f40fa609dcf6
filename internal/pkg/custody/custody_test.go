package custody

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

func TestGenerateRecover_RoundTrip(t *testing.T) {
	sealed, err := Generate()
	require.NoError(t, err)

	priv, err := Recover(sealed.Blob, sealed.Secret)
	require.NoError(t, err)
	assert.Equal(t, sealed.Address, ledger.PublicKeyOf(priv).String())

	raw, err := base64.StdEncoding.DecodeString(sealed.Blob)
	require.NoError(t, err)
	assert.Len(t, raw, nonceSize+ed25519.PrivateKeySize+16)
}

func TestRecover_WrongSecret(t *testing.T) {
	sealed, err := Generate()
	require.NoError(t, err)
	other, err := Generate()
	require.NoError(t, err)

	_, err = Recover(sealed.Blob, other.Secret)
	assert.ErrorIs(t, err, ErrKeyRecovery)
}

func TestRecover_Malformed(t *testing.T) {
	sealed, err := Generate()
	require.NoError(t, err)

	raw, _ := base64.StdEncoding.DecodeString(sealed.Blob)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name   string
		blob   string
		secret string
	}{
		{"blob not base64", "%%%", sealed.Secret},
		{"secret not base64", sealed.Blob, "%%%"},
		{"short secret", sealed.Blob, base64.StdEncoding.EncodeToString([]byte("short"))},
		{"short blob", base64.StdEncoding.EncodeToString([]byte("tiny")), sealed.Secret},
		{"tampered ciphertext", tampered, sealed.Secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Recover(tt.blob, tt.secret)
			assert.ErrorIs(t, err, ErrKeyRecovery)
		})
	}
}

func TestRecover_InconsistentKey(t *testing.T) {
	// deterministic reader so the sealed plaintext can be rebuilt with a
	// mismatched public half
	secret := bytes.Repeat([]byte{7}, secretSize)
	nonce := bytes.Repeat([]byte{9}, nonceSize)

	_, priv, err := ed25519.GenerateKey(bytes.NewReader(bytes.Repeat([]byte{1}, 32)))
	require.NoError(t, err)
	bad := append([]byte(nil), priv...)
	bad[63] ^= 0x01

	aead, err := newAEAD(secret)
	require.NoError(t, err)
	blob := base64.StdEncoding.EncodeToString(aead.Seal(append([]byte(nil), nonce...), nonce, bad, nil))

	_, err = Recover(blob, base64.StdEncoding.EncodeToString(secret))
	assert.ErrorIs(t, err, ErrKeyRecovery)
}

func TestOperator_SignsTransaction(t *testing.T) {
	sealed, err := Generate()
	require.NoError(t, err)
	op, err := LoadOperator(sealed.Blob, sealed.Secret)
	require.NoError(t, err)
	assert.Equal(t, sealed.Address, op.PublicKey().String())

	program, err := ledger.NewReference()
	require.NoError(t, err)
	tx, err := ledger.NewTransaction(op.PublicKey(), []ledger.Instruction{{ProgramID: program}}, ledger.Hash{})
	require.NoError(t, err)

	require.NoError(t, op.SignTransaction(tx))
	assert.NoError(t, tx.VerifySignatures())
}
