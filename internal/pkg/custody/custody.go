// Package custody seals the operator signing key under a separately held
// secret and recovers it at startup.
package custody

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"golang.org/x/crypto/ed25519"
)

const (
	secretSize = 32
	nonceSize  = 12
)

var ErrKeyRecovery = errors.New("custody: key recovery failed")

// Sealed is the output of Generate. Blob and Secret must be stored apart.
type Sealed struct {
	Blob    string
	Secret  string
	Address string
}

// Generate creates a fresh operator key and seals it
func Generate() (Sealed, error) {
	return generate(rand.Reader)
}

func generate(random io.Reader) (Sealed, error) {
	pub, priv, err := ed25519.GenerateKey(random)
	if err != nil {
		return Sealed{}, fmt.Errorf("generate keypair: %w", err)
	}

	secret := make([]byte, secretSize)
	if _, err := io.ReadFull(random, secret); err != nil {
		return Sealed{}, fmt.Errorf("generate secret: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(random, nonce); err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := newAEAD(secret)
	if err != nil {
		return Sealed{}, err
	}
	sealed := aead.Seal(nonce, nonce, priv, nil)

	var addr ledger.PublicKey
	copy(addr[:], pub)
	return Sealed{
		Blob:    base64.StdEncoding.EncodeToString(sealed),
		Secret:  base64.StdEncoding.EncodeToString(secret),
		Address: addr.String(),
	}, nil
}

// Recover opens blob with secret. Every failure, including a plaintext that
// is not a consistent ed25519 key, is reported as ErrKeyRecovery.
func Recover(blob, secret string) (ed25519.PrivateKey, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode blob: %v", ErrKeyRecovery, err)
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: decode secret: %v", ErrKeyRecovery, err)
	}
	if len(key) != secretSize {
		return nil, fmt.Errorf("%w: secret is %d bytes", ErrKeyRecovery, len(key))
	}
	if len(raw) <= nonceSize {
		return nil, fmt.Errorf("%w: blob too short", ErrKeyRecovery)
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyRecovery, err)
	}
	plain, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyRecovery, err)
	}
	if len(plain) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: key is %d bytes", ErrKeyRecovery, len(plain))
	}

	priv := ed25519.PrivateKey(plain)
	regenerated := ed25519.NewKeyFromSeed(priv.Seed())
	if !bytes.Equal(regenerated, priv) {
		return nil, fmt.Errorf("%w: public half does not match seed", ErrKeyRecovery)
	}
	return priv, nil
}

func newAEAD(secret []byte) (cipher.AEAD, error) {
	key := sha256.Sum256(secret)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Operator holds the recovered key for the life of the process
type Operator struct {
	priv ed25519.PrivateKey
	pub  ledger.PublicKey
}

func NewOperator(priv ed25519.PrivateKey) *Operator {
	return &Operator{priv: priv, pub: ledger.PublicKeyOf(priv)}
}

// LoadOperator recovers the key from its sealed form
func LoadOperator(blob, secret string) (*Operator, error) {
	priv, err := Recover(blob, secret)
	if err != nil {
		return nil, err
	}
	return NewOperator(priv), nil
}

func (o *Operator) PublicKey() ledger.PublicKey {
	return o.pub
}

func (o *Operator) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(o.priv, message), nil
}

// SignTransaction fills the operator's signature slot
func (o *Operator) SignTransaction(tx *ledger.Transaction) error {
	return tx.SignWith(o.pub, o.Sign)
}
