package ledger

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
)

const (
	PublicKeyLength = 32
	SignatureLength = 64
)

// PublicKey is a 32 byte ledger address, printed as base58
type PublicKey [PublicKeyLength]byte

// ParsePublicKey decodes a base58 address
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	raw, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("%w: %q: %v", ErrAddressFormat, s, err)
	}
	if len(raw) != PublicKeyLength {
		return pk, fmt.Errorf("%w: %q decodes to %d bytes", ErrAddressFormat, s, len(raw))
	}
	copy(pk[:], raw)
	return pk, nil
}

// MustPublicKey is ParsePublicKey for constants
func MustPublicKey(s string) PublicKey {
	pk, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// PublicKeyFromBytes copies b into a key
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeyLength {
		return pk, fmt.Errorf("%w: %d bytes", ErrAddressFormat, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// PublicKeyOf returns the address of an ed25519 private key
func PublicKeyOf(priv ed25519.PrivateKey) PublicKey {
	var pk PublicKey
	copy(pk[:], priv.Public().(ed25519.PublicKey))
	return pk
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

func (pk PublicKey) Bytes() []byte {
	return append([]byte(nil), pk[:]...)
}

func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

func (pk PublicKey) Equals(other PublicKey) bool {
	return bytes.Equal(pk[:], other[:])
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// Hash is a 32 byte digest such as a recent blockhash
type Hash = PublicKey

// ParseHash decodes a base58 blockhash
func ParseHash(s string) (Hash, error) {
	return ParsePublicKey(s)
}

// Signature is a 64 byte ed25519 signature, printed as base58
type Signature [SignatureLength]byte

// ParseSignature decodes a base58 signature
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	raw, err := base58.Decode(s)
	if err != nil || len(raw) != SignatureLength {
		return sig, fmt.Errorf("%w: %q", ErrSignatureFormat, s)
	}
	copy(sig[:], raw)
	return sig, nil
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) IsZero() bool {
	return s == Signature{}
}

// NewKeypair returns a fresh ed25519 key, used for reference tags
func NewKeypair() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return priv, nil
}

// NewReference returns a throwaway public key used only as a search tag.
// The private half is discarded.
func NewReference() (PublicKey, error) {
	priv, err := NewKeypair()
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyOf(priv), nil
}
