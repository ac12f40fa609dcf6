package ledger

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

// Transaction is a message plus one signature slot per required signer.
// Unfilled slots stay zeroed so a transaction can travel partially signed.
type Transaction struct {
	Signatures []Signature
	Message    Message
}

// NewTransaction compiles instructions and allocates empty signature slots
func NewTransaction(feePayer PublicKey, instructions []Instruction, blockhash Hash) (*Transaction, error) {
	msg, err := NewMessage(feePayer, instructions, blockhash)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Signatures: make([]Signature, msg.Header.NumRequiredSignatures),
		Message:    *msg,
	}, nil
}

// Sign fills the slot belonging to priv's public key
func (tx *Transaction) Sign(priv ed25519.PrivateKey) error {
	return tx.SignWith(PublicKeyOf(priv), func(msg []byte) ([]byte, error) {
		return ed25519.Sign(priv, msg), nil
	})
}

// SignWith fills the slot for signer using an external signing function
func (tx *Transaction) SignWith(signer PublicKey, sign func([]byte) ([]byte, error)) error {
	idx := tx.Message.IndexOf(signer)
	if idx < 0 || !tx.Message.IsSigner(idx) {
		return fmt.Errorf("%w: %s", ErrNotSigner, signer)
	}
	tx.ensureSlots()

	msg, err := tx.Message.MarshalBinary()
	if err != nil {
		return err
	}
	sig, err := sign(msg)
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	if len(sig) != SignatureLength {
		return fmt.Errorf("%w: signer returned %d bytes", ErrSignatureFormat, len(sig))
	}
	copy(tx.Signatures[idx][:], sig)
	return nil
}

func (tx *Transaction) ensureSlots() {
	n := int(tx.Message.Header.NumRequiredSignatures)
	for len(tx.Signatures) < n {
		tx.Signatures = append(tx.Signatures, Signature{})
	}
}

// Signers returns the required signer keys
func (tx *Transaction) Signers() []PublicKey {
	return tx.Message.Signers()
}

// Signature returns the first signature, which identifies the transaction
func (tx *Transaction) Signature() Signature {
	if len(tx.Signatures) == 0 {
		return Signature{}
	}
	return tx.Signatures[0]
}

// VerifySignatures checks every required signature against the message
func (tx *Transaction) VerifySignatures() error {
	signers := tx.Message.Signers()
	if len(tx.Signatures) != len(signers) {
		return fmt.Errorf("%w: %d signatures for %d signers", ErrSignatureVerification, len(tx.Signatures), len(signers))
	}

	msg, err := tx.Message.MarshalBinary()
	if err != nil {
		return err
	}
	for i, pk := range signers {
		if !ed25519.Verify(ed25519.PublicKey(pk[:]), msg, tx.Signatures[i][:]) {
			return fmt.Errorf("%w: signer %s", ErrSignatureVerification, pk)
		}
	}
	return nil
}

// MarshalBinary encodes the transaction in the legacy wire format
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	msg, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 3+len(tx.Signatures)*SignatureLength+len(msg))
	buf = appendCompactU16(buf, len(tx.Signatures))
	for _, s := range tx.Signatures {
		buf = append(buf, s[:]...)
	}
	return append(buf, msg...), nil
}

// UnmarshalBinary decodes a wire transaction, rejecting trailing bytes
func (tx *Transaction) UnmarshalBinary(data []byte) error {
	numSigs, offset, err := readCompactU16(data, 0)
	if err != nil {
		return err
	}
	if offset+numSigs*SignatureLength > len(data) {
		return fmt.Errorf("%w: truncated signatures", ErrMalformedTransaction)
	}
	sigs := make([]Signature, numSigs)
	for i := range sigs {
		copy(sigs[i][:], data[offset:offset+SignatureLength])
		offset += SignatureLength
	}

	msg, end, err := parseMessage(data, offset)
	if err != nil {
		return err
	}
	if end != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedTransaction, len(data)-end)
	}
	if numSigs != int(msg.Header.NumRequiredSignatures) {
		return fmt.Errorf("%w: %d signatures for %d signers", ErrMalformedTransaction, numSigs, msg.Header.NumRequiredSignatures)
	}

	tx.Signatures = sigs
	tx.Message = *msg
	return nil
}

// ToBase64 encodes the transaction for JSON transport
func (tx *Transaction) ToBase64() (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// TransactionFromBase64 decodes a base64 wire transaction
func TransactionFromBase64(s string) (*Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}
	tx := &Transaction{}
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return tx, nil
}
