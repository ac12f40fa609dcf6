package ledger

import (
	"fmt"
)

// AccountMeta is an account reference with its role in an instruction
type AccountMeta struct {
	PublicKey  PublicKey
	IsSigner   bool
	IsWritable bool
}

func Meta(pk PublicKey, signer, writable bool) AccountMeta {
	return AccountMeta{PublicKey: pk, IsSigner: signer, IsWritable: writable}
}

// Instruction is a program call with concrete account roles
type Instruction struct {
	ProgramID PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// CompiledInstruction refers to accounts by index into the message key table
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// MessageHeader splits the key table into signer and writable ranges
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// Message is the signed part of a legacy transaction
type Message struct {
	Header          MessageHeader
	AccountKeys     []PublicKey
	RecentBlockhash Hash
	Instructions    []CompiledInstruction
}

// NewMessage compiles instructions into a message paid for by feePayer.
// Keys are ordered writable signers (fee payer first), readonly signers,
// writable non-signers then readonly non-signers, each group in order of
// first appearance.
func NewMessage(feePayer PublicKey, instructions []Instruction, blockhash Hash) (*Message, error) {
	type entry struct {
		meta  AccountMeta
		order int
	}
	index := make(map[PublicKey]*entry)
	var ordered []*entry

	add := func(meta AccountMeta) {
		if e, ok := index[meta.PublicKey]; ok {
			e.meta.IsSigner = e.meta.IsSigner || meta.IsSigner
			e.meta.IsWritable = e.meta.IsWritable || meta.IsWritable
			return
		}
		e := &entry{meta: meta, order: len(ordered)}
		index[meta.PublicKey] = e
		ordered = append(ordered, e)
	}

	add(Meta(feePayer, true, true))
	for _, ix := range instructions {
		for _, acc := range ix.Accounts {
			add(acc)
		}
		add(Meta(ix.ProgramID, false, false))
	}

	if len(ordered) > 256 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyAccounts, len(ordered))
	}

	var groups [4][]PublicKey
	for _, e := range ordered {
		g := 3
		switch {
		case e.meta.IsSigner && e.meta.IsWritable:
			g = 0
		case e.meta.IsSigner:
			g = 1
		case e.meta.IsWritable:
			g = 2
		}
		groups[g] = append(groups[g], e.meta.PublicKey)
	}

	msg := &Message{
		Header: MessageHeader{
			NumRequiredSignatures:       uint8(len(groups[0]) + len(groups[1])),
			NumReadonlySignedAccounts:   uint8(len(groups[1])),
			NumReadonlyUnsignedAccounts: uint8(len(groups[3])),
		},
		RecentBlockhash: blockhash,
	}
	for _, g := range groups {
		msg.AccountKeys = append(msg.AccountKeys, g...)
	}

	position := make(map[PublicKey]uint8, len(msg.AccountKeys))
	for i, k := range msg.AccountKeys {
		position[k] = uint8(i)
	}

	for _, ix := range instructions {
		ci := CompiledInstruction{
			ProgramIDIndex: position[ix.ProgramID],
			Accounts:       make([]uint8, len(ix.Accounts)),
			Data:           append([]byte(nil), ix.Data...),
		}
		for i, acc := range ix.Accounts {
			ci.Accounts[i] = position[acc.PublicKey]
		}
		msg.Instructions = append(msg.Instructions, ci)
	}
	return msg, nil
}

// FeePayer returns the first account key, which funds execution
func (m *Message) FeePayer() (PublicKey, error) {
	if len(m.AccountKeys) == 0 {
		return PublicKey{}, fmt.Errorf("%w: empty account table", ErrAccountIndex)
	}
	return m.AccountKeys[0], nil
}

// IsSigner reports whether the key at index i must sign
func (m *Message) IsSigner(i int) bool {
	return i >= 0 && i < int(m.Header.NumRequiredSignatures)
}

// IsWritable reports whether the key at index i may be written
func (m *Message) IsWritable(i int) bool {
	if i < 0 || i >= len(m.AccountKeys) {
		return false
	}
	numSigned := int(m.Header.NumRequiredSignatures)
	if i < numSigned {
		return i < numSigned-int(m.Header.NumReadonlySignedAccounts)
	}
	return i < len(m.AccountKeys)-int(m.Header.NumReadonlyUnsignedAccounts)
}

// Signers returns the keys that must sign, in signature order
func (m *Message) Signers() []PublicKey {
	n := int(m.Header.NumRequiredSignatures)
	if n > len(m.AccountKeys) {
		n = len(m.AccountKeys)
	}
	return append([]PublicKey(nil), m.AccountKeys[:n]...)
}

// IndexOf returns the position of pk in the key table or -1
func (m *Message) IndexOf(pk PublicKey) int {
	for i, k := range m.AccountKeys {
		if k == pk {
			return i
		}
	}
	return -1
}

// ResolveInstruction turns a compiled instruction back into concrete
// account roles using the key table and header ranges
func (m *Message) ResolveInstruction(ci CompiledInstruction) (Instruction, error) {
	if int(ci.ProgramIDIndex) >= len(m.AccountKeys) {
		return Instruction{}, fmt.Errorf("%w: program index %d of %d", ErrAccountIndex, ci.ProgramIDIndex, len(m.AccountKeys))
	}

	ix := Instruction{
		ProgramID: m.AccountKeys[ci.ProgramIDIndex],
		Accounts:  make([]AccountMeta, len(ci.Accounts)),
		Data:      ci.Data,
	}
	for i, idx := range ci.Accounts {
		if int(idx) >= len(m.AccountKeys) {
			return Instruction{}, fmt.Errorf("%w: account index %d of %d", ErrAccountIndex, idx, len(m.AccountKeys))
		}
		ix.Accounts[i] = AccountMeta{
			PublicKey:  m.AccountKeys[idx],
			IsSigner:   m.IsSigner(int(idx)),
			IsWritable: m.IsWritable(int(idx)),
		}
	}
	return ix, nil
}

// MarshalBinary encodes the message in the legacy wire format
func (m *Message) MarshalBinary() ([]byte, error) {
	if len(m.AccountKeys) > 256 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyAccounts, len(m.AccountKeys))
	}

	buf := make([]byte, 0, 3+1+len(m.AccountKeys)*PublicKeyLength+PublicKeyLength+64)
	buf = append(buf,
		m.Header.NumRequiredSignatures,
		m.Header.NumReadonlySignedAccounts,
		m.Header.NumReadonlyUnsignedAccounts,
	)
	buf = appendCompactU16(buf, len(m.AccountKeys))
	for _, k := range m.AccountKeys {
		buf = append(buf, k[:]...)
	}
	buf = append(buf, m.RecentBlockhash[:]...)
	buf = appendCompactU16(buf, len(m.Instructions))
	for _, ci := range m.Instructions {
		buf = append(buf, ci.ProgramIDIndex)
		buf = appendCompactU16(buf, len(ci.Accounts))
		buf = append(buf, ci.Accounts...)
		buf = appendCompactU16(buf, len(ci.Data))
		buf = append(buf, ci.Data...)
	}
	return buf, nil
}

// parseMessage decodes a message starting at offset and returns the offset
// just past it
func parseMessage(data []byte, offset int) (*Message, int, error) {
	need := func(n int) error {
		if offset+n > len(data) {
			return fmt.Errorf("%w: truncated at byte %d", ErrMalformedTransaction, offset)
		}
		return nil
	}

	if err := need(3); err != nil {
		return nil, 0, err
	}
	if data[offset]&0x80 != 0 {
		return nil, 0, fmt.Errorf("%w: versioned messages are not supported", ErrMalformedTransaction)
	}

	m := &Message{Header: MessageHeader{
		NumRequiredSignatures:       data[offset],
		NumReadonlySignedAccounts:   data[offset+1],
		NumReadonlyUnsignedAccounts: data[offset+2],
	}}
	offset += 3

	numKeys, offset, err := readCompactU16(data, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := need(numKeys * PublicKeyLength); err != nil {
		return nil, 0, err
	}
	m.AccountKeys = make([]PublicKey, numKeys)
	for i := range m.AccountKeys {
		copy(m.AccountKeys[i][:], data[offset:offset+PublicKeyLength])
		offset += PublicKeyLength
	}

	if int(m.Header.NumRequiredSignatures) > numKeys ||
		int(m.Header.NumReadonlySignedAccounts) > int(m.Header.NumRequiredSignatures) ||
		int(m.Header.NumReadonlyUnsignedAccounts) > numKeys-int(m.Header.NumRequiredSignatures) {
		return nil, 0, fmt.Errorf("%w: header does not fit %d keys", ErrMalformedTransaction, numKeys)
	}

	if err := need(PublicKeyLength); err != nil {
		return nil, 0, err
	}
	copy(m.RecentBlockhash[:], data[offset:offset+PublicKeyLength])
	offset += PublicKeyLength

	numIx, offset, err := readCompactU16(data, offset)
	if err != nil {
		return nil, 0, err
	}
	m.Instructions = make([]CompiledInstruction, numIx)
	for i := range m.Instructions {
		if err := need(1); err != nil {
			return nil, 0, err
		}
		ci := CompiledInstruction{ProgramIDIndex: data[offset]}
		offset++

		var n int
		if n, offset, err = readCompactU16(data, offset); err != nil {
			return nil, 0, err
		}
		if err := need(n); err != nil {
			return nil, 0, err
		}
		ci.Accounts = make([]uint8, n)
		copy(ci.Accounts, data[offset:offset+n])
		offset += n

		if n, offset, err = readCompactU16(data, offset); err != nil {
			return nil, 0, err
		}
		if err := need(n); err != nil {
			return nil, 0, err
		}
		ci.Data = append([]byte(nil), data[offset:offset+n]...)
		offset += n

		m.Instructions[i] = ci
	}
	return m, offset, nil
}

// ParseMessage decodes a bare message
func ParseMessage(data []byte) (*Message, error) {
	m, end, err := parseMessage(data, 0)
	if err != nil {
		return nil, err
	}
	if end != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedTransaction, len(data)-end)
	}
	return m, nil
}
