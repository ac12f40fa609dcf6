// Package token encodes and decodes token program transfer instructions and
// derives associated token accounts.
package token

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
)

var (
	ProgramID                = ledger.MustPublicKey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	AssociatedTokenProgramID = ledger.MustPublicKey("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

var ErrUnsupportedInstruction = errors.New("token: unsupported instruction")

// Instruction tags
const (
	TagTransfer        uint8 = 3
	TagTransferChecked uint8 = 12
)

// Variant names the decoded transfer form
type Variant uint8

const (
	VariantTransfer Variant = iota + 1
	VariantTransferChecked
)

func (v Variant) String() string {
	switch v {
	case VariantTransfer:
		return "Transfer"
	case VariantTransferChecked:
		return "TransferChecked"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// TransferData is a decoded token transfer. Mint is set only for
// TransferChecked. Trailing holds any accounts after the fixed ones.
type TransferData struct {
	Variant     Variant
	Source      ledger.PublicKey
	Destination ledger.PublicKey
	Authority   ledger.PublicKey
	Mint        *ledger.PublicKey
	Decimals    uint8
	Amount      uint64
	Trailing    []ledger.AccountMeta
}

// HasTrailing reports whether pk appears among the trailing accounts
func (d TransferData) HasTrailing(pk ledger.PublicKey) bool {
	for _, acc := range d.Trailing {
		if acc.PublicKey == pk {
			return true
		}
	}
	return false
}

// NewTransfer builds a plain Transfer. extra accounts are appended readonly
// and unsigned, which is how a reference tag rides along.
func NewTransfer(source, destination, authority ledger.PublicKey, amount uint64, extra ...ledger.PublicKey) ledger.Instruction {
	data := make([]byte, 9)
	data[0] = TagTransfer
	binary.LittleEndian.PutUint64(data[1:], amount)

	accounts := []ledger.AccountMeta{
		ledger.Meta(source, false, true),
		ledger.Meta(destination, false, true),
		ledger.Meta(authority, true, false),
	}
	for _, pk := range extra {
		accounts = append(accounts, ledger.Meta(pk, false, false))
	}
	return ledger.Instruction{ProgramID: ProgramID, Accounts: accounts, Data: data}
}

// NewTransferChecked builds a TransferChecked carrying mint and decimals
func NewTransferChecked(source, mint, destination, authority ledger.PublicKey, amount uint64, decimals uint8, extra ...ledger.PublicKey) ledger.Instruction {
	data := make([]byte, 10)
	data[0] = TagTransferChecked
	binary.LittleEndian.PutUint64(data[1:9], amount)
	data[9] = decimals

	accounts := []ledger.AccountMeta{
		ledger.Meta(source, false, true),
		ledger.Meta(mint, false, false),
		ledger.Meta(destination, false, true),
		ledger.Meta(authority, true, false),
	}
	for _, pk := range extra {
		accounts = append(accounts, ledger.Meta(pk, false, false))
	}
	return ledger.Instruction{ProgramID: ProgramID, Accounts: accounts, Data: data}
}

// DecodeTransfer recognises Transfer and TransferChecked. Anything else,
// including the wrong program or short data, is ErrUnsupportedInstruction.
func DecodeTransfer(ix ledger.Instruction) (TransferData, error) {
	if ix.ProgramID != ProgramID {
		return TransferData{}, fmt.Errorf("%w: program %s", ErrUnsupportedInstruction, ix.ProgramID)
	}
	if len(ix.Data) == 0 {
		return TransferData{}, fmt.Errorf("%w: empty data", ErrUnsupportedInstruction)
	}

	switch tag := ix.Data[0]; tag {
	case TagTransfer:
		if len(ix.Data) < 9 || len(ix.Accounts) < 3 {
			return TransferData{}, fmt.Errorf("%w: short Transfer", ErrUnsupportedInstruction)
		}
		return TransferData{
			Variant:     VariantTransfer,
			Source:      ix.Accounts[0].PublicKey,
			Destination: ix.Accounts[1].PublicKey,
			Authority:   ix.Accounts[2].PublicKey,
			Amount:      binary.LittleEndian.Uint64(ix.Data[1:9]),
			Trailing:    ix.Accounts[3:],
		}, nil

	case TagTransferChecked:
		if len(ix.Data) < 10 || len(ix.Accounts) < 4 {
			return TransferData{}, fmt.Errorf("%w: short TransferChecked", ErrUnsupportedInstruction)
		}
		mint := ix.Accounts[1].PublicKey
		return TransferData{
			Variant:     VariantTransferChecked,
			Source:      ix.Accounts[0].PublicKey,
			Mint:        &mint,
			Destination: ix.Accounts[2].PublicKey,
			Authority:   ix.Accounts[3].PublicKey,
			Amount:      binary.LittleEndian.Uint64(ix.Data[1:9]),
			Decimals:    ix.Data[9],
			Trailing:    ix.Accounts[4:],
		}, nil

	default:
		return TransferData{}, fmt.Errorf("%w: tag %d", ErrUnsupportedInstruction, tag)
	}
}
