package ledger

import (
	"crypto/sha256"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	MaxSeedLength = 32
	MaxSeeds      = 16
)

const programAddressMarker = "ProgramDerivedAddress"

// IsOnCurve reports whether pk decodes to a point on the ed25519 curve
func IsOnCurve(pk PublicKey) bool {
	_, err := new(edwards25519.Point).SetBytes(pk[:])
	return err == nil
}

// CreateProgramAddress hashes seeds under programID. The result must be off
// curve so that no private key can sign for it.
func CreateProgramAddress(seeds [][]byte, programID PublicKey) (PublicKey, error) {
	if len(seeds) > MaxSeeds {
		return PublicKey{}, fmt.Errorf("%w: %d seeds", ErrSeedTooLong, len(seeds))
	}

	h := sha256.New()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return PublicKey{}, fmt.Errorf("%w: %d bytes", ErrSeedTooLong, len(s))
		}
		h.Write(s)
	}
	h.Write(programID[:])
	h.Write([]byte(programAddressMarker))

	var pk PublicKey
	copy(pk[:], h.Sum(nil))
	if IsOnCurve(pk) {
		return PublicKey{}, ErrNoViableProgramAddress
	}
	return pk, nil
}

// FindProgramAddress searches bump seeds from 255 down for the first off
// curve address
func FindProgramAddress(seeds [][]byte, programID PublicKey) (PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		pk, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return pk, uint8(bump), nil
		}
		if err != ErrNoViableProgramAddress {
			return PublicKey{}, 0, err
		}
	}
	return PublicKey{}, 0, ErrNoViableProgramAddress
}
