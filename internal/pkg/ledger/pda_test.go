package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOnCurve(t *testing.T) {
	priv, err := NewKeypair()
	require.NoError(t, err)
	assert.True(t, IsOnCurve(PublicKeyOf(priv)))
}

func TestFindProgramAddress(t *testing.T) {
	program := MustPublicKey("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	owner := mustReference(t)
	seeds := [][]byte{owner[:], []byte("settlement")}

	addr, bump, err := FindProgramAddress(seeds, program)
	require.NoError(t, err)
	assert.False(t, IsOnCurve(addr))

	again, againBump, err := FindProgramAddress(seeds, program)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, bump, againBump)

	direct, err := CreateProgramAddress(append(seeds, []byte{bump}), program)
	require.NoError(t, err)
	assert.Equal(t, addr, direct)

	for b := 255; b > int(bump); b-- {
		_, err := CreateProgramAddress(append(seeds, []byte{byte(b)}), program)
		assert.ErrorIs(t, err, ErrNoViableProgramAddress)
	}
}

func TestCreateProgramAddress_SeedLimits(t *testing.T) {
	program := mustReference(t)

	_, err := CreateProgramAddress([][]byte{make([]byte, MaxSeedLength+1)}, program)
	assert.ErrorIs(t, err, ErrSeedTooLong)

	_, err = CreateProgramAddress(make([][]byte, MaxSeeds+1), program)
	assert.ErrorIs(t, err, ErrSeedTooLong)
}
