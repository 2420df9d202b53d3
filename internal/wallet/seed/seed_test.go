package seed_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

//nolint:dupword // BIP39 reference vector
const (
	referenceMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	referenceSeedHex  = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	// BIP39 test vector with passphrase "TREZOR"
	trezorSeedHex = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
)

func TestToSeed(t *testing.T) {
	s, err := seed.ToSeed(referenceMnemonic, "")
	require.NoError(t, err)

	assert.Len(t, s, seed.Size)
	assert.Equal(t, referenceSeedHex, hex.EncodeToString(s))
}

func TestToSeedPassphrase(t *testing.T) {
	s, err := seed.ToSeed(referenceMnemonic, "TREZOR")
	require.NoError(t, err)
	assert.Equal(t, trezorSeedHex, hex.EncodeToString(s))
}

func TestToSeedDeterministic(t *testing.T) {
	a, err := seed.ToSeed(referenceMnemonic, "")
	require.NoError(t, err)
	b, err := seed.ToSeed(referenceMnemonic, "")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestToSeedInvalidMnemonic(t *testing.T) {
	for _, phrase := range []string{
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon above",
		"not a mnemonic",
		"",
	} {
		s, err := seed.ToSeed(phrase, "")
		require.Error(t, err, phrase)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, seed.ErrInvalidMnemonic)
	}
}

func TestManager(t *testing.T) {
	m := seed.NewManager()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())

	require.NoError(t, m.Initialize(referenceMnemonic, ""))
	assert.True(t, m.IsInitialized())

	s := m.GetSeed()
	assert.Equal(t, referenceSeedHex, hex.EncodeToString(s))

	// returned seed is a copy
	seed.Zero(s)
	assert.Equal(t, referenceSeedHex, hex.EncodeToString(m.GetSeed()))

	m.Clear()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())
}

func TestManagerInitializeInvalidClears(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, m.Initialize(referenceMnemonic, ""))

	err := m.Initialize("abandon abandon abandon", "")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	seed.Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	seed.Zero(nil)
}
