package generate

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/keystore"
	"github/hdforge/go-wallet/internal/wallet/mnemonic"
)

//nolint:dupword // BIP39 reference vector
const referenceMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func zeroGenerator() mnemonic.Generator {
	return mnemonic.NewGenerator(bytes.NewReader(make([]byte, mnemonic.EntropyBits/8)))
}

func testConfig(t *testing.T) config.Server {
	t.Helper()

	cfg := config.Server{}
	cfg.Wallet.DefaultChain = "eth"
	cfg.Keystore.ScryptN = 4096
	cfg.Keystore.ScryptP = 6

	return cfg
}

func noPassword(t *testing.T) func(string, bool) (string, error) {
	t.Helper()

	return func(string, bool) (string, error) {
		t.Fatal("password must not be requested")
		return "", nil
	}
}

func TestRunDefaultChain(t *testing.T) {
	var out bytes.Buffer
	err := run(t.Context(), &out, testConfig(t), options{count: 3}, zeroGenerator(), noPassword(t))
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Mnemonic: "+referenceMnemonic)
	assert.Contains(t, s, "Chain:    ethereum")
	assert.Contains(t, s, "eth-da94-0")
	assert.Contains(t, s, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	assert.Contains(t, s, "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727")
	assert.Contains(t, s, "m/44'/60'/2'/0/0")
	assert.NotContains(t, s, "m/44'/60'/3'/0/0")
}

func TestRunSwitch(t *testing.T) {
	var out bytes.Buffer
	err := run(t.Context(), &out, testConfig(t), options{chain: "eth", count: 2, switchTo: "sol"}, zeroGenerator(), noPassword(t))
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Chain:    solana")
	assert.Contains(t, s, "4nFZgXtZAEwbfA56LRVRdsDGNeW3U55gr5hL9c5E5de5")
	assert.Contains(t, s, "Byn1r5YDX6GsDfYmXu1fbWZAXZaPRiPLHwWry8wg45FB")
	assert.Contains(t, s, "sol-5de5-0")
	assert.NotContains(t, s, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
}

func TestRunInvalidOptions(t *testing.T) {
	var out bytes.Buffer

	err := run(t.Context(), &out, testConfig(t), options{chain: "btc", count: 1}, zeroGenerator(), noPassword(t))
	require.ErrorIs(t, err, chain.ErrUnknownChain)

	err = run(t.Context(), &out, testConfig(t), options{count: 1, switchTo: "doge"}, zeroGenerator(), noPassword(t))
	require.ErrorIs(t, err, chain.ErrUnknownChain)

	err = run(t.Context(), &out, testConfig(t), options{count: 0}, zeroGenerator(), noPassword(t))
	require.Error(t, err)

	assert.Empty(t, out.String())
}

func TestRunBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "keystore.json")

	var prompted bool
	readPassword := func(_ string, confirm bool) (string, error) {
		prompted = true
		assert.True(t, confirm)
		return "backup password", nil
	}

	var out bytes.Buffer
	err := run(t.Context(), &out, testConfig(t), options{count: 1, backup: path}, zeroGenerator(), readPassword)
	require.NoError(t, err)
	assert.True(t, prompted)

	ks, err := keystore.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", ks.Address)
	assert.Equal(t, 4096, ks.Crypto.KDFParams.N)

	phrase, err := keystore.Decrypt(ks, "backup password")
	require.NoError(t, err)
	assert.Equal(t, referenceMnemonic, phrase)

	// an existing backup is never overwritten
	err = run(t.Context(), &out, testConfig(t), options{count: 1, backup: path}, zeroGenerator(), readPassword)
	require.ErrorIs(t, err, keystore.ErrKeystoreExists)
}
