package address_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/wallet/address"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

//nolint:dupword // BIP39 reference vector
const referenceMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func referenceSeed(t *testing.T) []byte {
	t.Helper()

	s, err := seed.ToSeed(referenceMnemonic, "")
	require.NoError(t, err)
	return s
}

func TestDeriveKeyEthereum(t *testing.T) {
	s := referenceSeed(t)

	kp, err := address.DeriveKey(s, chain.Ethereum, "m/44'/60'/0'/0/0")
	require.NoError(t, err)

	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", kp.PublicAddress)
	assert.Equal(t, "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", kp.PrivateKey.Reveal())
}

func TestDeriveKeyEthereumAccounts(t *testing.T) {
	s := referenceSeed(t)

	want := []string{
		"0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727",
		"0x318470c858f622e48a80120a1fc3c8460d67a7bf31b3273a6d27d4c013f2f8d3",
		"0x4b9aad43cd664b970876f6cf635fe1526819234dec28c4219fc4300a0312de8c",
	}

	for i, privateKey := range want {
		//nolint:gosec // small test index
		kp, err := address.DeriveKey(s, chain.Ethereum, chain.PathFor(chain.Ethereum, uint32(i)))
		require.NoError(t, err)
		assert.Equal(t, privateKey, kp.PrivateKey.Reveal())

		// address must belong to the private key and be EIP-55 checksummed
		key, err := crypto.HexToECDSA(privateKey[2:])
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), kp.PublicAddress)
		assert.Equal(t, common.HexToAddress(kp.PublicAddress).Hex(), kp.PublicAddress)
	}
}

func TestDeriveKeySolana(t *testing.T) {
	s := referenceSeed(t)

	kp, err := address.DeriveKey(s, chain.Solana, "m/44'/501'/0'/0'")
	require.NoError(t, err)

	assert.Equal(t, "4nFZgXtZAEwbfA56LRVRdsDGNeW3U55gr5hL9c5E5de5", kp.PublicAddress)
	assert.Equal(t, "2G1Qq3CrYeXMZry3HELRcdeSzJqYrnmGNBGDXP9obniv5EdJVLNFJgrKUBVPJUD2b4g15cUnxbnnCHx5U83LTSXP", kp.PrivateKey.Reveal())

	// private material is seed||public key
	secret, err := base58.Decode(kp.PrivateKey.Reveal())
	require.NoError(t, err)
	require.Len(t, secret, ed25519.PrivateKeySize)

	pub, err := base58.Decode(kp.PublicAddress)
	require.NoError(t, err)
	assert.Equal(t, pub, secret[ed25519.SeedSize:])
	assert.Equal(t, ed25519.PrivateKey(secret).Public(), ed25519.PublicKey(pub))
}

func TestDeriveKeySolanaAccounts(t *testing.T) {
	s := referenceSeed(t)

	want := []string{
		"4nFZgXtZAEwbfA56LRVRdsDGNeW3U55gr5hL9c5E5de5",
		"Byn1r5YDX6GsDfYmXu1fbWZAXZaPRiPLHwWry8wg45FB",
		"F79RmvTGWZ4Dn6QgaB192D4cuXWPeKoCXRpycyxgk6hR",
	}

	for i, addr := range want {
		//nolint:gosec // small test index
		kp, err := address.DeriveKey(s, chain.Solana, chain.PathFor(chain.Solana, uint32(i)))
		require.NoError(t, err)
		assert.Equal(t, addr, kp.PublicAddress)
	}
}

func TestDeriveKeySolanaReusesScalar(t *testing.T) {
	s := referenceSeed(t)
	path := chain.PathFor(chain.Solana, 3)

	scalar, err := address.DerivePrivateKey(s, path)
	require.NoError(t, err)

	kp, err := address.DeriveKey(s, chain.Solana, path)
	require.NoError(t, err)

	expected := ed25519.NewKeyFromSeed(scalar)
	assert.Equal(t, base58.Encode(expected.Public().(ed25519.PublicKey)), kp.PublicAddress)
	assert.Equal(t, base58.Encode(expected), kp.PrivateKey.Reveal())
}

func TestDeriveKeyDeterministic(t *testing.T) {
	s := referenceSeed(t)

	for _, c := range chain.All() {
		path := chain.PathFor(c, 5)

		a, err := address.DeriveKey(s, c, path)
		require.NoError(t, err)
		b, err := address.DeriveKey(s, c, path)
		require.NoError(t, err)

		assert.Equal(t, a.PublicAddress, b.PublicAddress)
		assert.Equal(t, a.PrivateKey.Reveal(), b.PrivateKey.Reveal())
	}
}

func TestDeriveKeyDistinctIndices(t *testing.T) {
	s := referenceSeed(t)

	for _, c := range chain.All() {
		seen := make(map[string]struct{})
		for i := range uint32(10) {
			kp, err := address.DeriveKey(s, c, chain.PathFor(c, i))
			require.NoError(t, err)

			_, dup := seen[kp.PublicAddress]
			require.False(t, dup, fmt.Sprintf("%s index %d repeats an address", c, i))
			seen[kp.PublicAddress] = struct{}{}
		}
	}
}

func TestDeriveKeyErrors(t *testing.T) {
	s := referenceSeed(t)

	tests := []struct {
		name  string
		seed  []byte
		chain chain.Chain
		path  string
	}{
		{"short seed", s[:32], chain.Ethereum, "m/44'/60'/0'/0/0"},
		{"empty seed", nil, chain.Ethereum, "m/44'/60'/0'/0/0"},
		{"relative path", s, chain.Ethereum, "44'/60'/0'/0/0"},
		{"garbage path", s, chain.Solana, "m/44'/x/0'"},
		{"empty path", s, chain.Solana, ""},
		{"unsupported chain", s, chain.Chain(0), "m/44'/60'/0'/0/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := address.DeriveKey(tt.seed, tt.chain, tt.path)
			require.Error(t, err)
			assert.Nil(t, kp)
			assert.ErrorIs(t, err, address.ErrDerivation)
		})
	}
}

func TestService(t *testing.T) {
	s := referenceSeed(t)

	kp, err := address.NewService().DeriveKey(s, chain.Ethereum, chain.PathFor(chain.Ethereum, 0))
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", kp.PublicAddress)
}

func TestSecretRedacted(t *testing.T) {
	secret := address.NewSecret("0xdeadbeef")

	assert.Equal(t, "0xdeadbeef", secret.Reveal())
	assert.Equal(t, "[REDACTED]", secret.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", secret))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", secret))

	b, err := json.Marshal(struct {
		Key address.Secret `json:"key"`
	}{Key: secret})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"[REDACTED]"}`, string(b))
}

func TestSecretZero(t *testing.T) {
	secret := address.NewSecret(hex.EncodeToString([]byte("key")))
	clone := secret.Clone()

	secret.Zero()
	assert.True(t, secret.IsZero())
	assert.Empty(t, secret.Reveal())

	assert.False(t, clone.IsZero())
	assert.Equal(t, "6b6579", clone.Reveal())
}
