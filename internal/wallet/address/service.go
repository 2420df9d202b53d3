package address

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

const privateKeySize = 32

type service struct{}

// NewService creates a new AddressService
//
//nolint:ireturn
func NewService() Service {
	return &service{}
}

// DeriveKey derives the key pair at path from seed for chain c
func (s *service) DeriveKey(seed []byte, c chain.Chain, path string) (*KeyPair, error) {
	return DeriveKey(seed, c, path)
}

// DeriveKey derives the key pair at path from seed for chain c
func DeriveKey(seedBytes []byte, c chain.Chain, path string) (*KeyPair, error) {
	privateKey, err := DerivePrivateKey(seedBytes, path)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer seed.Zero(privateKey)

	switch c {
	case chain.Ethereum:
		return deriveEthereum(privateKey)
	case chain.Solana:
		return deriveSolana(privateKey)
	default:
		return nil, errors.Wrapf(ErrDerivation, "unsupported chain %s", c)
	}
}

// DerivePrivateKey walks the BIP32 tree of seed along path and returns the 32-byte private scalar
// WARNING: Caller must clear the private key after use
func DerivePrivateKey(seedBytes []byte, path string) ([]byte, error) {
	if len(seedBytes) != seed.Size {
		return nil, errors.Wrapf(ErrDerivation, "seed must be %d bytes, got %d", seed.Size, len(seedBytes))
	}

	indices, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	// Create master key from seed
	masterKey, err := bip32.NewMasterKey(seedBytes)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "failed to create master key: %v", err)
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(ErrDerivation, "failed to derive child key at index %d: %v", index, err)
		}
	}

	return privateKeyBytes(key), nil
}

// parsePath parses an absolute BIP32 path such as "m/44'/60'/0'/0/0".
// Relative paths are rejected because go-ethereum would silently root them at m/44'/60'/0'/0.
func parsePath(path string) (accounts.DerivationPath, error) {
	if !strings.HasPrefix(path, "m/") {
		return nil, errors.Wrapf(ErrDerivation, "invalid derivation path %q", path)
	}

	indices, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "invalid derivation path %q: %v", path, err)
	}

	return indices, nil
}

// privateKeyBytes returns a left-padded 32-byte copy of the key's private scalar
func privateKeyBytes(key *bip32.Key) []byte {
	raw := key.Key
	if len(raw) == privateKeySize+1 && raw[0] == 0 {
		raw = raw[1:]
	}

	out := make([]byte, privateKeySize)
	copy(out[privateKeySize-len(raw):], raw)
	return out
}
