package address

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// deriveSolana uses the secp256k1 BIP32 private scalar at the Solana path as an ed25519 seed.
// This is not SLIP-0010. Addresses issued so far depend on exactly this byte reuse.
func deriveSolana(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != ed25519.SeedSize {
		return nil, errors.Wrapf(ErrDerivation, "ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(privateKey))
	}

	// ed25519 private key is seed||public, which is the Solana secret key layout
	keypair := ed25519.NewKeyFromSeed(privateKey)
	defer func() {
		for i := range keypair {
			keypair[i] = 0
		}
	}()

	publicKey, ok := keypair.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.Wrap(ErrDerivation, "failed to cast public key to ed25519")
	}

	return &KeyPair{
		PublicAddress: base58.Encode(publicKey),
		PrivateKey:    NewSecret(base58.Encode(keypair)),
	}, nil
}
