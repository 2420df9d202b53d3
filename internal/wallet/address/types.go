package address

import (
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

// ErrDerivation is returned for a malformed derivation path, a seed of the wrong length
// or a chain the deriver cannot handle. It indicates a caller defect, not a transient failure.
var ErrDerivation = errors.New("derivation error")

// Service provides key derivation functionality
type Service interface {
	// DeriveKey derives the key pair at path from seed and renders it for chain c.
	// The result is a pure function of its inputs.
	DeriveKey(seed []byte, c chain.Chain, path string) (*KeyPair, error)
}

// KeyPair is the chain-specific rendering of a derived key
type KeyPair struct {
	// PublicAddress is the EIP-55 hex address (Ethereum) or base58 public key (Solana)
	PublicAddress string

	// PrivateKey is "0x"-prefixed hex (Ethereum) or base58 of secret||public (Solana)
	PrivateKey Secret
}
