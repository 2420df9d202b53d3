package address

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// deriveEthereum renders a secp256k1 private scalar as an EIP-55 address and hex private key
func deriveEthereum(privateKey []byte) (*KeyPair, error) {
	// Convert to ECDSA private key
	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "failed to convert to ECDSA private key: %v", err)
	}

	defer ecdsaPrivateKey.D.SetInt64(0)

	// Keccak-256 of the uncompressed public key, lower 20 bytes, mixed-case checksum
	address := crypto.PubkeyToAddress(ecdsaPrivateKey.PublicKey)

	return &KeyPair{
		PublicAddress: address.Hex(),
		PrivateKey:    NewSecret(hexutil.Encode(privateKey)),
	}, nil
}
