package chain

import (
	"strings"

	"github.com/pkg/errors"
)

// Chain identifies a supported blockchain
type Chain int

const (
	// Ethereum uses secp256k1 keys and EIP-55 hex addresses
	Ethereum Chain = iota + 1
	// Solana uses ed25519 keys and base58 addresses
	Solana
)

// BIP44 coin types, see SLIP-0044
const (
	CoinTypeEthereum uint32 = 60
	CoinTypeSolana   uint32 = 501
)

// ErrUnknownChain is returned when a chain name cannot be parsed.
var ErrUnknownChain = errors.New("unknown chain")

// All lists the supported chains in display order
func All() []Chain {
	return []Chain{Ethereum, Solana}
}

// Parse resolves a chain from its short name ("eth", "sol") or full name
func Parse(name string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eth", "ethereum":
		return Ethereum, nil
	case "sol", "solana":
		return Solana, nil
	default:
		return 0, errors.Wrapf(ErrUnknownChain, "%q", name)
	}
}

// Valid reports whether c is one of the supported chains
func (c Chain) Valid() bool {
	return c == Ethereum || c == Solana
}

// CoinType returns the registered BIP44 coin type
func (c Chain) CoinType() uint32 {
	switch c {
	case Ethereum:
		return CoinTypeEthereum
	case Solana:
		return CoinTypeSolana
	default:
		panic("chain: coin type of unsupported chain " + c.String())
	}
}

// Short returns the short identifier used in local ids ("eth", "sol")
func (c Chain) Short() string {
	switch c {
	case Ethereum:
		return "eth"
	case Solana:
		return "sol"
	default:
		return "unknown"
	}
}

// String returns the full lower-case chain name
func (c Chain) String() string {
	switch c {
	case Ethereum:
		return "ethereum"
	case Solana:
		return "solana"
	default:
		return "unknown"
	}
}

// MarshalText encodes the chain by its full name
func (c Chain) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrUnknownChain, "%d", int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText accepts any name understood by Parse
func (c *Chain) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
