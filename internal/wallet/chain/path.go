package chain

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// PurposeBIP44 is the purpose segment of every derivation path
const PurposeBIP44 uint32 = 44

// PathFor returns the BIP44 derivation path of accountIndex on chain c.
//
//	Ethereum: m/44'/60'/{index}'/0/0   (non-hardened change and address leaves)
//	Solana:   m/44'/501'/{index}'/0'   (fully hardened)
//
// The hardening pattern is part of the derivation result, so it must not change.
// An index that cannot be hardened or an unsupported chain is a programming error and panics.
func PathFor(c Chain, accountIndex uint32) string {
	if accountIndex >= bip32.FirstHardenedChild {
		panic(fmt.Sprintf("chain: account index %d out of range", accountIndex))
	}

	switch c {
	case Ethereum:
		return fmt.Sprintf("m/%d'/%d'/%d'/0/0", PurposeBIP44, c.CoinType(), accountIndex)
	case Solana:
		return fmt.Sprintf("m/%d'/%d'/%d'/0'", PurposeBIP44, c.CoinType(), accountIndex)
	default:
		panic("chain: no derivation path for unsupported chain " + c.String())
	}
}
