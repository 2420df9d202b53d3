package wallet

import (
	"fmt"

	"github/hdforge/go-wallet/internal/wallet/address"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

// localIDSuffixLen is the number of trailing address characters in a LocalID
const localIDSuffixLen = 4

// DerivedWallet is one key pair derived from the session mnemonic
type DerivedWallet struct {
	LocalID       string
	Chain         chain.Chain
	AccountIndex  uint32
	Path          string
	PublicAddress string
	PrivateKey    address.Secret
}

// NewLocalID builds the deterministic local id "<chain>-<address suffix>-<index>"
func NewLocalID(c chain.Chain, publicAddress string, accountIndex uint32) string {
	suffix := publicAddress
	if len(suffix) > localIDSuffixLen {
		suffix = suffix[len(suffix)-localIDSuffixLen:]
	}

	return fmt.Sprintf("%s-%s-%d", c.Short(), suffix, accountIndex)
}

// Clone returns a deep copy, including the private key material
func (w *DerivedWallet) Clone() *DerivedWallet {
	clone := *w
	clone.PrivateKey = w.PrivateKey.Clone()
	return &clone
}

// Zero wipes the private key material
func (w *DerivedWallet) Zero() {
	w.PrivateKey.Zero()
}

func cloneWallets(wallets []*DerivedWallet) []*DerivedWallet {
	out := make([]*DerivedWallet, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, w.Clone())
	}
	return out
}

func zeroWallets(wallets []*DerivedWallet) {
	for _, w := range wallets {
		w.Zero()
	}
}
