package wallet

import (
	"github.com/go-openapi/swag"
	"github/hdforge/go-wallet/internal/types"
)

// ToTypes converts DerivedWallet to its API representation
func (w *DerivedWallet) ToTypes() *types.DerivedWallet {
	return &types.DerivedWallet{
		LocalID:       swag.String(w.LocalID),
		Chain:         swag.String(w.Chain.Short()),
		AccountIndex:  swag.Int64(int64(w.AccountIndex)),
		Path:          swag.String(w.Path),
		PublicAddress: swag.String(w.PublicAddress),
		PrivateKey:    swag.String(w.PrivateKey.Reveal()),
	}
}

// ToTypes converts the snapshot to its API representation
func (snap *Snapshot) ToTypes() *types.Session {
	items := make([]*types.DerivedWallet, 0, len(snap.Wallets))
	for _, w := range snap.Wallets {
		items = append(items, w.ToTypes())
	}

	return &types.Session{
		State:    swag.String(snap.State.String()),
		Chain:    swag.String(snap.Chain.Short()),
		Mnemonic: snap.Mnemonic,
		Wallets:  items,
	}
}
