package store

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github/hdforge/go-wallet/internal/types"
)

// ToTypes converts Account to its API representation
func (a *Account) ToTypes() *types.Account {
	id := strfmt.UUID(a.ID)
	email := strfmt.Email(a.Email)
	createdAt := strfmt.DateTime(a.CreatedAt)

	return &types.Account{
		ID:        &id,
		Email:     &email,
		CreatedAt: &createdAt,
	}
}

// ToTypes converts WalletRecord to its API representation
func (r *WalletRecord) ToTypes() *types.WalletRecord {
	id := strfmt.UUID(r.ID)
	createdAt := strfmt.DateTime(r.CreatedAt)

	return &types.WalletRecord{
		ID:        &id,
		CreatedAt: &createdAt,
		DerivedWallet: types.DerivedWallet{
			LocalID:       swag.String(r.LocalID),
			Chain:         swag.String(r.Chain.Short()),
			AccountIndex:  swag.Int64(int64(r.AccountIndex)),
			Path:          swag.String(r.Path),
			PublicAddress: swag.String(r.PublicAddress),
			PrivateKey:    swag.String(r.PrivateKey.Reveal()),
		},
	}
}

// ToWalletListResponse converts saved wallets to the list response
func ToWalletListResponse(records []*WalletRecord) *types.GetWalletListResponse {
	items := make([]*types.WalletRecord, 0, len(records))
	for _, r := range records {
		items = append(items, r.ToTypes())
	}

	return &types.GetWalletListResponse{
		Wallets: items,
	}
}
