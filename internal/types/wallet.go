package types

import (
	"github.com/go-openapi/strfmt"
)

// PostSaveWalletPayload saves a session wallet
type PostSaveWalletPayload struct {

	// Local ID of the session wallet
	// Required: true
	LocalID *string `json:"local_id"`
}

// Validate validates this post save wallet payload
func (m *PostSaveWalletPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("local_id", m.LocalID); err != nil {
		res = append(res, err)
	}

	return composite(res)
}

// WalletRecord a saved wallet
type WalletRecord struct {
	DerivedWallet

	// ID of the record
	// Required: true
	ID *strfmt.UUID `json:"id"`

	// Time the wallet was saved
	// Required: true
	CreatedAt *strfmt.DateTime `json:"created_at"`
}

// Validate validates this wallet record
func (m *WalletRecord) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.DerivedWallet.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := required("id", m.ID); err != nil {
		res = append(res, err)
	}

	if err := required("created_at", m.CreatedAt); err != nil {
		res = append(res, err)
	}

	return composite(res)
}

// GetWalletListResponse saved wallets of the authenticated user
type GetWalletListResponse struct {

	// Saved wallets ordered by creation time
	// Required: true
	Wallets []*WalletRecord `json:"wallets"`
}

// Validate validates this get wallet list response
func (m *GetWalletListResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if m.Wallets == nil {
		res = append(res, required[[]*WalletRecord]("wallets", nil))
	}

	for _, w := range m.Wallets {
		if w == nil {
			continue
		}
		if err := w.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	return composite(res)
}
