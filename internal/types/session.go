package types

import (
	"github.com/go-openapi/strfmt"
)

// PostChainPayload selects a chain by name ("eth", "sol", "ethereum", "solana")
type PostChainPayload struct {

	// Chain name
	// Required: true
	Chain *string `json:"chain"`
}

// Validate validates this post chain payload
func (m *PostChainPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("chain", m.Chain); err != nil {
		res = append(res, err)
	}

	return composite(res)
}

// DerivedWallet a wallet derived in the current session
type DerivedWallet struct {

	// Account index in the derivation path
	// Required: true
	AccountIndex *int64 `json:"account_index"`

	// Chain name
	// Required: true
	Chain *string `json:"chain"`

	// Local ID, unique within the session
	// Required: true
	LocalID *string `json:"local_id"`

	// BIP44 derivation path
	// Required: true
	Path *string `json:"path"`

	// Encoded private key (0x hex for ethereum, base58 keypair for solana)
	// Required: true
	PrivateKey *string `json:"private_key"`

	// Public address
	// Required: true
	PublicAddress *string `json:"public_address"`
}

// Validate validates this derived wallet
func (m *DerivedWallet) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("account_index", m.AccountIndex); err != nil {
		res = append(res, err)
	}

	if err := required("chain", m.Chain); err != nil {
		res = append(res, err)
	}

	if err := required("local_id", m.LocalID); err != nil {
		res = append(res, err)
	}

	if err := required("path", m.Path); err != nil {
		res = append(res, err)
	}

	if err := required("private_key", m.PrivateKey); err != nil {
		res = append(res, err)
	}

	if err := required("public_address", m.PublicAddress); err != nil {
		res = append(res, err)
	}

	return composite(res)
}

// Session derivation session of the authenticated user
type Session struct {

	// Selected chain
	// Required: true
	Chain *string `json:"chain"`

	// Mnemonic held by the session, omitted while the session is empty
	Mnemonic string `json:"mnemonic,omitempty"`

	// Session state ("empty" or "active")
	// Required: true
	State *string `json:"state"`

	// Derived wallets in account index order
	// Required: true
	Wallets []*DerivedWallet `json:"wallets"`
}

// Validate validates this session
func (m *Session) Validate(formats strfmt.Registry) error {
	var res []error

	if err := required("chain", m.Chain); err != nil {
		res = append(res, err)
	}

	if err := required("state", m.State); err != nil {
		res = append(res, err)
	}

	if m.Wallets == nil {
		res = append(res, required[[]*DerivedWallet]("wallets", nil))
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
