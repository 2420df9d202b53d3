package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

// PublicHTTPErrorType is the machine readable type of a PublicHTTPError
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric                  PublicHTTPErrorType = "generic"
	PublicHTTPErrorTypeNOMNEMONIC               PublicHTTPErrorType = "NO_MNEMONIC"
	PublicHTTPErrorTypeINVALIDMNEMONIC          PublicHTTPErrorType = "INVALID_MNEMONIC"
	PublicHTTPErrorTypeUNKNOWNCHAIN             PublicHTTPErrorType = "UNKNOWN_CHAIN"
	PublicHTTPErrorTypeWALLETNOTFOUND           PublicHTTPErrorType = "WALLET_NOT_FOUND"
	PublicHTTPErrorTypeWALLETLIMIT              PublicHTTPErrorType = "WALLET_LIMIT"
	PublicHTTPErrorTypeACCOUNTEXISTS            PublicHTTPErrorType = "ACCOUNT_EXISTS"
	PublicHTTPErrorTypeENTROPYSOURCEUNAVAILABLE PublicHTTPErrorType = "ENTROPY_SOURCE_UNAVAILABLE"
	PublicHTTPErrorTypeDERIVATIONFAILED         PublicHTTPErrorType = "DERIVATION_FAILED"
)

// PublicHTTPError public HTTP error
type PublicHTTPError struct {

	// HTTP status code returned for the error
	// Required: true
	Code *int64 `json:"status"`

	// More detailed, human-readable, optional explanation of the error
	Detail string `json:"detail,omitempty"`

	// Short, human-readable description of the error
	// Required: true
	Title *string `json:"title"`

	// Type of error returned, should be used for client-side error handling
	// Required: true
	Type *PublicHTTPErrorType `json:"type"`
}

// Validate validates this public HTTP error
func (m *PublicHTTPError) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("status", m.Code); err != nil {
		res = append(res, err)
	}

	if err := required("title", m.Title); err != nil {
		res = append(res, err)
	}

	if err := required("type", m.Type); err != nil {
		res = append(res, err)
	}

	return composite(res)
}

// MarshalBinary interface implementation
func (m *PublicHTTPError) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PublicHTTPError) UnmarshalBinary(b []byte) error {
	var res PublicHTTPError
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// NewPublicHTTPErrorType returns a pointer to t
func NewPublicHTTPErrorType(t PublicHTTPErrorType) *PublicHTTPErrorType {
	return &t
}
