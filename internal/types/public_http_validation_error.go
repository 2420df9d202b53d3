package types

import (
	"github.com/go-openapi/strfmt"
)

// HTTPValidationErrorDetail describes one failing payload property
type HTTPValidationErrorDetail struct {

	// Error describing field validation failure
	// Required: true
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	// Required: true
	In *string `json:"in"`

	// Key of field failing validation
	// Required: true
	Key *string `json:"key"`
}

// Validate validates this HTTP validation error detail
func (m *HTTPValidationErrorDetail) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("error", m.Error); err != nil {
		res = append(res, err)
	}

	if err := required("in", m.In); err != nil {
		res = append(res, err)
	}

	if err := required("key", m.Key); err != nil {
		res = append(res, err)
	}

	return composite(res)
}

// PublicHTTPValidationError public HTTP validation error
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of errors received while validating payload against schema
	// Required: true
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public HTTP validation error
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.PublicHTTPError.Validate(formats); err != nil {
		res = append(res, err)
	}

	for _, detail := range m.ValidationErrors {
		if detail == nil {
			continue
		}
		if err := detail.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	return composite(res)
}
