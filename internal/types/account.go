package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

const minPasswordLength = 8

// PostRegisterPayload post register payload
type PostRegisterPayload struct {

	// Email address of the new account
	// Required: true
	Email *strfmt.Email `json:"email"`

	// Password of the new account
	// Required: true
	// Min Length: 8
	Password *string `json:"password"`
}

// Validate validates this post register payload
func (m *PostRegisterPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("email", m.Email); err != nil {
		res = append(res, err)
	} else if !strfmt.IsEmail(m.Email.String()) {
		res = append(res, errors.InvalidType("email", "body", "email", m.Email.String()))
	}

	if err := required("password", m.Password); err != nil {
		res = append(res, err)
	} else if len(swag.StringValue(m.Password)) < minPasswordLength {
		res = append(res, errors.TooShort("password", "body", minPasswordLength, swag.StringValue(m.Password)))
	}

	return composite(res)
}

// Account account
type Account struct {

	// ID of the account
	// Required: true
	ID *strfmt.UUID `json:"id"`

	// Email address of the account
	// Required: true
	Email *strfmt.Email `json:"email"`

	// Creation time
	// Required: true
	CreatedAt *strfmt.DateTime `json:"created_at"`
}

// Validate validates this account
func (m *Account) Validate(_ strfmt.Registry) error {
	var res []error

	if err := required("id", m.ID); err != nil {
		res = append(res, err)
	}

	if err := required("email", m.Email); err != nil {
		res = append(res, err)
	}

	if err := required("created_at", m.CreatedAt); err != nil {
		res = append(res, err)
	}

	return composite(res)
}
