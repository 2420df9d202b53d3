package types

import (
	"github.com/go-openapi/errors"
)

// required reports a missing body property
func required[T any](name string, value *T) error {
	if value == nil {
		return errors.Required(name, "body", nil)
	}
	return nil
}

func composite(res []error) error {
	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
