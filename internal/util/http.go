package util

import (
	"context"
	"fmt"
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/api/httperrors"
	"github/hdforge/go-wallet/internal/types"
)

// Validatable is implemented by all payload and response types
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the request body to v and validates it
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("unsupported echo binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.ErrBadRequestInvalidPayload.Wrap(err)
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates a response payload before sending it as JSON.
// Invalid responses are a server-side bug and yield a 500.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response failed validation")
		return errors.Wrap(err, "response failed validation")
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromEchoContext(c).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema, returning HTTP validation error")

			valErrs := formatValidationErrors(c.Request().Context(), compositeError)

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), valErrs)
		}

		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
		return httperrors.ErrBadRequestInvalidPayload.Wrap(err)
	}

	return nil
}

func formatValidationErrors(ctx context.Context, err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))
	for _, e := range err.Errors {
		switch ee := e.(type) { //nolint:errorlint // the composite only holds these two types
		case *oerrors.Validation:
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String(ee.Name),
				In:    swag.String(ee.In),
				Error: swag.String(ee.Error()),
			})
		case *oerrors.CompositeError:
			valErrs = append(valErrs, formatValidationErrors(ctx, ee)...)
		default:
			LogFromContext(ctx).Warn().Err(e).Str("err_type", fmt.Sprintf("%T", e)).Msg("Received unknown error type while validating payload, skipping")
		}
	}

	return valErrs
}
