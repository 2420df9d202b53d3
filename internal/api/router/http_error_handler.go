package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/api/httperrors"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/types"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/address"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/mnemonic"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// domainErrors maps sentinel errors of the service packages to their HTTP representation
var domainErrors = []struct {
	target error
	err    *httperrors.HTTPError
}{
	{wallet.ErrNoMnemonic, httperrors.ErrConflictNoMnemonic},
	{wallet.ErrWalletNotFound, httperrors.ErrNotFoundWallet},
	{wallet.ErrWalletLimit, httperrors.ErrConflictWalletLimit},
	{chain.ErrUnknownChain, httperrors.ErrBadRequestUnknownChain},
	{seed.ErrInvalidMnemonic, httperrors.ErrBadRequestInvalidMnemonic},
	{mnemonic.ErrEntropySourceUnavailable, httperrors.ErrInternalEntropyUnavailable},
	{address.ErrDerivation, httperrors.ErrInternalDerivationFailed},
	{store.ErrNotFound, httperrors.ErrNotFoundWallet},
	{store.ErrAccountExists, httperrors.ErrConflictAccountExists},
	{store.ErrInvalidCredentials, httperrors.ErrUnauthorized},
}

// HTTPErrorHandlerWithConfig renders errors returned by handlers as PublicHTTPError JSON
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var code int64
		var resp interface{}

		var httpError *httperrors.HTTPError
		var httpValidationError *httperrors.HTTPValidationError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = *httpError.Code
			resp = httpError

			if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				if len(httpError.Detail) > 0 {
					tmp := *httpError
					tmp.Detail = ""
					resp = &tmp
				}
			}

		case errors.As(err, &httpValidationError):
			code = *httpValidationError.Code
			resp = httpValidationError

		case errors.As(err, &echoHTTPError):
			code = int64(echoHTTPError.Code)
			resp = httperrors.NewFromEcho(echoHTTPError)

		default:
			mapped := mapDomainError(err)
			if mapped == nil {
				mapped = httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
				if !config.HideInternalServerErrorDetails {
					mapped.Detail = err.Error()
				}
			}

			code = *mapped.Code
			resp = mapped
		}

		log := util.LogFromEchoContext(c)
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int64("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int64("status", code).Msg("Request failed")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(int(code))
		} else {
			err = c.JSON(int(code), resp)
		}
		if err != nil {
			log.Warn().Err(err).Msg("Failed to handle HTTP error")
		}
	}
}

func mapDomainError(err error) *httperrors.HTTPError {
	for _, de := range domainErrors {
		if errors.Is(err, de.target) {
			return de.err.Wrap(err)
		}
	}

	return nil
}
