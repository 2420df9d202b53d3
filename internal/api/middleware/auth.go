package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/util"
)

const basicAuthRealm = "hdforge"

// BasicAuth authenticates requests against the account store and attaches the account to the request context
func BasicAuth(authenticator auth.Authenticator) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: basicAuthRealm,
		Validator: func(email string, password string, c echo.Context) (bool, error) {
			ctx := c.Request().Context()

			account, err := authenticator.Authenticate(ctx, email, password)
			if err != nil {
				if errors.Is(err, store.ErrInvalidCredentials) {
					util.LogFromContext(ctx).Debug().Msg("Invalid credentials")
					return false, nil
				}
				return false, err
			}

			c.SetRequest(c.Request().WithContext(auth.WithUser(ctx, account)))

			return true, nil
		},
	})
}
