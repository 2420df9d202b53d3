package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/middleware"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/util"
)

func GetMeRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Auth.GET("/me", getMeHandler(s), middleware.BasicAuth(s.Credentials))
}

func getMeHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user := auth.UserFromContext(ctx)
		if user == nil {
			return echo.ErrUnauthorized
		}

		account, err := s.Store.GetAccount(ctx, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return echo.ErrUnauthorized
			}
			util.LogFromContext(ctx).Error().Err(err).Str("account_id", user.ID).Msg("Failed to load account")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, account.ToTypes())
	}
}
