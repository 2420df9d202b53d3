package wallets

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/util"
)

func GetWalletListRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallets.GET("", getWalletListHandler(s))
}

func getWalletListHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		user := auth.UserFromContext(ctx)
		if user == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		records, err := s.Store.ListWallets(ctx, user.ID)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to list wallets")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, store.ToWalletListResponse(records))
	}
}
