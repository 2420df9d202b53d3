package wallets

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/util"
)

func DeleteWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallets.DELETE("/:id", deleteWalletHandler(s))
}

func deleteWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		user := auth.UserFromContext(ctx)
		if user == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		id := c.Param("id")
		if err := s.Store.DeleteWallet(ctx, user.ID, id); err != nil {
			log.Debug().Err(err).Str("wallet_id", id).Msg("Failed to delete wallet")
			return err
		}

		s.Notifier.Notify(ctx, api.NotificationWalletDeleted, "Wallet "+id+" deleted")

		return c.NoContent(http.StatusNoContent)
	}
}
