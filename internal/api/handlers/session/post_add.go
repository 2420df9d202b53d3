package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/util"
)

func PostAddRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Session.POST("/add", postAddHandler(s))
}

func postAddHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		sess, err := userSession(c, s.Sessions)
		if err != nil {
			return err
		}

		snap, err := sess.AddNextSnapshot()
		if err != nil {
			log.Debug().Err(err).Msg("Failed to add wallet")
			return err
		}

		added := snap.Wallets[len(snap.Wallets)-1]
		s.Metrics.WalletsDerived(added.Chain, 1)
		s.Notifier.Notify(ctx, api.NotificationWalletAdded, "Wallet "+added.LocalID+" added")

		return util.ValidateAndReturn(c, http.StatusOK, snap.ToTypes())
	}
}
