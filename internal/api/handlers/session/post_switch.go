package session

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/types"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

func PostSwitchRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Session.POST("/switch", postSwitchHandler(s))
}

func postSwitchHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostChainPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		selected, err := chain.Parse(swag.StringValue(body.Chain))
		if err != nil {
			return err
		}

		sess, err := userSession(c, s.Sessions)
		if err != nil {
			return err
		}

		snap, err := sess.SwitchChainSnapshot(selected)
		if err != nil {
			log.Debug().Err(err).Str("chain", selected.String()).Msg("Failed to switch chain")
			return err
		}

		s.Metrics.WalletsDerived(selected, len(snap.Wallets))
		s.Notifier.Notify(ctx, api.NotificationChainSwitched, "Switched to "+selected.String())

		return util.ValidateAndReturn(c, http.StatusOK, snap.ToTypes())
	}
}
