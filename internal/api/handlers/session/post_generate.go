package session

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/types"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

func PostGenerateRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Session.POST("/generate", postGenerateHandler(s))
}

func postGenerateHandler(s *api.Server) echo.HandlerFunc {
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

		phrase, wallets, err := sess.GenerateNew(selected)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to generate mnemonic")
			return err
		}

		s.Metrics.SessionGenerated(selected)
		s.Metrics.WalletsDerived(selected, len(wallets))
		s.Notifier.Notify(ctx, api.NotificationMnemonicGenerated, "New mnemonic generated")

		return util.ValidateAndReturn(c, http.StatusOK, (&wallet.Snapshot{
			State:    wallet.StateActive,
			Chain:    selected,
			Mnemonic: phrase,
			Wallets:  wallets,
		}).ToTypes())
	}
}
