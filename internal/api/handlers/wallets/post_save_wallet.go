package wallets

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/types"
	"github/hdforge/go-wallet/internal/util"
)

func PostSaveWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallets.POST("", postSaveWalletHandler(s))
}

func postSaveWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		user := auth.UserFromContext(ctx)
		if user == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		var body types.PostSaveWalletPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		w, err := s.Sessions.Get(user.ID).Wallet(swag.StringValue(body.LocalID))
		if err != nil {
			log.Debug().Err(err).Str("local_id", swag.StringValue(body.LocalID)).Msg("Wallet not in session")
			return err
		}
		defer w.Zero()

		record, err := s.Store.SaveWallet(ctx, user.ID, w)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to save wallet")
			return err
		}

		s.Metrics.WalletSaved(record.Chain)
		s.Notifier.Notify(ctx, api.NotificationWalletSaved, "Wallet "+record.LocalID+" saved")

		return util.ValidateAndReturn(c, http.StatusCreated, record.ToTypes())
	}
}
