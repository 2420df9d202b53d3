package auth

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/types"
	"github/hdforge/go-wallet/internal/util"
)

func PostRegisterRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Auth.POST("/register", postRegisterHandler(s))
}

func postRegisterHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostRegisterPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, err := s.Store.CreateAccount(ctx, body.Email.String(), swag.StringValue(body.Password))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to register account")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, account.ToTypes())
	}
}
