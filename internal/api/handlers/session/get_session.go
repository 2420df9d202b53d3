package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/util"
)

func GetSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Session.GET("", getSessionHandler(s))
}

func getSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := userSession(c, s.Sessions)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, sess.Snapshot().ToTypes())
	}
}
