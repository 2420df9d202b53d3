package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/auth"
)

func DeleteSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Session.DELETE("", deleteSessionHandler(s))
}

func deleteSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		user := auth.UserFromContext(ctx)
		if user == nil {
			return echo.ErrUnauthorized
		}

		s.Sessions.Drop(user.ID)
		s.Notifier.Notify(ctx, api.NotificationSessionCleared, "Session cleared")

		return c.NoContent(http.StatusNoContent)
	}
}
