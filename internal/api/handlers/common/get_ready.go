package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our Service is ready to serve traffic (i.e. respond to queries).
// Does read-only probing, no writes to the store.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if !s.Ready() {
			util.LogFromContext(ctx).Warn().Msg("Readiness probe: server is not fully initialized")
			return c.String(521, "Not ready.")
		}

		if err := s.Store.Ping(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Readiness probe: store ping failed")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
