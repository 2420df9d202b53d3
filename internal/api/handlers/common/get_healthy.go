package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Liveness check
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := s.Healthy(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Health probe failed")
			return c.String(521, "Not healthy.")
		}

		return c.String(http.StatusOK, "Healthy.")
	}
}
