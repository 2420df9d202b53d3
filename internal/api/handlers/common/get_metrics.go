package common

import (
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
)

func GetMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
