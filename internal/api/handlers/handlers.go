package handlers

import (
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/handlers/auth"
	"github/hdforge/go-wallet/internal/api/handlers/common"
	"github/hdforge/go-wallet/internal/api/handlers/session"
	"github/hdforge/go-wallet/internal/api/handlers/wallets"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		auth.GetMeRoute(s),
		auth.PostRegisterRoute(s),
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		session.DeleteSessionRoute(s),
		session.GetSessionRoute(s),
		session.PostAddRoute(s),
		session.PostGenerateRoute(s),
		session.PostSwitchRoute(s),
		wallets.DeleteWalletRoute(s),
		wallets.GetWalletListRoute(s),
		wallets.PostSaveWalletRoute(s),
	}
}
