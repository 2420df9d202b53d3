package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/handlers"
	"github/hdforge/go-wallet/internal/api/middleware"
	"github/hdforge/go-wallet/internal/metrics"
)

// Init creates the echo instance of s, attaches the middlewares and all routes
func Init(s *api.Server) error {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true

	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// ---
	// General middleware
	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestID())
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level: s.Config.Logger.RequestLevel,
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	} else {
		log.Warn().Msg("Disabling CORS middleware due to environment config")
	}

	if s.Config.Echo.EnableMetricsMiddleware {
		s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  metrics.Namespace,
			Registerer: s.Metrics.Registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/-/metrics"
			},
		}))
	} else {
		log.Warn().Msg("Disabling metrics middleware due to environment config")
	}

	// ---
	// Initialize our general groups and set middleware to use above them
	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		// Unsecured base group available at /**
		Root: s.Echo.Group(""),

		// Management endpoints, uncacheable, secured by key auth when a secret is configured
		Management: s.Echo.Group("/-", managementAuth(s), noCache()),

		// OPTIONAL: API v1 authentication endpoints, unsecured
		APIV1Auth: s.Echo.Group("/api/v1/auth"),

		// API v1 derivation session endpoints, secured by basic auth against the account store
		APIV1Session: s.Echo.Group("/api/v1/session", middleware.BasicAuth(s.Credentials), noCache()),

		// API v1 saved wallet endpoints, secured by basic auth against the account store
		APIV1Wallets: s.Echo.Group("/api/v1/wallets", middleware.BasicAuth(s.Credentials), noCache()),
	}

	// ---
	// Finally attach our handlers
	handlers.AttachAllRoutes(s)

	return nil
}

func managementAuth(s *api.Server) echo.MiddlewareFunc {
	return echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
		KeyLookup: "query:mgmt-secret",
		Skipper: func(_ echo.Context) bool {
			return s.Config.Management.Secret == ""
		},
		Validator: func(key string, _ echo.Context) (bool, error) {
			return key == s.Config.Management.Secret, nil
		},
	})
}

func noCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
			c.Response().Header().Set("Pragma", "no-cache")
			return next(c)
		}
	}
}

