package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/hdforge/go-wallet/internal/util"
)

// LoggerConfig configures the request logger middleware
type LoggerConfig struct {
	Skipper middleware.Skipper
	Level   zerolog.Level
}

// LoggerWithConfig attaches a request-scoped zerolog logger carrying the request id
// to the request context and logs one line per request.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			logger := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(logger.WithContext(ctx)))

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			logger.WithLevel(config.Level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", time.Since(start)).
				Msg("Request")

			return nil
		}
	}
}
