package api

import (
	"context"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/metrics"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/wallet"
)

type Router struct {
	Routes       []*echo.Route
	Root         *echo.Group
	Management   *echo.Group
	APIV1Auth    *echo.Group
	APIV1Session *echo.Group
	APIV1Wallets *echo.Group
}

// Server bundles the components shared by handlers and commands.
// Fields without `wire:"-"` are provided by InitNewServer (see wire.go and providers.go),
// Echo and Router are set up afterwards by router.Init.
type Server struct {
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config      config.Server
	Store       *store.Store
	Sessions    *wallet.Sessions
	Credentials *auth.CredentialCache
	Clock       time2.Clock
	Metrics     *metrics.Service
	Notifier    Notifier
}

// newServerWithComponents is the wire injector target
func newServerWithComponents(
	cfg config.Server,
	st *store.Store,
	sessions *wallet.Sessions,
	credentials *auth.CredentialCache,
	clock time2.Clock,
	metrics *metrics.Service,
	notifier Notifier,
) *Server {
	return &Server{
		Config:      cfg,
		Store:       st,
		Sessions:    sessions,
		Credentials: credentials,
		Clock:       clock,
		Metrics:     metrics,
		Notifier:    notifier,
	}
}

// Ready reports whether every wired component is set
func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

// Healthy checks the components the server depends on at runtime
func (s *Server) Healthy(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("store is not initialized")
	}

	return s.Store.Ping(ctx)
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return errors.Wrap(err, "failed to start echo server")
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Sessions != nil {
		log.Debug().Msg("Wiping derivation sessions")
		s.Sessions.Clear()
	}

	if s.Store != nil {
		log.Debug().Msg("Closing store")

		if err := s.Store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
			errs = append(errs, err)
		}
	}

	return errs
}
