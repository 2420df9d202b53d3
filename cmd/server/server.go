package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/router"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/util"
)

const (
	shutdownTimeout = 10 * time.Second
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the HTTP API serving derivation sessions and saved wallets.

Requires configuration through ENV.`,
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()
	util.ConfigureLogger(cfg.Logger.Level, cfg.Logger.PrettyPrintConsole)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := router.Init(s); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize router")
	}

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	log.Info().
		Str("listen_address", cfg.Echo.ListenAddress).
		Str("default_chain", cfg.Wallet.DefaultChain).
		Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	log.Info().Msg("Server shut down")
}
