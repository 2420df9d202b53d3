package command

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/util"
)

const (
	shutdownTimeout = 30 * time.Second
)

// WithServer initializes the server components described by cfg, runs f and shuts the components down afterwards.
// The returned error is the one of f.
func WithServer(ctx context.Context, cfg config.Server, f func(ctx context.Context, s *api.Server) error) error {
	util.ConfigureLogger(cfg.Logger.Level, cfg.Logger.PrettyPrintConsole)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	start := s.Clock.Now()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("errs", errs).Msg("Failed to gracefully shut down server")
		}

		log.Debug().Dur("elapsed", s.Clock.Now().Sub(start)).Msg("Server components shut down")
	}()

	return f(ctx, s)
}

// NewSubcommandGroup returns a command that only groups subcommands and prints its help when run
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("%s related subcommands", name),
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}
