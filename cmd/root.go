package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/hdforge/go-wallet/cmd/env"
	"github/hdforge/go-wallet/cmd/generate"
	"github/hdforge/go-wallet/cmd/keystore"
	"github/hdforge/go-wallet/cmd/probe"
	"github/hdforge/go-wallet/cmd/server"
	"github/hdforge/go-wallet/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "hdforge",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Derives Ethereum and Solana wallets from BIP39 mnemonics.
Runs as HTTP API (server) or one-shot CLI (generate, keystore).
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		generate.New(),
		keystore.New(),
		probe.New(),
		server.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
