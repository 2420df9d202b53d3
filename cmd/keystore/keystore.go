package keystore

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/util/command"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/keystore"
)

const (
	showMnemonicFlag = "show-mnemonic"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newVerify(),
	)
}

func newVerify() *cobra.Command {
	var showMnemonic bool

	cmd := &cobra.Command{
		Use:   "verify [FILE]",
		Short: "Decrypts a keystore backup and verifies it",
		Long: `Prompts for the backup password, decrypts the keystore and checks that the mnemonic
derives the verification address stored in it.

FILE defaults to the configured keystore path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			util.ConfigureLogger(cfg.Logger.Level, cfg.Logger.PrettyPrintConsole)

			path := cfg.Keystore.Path
			if len(args) > 0 {
				path = args[0]
			}

			return runVerify(cmd.Context(), cmd.OutOrStdout(), cfg, path, showMnemonic, command.ReadPassword)
		},
	}

	cmd.Flags().BoolVar(&showMnemonic, showMnemonicFlag, false, "Print the decrypted mnemonic.")

	return cmd
}

func runVerify(ctx context.Context, w io.Writer, cfg config.Server, path string, showMnemonic bool, readPassword command.PasswordReader) error {
	keystoreService, err := keystore.NewService(path, keystore.ScryptParamsFromConfig(cfg.Keystore))
	if err != nil {
		return err
	}

	password, err := readPassword("Password: ", false)
	if err != nil {
		return err
	}

	phrase, err := wallet.VerifyBackup(ctx, keystoreService, password)
	if err != nil {
		return err
	}

	verificationAddress, err := wallet.VerificationAddress(phrase)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Backup OK, verification address %s\n", verificationAddress)
	if showMnemonic {
		fmt.Fprintf(w, "Mnemonic: %s\n", phrase)
	}

	return nil
}
