package generate

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/util/command"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/keystore"
	"github/hdforge/go-wallet/internal/wallet/mnemonic"
)

const (
	chainFlag  = "chain"
	countFlag  = "count"
	switchFlag = "switch"
	backupFlag = "backup"
)

type options struct {
	chain    string
	count    int
	switchTo string
	backup   string
}

func New() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a new mnemonic and derives wallets from it",
		Long: `Generates a new 12 word mnemonic and derives --count wallets for --chain.

With --switch all derived account indices are re-derived for the other chain.
With --backup the mnemonic is encrypted with a prompted password and written as keystore file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			util.ConfigureLogger(cfg.Logger.Level, cfg.Logger.PrettyPrintConsole)

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, opts, mnemonic.NewGenerator(nil), command.ReadPassword)
		},
	}

	cmd.Flags().StringVar(&opts.chain, chainFlag, "", "Chain to derive wallets for (eth|sol). Defaults to the configured default chain.")
	cmd.Flags().IntVar(&opts.count, countFlag, 1, "Number of wallets to derive.")
	cmd.Flags().StringVar(&opts.switchTo, switchFlag, "", "Re-derive all wallets for this chain after generating.")
	cmd.Flags().StringVar(&opts.backup, backupFlag, "", "Write an encrypted keystore backup of the mnemonic to this file.")

	return cmd
}

func run(ctx context.Context, w io.Writer, cfg config.Server, opts options, generator mnemonic.Generator, readPassword command.PasswordReader) error {
	chainName := opts.chain
	if chainName == "" {
		chainName = cfg.Wallet.DefaultChain
	}

	selected, err := chain.Parse(chainName)
	if err != nil {
		return err
	}

	var target chain.Chain
	if opts.switchTo != "" {
		target, err = chain.Parse(opts.switchTo)
		if err != nil {
			return err
		}
	}

	if opts.count < 1 {
		return errors.Errorf("--%s must be at least 1, got %d", countFlag, opts.count)
	}

	session := wallet.NewSession(selected, wallet.WithGenerator(generator))
	defer session.Reset()

	phrase, wallets, err := session.GenerateNew(selected)
	if err != nil {
		return err
	}

	for i := 1; i < opts.count; i++ {
		if wallets, err = session.AddNext(); err != nil {
			return err
		}
	}

	if target.Valid() {
		if wallets, err = session.SwitchChain(target); err != nil {
			return err
		}
	}

	if opts.backup != "" {
		if err := backup(ctx, cfg, opts.backup, phrase, readPassword); err != nil {
			return err
		}
	}

	return printSession(w, phrase, session.Chain(), wallets)
}

func backup(ctx context.Context, cfg config.Server, path string, phrase string, readPassword command.PasswordReader) error {
	password, err := readPassword("Backup password: ", true)
	if err != nil {
		return err
	}

	keystoreService, err := keystore.NewService(path, keystore.ScryptParamsFromConfig(cfg.Keystore))
	if err != nil {
		return err
	}

	_, err = wallet.CreateBackup(ctx, keystoreService, phrase, password)

	return err
}

func printSession(w io.Writer, phrase string, c chain.Chain, wallets []*wallet.DerivedWallet) error {
	fmt.Fprintf(w, "Mnemonic: %s\n", phrase)
	fmt.Fprintf(w, "Chain:    %s\n\n", c)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCAL ID\tPATH\tADDRESS\tPRIVATE KEY")
	for _, dw := range wallets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", dw.LocalID, dw.Path, dw.PublicAddress, dw.PrivateKey.Reveal())
		dw.Zero()
	}

	return tw.Flush()
}
