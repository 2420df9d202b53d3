package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/util/command"
)

const (
	verboseFlag string = "verbose"

	probeTimeout = 5 * time.Second
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newProbe("liveness", "/-/healthy", "Runs the liveness probe against the local server"),
		newProbe("readiness", "/-/ready", "Runs the readiness probe against the local server"),
	)
}

func newProbe(name string, path string, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long: fmt.Sprintf(`%s.

Requests %s on the configured listen address and exits non-zero unless it answers 200.`, short, path),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return err
			}

			return runProbe(cmd.Context(), cmd.OutOrStdout(), config.DefaultServiceConfigFromEnv(), path, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runProbe(ctx context.Context, w io.Writer, cfg config.Server, path string, verbose bool) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL(cfg, path), nil)
	if err != nil {
		return errors.Wrap(err, "failed to create probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "probe %s failed", path)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read probe response")
	}

	if verbose {
		fmt.Fprintf(w, "%s: %d %s\n", path, res.StatusCode, strings.TrimSpace(string(body)))
	}

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("probe %s failed with status %d", path, res.StatusCode)
	}

	return nil
}

func probeURL(cfg config.Server, path string) string {
	host := cfg.Echo.ListenAddress
	if strings.HasPrefix(host, ":") {
		host = "127.0.0.1" + host
	}

	u := url.URL{Scheme: "http", Host: host, Path: path}
	if cfg.Management.Secret != "" {
		q := url.Values{}
		q.Set("mgmt-secret", cfg.Management.Secret)
		u.RawQuery = q.Encode()
	}

	return u.String()
}
