package test

import (
	"context"
	"testing"

	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/router"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/mnemonic"
)

// zeroEntropy yields an endless stream of zero bytes, so every generated mnemonic is the
// all-zero BIP39 vector.
type zeroEntropy struct{}

func (zeroEntropy) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// Config returns the default server config adapted for tests: in-memory store, cheap scrypt
// parameters and no request logging.
func Config(t *testing.T) config.Server {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.EnableLoggerMiddleware = false
	cfg.Store.InMemory = true
	cfg.Store.Path = ""
	cfg.Keystore.Path = t.TempDir() + "/keystore.json"
	cfg.Keystore.ScryptN = 4096
	cfg.Keystore.ScryptP = 6
	cfg.Management.Secret = ""

	return cfg
}

// WithTestServer returns a fully configured server using the default test config
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, Config(t), closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for configuration using the provided server config.
// The server is backed by an in-memory store and a mock clock. Sessions always generate the all-zero mnemonic.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	clock := api.NewClock(t)

	st, err := store.Open(cfg.Store, clock)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	s, err := api.InitNewServerWithStore(cfg, st, clock)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	defaultChain, err := chain.Parse(cfg.Wallet.DefaultChain)
	if err != nil {
		t.Fatalf("Failed to parse default chain: %v", err)
	}

	s.Sessions = wallet.NewSessions(defaultChain,
		wallet.WithMaxWallets(cfg.Wallet.MaxWalletsPerSession),
		wallet.WithGenerator(mnemonic.NewGenerator(zeroEntropy{})),
	)

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	t.Cleanup(func() {
		if errs := s.Shutdown(context.Background()); len(errs) > 0 {
			t.Fatalf("Failed to shutdown server: %v", errs)
		}
	})

	closure(s)
}
