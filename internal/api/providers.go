package api

import (
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewStore opens the badger store configured in the server config
func NewStore(cfg config.Server, clock time2.Clock) (*store.Store, error) {
	return store.Open(cfg.Store, clock)
}

// NewCredentialCache puts the login cache in front of the account store
func NewCredentialCache(cfg config.Server, st *store.Store) (*auth.CredentialCache, error) {
	return auth.NewCredentialCache(st, cfg.Auth.CredentialCacheSize, cfg.Auth.CredentialCacheTTL)
}

// NewSessions creates the per-user derivation session registry
func NewSessions(cfg config.Server) (*wallet.Sessions, error) {
	defaultChain, err := chain.Parse(cfg.Wallet.DefaultChain)
	if err != nil {
		return nil, errors.Wrap(err, "invalid default chain")
	}

	return wallet.NewSessions(defaultChain, wallet.WithMaxWallets(cfg.Wallet.MaxWalletsPerSession)), nil
}

// NewClock returns the real clock, or a mock clock starting at a fixed time when used in tests
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if !useMock {
		clock = time2.DefaultClock
	} else {
		clock = time2.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	}

	return clock
}

// NoTest is used by the production injector in place of the optional *testing.T
func NoTest() []*testing.T {
	return nil
}
