package config_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaultServiceConfig(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":8080", cfg.Echo.ListenAddress)
	assert.Equal(t, "eth", cfg.Wallet.DefaultChain)
	assert.Equal(t, 100, cfg.Wallet.MaxWalletsPerSession)
	assert.Equal(t, 262144, cfg.Keystore.ScryptN)
	assert.Equal(t, 1, cfg.Keystore.ScryptP)
	assert.Equal(t, time.Minute, cfg.Auth.CredentialCacheTTL)
	assert.Equal(t, 1024, cfg.Auth.CredentialCacheSize)
}

func TestServiceConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ECHO_LISTEN_ADDRESS", ":9090")
	t.Setenv("SERVER_LOGGER_LEVEL", "warn")
	t.Setenv("SERVER_WALLET_DEFAULT_CHAIN", "sol")
	t.Setenv("SERVER_WALLET_MAX_WALLETS_PER_SESSION", "3")
	t.Setenv("SERVER_STORE_IN_MEMORY", "true")
	t.Setenv("SERVER_MANAGEMENT_SECRET", "mgmt")
	t.Setenv("SERVER_AUTH_CREDENTIAL_CACHE_TTL", "0s")

	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":9090", cfg.Echo.ListenAddress)
	assert.Equal(t, zerolog.WarnLevel, cfg.Logger.Level)
	assert.Equal(t, "sol", cfg.Wallet.DefaultChain)
	assert.Equal(t, 3, cfg.Wallet.MaxWalletsPerSession)
	assert.True(t, cfg.Store.InMemory)
	assert.Equal(t, "mgmt", cfg.Management.Secret)
	assert.Zero(t, cfg.Auth.CredentialCacheTTL)

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "mgmt")
}

func TestServiceConfigInvalidLogLevel(t *testing.T) {
	t.Setenv("SERVER_LOGGER_LEVEL", "verbose")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger.Level)
}

func TestGetFormattedBuildArgs(t *testing.T) {
	assert.Contains(t, config.GetFormattedBuildArgs(), config.ModuleName)
}
