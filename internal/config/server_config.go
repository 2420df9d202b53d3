package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EchoServer configures the HTTP server
type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableMetricsMiddleware        bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

type WalletServer struct {
	// DefaultChain is the chain new sessions start on ("eth" or "sol")
	DefaultChain string
	// MaxWalletsPerSession caps AddNext, 0 disables the cap
	MaxWalletsPerSession int
}

type StoreServer struct {
	Path     string
	InMemory bool
}

type KeystoreServer struct {
	Path    string
	ScryptN int
	ScryptP int
}

type AuthServer struct {
	// CredentialCacheTTL is how long a verified login skips the password hash, 0 disables the cache
	CredentialCacheTTL  time.Duration
	CredentialCacheSize int
}

type ManagementServer struct {
	Secret string `json:"-"` // sensitive
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Wallet     WalletServer
	Store      StoreServer
	Keystore   KeystoreServer
	Auth       AuthServer
	Management ManagementServer
}

const envFileName = ".env.local"

var loadDotEnvOnce sync.Once

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root fills in ENV variables that are not set yet.
	loadDotEnvOnce.Do(loadDotEnv)

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("SERVER_ECHO_DEBUG"),
			ListenAddress:                  v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			BaseURL:                        v.GetString("SERVER_ECHO_BASE_URL"),
			EnableCORSMiddleware:           v.GetBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			EnableMetricsMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE"),
		},
		Logger: LoggerServer{
			Level:              logLevel(v.GetString("SERVER_LOGGER_LEVEL"), zerolog.DebugLevel),
			RequestLevel:       logLevel(v.GetString("SERVER_LOGGER_REQUEST_LEVEL"), zerolog.DebugLevel),
			LogRequestBody:     v.GetBool("SERVER_LOGGER_LOG_REQUEST_BODY"),
			LogResponseBody:    v.GetBool("SERVER_LOGGER_LOG_RESPONSE_BODY"),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Wallet: WalletServer{
			DefaultChain:         v.GetString("SERVER_WALLET_DEFAULT_CHAIN"),
			MaxWalletsPerSession: v.GetInt("SERVER_WALLET_MAX_WALLETS_PER_SESSION"),
		},
		Store: StoreServer{
			Path:     v.GetString("SERVER_STORE_PATH"),
			InMemory: v.GetBool("SERVER_STORE_IN_MEMORY"),
		},
		Keystore: KeystoreServer{
			Path:    v.GetString("SERVER_KEYSTORE_PATH"),
			ScryptN: v.GetInt("SERVER_KEYSTORE_SCRYPT_N"),
			ScryptP: v.GetInt("SERVER_KEYSTORE_SCRYPT_P"),
		},
		Auth: AuthServer{
			CredentialCacheTTL:  v.GetDuration("SERVER_AUTH_CREDENTIAL_CACHE_TTL"),
			CredentialCacheSize: v.GetInt("SERVER_AUTH_CREDENTIAL_CACHE_SIZE"),
		},
		Management: ManagementServer{
			Secret: v.GetString("SERVER_MANAGEMENT_SECRET"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ECHO_DEBUG", false)
	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", ":8080")
	v.SetDefault("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ECHO_BASE_URL", "http://localhost:8080")
	v.SetDefault("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true)

	v.SetDefault("SERVER_LOGGER_LEVEL", "info")
	v.SetDefault("SERVER_LOGGER_REQUEST_LEVEL", "info")
	v.SetDefault("SERVER_LOGGER_LOG_REQUEST_BODY", false)
	v.SetDefault("SERVER_LOGGER_LOG_RESPONSE_BODY", false)
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("SERVER_WALLET_DEFAULT_CHAIN", "eth")
	v.SetDefault("SERVER_WALLET_MAX_WALLETS_PER_SESSION", 100)

	v.SetDefault("SERVER_STORE_PATH", "/app/data/store")
	v.SetDefault("SERVER_STORE_IN_MEMORY", false)

	v.SetDefault("SERVER_KEYSTORE_PATH", "/app/data/keystore.json")
	v.SetDefault("SERVER_KEYSTORE_SCRYPT_N", 262144)
	v.SetDefault("SERVER_KEYSTORE_SCRYPT_P", 1)

	v.SetDefault("SERVER_AUTH_CREDENTIAL_CACHE_TTL", time.Minute)
	v.SetDefault("SERVER_AUTH_CREDENTIAL_CACHE_SIZE", 1024)

	v.SetDefault("SERVER_MANAGEMENT_SECRET", "")
}

func loadDotEnv() {
	envFile := filepath.Join(projectRootDir(), envFileName)
	if _, err := os.Stat(envFile); err != nil {
		return
	}

	// Load does not override variables already present in the environment
	if err := gotenv.Load(envFile); err != nil {
		log.Warn().Err(err).Str("file", envFile).Msg("Failed to load .env.local file")
		return
	}

	log.Warn().Str("file", envFile).Msg(".env.local applied to ENV variables!")
}

func logLevel(s string, fallback zerolog.Level) zerolog.Level {
	l, err := zerolog.ParseLevel(s)
	if err != nil || l == zerolog.NoLevel {
		log.Error().Err(err).Str("level", s).Msgf("Failed to parse log level, defaulting to %s", fallback)
		return fallback
	}

	return l
}

// projectRootDir resolves the project directory, PROJECT_ROOT_DIR takes precedence over the working directory
func projectRootDir() string {
	if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
		return val
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	return wd
}
