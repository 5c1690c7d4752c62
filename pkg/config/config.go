package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/dashboard-audit/pkg/defaults"
	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/server"
	"github.com/NVIDIA/dashboard-audit/pkg/store"
	"github.com/NVIDIA/dashboard-audit/pkg/store/mongo"
	"github.com/NVIDIA/dashboard-audit/pkg/store/postgres"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DASHAUDIT"

// Configuration keys.
const (
	KeyServerAddress         = "server.address"
	KeyServerPort            = "server.port"
	KeyServerRateLimit       = "server.rateLimit"
	KeyServerRateLimitBurst  = "server.rateLimitBurst"
	KeyServerShutdownTimeout = "server.shutdownTimeout"
	KeyLogLevel              = "log.level"
	KeyStoreBackend          = "store.backend"
	KeyStoreDataset          = "store.dataset"
	KeyStoreKubeconfig       = "store.kubeconfig"
	KeyStoreMongoURI         = "store.mongo.uri"
	KeyStoreMongoDatabase    = "store.mongo.database"
	KeyStorePostgresDSN      = "store.postgres.dsn"
	KeyStorePostgresMaxConns = "store.postgres.maxConns"
	KeyStorePostgresMigrate  = "store.postgres.migrate"
	KeyAltIdentifierFallback = "resolver.altIdentifierFallback"
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config is the complete dashaudit configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Store    StoreConfig
	Resolver ResolverConfig
}

type ServerConfig struct {
	Address         string
	Port            int
	RateLimit       float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type StoreConfig struct {
	Backend    string
	Dataset    string
	Kubeconfig string
	Mongo      MongoConfig
	Postgres   PostgresConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type PostgresConfig struct {
	DSN      string
	MaxConns int
	Migrate  bool
}

type ResolverConfig struct {
	// AltIdentifierFallback makes an alt-identifier lookup without matches
	// return every item of the requested type.
	AltIdentifierFallback bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerAddress, "")
	v.SetDefault(KeyServerPort, defaults.ServerPort)
	v.SetDefault(KeyServerRateLimit, float64(defaults.ServerRateLimit))
	v.SetDefault(KeyServerRateLimitBurst, defaults.ServerRateLimitBurst)
	v.SetDefault(KeyServerShutdownTimeout, defaults.ServerShutdownTimeout)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStoreBackend, store.BackendMemory.String())
	v.SetDefault(KeyStoreDataset, "")
	v.SetDefault(KeyStoreKubeconfig, "")
	v.SetDefault(KeyStoreMongoURI, "")
	v.SetDefault(KeyStoreMongoDatabase, defaults.MongoDatabase)
	v.SetDefault(KeyStorePostgresDSN, "")
	v.SetDefault(KeyStorePostgresMaxConns, int(defaults.PostgresMaxConns))
	v.SetDefault(KeyStorePostgresMigrate, true)
	v.SetDefault(KeyAltIdentifierFallback, false)
}

// Load reads configuration from path (optional) and the environment and
// validates the result. A non-empty path that cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "failed to read config file", err,
				map[string]any{"path": path})
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:         v.GetString(KeyServerAddress),
			Port:            v.GetInt(KeyServerPort),
			RateLimit:       v.GetFloat64(KeyServerRateLimit),
			RateLimitBurst:  v.GetInt(KeyServerRateLimitBurst),
			ShutdownTimeout: v.GetDuration(KeyServerShutdownTimeout),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
		},
		Store: StoreConfig{
			Backend:    v.GetString(KeyStoreBackend),
			Dataset:    v.GetString(KeyStoreDataset),
			Kubeconfig: v.GetString(KeyStoreKubeconfig),
			Mongo: MongoConfig{
				URI:      v.GetString(KeyStoreMongoURI),
				Database: v.GetString(KeyStoreMongoDatabase),
			},
			Postgres: PostgresConfig{
				DSN:      v.GetString(KeyStorePostgresDSN),
				MaxConns: v.GetInt(KeyStorePostgresMaxConns),
				Migrate:  v.GetBool(KeyStorePostgresMigrate),
			},
		},
		Resolver: ResolverConfig{
			AltIdentifierFallback: v.GetBool(KeyAltIdentifierFallback),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid(KeyServerPort, c.Server.Port, "must be between 1 and 65535")
	}
	if c.Server.RateLimit <= 0 {
		return invalid(KeyServerRateLimit, c.Server.RateLimit, "must be positive")
	}
	if c.Server.RateLimitBurst < 1 {
		return invalid(KeyServerRateLimitBurst, c.Server.RateLimitBurst, "must be at least 1")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return invalid(KeyServerShutdownTimeout, c.Server.ShutdownTimeout, "must be positive")
	}

	if !validLogLevel(c.Log.Level) {
		return invalid(KeyLogLevel, c.Log.Level, fmt.Sprintf("must be one of %v", logLevels))
	}

	backend, err := store.ParseBackend(c.Store.Backend)
	if err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid "+KeyStoreBackend, err)
	}
	switch backend {
	case store.BackendMongo:
		if c.Store.Mongo.URI == "" {
			return invalid(KeyStoreMongoURI, "", "is required for the mongo backend")
		}
		if c.Store.Mongo.Database == "" {
			return invalid(KeyStoreMongoDatabase, "", "is required for the mongo backend")
		}
	case store.BackendPostgres:
		if c.Store.Postgres.DSN == "" {
			return invalid(KeyStorePostgresDSN, "", "is required for the postgres backend")
		}
		if c.Store.Postgres.MaxConns < 1 {
			return invalid(KeyStorePostgresMaxConns, c.Store.Postgres.MaxConns, "must be at least 1")
		}
	}
	return nil
}

// ServerConfig returns the HTTP server settings for this configuration.
func (c *Config) ServerConfig(name, version string) *server.Config {
	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Address = c.Server.Address
	sc.Port = c.Server.Port
	sc.RateLimit = rate.Limit(c.Server.RateLimit)
	sc.RateLimitBurst = c.Server.RateLimitBurst
	sc.ShutdownTimeout = c.Server.ShutdownTimeout
	return sc
}

// StoreConfig returns the backend settings for this configuration.
func (c *Config) StoreConfig() store.Config {
	backend, _ := store.ParseBackend(c.Store.Backend)
	return store.Config{
		Backend:    backend,
		Dataset:    c.Store.Dataset,
		Kubeconfig: c.Store.Kubeconfig,
		Mongo: mongo.Config{
			URI:            c.Store.Mongo.URI,
			Database:       c.Store.Mongo.Database,
			ConnectTimeout: defaults.StoreConnectTimeout,
		},
		Postgres: postgres.Config{
			DSN:             c.Store.Postgres.DSN,
			MaxConns:        int32(c.Store.Postgres.MaxConns), //nolint:gosec // bounded by Validate
			MaxConnLifetime: defaults.PostgresMaxConnLifetime,
			Migrate:         c.Store.Postgres.Migrate,
		},
	}
}

func validLogLevel(level string) bool {
	l := strings.ToLower(strings.TrimSpace(level))
	for _, candidate := range logLevels {
		if l == candidate {
			return true
		}
	}
	return false
}

func invalid(key string, value any, reason string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid %s: %s", key, reason),
		map[string]any{"key": key, "value": value})
}
