package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/NVIDIA/dashboard-audit/pkg/config"
	"github.com/NVIDIA/dashboard-audit/pkg/defaults"
	"github.com/NVIDIA/dashboard-audit/pkg/logging"
	"github.com/NVIDIA/dashboard-audit/pkg/resolver"
	"github.com/NVIDIA/dashboard-audit/pkg/server"
	"github.com/NVIDIA/dashboard-audit/pkg/store"
)

const (
	name           = "dashauditd"
	versionDefault = "dev"

	// ConfigEnv names the variable holding an optional config file path.
	ConfigEnv = "DASHAUDIT_CONFIG"

	RouteCollectorItems = "/v1/collector-items"
	RouteDashboards     = "/v1/dashboards"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads configuration, starts the API server and blocks until
// shutdown.
func Serve() error {
	cfg, err := config.Load(os.Getenv(ConfigEnv))
	if err != nil {
		logging.SetDefaultStructuredLogger(name, version)
		slog.Error("invalid configuration", "error", err)
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.Log.Level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"backend", cfg.Store.Backend)

	if err := Run(context.Background(), cfg, name, version); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// Run opens the store described by cfg and serves the resolver routes
// until ctx is cancelled or the process is signalled.
func Run(ctx context.Context, cfg *config.Config, serverName, serverVersion string) error {
	st, err := store.Open(ctx, cfg.StoreConfig())
	if err != nil {
		return err
	}
	defer closeStore(st)

	r := resolver.New(st.Components(), st.CollectorItems(), st.Dashboards(),
		resolver.WithAltIdentifierFallback(cfg.Resolver.AltIdentifierFallback),
		resolver.WithVersion(serverVersion),
	)

	s := server.New(
		server.WithConfig(cfg.ServerConfig(serverName, serverVersion)),
		server.WithHandler(Routes(r)),
	)
	return s.Run(ctx)
}

// Routes returns the resolver routes keyed by pattern.
func Routes(r *resolver.Resolver) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteCollectorItems: r.HandleCollectorItems,
		RouteDashboards:     r.HandleDashboards,
	}
}

func closeStore(st store.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.StoreConnectTimeout)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		slog.Warn("failed to close store", "backend", st.Backend().String(), "error", err)
	}
}
