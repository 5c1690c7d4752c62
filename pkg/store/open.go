package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/model"
	"github.com/NVIDIA/dashboard-audit/pkg/serializer"
	"github.com/NVIDIA/dashboard-audit/pkg/store/memory"
	"github.com/NVIDIA/dashboard-audit/pkg/store/mongo"
	"github.com/NVIDIA/dashboard-audit/pkg/store/postgres"
)

// Backend names a store implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
)

func (b Backend) String() string {
	return string(b)
}

// IsValid reports whether b is a known backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendMemory, BackendMongo, BackendPostgres:
		return true
	default:
		return false
	}
}

// SupportedBackends returns the names of all backends.
func SupportedBackends() []string {
	return []string{
		string(BackendMemory),
		string(BackendMongo),
		string(BackendPostgres),
	}
}

// ParseBackend parses a backend name case-insensitively. Empty means memory.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	if b == "" {
		return BackendMemory, nil
	}
	if !b.IsValid() {
		return "", fmt.Errorf("unsupported store backend %q, supported: %s",
			s, strings.Join(SupportedBackends(), ", "))
	}
	return b, nil
}

// Config selects and configures a backend.
type Config struct {
	Backend Backend

	// Dataset is a file path, http(s) URL or cm://namespace/name holding a
	// model.Dataset. The memory backend is seeded from it on Open; other
	// backends are seeded explicitly.
	Dataset string

	// Kubeconfig is used when Dataset is a ConfigMap URI.
	Kubeconfig string

	Mongo    mongo.Config
	Postgres postgres.Config
}

// LoadDataset reads and validates a dataset.
func LoadDataset(ctx context.Context, location, kubeconfig string) (*model.Dataset, error) {
	ds, err := serializer.FromFileWithKubeconfig[model.Dataset](ctx, location, kubeconfig)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "failed to load dataset", err,
			map[string]any{"dataset": location})
	}
	if err := ds.Validate(); err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "invalid dataset", err,
			map[string]any{"dataset": location})
	}
	return ds, nil
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendMemory
	}

	switch backend {
	case BackendMemory:
		ms := memory.New()
		if cfg.Dataset != "" {
			ds, err := LoadDataset(ctx, cfg.Dataset, cfg.Kubeconfig)
			if err != nil {
				return nil, err
			}
			if err := ms.Seed(ctx, ds); err != nil {
				return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to seed memory store", err)
			}
			slog.Info("memory store seeded",
				"dataset", cfg.Dataset,
				"dashboards", len(ds.Dashboards),
				"components", len(ds.Components),
				"collectorItems", len(ds.CollectorItems))
		}
		return &bundle{
			backend:    BackendMemory,
			components: ms,
			items:      ms,
			dashboards: ms,
			seeder:     ms,
			close:      ms.Close,
		}, nil

	case BackendMongo:
		c, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to open mongo store", err)
		}
		return &bundle{
			backend:    BackendMongo,
			components: c.Components,
			items:      c.CollectorItems,
			dashboards: c.Dashboards,
			seeder:     c,
			close:      c.Close,
		}, nil

	case BackendPostgres:
		c, err := postgres.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to open postgres store", err)
		}
		return &bundle{
			backend:    BackendPostgres,
			components: c.Components,
			items:      c.CollectorItems,
			dashboards: c.Dashboards,
			seeder:     c,
			close:      c.Close,
		}, nil

	default:
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported store backend %q", backend))
	}
}

// bundle adapts a backend's per-collection readers to Store.
type bundle struct {
	backend    Backend
	components ComponentStore
	items      CollectorItemStore
	dashboards DashboardStore
	seeder     Seeder
	close      func(context.Context) error
}

func (b *bundle) Components() ComponentStore         { return b.components }
func (b *bundle) CollectorItems() CollectorItemStore { return b.items }
func (b *bundle) Dashboards() DashboardStore         { return b.dashboards }
func (b *bundle) Backend() Backend                   { return b.backend }

func (b *bundle) Seed(ctx context.Context, ds *model.Dataset) error {
	if err := b.seeder.Seed(ctx, ds); err != nil {
		return cnserrors.WrapWithContext(cnserrors.ErrCodeInternal, "failed to seed store", err,
			map[string]any{"backend": b.backend.String()})
	}
	return nil
}

func (b *bundle) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}
