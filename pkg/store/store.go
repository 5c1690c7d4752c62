package store

//go:generate mockgen -destination=mock_store.go -package=store github.com/NVIDIA/dashboard-audit/pkg/store ComponentStore,CollectorItemStore,DashboardStore

import (
	"context"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

// ComponentStore reads Component records.
type ComponentStore interface {
	// FindOne returns the component with the given id, or nil when there is
	// no such component.
	FindOne(ctx context.Context, id string) (*model.Component, error)
}

// CollectorItemStore reads the authoritative CollectorItem records.
type CollectorItemStore interface {
	// FindAll returns the items whose ids are listed. Ids without a record are
	// omitted and the result order is not guaranteed to follow ids.
	FindAll(ctx context.Context, ids []string) ([]model.CollectorItem, error)
}

// DashboardStore reads Dashboard records.
type DashboardStore interface {
	// FindAllByBusinessServiceAndBusinessApplication returns, in the store's
	// natural order, the dashboards whose configuration item pair matches.
	FindAllByBusinessServiceAndBusinessApplication(ctx context.Context, service, application string) ([]model.Dashboard, error)
}

// Seeder writes a dataset into a backend.
type Seeder interface {
	Seed(ctx context.Context, ds *model.Dataset) error
}

// Store is a complete backend.
type Store interface {
	Components() ComponentStore
	CollectorItems() CollectorItemStore
	Dashboards() DashboardStore
	Seeder

	// Backend names the implementation, e.g. "memory".
	Backend() Backend
	Close(ctx context.Context) error
}
