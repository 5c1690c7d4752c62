package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

// Store keeps every entity in process memory. Dashboards are returned in
// insertion order, which acts as the store's natural order.
type Store struct {
	mu             sync.RWMutex
	dashboards     []model.Dashboard
	components     map[string]model.Component
	collectorItems map[string]model.CollectorItem
}

// New returns an empty store.
func New() *Store {
	return &Store{
		components:     make(map[string]model.Component),
		collectorItems: make(map[string]model.CollectorItem),
	}
}

// NewFromDataset returns a store populated with ds.
func NewFromDataset(ds *model.Dataset) (*Store, error) {
	s := New()
	if err := s.Seed(context.Background(), ds); err != nil {
		return nil, err
	}
	return s, nil
}

// Seed adds every entity of ds. Records with an existing id are replaced;
// replaced dashboards keep their original position.
func (s *Store) Seed(_ context.Context, ds *model.Dataset) error {
	if ds == nil {
		return nil
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range ds.Dashboards {
		s.putDashboardLocked(d)
	}
	for _, c := range ds.Components {
		s.components[c.ID] = c
	}
	for _, item := range ds.CollectorItems {
		s.collectorItems[item.ID] = item
	}

	slog.Debug("memory store seeded",
		"dashboards", len(ds.Dashboards),
		"components", len(ds.Components),
		"collectorItems", len(ds.CollectorItems))

	return nil
}

func (s *Store) putDashboardLocked(d model.Dashboard) {
	for i := range s.dashboards {
		if s.dashboards[i].ID == d.ID {
			s.dashboards[i] = d
			return
		}
	}
	s.dashboards = append(s.dashboards, d)
}

// PutCollectorItem inserts or replaces a single collector item.
func (s *Store) PutCollectorItem(item model.CollectorItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collectorItems[item.ID] = item
}

// DeleteCollectorItem removes the item with the given id, if present.
func (s *Store) DeleteCollectorItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collectorItems, id)
}

// FindOne returns the component with the given id.
func (s *Store) FindOne(_ context.Context, id string) (*model.Component, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.components[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// FindAll returns the collector items listed in ids, in the order requested.
func (s *Store) FindAll(_ context.Context, ids []string) ([]model.CollectorItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CollectorItem, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := s.collectorItems[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// FindAllByBusinessServiceAndBusinessApplication returns matching dashboards
// in insertion order.
func (s *Store) FindAllByBusinessServiceAndBusinessApplication(_ context.Context, service, application string) ([]model.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Dashboard
	for i := range s.dashboards {
		if s.dashboards[i].Matches(service, application) {
			out = append(out, s.dashboards[i])
		}
	}
	return out, nil
}

// Close is a no-op.
func (s *Store) Close(context.Context) error {
	return nil
}
