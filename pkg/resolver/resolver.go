package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
	"github.com/NVIDIA/dashboard-audit/pkg/store"
)

// Strategy names a resolution operation.
type Strategy string

const (
	StrategyType           Strategy = "type"
	StrategyNextGenType    Strategy = "nextGenType"
	StrategyAltIdentifier  Strategy = "altIdentifier"
	StrategyIdentifierName Strategy = "identifierName"
	StrategyTestType       Strategy = "testType"
)

func (s Strategy) String() string {
	return string(s)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAltIdentifierFallback makes ResolveByAltIdentifier return the
// ResolveByType result when no item matches the alternate identifier.
func WithAltIdentifierFallback(enabled bool) Option {
	return func(r *Resolver) {
		r.altIdentifierFallback = enabled
	}
}

// WithVersion sets the version stamped into Resolution headers.
func WithVersion(version string) Option {
	return func(r *Resolver) {
		r.version = version
	}
}

// Resolver resolves CollectorItems for dashboards. It is safe for concurrent
// use when the stores are.
type Resolver struct {
	components store.ComponentStore
	items      store.CollectorItemStore
	dashboards store.DashboardStore

	altIdentifierFallback bool
	version               string
}

// New returns a Resolver reading from the given stores.
func New(components store.ComponentStore, items store.CollectorItemStore, dashboards store.DashboardStore, opts ...Option) *Resolver {
	r := &Resolver{
		components: components,
		items:      items,
		dashboards: dashboards,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveByType returns the authoritative items of collectorType listed by
// the component of the dashboard's first widget.
func (r *Resolver) ResolveByType(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType) ([]model.CollectorItem, error) {
	start := time.Now()
	items, err := r.resolveByType(ctx, dashboard, collectorType)
	observe(StrategyType, start, items, err)
	return items, err
}

// ResolveNextGenByType is ResolveByType for dashboards that carry an
// Application: the component is the application's first component.
func (r *Resolver) ResolveNextGenByType(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType) ([]model.CollectorItem, error) {
	start := time.Now()
	id, ok := dashboard.FirstApplicationComponentID()
	items, err := r.fetch(ctx, id, ok, collectorType)
	observe(StrategyNextGenType, start, items, err)
	return items, err
}

// ResolveByAltIdentifier keeps the ResolveByType items whose alternate
// identifier equals altIdentifier ignoring case. A blank altIdentifier
// returns the ResolveByType result unfiltered.
func (r *Resolver) ResolveByAltIdentifier(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType, altIdentifier string) ([]model.CollectorItem, error) {
	start := time.Now()
	items, err := r.resolveByAltIdentifier(ctx, dashboard, collectorType, altIdentifier)
	observe(StrategyAltIdentifier, start, items, err)
	return items, err
}

// ResolveByIdentifierName keeps the ResolveByType items whose artifactName
// option equals identifierName ignoring case. When identifierName is blank,
// or nothing matches, the result is ResolveByAltIdentifier's.
func (r *Resolver) ResolveByIdentifierName(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType, altIdentifier, identifierName string) ([]model.CollectorItem, error) {
	start := time.Now()
	items, err := r.resolveByIdentifierName(ctx, dashboard, collectorType, altIdentifier, identifierName)
	observe(StrategyIdentifierName, start, items, err)
	return items, err
}

// ResolveByTestType keeps the ResolveByType items whose testType option is
// a string equal to testType. The comparison is case-sensitive.
func (r *Resolver) ResolveByTestType(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType, testType string) ([]model.CollectorItem, error) {
	start := time.Now()
	items, err := r.resolveByType(ctx, dashboard, collectorType)
	if err == nil {
		items = filter(items, testTypeEquals(testType))
	}
	observe(StrategyTestType, start, items, err)
	return items, err
}

// FindDashboard returns the first dashboard, in store order, configured for
// businessService/businessComponent, or nil when there is none.
func (r *Resolver) FindDashboard(ctx context.Context, businessService, businessComponent string) (*model.Dashboard, error) {
	dashboards, err := r.dashboards.FindAllByBusinessServiceAndBusinessApplication(ctx, businessService, businessComponent)
	if err != nil {
		return nil, fmt.Errorf("failed to find dashboards for %s/%s: %w", businessService, businessComponent, err)
	}
	if len(dashboards) == 0 {
		return nil, nil
	}
	if len(dashboards) > 1 {
		slog.Debug("multiple dashboards match, using first",
			"businessService", businessService,
			"businessComponent", businessComponent,
			"matches", len(dashboards),
			"dashboard", dashboards[0].ID)
	}
	d := dashboards[0]
	return &d, nil
}

func (r *Resolver) resolveByType(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType) ([]model.CollectorItem, error) {
	id, ok := dashboard.FirstWidgetComponentID()
	return r.fetch(ctx, id, ok, collectorType)
}

func (r *Resolver) resolveByAltIdentifier(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType, altIdentifier string) ([]model.CollectorItem, error) {
	if isBlank(altIdentifier) {
		fallbacks.WithLabelValues(StrategyAltIdentifier.String(), StrategyType.String()).Inc()
		return r.resolveByType(ctx, dashboard, collectorType)
	}

	all, err := r.resolveByType(ctx, dashboard, collectorType)
	if err != nil {
		return nil, err
	}
	items := filter(all, altIdentifierEquals(altIdentifier))
	if len(items) == 0 && r.altIdentifierFallback {
		fallbacks.WithLabelValues(StrategyAltIdentifier.String(), StrategyType.String()).Inc()
		return all, nil
	}
	return items, nil
}

func (r *Resolver) resolveByIdentifierName(ctx context.Context, dashboard *model.Dashboard, collectorType model.CollectorType, altIdentifier, identifierName string) ([]model.CollectorItem, error) {
	if isBlank(identifierName) {
		fallbacks.WithLabelValues(StrategyIdentifierName.String(), StrategyAltIdentifier.String()).Inc()
		return r.resolveByAltIdentifier(ctx, dashboard, collectorType, altIdentifier)
	}

	all, err := r.resolveByType(ctx, dashboard, collectorType)
	if err != nil {
		return nil, err
	}
	if items := filter(all, artifactNameEquals(identifierName)); len(items) > 0 {
		return items, nil
	}

	fallbacks.WithLabelValues(StrategyIdentifierName.String(), StrategyAltIdentifier.String()).Inc()
	if isBlank(altIdentifier) {
		// a blank alternate identifier resolves to all
		fallbacks.WithLabelValues(StrategyAltIdentifier.String(), StrategyType.String()).Inc()
		return all, nil
	}
	return r.resolveByAltIdentifier(ctx, dashboard, collectorType, altIdentifier)
}

// fetch re-reads the items of collectorType listed by component id.
func (r *Resolver) fetch(ctx context.Context, componentID string, ok bool, collectorType model.CollectorType) ([]model.CollectorItem, error) {
	if !ok {
		return []model.CollectorItem{}, nil
	}

	component, err := r.components.FindOne(ctx, componentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read component %s: %w", componentID, err)
	}
	if component == nil {
		slog.Debug("component not found", "component", componentID)
		return []model.CollectorItem{}, nil
	}

	ids := component.CollectorItemIDs(collectorType)
	if len(ids) == 0 {
		return []model.CollectorItem{}, nil
	}

	items, err := r.items.FindAll(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read collector items of component %s: %w", componentID, err)
	}
	if items == nil {
		items = []model.CollectorItem{}
	}

	if stale := countStale(ids, items); stale > 0 {
		staleReferences.Add(float64(stale))
		slog.Debug("component lists collector items missing from store",
			"component", componentID,
			"collectorType", collectorType,
			"listed", len(ids),
			"missing", stale)
	}
	return items, nil
}

func countStale(ids []string, items []model.CollectorItem) int {
	found := make(map[string]struct{}, len(items))
	for i := range items {
		found[items[i].ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(ids))
	stale := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := found[id]; !ok {
			stale++
		}
	}
	return stale
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
