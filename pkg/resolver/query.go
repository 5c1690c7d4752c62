package resolver

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/header"
	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

// Query parameter names.
const (
	ParamBusinessService     = "businessService"
	ParamBusinessApplication = "businessApplication"
	ParamType                = "type"
	ParamAltIdentifier       = "altIdentifier"
	ParamIdentifierName      = "identifierName"
	ParamTestType            = "testType"
	ParamNextGen             = "nextGen"
)

// Query describes a resolution request.
type Query struct {
	BusinessService     string              `json:"businessService" yaml:"businessService"`
	BusinessApplication string              `json:"businessApplication" yaml:"businessApplication"`
	CollectorType       model.CollectorType `json:"collectorType" yaml:"collectorType"`
	AltIdentifier       string              `json:"altIdentifier,omitempty" yaml:"altIdentifier,omitempty"`
	IdentifierName      string              `json:"identifierName,omitempty" yaml:"identifierName,omitempty"`
	TestType            string              `json:"testType,omitempty" yaml:"testType,omitempty"`
	NextGen             bool                `json:"nextGen,omitempty" yaml:"nextGen,omitempty"`
}

// Strategy returns the operation Resolve will run: testType wins, then
// nextGen, otherwise the identifier-name chain.
func (q *Query) Strategy() Strategy {
	switch {
	case q.TestType != "":
		return StrategyTestType
	case q.NextGen:
		return StrategyNextGenType
	default:
		return StrategyIdentifierName
	}
}

// Validate checks required fields.
func (q *Query) Validate() error {
	if strings.TrimSpace(q.BusinessService) == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "businessService is required")
	}
	if strings.TrimSpace(q.BusinessApplication) == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "businessApplication is required")
	}
	if !q.CollectorType.IsValid() {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid collector type %q", q.CollectorType),
			map[string]any{"supported": model.SupportedCollectorTypes()})
	}
	return nil
}

// ParseQuery reads a Query from URL query parameters.
func ParseQuery(values url.Values) (*Query, error) {
	q := &Query{
		BusinessService:     values.Get(ParamBusinessService),
		BusinessApplication: values.Get(ParamBusinessApplication),
		AltIdentifier:       values.Get(ParamAltIdentifier),
		IdentifierName:      values.Get(ParamIdentifierName),
		TestType:            values.Get(ParamTestType),
	}

	if raw := values.Get(ParamType); raw != "" {
		t, err := model.ParseCollectorType(raw)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid type parameter", err)
		}
		q.CollectorType = t
	}

	if raw := values.Get(ParamNextGen); raw != "" {
		nextGen, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid nextGen parameter", err)
		}
		q.NextGen = nextGen
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	header.Header `json:",inline" yaml:",inline"`

	Query          Query                 `json:"query" yaml:"query"`
	Strategy       Strategy              `json:"strategy" yaml:"strategy"`
	DashboardID    string                `json:"dashboardId" yaml:"dashboardId"`
	DashboardTitle string                `json:"dashboardTitle,omitempty" yaml:"dashboardTitle,omitempty"`
	CollectorItems []model.CollectorItem `json:"collectorItems" yaml:"collectorItems"`
}

// TableRows lists one row per collector item.
func (r *Resolution) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(r.CollectorItems))
	for i := range r.CollectorItems {
		item := &r.CollectorItems[i]
		lastUpdated := ""
		if item.LastUpdated != nil {
			lastUpdated = item.LastUpdated.UTC().Format("2006-01-02T15:04:05Z")
		}
		rows = append(rows, []string{
			item.ID,
			item.CollectorType.String(),
			item.NiceName,
			item.AltIdentifier,
			strconv.FormatBool(item.Enabled),
			lastUpdated,
		})
	}
	return []string{"ID", "TYPE", "NAME", "ALT IDENTIFIER", "ENABLED", "LAST UPDATED"}, rows
}

// DashboardLookup is the outcome of Lookup.
type DashboardLookup struct {
	header.Header `json:",inline" yaml:",inline"`

	BusinessService     string           `json:"businessService" yaml:"businessService"`
	BusinessApplication string           `json:"businessApplication" yaml:"businessApplication"`
	Dashboard           *model.Dashboard `json:"dashboard" yaml:"dashboard"`
}

// TableRows lists the dashboard's widgets.
func (l *DashboardLookup) TableRows() ([]string, [][]string) {
	if l.Dashboard == nil {
		return []string{"DASHBOARD", "WIDGET", "COMPONENT"}, nil
	}
	rows := make([][]string, 0, len(l.Dashboard.Widgets)+1)
	if len(l.Dashboard.Widgets) == 0 {
		rows = append(rows, []string{l.Dashboard.ID, "", ""})
	}
	for _, w := range l.Dashboard.Widgets {
		rows = append(rows, []string{l.Dashboard.ID, w.Name, w.ComponentID})
	}
	return []string{"DASHBOARD", "WIDGET", "COMPONENT"}, rows
}

// Resolve finds the dashboard for q and runs the strategy q selects. A
// missing dashboard is an ErrCodeNotFound error.
func (r *Resolver) Resolve(ctx context.Context, q *Query) (*Resolution, error) {
	if q == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "query is required")
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	dashboard, err := r.requireDashboard(ctx, q.BusinessService, q.BusinessApplication)
	if err != nil {
		return nil, err
	}

	strategy := q.Strategy()
	var items []model.CollectorItem
	switch strategy {
	case StrategyTestType:
		items, err = r.ResolveByTestType(ctx, dashboard, q.CollectorType, q.TestType)
	case StrategyNextGenType:
		items, err = r.ResolveNextGenByType(ctx, dashboard, q.CollectorType)
	default:
		items, err = r.ResolveByIdentifierName(ctx, dashboard, q.CollectorType, q.AltIdentifier, q.IdentifierName)
	}
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeUnavailable, "failed to resolve collector items", err,
			map[string]any{"dashboard": dashboard.ID, "strategy": strategy.String()})
	}

	res := &Resolution{
		Query:          *q,
		Strategy:       strategy,
		DashboardID:    dashboard.ID,
		DashboardTitle: dashboard.Title,
		CollectorItems: items,
	}
	res.Init(header.KindResolution, header.APIVersionV1, r.version)
	return res, nil
}

// Lookup finds the dashboard for a business service/application pair. A
// missing dashboard is an ErrCodeNotFound error.
func (r *Resolver) Lookup(ctx context.Context, businessService, businessApplication string) (*DashboardLookup, error) {
	if strings.TrimSpace(businessService) == "" || strings.TrimSpace(businessApplication) == "" {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "businessService and businessApplication are required")
	}

	dashboard, err := r.requireDashboard(ctx, businessService, businessApplication)
	if err != nil {
		return nil, err
	}

	l := &DashboardLookup{
		BusinessService:     businessService,
		BusinessApplication: businessApplication,
		Dashboard:           dashboard,
	}
	l.Init(header.KindDashboardLookup, header.APIVersionV1, r.version)
	return l, nil
}

func (r *Resolver) requireDashboard(ctx context.Context, businessService, businessApplication string) (*model.Dashboard, error) {
	dashboard, err := r.FindDashboard(ctx, businessService, businessApplication)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to look up dashboard", err)
	}
	if dashboard == nil {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound, "no dashboard configured for business service and application",
			map[string]any{
				ParamBusinessService:     businessService,
				ParamBusinessApplication: businessApplication,
			})
	}
	return dashboard, nil
}
