package resolver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/dashboard-audit/pkg/defaults"
	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/serializer"
	"github.com/NVIDIA/dashboard-audit/pkg/server"
)

// HandleCollectorItems serves GET /v1/collector-items.
//
//	businessService, businessApplication, type   required
//	altIdentifier, identifierName, testType      optional filters
//	nextGen=true                                 use the application component
func (r *Resolver) HandleCollectorItems(w http.ResponseWriter, req *http.Request) {
	if !allowGet(w, req) {
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), defaults.ResolveHandlerTimeout)
	defer cancel()

	q, err := ParseQuery(req.URL.Query())
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Invalid collector item query", nil)
		return
	}

	slog.Debug("resolving collector items",
		"businessService", q.BusinessService,
		"businessApplication", q.BusinessApplication,
		"collectorType", q.CollectorType,
		"strategy", q.Strategy())

	res, err := r.Resolve(ctx, q)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to resolve collector items", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleDashboards serves GET /v1/dashboards.
func (r *Resolver) HandleDashboards(w http.ResponseWriter, req *http.Request) {
	if !allowGet(w, req) {
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), defaults.DashboardHandlerTimeout)
	defer cancel()

	values := req.URL.Query()
	lookup, err := r.Lookup(ctx, values.Get(ParamBusinessService), values.Get(ParamBusinessApplication))
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to look up dashboard", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, lookup)
}

func allowGet(w http.ResponseWriter, req *http.Request) bool {
	if req.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, req, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  req.Method,
			"allowed": []string{http.MethodGet},
		})
	return false
}
