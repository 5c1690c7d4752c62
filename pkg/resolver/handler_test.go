package resolver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/server"
)

func TestHandleCollectorItems(t *testing.T) {
	s := scenarioStore(t)
	r := New(s, s, s)

	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		code     cnserrors.ErrorCode
		expected []string
	}{
		{
			name:     "by type",
			method:   http.MethodGet,
			target:   "/v1/collector-items?businessService=payments&businessApplication=checkout&type=build",
			status:   http.StatusOK,
			expected: []string{"2", "3"},
		},
		{
			name:     "by alt identifier",
			method:   http.MethodGet,
			target:   "/v1/collector-items?businessService=payments&businessApplication=checkout&type=Build&altIdentifier=SVC-A",
			status:   http.StatusOK,
			expected: []string{"2"},
		},
		{
			name:     "identifier name falls back to alt",
			method:   http.MethodGet,
			target:   "/v1/collector-items?businessService=payments&businessApplication=checkout&type=Build&altIdentifier=svc-a&identifierName=none",
			status:   http.StatusOK,
			expected: []string{"2"},
		},
		{
			name:     "test type on build items",
			method:   http.MethodGet,
			target:   "/v1/collector-items?businessService=payments&businessApplication=checkout&type=Build&testType=Unit",
			status:   http.StatusOK,
			expected: []string{},
		},
		{
			name:   "unknown dashboard",
			method: http.MethodGet,
			target: "/v1/collector-items?businessService=payments&businessApplication=refunds&type=Build",
			status: http.StatusNotFound,
			code:   cnserrors.ErrCodeNotFound,
		},
		{
			name:   "bad type",
			method: http.MethodGet,
			target: "/v1/collector-items?businessService=payments&businessApplication=checkout&type=nope",
			status: http.StatusBadRequest,
			code:   cnserrors.ErrCodeInvalidRequest,
		},
		{
			name:   "post",
			method: http.MethodPost,
			target: "/v1/collector-items",
			status: http.StatusMethodNotAllowed,
			code:   cnserrors.ErrCodeMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.HandleCollectorItems(rec, httptest.NewRequest(tt.method, tt.target, nil))

			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			if tt.code != "" {
				var resp server.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, string(tt.code), resp.Code)
				return
			}

			var res Resolution
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, "d1", res.DashboardID)
			assert.Equal(t, tt.expected, ids(res.CollectorItems))
		})
	}
}

func TestHandleCollectorItems_MethodNotAllowedHeader(t *testing.T) {
	s := scenarioStore(t)
	rec := httptest.NewRecorder()
	New(s, s, s).HandleCollectorItems(rec, httptest.NewRequest(http.MethodDelete, "/v1/collector-items", nil))

	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestHandleDashboards(t *testing.T) {
	s := scenarioStore(t)
	r := New(s, s, s)

	rec := httptest.NewRecorder()
	r.HandleDashboards(rec, httptest.NewRequest(http.MethodGet,
		"/v1/dashboards?businessService=payments&businessApplication=checkout", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var l DashboardLookup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	require.NotNil(t, l.Dashboard)
	assert.Equal(t, "d1", l.Dashboard.ID)

	rec = httptest.NewRecorder()
	r.HandleDashboards(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboards?businessService=payments", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.HandleDashboards(rec, httptest.NewRequest(http.MethodGet,
		"/v1/dashboards?businessService=payments&businessApplication=refunds", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
