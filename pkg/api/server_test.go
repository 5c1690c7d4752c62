package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/dashboard-audit/pkg/config"
	"github.com/NVIDIA/dashboard-audit/pkg/resolver"
	"github.com/NVIDIA/dashboard-audit/pkg/store"
)

const dataset = `kind: Dataset
apiVersion: dashaudit.io/v1
dashboards:
  - id: d1
    title: Checkout
    configurationItemBusServName: payments
    configurationItemBusAppName: checkout
    widgets:
      - id: w1
        name: build
        componentId: c1
components:
  - id: c1
    collectorItems:
      Build:
        - id: "1"
        - id: "2"
        - id: "3"
collectorItems:
  - id: "2"
    collectorType: Build
    altIdentifier: svc-a
  - id: "3"
    collectorType: Build
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o600))
	return path
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "dashauditd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestRoutes(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{Dataset: writeDataset(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(ctx) })

	r := resolver.New(st.Components(), st.CollectorItems(), st.Dashboards())
	mux := http.NewServeMux()
	for pattern, h := range Routes(r) {
		mux.HandleFunc(pattern, h)
	}
	ts := httptest.NewServer(mux)
	defer ts.Close()

	tests := []struct {
		path   string
		status int
	}{
		{RouteCollectorItems + "?businessService=payments&businessApplication=checkout&type=Build", http.StatusOK},
		{RouteCollectorItems + "?businessService=payments&businessApplication=checkout", http.StatusBadRequest},
		{RouteCollectorItems + "?businessService=payments&businessApplication=refunds&type=Build", http.StatusNotFound},
		{RouteDashboards + "?businessService=payments&businessApplication=checkout", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRun(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = freePort(t)
	cfg.Server.ShutdownTimeout = 100 * time.Millisecond
	cfg.Store.Dataset = writeDataset(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- Run(ctx, cfg, name, "v0.0.1-test")
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d%s?businessService=payments&businessApplication=checkout&type=Build&altIdentifier=SVC-A",
		cfg.Server.Port, RouteCollectorItems)

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url) //nolint:noctx // test
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res resolver.Resolution
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.CollectorItems, 1)
	assert.Equal(t, "2", res.CollectorItems[0].ID)
	assert.Equal(t, "v0.0.1-test", res.Metadata["version"])

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_StoreError(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Store.Dataset = filepath.Join(t.TempDir(), "missing.yaml")

	err = Run(context.Background(), cfg, name, version)
	require.Error(t, err)
}
