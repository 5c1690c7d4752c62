package serializer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/NVIDIA/dashboard-audit/pkg/header"
)

type sample struct {
	header.Header `json:",inline" yaml:",inline"`

	Name  string            `json:"name" yaml:"name"`
	Count int               `json:"count" yaml:"count"`
	Tags  map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type rendered struct{ rows [][]string }

func (r rendered) TableRows() ([]string, [][]string) {
	return []string{"ID", "NAME"}, r.rows
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"seed.json", FormatJSON},
		{"seed.YAML", FormatYAML},
		{"seed.yml", FormatYAML},
		{"out.txt", FormatTable},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestFormatIsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
}

func TestWriter_Serialize(t *testing.T) {
	v := sample{Name: "payments", Count: 2}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.Background(), v))
		assert.Contains(t, buf.String(), `"name": "payments"`)
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), v))
		assert.Contains(t, buf.String(), "name: payments")
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(Format("xml"), &buf).Serialize(context.Background(), v))
		assert.Contains(t, buf.String(), `"count": 2`)
	})
}

func TestWriter_Table(t *testing.T) {
	t.Run("renderer", func(t *testing.T) {
		var buf bytes.Buffer
		r := rendered{rows: [][]string{{"2", "build-a"}, {"3", "build-b"}}}
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), r))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.Contains(t, lines[2], "build-b")
	})

	t.Run("empty renderer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), rendered{}))
		assert.Equal(t, "<empty>\n", buf.String())
	})

	t.Run("flattened struct", func(t *testing.T) {
		var buf bytes.Buffer
		v := sample{
			Header: header.Header{Kind: header.KindResolution},
			Name:   "x",
			Tags:   map[string]string{"team": "core"},
		}
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), v))
		out := buf.String()
		assert.Contains(t, out, "FIELD")
		assert.Contains(t, out, "Tags.team")
		// embedded header fields are not prefixed
		assert.Contains(t, out, "Kind")
		assert.NotContains(t, out, "Header.Kind")
	})
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		s := NewFileWriterOrStdout(FormatYAML, path)
		require.NoError(t, s.Serialize(context.Background(), sample{Name: "f"}))
		require.NoError(t, s.(Closer).Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "name: f")
	})

	t.Run("empty path is stdout", func(t *testing.T) {
		w, ok := NewFileWriterOrStdout(FormatJSON, "  ").(*Writer)
		require.True(t, ok)
		assert.Equal(t, os.Stdout, w.output)
	})

	t.Run("configmap uri", func(t *testing.T) {
		w, ok := NewFileWriterOrStdout(FormatYAML, "cm://ops/results").(*ConfigMapWriter)
		require.True(t, ok)
		assert.Equal(t, "ops", w.namespace)
		assert.Equal(t, "results", w.name)
	})

	t.Run("bad configmap uri is stdout", func(t *testing.T) {
		_, ok := NewFileWriterOrStdout(FormatYAML, "cm://ops").(*Writer)
		assert.True(t, ok)
	})
}

func TestNewReader_Errors(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	require.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	require.Error(t, err)

	var r *Reader
	require.Error(t, r.Deserialize(&sample{}))
	require.NoError(t, r.Close())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: alpha\ncount: 3\n"), 0o600))
	got, err := FromFile[sample](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)
	assert.Equal(t, 3, got.Count)

	jsonPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"beta"}`), 0o600))
	got, err = FromFile[sample](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name)

	_, err = FromFile[sample](filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	_, err = FromFile[sample](bad)
	require.Error(t, err)
}

func TestFromFile_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HttpReaderUserAgent, r.Header.Get("User-Agent"))
		if r.URL.Path != "/seed.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("name: remote\n"))
	}))
	defer srv.Close()

	got, err := FromFile[sample](srv.URL + "/seed.yaml")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Name)

	_, err = FromFile[sample](srv.URL + "/missing.yaml")
	require.Error(t, err)
}

func TestHttpReader_EmptyURL(t *testing.T) {
	_, err := NewHttpReader().ReadWithContext(context.Background(), "")
	require.Error(t, err)
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, make(chan int))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		uri     string
		ns      string
		name    string
		wantErr bool
	}{
		{uri: "cm://ops/seed", ns: "ops", name: "seed"},
		{uri: "cm://ops/seed/extra", ns: "ops", name: "seed/extra"},
		{uri: "cm://ops", wantErr: true},
		{uri: "cm:///seed", wantErr: true},
		{uri: "cm://ops/", wantErr: true},
		{uri: "file://ops/seed", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			ns, name, err := parseConfigMapURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ns, ns)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestFromConfigMap(t *testing.T) {
	cs := fake.NewClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "seed", Namespace: "ops"},
		Data: map[string]string{
			"format":       "yaml",
			"dataset.yaml": "name: from-cm\ncount: 7\n",
			"z.json":       `{"name":"ignored"}`,
		},
	}, &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "empty", Namespace: "ops"},
		Data:       map[string]string{"readme": "nothing here"},
	})

	got, err := fromConfigMap[sample](context.Background(), cs, "ops", "seed")
	require.NoError(t, err)
	assert.Equal(t, "from-cm", got.Name)
	assert.Equal(t, 7, got.Count)

	_, err = fromConfigMap[sample](context.Background(), cs, "ops", "empty")
	require.Error(t, err)

	_, err = fromConfigMap[sample](context.Background(), cs, "ops", "missing")
	require.Error(t, err)
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	cs := fake.NewClientset()
	v := sample{
		Header: header.Header{
			Kind:     header.KindResolution,
			Metadata: map[string]string{"version": "v1.2.3", "timestamp": "2026-01-01T00:00:00Z"},
		},
		Name: "written",
	}

	w := NewConfigMapWriter("ops", "results", FormatYAML).WithClient(cs)
	require.NoError(t, w.Serialize(context.Background(), &v))
	require.NoError(t, w.Close())

	cm, err := cs.CoreV1().ConfigMaps("ops").Get(context.Background(), "results", metav1.GetOptions{})
	require.NoError(t, err)

	kind := strings.ToLower(header.KindResolution.String())
	assert.Contains(t, cm.Data[kind+".yaml"], "name: written")
	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Equal(t, "2026-01-01T00:00:00Z", cm.Data["timestamp"])
	assert.Equal(t, "v1.2.3", cm.Labels["app.kubernetes.io/version"])
	assert.Equal(t, kind, cm.Labels["app.kubernetes.io/component"])
}
