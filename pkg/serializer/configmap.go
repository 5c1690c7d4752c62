package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/NVIDIA/dashboard-audit/pkg/defaults"
	"github.com/NVIDIA/dashboard-audit/pkg/header"
	"github.com/NVIDIA/dashboard-audit/pkg/k8s/client"
)

const fieldManager = "dashaudit"

// ConfigMapWriter stores serialized documents in a ConfigMap using
// server-side apply.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// NewConfigMapWriter returns a writer for namespace/name. Table output is
// stored as text.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalize(format),
	}
}

// WithClient sets the Kubernetes client instead of resolving the default one.
func (w *ConfigMapWriter) WithClient(c client.Interface) *ConfigMapWriter {
	w.client = c
	return w
}

// Serialize encodes v and applies it to the ConfigMap under
// "<kind>.<ext>", alongside "format" and "timestamp" keys.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs := w.client
	if cs == nil {
		var err error
		if cs, _, err = client.GetKubeClient(); err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	content, err := encode(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kind := "document"
	version := "unknown"
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = strings.ToLower(k.String())
		}
		if md := h.GetMetadata(); md != nil {
			if s, ok := md["version"]; ok {
				version = s
			}
			if s, ok := md["timestamp"]; ok {
				timestamp = s
			}
		}
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "dashaudit",
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			kind + "." + extension(w.format): string(content),
			"format":                         string(w.format),
			"timestamp":                      timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}
	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func extension(f Format) string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

func kubeClient(kubeconfig string) (client.Interface, error) {
	var (
		cs  client.Interface
		err error
	)
	if kubeconfig != "" {
		cs, _, err = client.GetKubeClientWithConfig(kubeconfig)
	} else {
		cs, _, err = client.GetKubeClient()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return cs, nil
}

// fromConfigMap decodes the first JSON or YAML data key of a ConfigMap.
// Keys are tried in sorted order so the pick is stable.
func fromConfigMap[T any](ctx context.Context, cs client.Interface, namespace, name string) (*T, error) {
	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	keys := make([]string, 0, len(cm.Data))
	for k := range cm.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lower := strings.ToLower(k)
		if !strings.HasSuffix(lower, ".yaml") && !strings.HasSuffix(lower, ".yml") && !strings.HasSuffix(lower, ".json") {
			continue
		}
		slog.Debug("reading from ConfigMap",
			"namespace", namespace,
			"name", name,
			"key", k,
			"size", len(cm.Data[k]))
		return decode[T](FormatFromPath(k), strings.NewReader(cm.Data[k]), ConfigMapURIScheme+namespace+"/"+name)
	}

	return nil, fmt.Errorf("ConfigMap %s/%s has no JSON or YAML data", namespace, name)
}

func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
