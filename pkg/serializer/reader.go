package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader decodes JSON or YAML documents.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader returns a Reader over input.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Deserialize decodes the next document into v.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close closes the input if it is closable. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a T from a file path, an http(s) URL, or a ConfigMap URI
// using the default kubeconfig resolution.
func FromFile[T any](path string) (*T, error) {
	return FromFileWithKubeconfig[T](context.Background(), path, "")
}

// FromFileWithKubeconfig is FromFile with an explicit kubeconfig for
// ConfigMap sources.
func FromFileWithKubeconfig[T any](ctx context.Context, path, kubeconfig string) (*T, error) {
	switch {
	case strings.HasPrefix(path, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(path)
		if err != nil {
			return nil, fmt.Errorf("invalid ConfigMap URI: %w", err)
		}
		cs, err := kubeClient(kubeconfig)
		if err != nil {
			return nil, err
		}
		return fromConfigMap[T](ctx, cs, namespace, name)

	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		data, err := NewHttpReader().ReadWithContext(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to download %q: %w", path, err)
		}
		return decode[T](FormatFromPath(path), bytes.NewReader(data), path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close file", "error", closeErr, "path", path)
		}
	}()

	return decode[T](FormatFromPath(path), file, path)
}

func decode[T any](format Format, input io.Reader, source string) (*T, error) {
	r, err := NewReader(format, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", source, err)
	}

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", source, err)
	}

	slog.Debug("loaded object", "source", source, "format", format)
	return &out, nil
}
