package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Writer encodes values onto an io.Writer.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer for output, defaulting to stdout and JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format: normalize(format),
		output: output,
	}
}

// NewStdoutWriter returns a Writer for stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout picks the destination from path: empty means stdout,
// cm://namespace/name a ConfigMap, anything else a file. Failures to open the
// destination fall back to stdout.
func NewFileWriterOrStdout(format Format, path string) Serializer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format)
	}

	if strings.HasPrefix(trimmed, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			slog.Error("invalid ConfigMap URI, falling back to stdout", "error", err, "uri", trimmed)
			return NewStdoutWriter(format)
		}
		return NewConfigMapWriter(namespace, name, format)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", trimmed)
		return NewStdoutWriter(format)
	}

	return &Writer{
		format: normalize(format),
		output: file,
		closer: file,
	}
}

func normalize(format Format) Format {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		return FormatJSON
	}
	return format
}

// Close closes the underlying file, if any.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize writes v in the writer's format.
func (w *Writer) Serialize(_ context.Context, v any) error {
	content, err := encode(w.format, v)
	if err != nil {
		return err
	}
	if _, err := w.output.Write(content); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		content, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return append(content, '\n'), nil
	case FormatYAML:
		content, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return content, nil
	case FormatTable:
		return encodeTable(v)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func encodeTable(v any) ([]byte, error) {
	var header []string
	var rows [][]string

	if tr, ok := v.(TableRenderer); ok {
		header, rows = tr.TableRows()
	} else {
		header, rows = flattenRows(v)
	}

	if len(rows) == 0 {
		return []byte("<empty>\n"), nil
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush table: %w", err)
	}
	return []byte(b.String()), nil
}

func flattenRows(v any) ([]string, [][]string) {
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(v), "")

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprintf("%v", flat[k])})
	}
	return []string{"FIELD", "VALUE"}, rows
}

func flattenValue(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	//nolint:exhaustive // remaining kinds are leaf values
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			key := prefix
			if !field.Anonymous {
				key = joinKey(prefix, field.Name)
			}
			flattenValue(out, val.Field(i), key)
		}
	case reflect.Map:
		for _, k := range val.MapKeys() {
			flattenValue(out, val.MapIndex(k), joinKey(prefix, fmt.Sprintf("%v", k.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			flattenValue(out, val.Index(i), fmt.Sprintf("%s[%d]", prefix, i))
		}
	default:
		if prefix == "" {
			prefix = "value"
		}
		out[prefix] = val.Interface()
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
