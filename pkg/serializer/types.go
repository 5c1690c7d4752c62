package serializer

import (
	"context"
	"log/slog"
	"strings"
)

// Format is an output or input encoding.
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

// ConfigMapURIScheme prefixes Kubernetes ConfigMap locations (cm://namespace/name).
const ConfigMapURIScheme = "cm://"

// Serializer writes a value to some destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers holding resources.
type Closer interface {
	Close() error
}

// TableRenderer lets a value control its own table layout instead of the
// generic field/value flattening.
type TableRenderer interface {
	TableRows() (header []string, rows [][]string)
}

func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns the names of all formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}
