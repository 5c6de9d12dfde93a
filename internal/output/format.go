package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// OutputFormat specifies the output format for command results.
type OutputFormat string

const (
	// FormatText renders human-readable output.
	FormatText OutputFormat = "text"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The boolean is false for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}

// WriteStructured encodes v as YAML or JSON to w.
// v is encoded through its json tags in both formats.
func WriteStructured(w io.Writer, format OutputFormat, v any) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}
