package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatText, true},
		{FormatYAML, true},
		{FormatJSON, true},
		{OutputFormat("table"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		ok    bool
	}{
		{"", FormatText, true},
		{"text", FormatText, true},
		{"YAML", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"json", FormatJSON, true},
		{"xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOutputFormat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type sample struct {
	Name    string   `json:"name"`
	Files   []string `json:"files"`
	Skipped bool     `json:"skipped,omitempty"`
}

func TestWriteStructured(t *testing.T) {
	v := sample{Name: "my-project", Files: []string{"app.go"}}

	t.Run("yaml uses json tags", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteStructured(&buf, FormatYAML, v))
		assert.Equal(t, "files:\n- app.go\nname: my-project\n", buf.String())
	})

	t.Run("json is indented", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteStructured(&buf, FormatJSON, v))
		assert.Contains(t, buf.String(), "\"name\": \"my-project\"")
		assert.NotContains(t, buf.String(), "skipped")
	})

	t.Run("text is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, WriteStructured(&buf, FormatText, v))
	})
}
