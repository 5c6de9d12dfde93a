package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/cookie/internal/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap marks validation errors for exit code mapping.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema.LookupPath(cue.ParsePath("#Config")),
	}, nil
}

// ValidateBytes validates raw YAML configuration.
// Unknown fields, wrong types and out-of-range values are all reported.
func (v *Validator) ValidateBytes(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Field: "(file)", Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	value := v.ctx.Encode(doc)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	err := v.schema.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   fieldPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}
	return errs
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return oerrors.NewNotFoundError("configuration file not found", path,
				"Run 'cookie config init' to create a default configuration.")
		}
		return oerrors.NewFilesystemError("read", path, err)
	}
	return v.ValidateBytes(data)
}

// fieldPath joins a CUE error path, dropping the schema definition name.
func fieldPath(path []string) string {
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, ".")
}
