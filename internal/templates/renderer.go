package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Renderer handles template rendering with data substitution.
// Missing keys are errors so typos in templates fail loudly.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(content string) (string, error) {
	result, err := r.RenderFile("string", []byte(content))
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// RenderPath renders the template expressions in a slash-separated path.
// Paths without expressions are returned as is.
func (r *Renderer) RenderPath(path string) (string, error) {
	if !bytes.Contains([]byte(path), []byte("{{")) {
		return path, nil
	}
	rendered, err := r.RenderFile(path, []byte(path))
	if err != nil {
		return "", err
	}
	if len(rendered) == 0 {
		return "", fmt.Errorf("path %s renders to an empty name", path)
	}
	return string(rendered), nil
}
