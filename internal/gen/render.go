package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

//go:embed templates/kind.go.tmpl
var kindTemplate string

// Renderer turns a Spec into gofmt'ed Go source.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded kind template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("kind").Parse(kindTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: parse template: %w", ErrRender, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template for s and formats the result.
// It is safe for concurrent use.
func (r *Renderer) Render(s Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, s.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, s.Name, err)
	}
	return src, nil
}

// FileName returns the name of the generated file for s, e.g. "negint_gen.go".
func FileName(s Spec) string {
	return strings.ToLower(s.Name) + "_gen.go"
}
