package layout

import (
	"fmt"
	"io"
	"text/template"

	"github.com/jmylchreest/frame/internal/colour"
)

// TemplateData is passed to layout templates.
type TemplateData struct {
	// Content is the page content being wrapped.
	Content string
}

// TemplateLayout is a Layout rendered from a text/template.
type TemplateLayout struct {
	name string
	tmpl *template.Template
}

// NewTemplateLayout parses text as a layout template.
func NewTemplateLayout(name string, text []byte) (*TemplateLayout, error) {
	tmpl, err := template.New(name).Funcs(TemplateFuncs()).Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout template %q: %w", name, err)
	}
	return &TemplateLayout{name: name, tmpl: tmpl}, nil
}

// Name returns the template name.
func (t *TemplateLayout) Name() string {
	return t.name
}

// Wrap executes the template with content.
func (t *TemplateLayout) Wrap(w io.Writer, content []byte) error {
	if err := t.tmpl.Execute(w, TemplateData{Content: string(content)}); err != nil {
		return fmt.Errorf("failed to execute layout template %q: %w", t.name, err)
	}
	return nil
}

// TemplateFuncs returns the functions available to layout templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// textColour picks a readable normal-size text colour for bg.
		"textColour": func(bg string, candidates ...string) (string, error) {
			return colour.PickAccessibleTextColour(bg, candidates, false)
		},
		"largeTextColour": func(bg string, candidates ...string) (string, error) {
			return colour.PickAccessibleTextColour(bg, candidates, true)
		},
		"contrast": func(a, b string) (string, error) {
			r, err := colour.ContrastRatio(a, b)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%.2f", r), nil
		},
		"hex": func(s string) (string, error) {
			return colour.ParseColour(s)
		},
	}
}
