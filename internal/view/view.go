package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/phrazzld/curricuforge/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// FormPage is the data behind the input form. Field values are echoed back
// so a rejected submission does not lose what the user typed.
type FormPage struct {
	Subject  string
	Level    string
	Duration string
	Goal     string
	Levels   []domain.Level
	Error    string
}

// ResultPage is the data behind the result page. Exactly one of Curriculum
// and Error is expected to be set.
type ResultPage struct {
	Subject    string
	Level      string
	Duration   string
	Goal       string
	Curriculum template.HTML
	Error      string
	TraceID    string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	form   *template.Template
	result *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	form, err := template.ParseFS(templateFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse form template: %w", err)
	}

	result, err := template.ParseFS(templateFS, "templates/layout.html", "templates/result.html")
	if err != nil {
		return nil, fmt.Errorf("parse result template: %w", err)
	}

	return &Renderer{form: form, result: result}, nil
}

// Form renders the input form. A blank level selects the default.
func (r *Renderer) Form(w io.Writer, page FormPage) error {
	if page.Levels == nil {
		page.Levels = domain.Levels()
	}
	if level, ok := domain.ParseLevel(page.Level); ok {
		page.Level = level.String()
	} else if page.Level == "" {
		page.Level = domain.DefaultLevel.String()
	}
	return execute(w, r.form, page)
}

// Result renders the result page.
func (r *Renderer) Result(w io.Writer, page ResultPage) error {
	return execute(w, r.result, page)
}

// execute renders into a buffer first so a template error never leaves a
// half-written page on w.
func execute(w io.Writer, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
