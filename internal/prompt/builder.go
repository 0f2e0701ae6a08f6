package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/curricuforge/internal/domain"
)

//go:embed templates/curriculum.tmpl
var templateFS embed.FS

const defaultTemplateFile = "templates/curriculum.tmpl"

// ErrInvalidTemplate is returned when a prompt template cannot be loaded or
// fails to render a sample request.
var ErrInvalidTemplate = errors.New("invalid prompt template")

// templateData is the value the template is executed against.
type templateData struct {
	Subject  string
	Level    string
	Duration string
	Goal     string
}

// Builder renders curriculum prompts. It is safe for concurrent use.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder returns a Builder using the embedded default template.
func NewBuilder() (*Builder, error) {
	content, err := templateFS.ReadFile(defaultTemplateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return NewBuilderFromText(string(content))
}

// NewBuilderFromFile returns a Builder using the template stored at path.
func NewBuilderFromFile(path string) (*Builder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidTemplate, path, err)
	}
	return NewBuilderFromText(string(content))
}

// NewBuilderFromText parses text as a prompt template. The template is
// test-rendered once so that references to unknown fields fail here rather
// than on the first request.
func NewBuilderFromText(text string) (*Builder, error) {
	tmpl, err := template.New("curriculum").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	b := &Builder{tmpl: tmpl}
	sample := domain.CurriculumRequest{
		Subject:  "sample",
		Level:    domain.DefaultLevel,
		Duration: "1-week",
		Goal:     "sample",
	}
	if _, err := b.Build(sample); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	return b, nil
}

// Build renders the prompt for req. The same request always yields the same
// string. The goal clause is emitted only when req has a goal.
func (b *Builder) Build(req domain.CurriculumRequest) (string, error) {
	data := templateData{
		Subject:  req.Subject,
		Level:    req.Level.String(),
		Duration: req.Duration,
		Goal:     req.Goal,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
