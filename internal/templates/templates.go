// Package templates provides embedded template loading and rendering.
//
// Overview:
//   - Responsibility: Load and render the file templates used for module and
//     project scaffolding
//   - Key Types: Loader over an embedded template filesystem
//   - Concurrency Model: Immutable embedded data, safe for concurrent reads
//   - Error Semantics: Template errors carry the template path
//   - Performance Notes: Templates are parsed per render; scaffolding is a
//     one-shot operation so caching is not worth the complexity
//
// Usage:
//
//	loader := templates.NewLoader()
//	content, err := loader.LoadAndRender("module/apps.py.tmpl", data)
package templates

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*
var templateFS embed.FS

// Loader provides template loading and rendering over the embedded
// template filesystem.
type Loader struct {
	templateDir string
}

// NewLoader creates a new template loader.
func NewLoader() *Loader {
	return &Loader{
		templateDir: "templates",
	}
}

// LoadTemplate loads a template file from the embedded filesystem.
//
// Parameters:
//   - templatePath: Path relative to the templates directory
//
// Returns:
//   - string: Template content
//   - error: Loading error if any
func (l *Loader) LoadTemplate(templatePath string) (string, error) {
	content, err := templateFS.ReadFile(path.Join(l.templateDir, templatePath))
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", templatePath, err)
	}
	return string(content), nil
}

// RenderTemplate renders template content with the provided data.
//
// Parameters:
//   - templateContent: Template text
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: Parse or execution error if any
func (l *Loader) RenderTemplate(templateContent string, data any) (string, error) {
	titleCaser := cases.Title(language.English)
	funcMap := template.FuncMap{
		"ToUpper": strings.ToUpper,
		"ToLower": strings.ToLower,
		"Title":   titleCaser.String,
	}

	tmpl, err := template.New("template").Funcs(funcMap).Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return result.String(), nil
}

// LoadAndRender loads a template and renders it with data.
func (l *Loader) LoadAndRender(templatePath string, data any) (string, error) {
	content, err := l.LoadTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return l.RenderTemplate(content, data)
}

// ListTemplates lists all available template files.
//
// Returns:
//   - []string: Template paths relative to the templates directory
//   - error: Listing error if any
func (l *Loader) ListTemplates() ([]string, error) {
	var templates []string

	err := l.walkTemplates("", func(p string) error {
		if strings.HasSuffix(p, ".tmpl") {
			templates = append(templates, p)
		}
		return nil
	})

	return templates, err
}

// walkTemplates walks the embedded template directory depth-first.
func (l *Loader) walkTemplates(dir string, fn func(string) error) error {
	entries, err := templateFS.ReadDir(path.Join(l.templateDir, dir))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		p := path.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := l.walkTemplates(p, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(p); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAllTemplates checks that every embedded template file loads.
//
// Returns:
//   - error: First template that fails to load
func (l *Loader) ValidateAllTemplates() error {
	templates, err := l.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	for _, templatePath := range templates {
		if _, err := l.LoadTemplate(templatePath); err != nil {
			return fmt.Errorf("template validation failed for %s: %w", templatePath, err)
		}
	}

	return nil
}
