// Package scaffold provides module scaffolding for forge projects.
//
// Overview:
//   - Responsibility: Materialize a new module's file tree from the structure
//     template and register it in the project settings file, exactly once
//   - Key Types: Generator for module creation, Node/Dir/File structure
//     template, Result with the created paths
//   - Concurrency Model: Single-threaded, one-shot CLI invocations; two
//     concurrent invocations race on directory creation and on the settings
//     read-modify-write with no locking
//   - Error Semantics: Structured errors with codes (INVALID_NAME,
//     ALREADY_EXISTS, ANCHOR_NOT_FOUND, IO_FAILURE); duplicate registration
//     is a warning, not a failure
//   - Performance Notes: Plain file I/O, no caching between invocations
//
// Known limitation, preserved deliberately: tree creation and settings
// registration are not transactional. When registration fails the created
// tree stays on disk and a retry fails with ALREADY_EXISTS until the
// operator removes the partial tree.
//
// Usage:
//
//	gen := scaffold.New(fs, config)
//	result, err := gen.CreateModule("billing")
package scaffold

import (
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/forgebyte/forge/internal/configschema"
	"github.com/forgebyte/forge/internal/errs"
	"github.com/forgebyte/forge/internal/projectfs"
	"github.com/forgebyte/forge/internal/settings"
	"github.com/forgebyte/forge/internal/templates"
	"github.com/forgebyte/forge/internal/ui"
)

// Generator creates modules inside a forge project.
type Generator struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	config *configschema.Config
}

// Result reports the outcome of a module creation.
type Result struct {
	Name         string   // Module name
	ClassName    string   // Generated configuration class name
	CreatedPaths []string // Project-relative paths created, in creation order
	Registered   bool     // Whether the settings entry was inserted
}

// ModuleStatus describes one module found under the modules root.
type ModuleStatus struct {
	Name       string // Module directory name
	Registered bool   // Whether the settings document mentions it
}

// New creates a module generator for the project rooted at fs.
//
// Parameters:
//   - fs: Project file system
//   - config: Project configuration
//
// Returns:
//   - *Generator: Generator instance
func New(fs *projectfs.ProjectFS, config *configschema.Config) *Generator {
	return &Generator{
		fs:     fs,
		loader: templates.NewLoader(),
		config: config,
	}
}

// CreateModule creates the module's file tree and registers it in the
// settings document.
//
// The operation validates the name before any filesystem mutation, refuses
// to touch an existing module directory, creates the structure template
// depth-first, and finally splices the registration entry after the anchor
// line. A module already mentioned in the settings document is reported
// with a warning and left unregistered.
//
// Parameters:
//   - name: Module name, a valid identifier
//
// Returns:
//   - *Result: Created paths and registration outcome
//   - error: Structured error terminating the operation
func (g *Generator) CreateModule(name string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	moduleDir := path.Join(g.config.ModulesDir, name)

	dirExists, err := g.fs.DirectoryExists(moduleDir)
	if err != nil {
		return nil, errs.Wrap(errs.CodeIOFailure, "scaffold.CreateModule", err)
	}
	fileExists, err := g.fs.FileExists(moduleDir)
	if err != nil {
		return nil, errs.Wrap(errs.CodeIOFailure, "scaffold.CreateModule", err)
	}
	if dirExists || fileExists {
		return nil, errs.Newf(errs.CodeAlreadyExists, "module %q already exists at %s", name, moduleDir)
	}

	structure, err := g.moduleStructure(name)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:      name,
		ClassName: ClassName(name),
	}

	ui.Info("creating module: %s", name)

	err = walk(moduleDir, structure,
		func(p string) error {
			if err := g.fs.CreateDirectory(p); err != nil {
				return err
			}
			result.CreatedPaths = append(result.CreatedPaths, p)
			return nil
		},
		func(p, content string) error {
			if err := g.fs.WriteFile(p, content, 0644); err != nil {
				return err
			}
			result.CreatedPaths = append(result.CreatedPaths, p)
			return nil
		},
	)
	if err != nil {
		return nil, errs.Wrapf(errs.CodeIOFailure, "scaffold.CreateModule", err, "failed to create module structure at %s", moduleDir)
	}

	ui.Success("module structure created")

	// The tree already created above is intentionally not rolled back when
	// registration fails; see the package comment.
	registered, err := g.register(name)
	if err != nil {
		return nil, err
	}
	result.Registered = registered

	if registered {
		ui.Success("module registered in %s", g.config.SettingsFile)
	}

	return result, nil
}

// register splices the registration entry for name into the settings
// document. Returns false without modifying the document when the module is
// already mentioned.
func (g *Generator) register(name string) (bool, error) {
	doc, err := settings.Load(g.fs.Abs(g.config.SettingsFile))
	if err != nil {
		return false, err
	}

	anchorIndex, err := doc.AnchorIndex(g.config.Anchor)
	if err != nil {
		return false, err
	}

	// Duplicate-registration guard. Substring match over existing lines
	// only: a soft heuristic, not a structural guarantee.
	if doc.Mentions(name) {
		ui.Warning("module %q is already registered in %s", name, g.config.SettingsFile)
		return false, nil
	}

	entry, err := g.renderEntry(name)
	if err != nil {
		return false, err
	}

	doc.InsertAfter(anchorIndex, entry)
	if err := doc.Save(); err != nil {
		return false, err
	}

	return true, nil
}

// renderEntry renders the configured registration entry template.
func (g *Generator) renderEntry(name string) (string, error) {
	tmpl, err := template.New("entry").Parse(g.config.EntryTemplate)
	if err != nil {
		return "", fmt.Errorf("invalid entry template: %w", err)
	}

	var entry strings.Builder
	err = tmpl.Execute(&entry, map[string]string{
		"Name":      name,
		"ClassName": ClassName(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render entry template: %w", err)
	}

	return entry.String(), nil
}

// Modules scans the modules root and reports each module directory together
// with its registration status in the settings document.
//
// Returns:
//   - []ModuleStatus: Modules in directory order
//   - error: IO_FAILURE when the modules root or settings file is unreadable
func (g *Generator) Modules() ([]ModuleStatus, error) {
	exists, err := g.fs.DirectoryExists(g.config.ModulesDir)
	if err != nil {
		return nil, errs.Wrap(errs.CodeIOFailure, "scaffold.Modules", err)
	}
	if !exists {
		return nil, nil
	}

	names, err := g.fs.ListDirectories(g.config.ModulesDir)
	if err != nil {
		return nil, errs.Wrap(errs.CodeIOFailure, "scaffold.Modules", err)
	}

	doc, err := settings.Load(g.fs.Abs(g.config.SettingsFile))
	if err != nil {
		return nil, err
	}

	statuses := make([]ModuleStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, ModuleStatus{
			Name:       name,
			Registered: doc.Mentions(name),
		})
	}

	return statuses, nil
}
