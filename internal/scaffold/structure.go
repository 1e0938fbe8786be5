package scaffold

import (
	"fmt"
	"path"
	"sort"
)

// PackageMarker is the file whose presence makes a directory an importable
// package in the generated project.
const PackageMarker = "__init__.py"

// Node describes one entry in a module structure template: either a
// directory of further nodes or a leaf file with its initial content.
type Node interface {
	isNode()
}

// Dir is a directory node mapping child names to nodes.
type Dir map[string]Node

// File is a leaf file node holding the file's initial content, written
// verbatim.
type File string

func (Dir) isNode()  {}
func (File) isNode() {}

// moduleStructure returns the structure template for a new module. Every
// directory in the template is an importable package; the walk guarantees
// a package marker even where the template omits one.
func (g *Generator) moduleStructure(name string) (Dir, error) {
	data := map[string]string{
		"Name":      name,
		"ClassName": ClassName(name),
	}

	appsPy, err := g.loader.LoadAndRender("module/apps.py.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render apps.py: %w", err)
	}

	modelsInit, err := g.loader.LoadAndRender("module/models_init.py.tmpl", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to render models __init__.py: %w", err)
	}

	return Dir{
		"delivery": Dir{
			PackageMarker:    File(""),
			"api.py":         File("#write API endpoints and controllers here."),
			"schemas.py":     File("#write ninja schemas here"),
			"middlewares.py": File("#write your api middlewares here if needed"),
		},
		"repository": Dir{},
		"services":   Dir{},
		"usecases":   Dir{},
		"models": Dir{
			PackageMarker: File(modelsInit),
		},
		"migrations":  Dir{},
		PackageMarker: File(""),
		"apps.py":     File(appsPy),
	}, nil
}

// walk visits the structure depth-first with directories created before the
// files inside them. Child names are visited in sorted order so the created
// path list is deterministic. The dir callback receives every directory
// path, the file callback every file path with its content.
func walk(root string, structure Dir, dir func(path string) error, file func(path, content string) error) error {
	if err := dir(root); err != nil {
		return err
	}

	names := make([]string, 0, len(structure))
	for name := range structure {
		names = append(names, name)
	}
	sort.Strings(names)

	// Package-marker guarantee: every directory acts as an importable
	// package, created empty when the template omits it.
	if _, ok := structure[PackageMarker]; !ok {
		if err := file(path.Join(root, PackageMarker), ""); err != nil {
			return err
		}
	}

	for _, name := range names {
		child := path.Join(root, name)
		switch node := structure[name].(type) {
		case Dir:
			if err := walk(child, node, dir, file); err != nil {
				return err
			}
		case File:
			if err := file(child, string(node)); err != nil {
				return err
			}
		}
	}

	return nil
}
