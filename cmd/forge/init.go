// Package main provides the forge CLI command implementations.
//
// Usage:
//
//	forge init [flags]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgebyte/forge/internal/projectfs"
	"github.com/forgebyte/forge/internal/templates"
	"github.com/forgebyte/forge/internal/ui"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap a new boilerplate project",
	Long: `Bootstrap a new project with the boilerplate layout forge expects.

This command creates:
- config/settings.py with the LOCAL_APPS registration anchor
- core/middlewares/request_id.py (per-request ID logging middleware)
- core/services/lockout.py (login-throttling lockout response)
- .env.example, .gitignore, and forge.yaml
- An empty modules/ directory

Example:
  forge init
  forge init --project-name shop`,
	RunE: runInit,
}

var initProjectName string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initProjectName, "project-name", "", "Project name (default: current directory name)")
}

// projectFiles maps bootstrap template paths to their destinations.
var projectFiles = []struct {
	template string
	dest     string
}{
	{"project/settings.py.tmpl", "config/settings.py"},
	{"project/request_id.py.tmpl", "core/middlewares/request_id.py"},
	{"project/lockout.py.tmpl", "core/services/lockout.py"},
	{"project/env.example.tmpl", ".env.example"},
	{"project/gitignore.tmpl", ".gitignore"},
	{"project/forge.yaml.tmpl", "forge.yaml"},
}

// packageDirs are bootstrap directories that must be importable packages.
var packageDirs = []string{
	"config",
	"core",
	"core/middlewares",
	"core/services",
}

// runInit executes the init command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Execution error if any
func runInit(cmd *cobra.Command, args []string) error {
	if initProjectName == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		initProjectName = filepath.Base(wd)
	}

	ui.Info("initializing project: %s", initProjectName)

	fs := projectfs.New(".")
	fs.SetVerbose(ui.Verbose())

	// Refuse to clobber an existing project.
	for _, marker := range []string{"forge.yaml", "config/settings.py"} {
		exists, err := fs.FileExists(marker)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s already exists; refusing to overwrite an existing project", marker)
		}
	}

	loader := templates.NewLoader()
	data := map[string]string{"ProjectName": initProjectName}

	for _, pf := range projectFiles {
		content, err := loader.LoadAndRender(pf.template, data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", pf.template, err)
		}
		if err := fs.WriteFile(pf.dest, content, 0644); err != nil {
			return err
		}
		ui.Item("%s", pf.dest)
	}

	for _, dir := range packageDirs {
		marker := filepath.ToSlash(filepath.Join(dir, "__init__.py"))
		exists, err := fs.FileExists(marker)
		if err != nil {
			return err
		}
		if !exists {
			if err := fs.WriteFile(marker, "", 0644); err != nil {
				return err
			}
			ui.Item("%s", marker)
		}
	}

	if err := fs.CreateDirectory("modules"); err != nil {
		return err
	}
	ui.Item("modules/")

	ui.Success("project %q initialized", initProjectName)
	ui.Info("next: forge create <module_name>")
	return nil
}
