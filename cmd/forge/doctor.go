// Package main provides the forge CLI command implementations.
//
// Usage:
//
//	forge doctor
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgebyte/forge/internal/configschema"
	"github.com/forgebyte/forge/internal/projectfs"
	"github.com/forgebyte/forge/internal/settings"
	"github.com/forgebyte/forge/internal/templates"
	"github.com/forgebyte/forge/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose project scaffolding health",
	Long: `Perform diagnostics of the project's scaffolding state.

This command verifies:
  • forge.yaml validity (when present)
  • Settings file presence and the registration anchor line
  • Modules root directory
  • Package markers and apps.py in every module
  • Registration status of every module
  • Embedded template integrity

Example:
  forge doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor executes the doctor command.
//
// Returns:
//   - error: Non-nil when any error-severity check fails, mapping the
//     command to a non-zero exit code
func runDoctor(cmd *cobra.Command, args []string) error {
	ui.Info("forge project diagnostics")
	ui.Info("")

	hasErrors := false
	hasWarnings := false

	// Configuration
	ui.Info("Configuration")
	config, diags := configschema.LoadOrDefault(configschema.DefaultFileName)
	if diags.HasErrors() {
		ui.Error("  [x] forge.yaml is invalid")
		reportDiagnostics(diags)
		hasErrors = true
		config = configschema.Default()
	} else {
		ui.Success("  [+] configuration (modules_dir=%s, settings_file=%s)", config.ModulesDir, config.SettingsFile)
	}

	fs := projectfs.New(".")

	// Settings document
	ui.Info("Settings document")
	settingsOK := false
	if exists, err := fs.FileExists(config.SettingsFile); err != nil || !exists {
		ui.Error("  [x] settings file %s not found", config.SettingsFile)
		hasErrors = true
	} else {
		ui.Success("  [+] settings file %s", config.SettingsFile)
		doc, err := settings.Load(fs.Abs(config.SettingsFile))
		if err != nil {
			ui.Error("  [x] settings file unreadable: %v", err)
			hasErrors = true
		} else if _, err := doc.AnchorIndex(config.Anchor); err != nil {
			ui.Error("  [x] anchor line %q not found", config.Anchor)
			hasErrors = true
		} else {
			ui.Success("  [+] anchor line %q", config.Anchor)
			settingsOK = true
		}
	}

	// Modules root
	ui.Info("Modules")
	if exists, err := fs.DirectoryExists(config.ModulesDir); err != nil || !exists {
		ui.Warning("  [!] modules root %s/ does not exist yet", config.ModulesDir)
		hasWarnings = true
	} else if err := checkModules(fs, config, settingsOK, &hasErrors, &hasWarnings); err != nil {
		ui.Error("  [x] failed to inspect modules: %v", err)
		hasErrors = true
	}

	// Embedded templates
	ui.Info("Templates")
	if err := templates.NewLoader().ValidateAllTemplates(); err != nil {
		ui.Error("  [x] embedded templates: %v", err)
		hasErrors = true
	} else {
		ui.Success("  [+] embedded templates")
	}

	ui.Info("")
	switch {
	case hasErrors:
		return fmt.Errorf("diagnostics found errors")
	case hasWarnings:
		ui.Warning("diagnostics completed with warnings")
		return nil
	default:
		ui.Success("all diagnostics passed")
		return nil
	}
}

// checkModules inspects every module directory for its package marker,
// apps.py, and registration entry.
func checkModules(fs *projectfs.ProjectFS, config *configschema.Config, settingsOK bool, hasErrors, hasWarnings *bool) error {
	names, err := fs.ListDirectories(config.ModulesDir)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		ui.Info("  no modules yet")
		return nil
	}

	var doc *settings.Document
	if settingsOK {
		doc, err = settings.Load(fs.Abs(config.SettingsFile))
		if err != nil {
			return err
		}
	}

	for _, name := range names {
		moduleDir := filepath.ToSlash(filepath.Join(config.ModulesDir, name))
		moduleOK := true

		for _, required := range []string{"__init__.py", "apps.py"} {
			p := moduleDir + "/" + required
			exists, err := fs.FileExists(p)
			if err != nil {
				return err
			}
			if !exists {
				ui.Error("  [x] %s: missing %s", name, required)
				*hasErrors = true
				moduleOK = false
			}
		}

		if doc != nil && !doc.Mentions(name) {
			ui.Warning("  [!] %s: not registered in %s", name, config.SettingsFile)
			*hasWarnings = true
			moduleOK = false
		}

		if moduleOK {
			ui.Success("  [+] %s", name)
		}
	}

	return nil
}
