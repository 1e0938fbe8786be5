// Package main provides the forge CLI command implementations.
//
// Usage:
//
//	forge create <module_name>
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgebyte/forge/internal/configschema"
	"github.com/forgebyte/forge/internal/projectfs"
	"github.com/forgebyte/forge/internal/scaffold"
	"github.com/forgebyte/forge/internal/ui"
)

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:   "create <module_name>",
	Short: "Create a new module and register it in settings",
	Long: `Create a new module under the modules directory and register it in the
project settings file.

This command generates:
- The module directory structure (delivery, repository, services,
  usecases, models, migrations) with package markers
- A templated apps.py configuration class named after the module
- One registration entry spliced after the settings anchor line

The module name must be a valid identifier. Creation is rejected when the
module directory already exists; a module already mentioned in the settings
file is created on disk but reported with a warning instead of being
registered twice.

Examples:
  forge create billing
  forge create user_accounts`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

// runCreate executes the create command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments, exactly one module name
//
// Returns:
//   - error: Execution error if any
func runCreate(cmd *cobra.Command, args []string) error {
	// Module names are lowercased before validation, matching the
	// generated 'modules.<name>' import path convention.
	name := strings.ToLower(args[0])

	config, diags := configschema.LoadOrDefault(configschema.DefaultFileName)
	if diags.HasErrors() {
		reportDiagnostics(diags)
		return fmt.Errorf("invalid %s", configschema.DefaultFileName)
	}

	fs := projectfs.New(".")
	fs.SetVerbose(ui.Verbose())

	gen := scaffold.New(fs, config)
	result, err := gen.CreateModule(name)
	if err != nil {
		return err
	}

	ui.Info("created paths:")
	for _, p := range result.CreatedPaths {
		ui.Item("%s", p)
	}

	if result.Registered {
		ui.Success("module %q created and registered", result.Name)
	} else {
		ui.Success("module %q created", result.Name)
	}

	return nil
}

// reportDiagnostics prints configuration diagnostics through the ui layer.
func reportDiagnostics(diags *configschema.Diagnostics) {
	for _, d := range diags.Items() {
		text := d.Message
		if d.Path != "" {
			text = fmt.Sprintf("%s (%s)", text, d.Path)
		}
		if d.Suggestion != "" {
			text = fmt.Sprintf("%s: %s", text, d.Suggestion)
		}
		if d.Severity == configschema.SeverityError {
			ui.Error("%s", text)
		} else {
			ui.Warning("%s", text)
		}
	}
}
