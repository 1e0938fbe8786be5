// Package main provides the forge CLI command implementations.
//
// Usage:
//
//	forge list
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgebyte/forge/internal/configschema"
	"github.com/forgebyte/forge/internal/projectfs"
	"github.com/forgebyte/forge/internal/scaffold"
	"github.com/forgebyte/forge/internal/ui"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules and their registration status",
	Long: `List every module under the modules directory together with whether the
settings document mentions it.

The registration check is the same substring heuristic the create command
uses as its duplicate guard, so a module name contained in another entry
shows as registered.

Example:
  forge list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	config, diags := configschema.LoadOrDefault(configschema.DefaultFileName)
	if diags.HasErrors() {
		reportDiagnostics(diags)
		return fmt.Errorf("invalid %s", configschema.DefaultFileName)
	}

	fs := projectfs.New(".")
	fs.SetVerbose(ui.Verbose())

	gen := scaffold.New(fs, config)
	modules, err := gen.Modules()
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		ui.Info("no modules found under %s/", config.ModulesDir)
		return nil
	}

	ui.Info("modules under %s/:", config.ModulesDir)
	for _, m := range modules {
		status := "registered"
		if !m.Registered {
			status = "NOT registered"
		}
		ui.Item("%-24s %s", m.Name, status)
	}

	return nil
}
