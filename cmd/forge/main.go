// Package main provides the forge CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit codes and user-friendly error messages
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	forge [command] [flags]
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/forgebyte/forge/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Module scaffolding for Django-style project boilerplates",
	Long: `forge manages the module layout of a Django-style project boilerplate.

This tool provides commands for:
- Bootstrapping a new boilerplate project (settings, middleware, env)
- Scaffolding feature modules from the structure template
- Registering modules in the project settings file
- Listing modules and diagnosing scaffolding health

Commands run against the project in the current directory. An optional
forge.yaml at the project root overrides the modules directory, settings
file, anchor line, and registration entry template.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute runs the root command and maps failures to a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func main() {
	Execute()
}
