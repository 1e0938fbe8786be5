// Package main provides the forge CLI version command.
//
// Usage:
//
//	forge version
//	forge --version
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgebyte/forge/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show forge version information",
	Long: `Display version information for the forge CLI tool.

This command shows:
  • CLI version, git commit hash, and build timestamp
  • Go runtime version`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(version.GetFullVersionInfo())
}
