// Package cmd implements the wren-toolbar CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wrenbrowser/toolbarkit/internal/config"
	"github.com/wrenbrowser/toolbarkit/internal/logging"
	"github.com/wrenbrowser/toolbarkit/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wren-toolbar",
	Short: "Toolbar state dispatch for the Wren browser.",
	Long: `Toolbar state dispatch for the Wren browser.

Builds the address and navigation toolbar display models and routes browser
lifecycle events into toolbar state dispatches. The preview command runs a
terminal host exercising the full pipeline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return logging.InitGlobal()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and runs it.
// Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
