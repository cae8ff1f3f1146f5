package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrenbrowser/toolbarkit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wren-toolbar version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wren-toolbar v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
