package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

// Version is set at build time via -ldflags
var Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ers version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", ui.FormatBold("ers"), Version)
	},
}
