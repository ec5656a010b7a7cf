package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Config file", appWorkspace.ConfigPath))
	fmt.Println(ui.RenderKeyValue("Graph direction", appConfig.GraphDirection))
	fmt.Println(ui.RenderKeyValue("Graph max nodes", strconv.Itoa(appConfig.GraphMaxNodes)))
	fmt.Println(ui.RenderKeyValue("Include HTML", strconv.FormatBool(appConfig.IncludeHTML)))
	fmt.Println(ui.RenderKeyValue("Include CSS", strconv.FormatBool(appConfig.IncludeCSS)))
	fmt.Println(ui.RenderKeyValue("Include responsive", strconv.FormatBool(appConfig.IncludeResponsive)))
	fmt.Println(ui.RenderKeyValue("Color theme", appConfig.ColorTheme))
	fmt.Println(ui.RenderKeyValue("Watch debounce (ms)", strconv.Itoa(appConfig.WatchDebounceMS)))

	if len(appConfig.ModuleRules) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("Custom module rules"))
		for _, rule := range appConfig.ModuleRules {
			fmt.Printf("  %s %s\n", ui.StyleAccent.Render("•"), rule.Label)
		}
	}

	return nil
}
