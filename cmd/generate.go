package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/services"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var (
	generateAll          bool
	generateNoHTML       bool
	generateNoCSS        bool
	generateNoResponsive bool
)

var generateCmd = &cobra.Command{
	Use:     "generate [module]",
	Short:   "Generate a slice package for a module",
	Aliases: []string{"gen"},
	Long: `Generate the slice package for a module: its assets, an HTML/CSS
scaffold and an AI hand-off spec built from the classified structure.

Examples:
  ers generate checkout
  ers generate --all
  ers generate checkout --no-responsive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Generate packages for every active module")
	generateCmd.Flags().BoolVar(&generateNoHTML, "no-html", false, "Skip the HTML scaffold")
	generateCmd.Flags().BoolVar(&generateNoCSS, "no-css", false, "Skip the CSS scaffold")
	generateCmd.Flags().BoolVar(&generateNoResponsive, "no-responsive", false, "Skip responsive CSS blocks")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	req := services.ScaffoldRequest{
		IncludeHTML:       appConfig.IncludeHTML && !generateNoHTML,
		IncludeCSS:        appConfig.IncludeCSS && !generateNoCSS,
		IncludeResponsive: appConfig.IncludeResponsive && !generateNoResponsive,
	}

	if generateAll {
		results, err := scaffoldService.ExecuteAll(ctx, req)
		if err != nil {
			fmt.Println(ui.FormatError("Slice package generation failed"))
			return err
		}
		for _, result := range results {
			fmt.Println(ui.FormatSuccess("Generated " + result.OutputDir))
		}
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d packages", len(results))))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("specify a module or --all")
	}
	req.Module = args[0]

	result, err := scaffoldService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Slice package generation failed"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Slice package generated"))
	fmt.Println(ui.RenderKeyValue("Output", result.OutputDir))
	fmt.Println(ui.RenderKeyValue("Files", strings.Join(result.Files, ", ")))
	return nil
}
