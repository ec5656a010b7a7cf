package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/services"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var (
	statsListFile string
	statsHTMLOut  string
)

var statsCmd = &cobra.Command{
	Use:   "stats [module]",
	Short: "Show the batch aggregate for a classified batch",
	Long: `Group classified assets by device and by module and report the
batch confidence. With --html, also write a chart report.

Examples:
  ers stats checkout
  ers stats checkout --html report.html
  ers stats --file exported-names.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsListFile, "file", "", "Read filenames from a newline-delimited list file")
	statsCmd.Flags().StringVar(&statsHTMLOut, "html", "", "Write an HTML chart report to this path")
}

func runStats(cmd *cobra.Command, args []string) error {
	filenames, label, err := batchInput(args, statsListFile)
	if err != nil {
		return err
	}

	assets := classifyService.ClassifyBatch(filenames)
	summary := reportService.Summarize(assets)

	fmt.Println(ui.FormatTitle("Batch summary: " + label))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Assets", strconv.Itoa(len(assets))))
	fmt.Println(ui.RenderKeyValue("Confidence", fmt.Sprintf("%.2f", summary.Confidence)))
	fmt.Println()

	fmt.Println(ui.FormatBold("By device"))
	for _, device := range services.DeviceLabels(summary) {
		fmt.Printf("  %s %-10s %d\n", ui.StyleAccent.Render("•"), device, len(summary.Devices[device]))
	}
	fmt.Println()

	fmt.Println(ui.FormatBold("By module"))
	for _, module := range services.ModuleLabels(summary) {
		fmt.Printf("  %s %-18s %d\n", ui.StyleAccent.Render("•"), module, len(summary.Modules[module]))
	}

	if statsHTMLOut != "" {
		out, err := os.Create(statsHTMLOut)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer out.Close()

		if err := chartService.RenderHTML(summary, "ErSlice batch report: "+label, out); err != nil {
			return fmt.Errorf("failed to render chart report: %w", err)
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Chart report written to " + statsHTMLOut))
	}

	return nil
}
