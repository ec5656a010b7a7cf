package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

var (
	mermaidHTML bool
	mermaidCopy bool
	mermaidOut  string
)

var mermaidCmd = &cobra.Command{
	Use:   "mermaid",
	Short: "Generate the project sitemap as a mermaid flowchart",
	Long: `Render every module's classified structure as one mermaid
flowchart.

Examples:
  ers mermaid
  ers mermaid --html --out sitemap.html
  ers mermaid --copy`,
	RunE: runMermaid,
}

func init() {
	mermaidCmd.Flags().BoolVar(&mermaidHTML, "html", false, "Wrap the chart in a standalone HTML page")
	mermaidCmd.Flags().BoolVar(&mermaidCopy, "copy", false, "Copy the output to the clipboard")
	mermaidCmd.Flags().StringVar(&mermaidOut, "out", "", "Write the output to this path")
}

func runMermaid(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var output string
	var err error
	if mermaidHTML {
		output, err = mermaidService.GenerateHTML(ctx)
	} else {
		output, err = mermaidService.GenerateFlowchart(ctx)
	}
	if err != nil {
		fmt.Println(ui.FormatError("Sitemap generation failed"))
		return err
	}

	if mermaidOut != "" {
		if err := os.WriteFile(mermaidOut, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", mermaidOut, err)
		}
		fmt.Println(ui.FormatSuccess("Sitemap written to " + mermaidOut))
	} else {
		fmt.Print(output)
	}

	if mermaidCopy {
		if err := clipboard.WriteAll(output); err != nil {
			fmt.Println(ui.FormatWarning("Failed to copy to clipboard"))
		} else {
			fmt.Println(ui.FormatInfo("Copied to clipboard"))
		}
	}

	return nil
}
