package cmd

import (
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open [module]",
	Short: "Open a module directory in your file manager",
	Long: `Open a design module's asset directory with the system's default
application. Without an argument, pick the module with a fuzzy finder.

Examples:
  ers open checkout
  ers open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var name string
	if len(args) > 0 {
		name = args[0]
		if !moduleRepo.Exists(ctx, name) {
			fmt.Println(ui.FormatError("Module not found: " + name))
			return fmt.Errorf("module %q does not exist", name)
		}
	} else {
		modules, err := moduleRepo.List(ctx)
		if err != nil {
			return err
		}
		if len(modules) == 0 {
			fmt.Println(ui.FormatWarning("No modules yet. Create one with 'ers new'."))
			return nil
		}

		idx, err := fuzzyfinder.Find(
			modules,
			func(i int) string {
				m := modules[i]
				return fmt.Sprintf("%s  %s  %d assets",
					m.Name,
					m.Description,
					m.AssetCount,
				)
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				m := modules[i]

				var s strings.Builder
				s.WriteString(fmt.Sprintf("Module: %s\n", ui.StyleBold.Render(m.Name)))
				s.WriteString(fmt.Sprintf("Updated: %s\n", m.GetDisplayDate()))
				s.WriteString(fmt.Sprintf("Assets: %d\n", m.AssetCount))
				s.WriteString("\n")

				if m.Description != "" {
					s.WriteString(ui.StyleHeader.Render("Description") + "\n")
					s.WriteString(m.Description + "\n")
				}
				return s.String()
			}),
		)
		if err != nil {
			// Aborting the finder is not an error worth reporting
			if err == fuzzyfinder.ErrAbort {
				return nil
			}
			return err
		}
		name = modules[idx].Name
	}

	path := appWorkspace.ModulePath(name)
	fmt.Println(ui.FormatInfo("Opening: " + path))

	if err := openPath(path); err != nil {
		fmt.Println(ui.FormatError("Failed to open: " + err.Error()))
		return err
	}
	return nil
}
