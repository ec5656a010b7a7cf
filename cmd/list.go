package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var listArchived bool

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List design modules",
	Aliases: []string{"ls"},
	Long: `List design modules in a table format.

Examples:
  ers list
  ers list --archived`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "List archived modules instead of active ones")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var modules []domain.DesignModule
	var err error
	if listArchived {
		modules, err = moduleRepo.ListArchived(ctx)
	} else {
		modules, err = moduleRepo.List(ctx)
	}
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list modules"))
		return err
	}

	if len(modules) == 0 {
		if listArchived {
			fmt.Println(ui.FormatWarning("No archived modules"))
		} else {
			fmt.Println(ui.FormatWarning("No modules found"))
			fmt.Println(ui.FormatInfo("Create your first module with: ers new \"My Module\""))
		}
		return nil
	}

	if listArchived {
		fmt.Println(ui.FormatTitle("Archived modules"))
	} else {
		fmt.Println(ui.FormatTitle("Modules"))
	}
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 25, Align: "left"},
		{Header: "Assets", Width: 6, Align: "right"},
		{Header: "Updated", Width: 16, Align: "left"},
		{Header: "Description", Width: 35, Align: "left"},
	})
	table.MaxWidth = appConfig.TableWidth

	for _, module := range modules {
		table.AddRow([]string{
			truncate(module.Name, 25),
			strconv.Itoa(module.AssetCount),
			module.GetDisplayDate(),
			truncate(module.Description, 35),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d modules", len(modules))))

	return nil
}
