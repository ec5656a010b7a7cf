package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

var newDescription string

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new design module",
	Long: `Create a new design module directory with its standard
subdirectories (screenshots/, html/, css/) and a starter README.

Examples:
  ers new "User Mgmt"
  ers new checkout --desc "Checkout redesign, Q3"`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newDescription, "desc", "", "Module description")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	description := newDescription
	if description == "" {
		description = "Design asset module"
	}

	module, err := moduleRepo.Create(getContext(), name, description)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to create module"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Created module '%s'", module.Name)))
	fmt.Println(ui.RenderKeyValue("Location", appWorkspace.ModulePath(module.Name)))
	fmt.Println(ui.FormatInfo("Add screenshots with: ers assets add " + module.Name + " <file>"))
	return nil
}
