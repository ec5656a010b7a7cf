package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <module>",
	Short: "Archive a design module",
	Long:  `Move a module out of the active set without deleting its assets.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := moduleRepo.Archive(getContext(), name); err != nil {
			fmt.Println(ui.FormatError("Failed to archive module"))
			return err
		}
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Archived module '%s'", name)))
		return nil
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive <module>",
	Short: "Restore an archived design module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := moduleRepo.Unarchive(getContext(), name); err != nil {
			fmt.Println(ui.FormatError("Failed to unarchive module"))
			return err
		}
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Restored module '%s'", name)))
		return nil
	},
}
