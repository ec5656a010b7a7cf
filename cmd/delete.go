package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/ui"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <module>",
	Short: "Permanently delete a design module",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !deleteForce {
		fmt.Printf("Delete module '%s' and all its assets? [y/N] ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println(ui.FormatInfo("Aborted"))
			return nil
		}
	}

	if err := moduleRepo.Delete(getContext(), name); err != nil {
		fmt.Println(ui.FormatError("Failed to delete module"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Deleted module '%s'", name)))
	return nil
}
