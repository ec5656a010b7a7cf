package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/services"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var importListFile string

var importCmd = &cobra.Command{
	Use:   "import [module]",
	Short: "Classify a batch of asset filenames",
	Long: `Classify asset filenames along device, module, page and state,
and persist the classification manifest when a module is given.

The batch comes from the module's stored assets, or from a newline-
delimited list file.

Examples:
  ers import checkout
  ers import --file exported-names.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importListFile, "file", "", "Read filenames from a newline-delimited list file")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	module, filenames, err := resolveBatch(args)
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		fmt.Println(ui.FormatWarning("Nothing to classify"))
		return nil
	}

	result, err := importService.Execute(ctx, services.ImportRequest{
		Module:    module,
		Filenames: filenames,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Import failed"))
		return err
	}

	fmt.Println(ui.FormatTitle("Classification"))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 35, Align: "left"},
		{Header: "Device", Width: 8, Align: "left"},
		{Header: "Module", Width: 16, Align: "left"},
		{Header: "Page", Width: 8, Align: "left"},
		{Header: "State", Width: 8, Align: "left"},
		{Header: "Scale", Width: 6, Align: "left"},
		{Header: "Conf", Width: 5, Align: "right"},
	})
	table.MaxWidth = appConfig.TableWidth
	for _, asset := range result.Assets {
		table.AddRow([]string{
			truncate(asset.OriginalName, 35),
			string(asset.Device),
			string(asset.Module),
			string(asset.Page),
			string(asset.State),
			string(asset.Scale),
			fmt.Sprintf("%.2f", asset.Confidence),
		})
	}
	fmt.Print(table.Render())
	fmt.Println()

	fmt.Println(ui.FormatMuted(fmt.Sprintf("Classified %d assets, batch confidence %.2f",
		len(result.Assets), result.Summary.Confidence)))
	if module != "" {
		fmt.Println(ui.FormatSuccess("Manifest saved for module " + module))
	}

	return nil
}

// resolveBatch determines the input filenames: a module's stored assets, or
// a newline-delimited list file
func resolveBatch(args []string) (module string, filenames []string, err error) {
	if importListFile != "" {
		filenames, err = readListFile(importListFile)
		return "", filenames, err
	}

	if len(args) == 0 {
		return "", nil, fmt.Errorf("specify a module or --file")
	}

	module = args[0]
	filenames, err = moduleRepo.ListAssets(getContext(), module)
	if err != nil {
		return "", nil, err
	}
	return module, filenames, nil
}

// readListFile reads one filename per line, skipping blanks
func readListFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}
	return names, nil
}
