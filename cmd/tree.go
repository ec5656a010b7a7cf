package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var (
	treeListFile string
	treeRaw      bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [module]",
	Short: "Show the inferred folder structure of a batch",
	Long: `Infer the folder hierarchy of a batch of asset filenames and print
the optimized tree. Use --raw to skip pruning and sibling merging.

Examples:
  ers tree checkout
  ers tree --file exported-names.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeListFile, "file", "", "Read filenames from a newline-delimited list file")
	treeCmd.Flags().BoolVar(&treeRaw, "raw", false, "Show the unoptimized tree")
}

func runTree(cmd *cobra.Command, args []string) error {
	filenames, label, err := batchInput(args, treeListFile)
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		fmt.Println(ui.FormatWarning("Nothing to build a structure from"))
		return nil
	}

	tree := structureService.Build(filenames)
	if !treeRaw {
		structureService.Optimize(tree)
	}

	fmt.Println(ui.FormatTitle("Structure: " + label))
	fmt.Println()
	printTree(tree, "")
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d nodes, %d assets",
		tree.CountNodes()-1, tree.CountAssets())))

	return nil
}

// printTree renders the folder hierarchy with box-drawing connectors
func printTree(node *domain.FolderStructure, prefix string) {
	entries := len(node.Children) + len(node.Assets)
	drawn := 0

	for _, child := range node.Children {
		drawn++
		connector, childPrefix := connectors(prefix, drawn == entries)

		label := ui.FormatBold(child.Name) + ui.FormatMuted(" ("+string(child.Role)+")")
		if child.Metadata.State != "" {
			label += " " + ui.StyleWarning.Render("["+child.Metadata.State+"]")
		}
		if child.Metadata.ComponentType != "" {
			label += " " + ui.StyleAccent.Render("<"+child.Metadata.ComponentType+">")
		}
		fmt.Println(prefix + connector + label)

		printTree(child, childPrefix)
	}

	for _, asset := range node.Assets {
		drawn++
		connector, _ := connectors(prefix, drawn == entries)
		fmt.Println(prefix + connector + asset)
	}
}

func connectors(prefix string, last bool) (connector, childPrefix string) {
	if last {
		return "└── ", prefix + "    "
	}
	return "├── ", prefix + "│   "
}

// batchInput resolves tree/stats input: a module's stored assets or a list file
func batchInput(args []string, listFile string) (filenames []string, label string, err error) {
	if listFile != "" {
		filenames, err = readListFile(listFile)
		return filenames, listFile, err
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("specify a module or --file")
	}

	module := args[0]

	// Prefer the saved manifest so the structure matches the last import;
	// fall back to the live directory listing.
	assets, err := manifestRepo.Load(getContext(), module)
	if err == nil && len(assets) > 0 {
		for _, asset := range assets {
			filenames = append(filenames, asset.OriginalName)
		}
		return filenames, module, nil
	}

	filenames, err = moduleRepo.ListAssets(getContext(), module)
	return filenames, module, err
}
