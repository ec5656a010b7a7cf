package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var assetType string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage the assets of a design module",
}

var assetsAddCmd = &cobra.Command{
	Use:   "add <module> <file>",
	Short: "Copy a file into a module",
	Long: `Copy a file into a module's subdirectory for its asset type.

Examples:
  ers assets add checkout login.png
  ers assets add checkout layout.html --type html`,
	Args: cobra.ExactArgs(2),
	RunE: runAssetsAdd,
}

var assetsListCmd = &cobra.Command{
	Use:   "list <module>",
	Short: "List the assets stored in a module",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetsList,
}

var assetsRemoveCmd = &cobra.Command{
	Use:     "rm <module> <file>",
	Short:   "Remove an asset from a module",
	Aliases: []string{"remove"},
	Args:    cobra.ExactArgs(2),
	RunE:    runAssetsRemove,
}

func init() {
	assetsAddCmd.Flags().StringVar(&assetType, "type", "screenshots", "Asset type (screenshots, html, css)")
	assetsRemoveCmd.Flags().StringVar(&assetType, "type", "screenshots", "Asset type (screenshots, html, css)")

	assetsCmd.AddCommand(assetsAddCmd)
	assetsCmd.AddCommand(assetsListCmd)
	assetsCmd.AddCommand(assetsRemoveCmd)
}

func runAssetsAdd(cmd *cobra.Command, args []string) error {
	module, file := args[0], args[1]

	stored, err := moduleRepo.UploadAsset(getContext(), module, domain.AssetType(assetType), file)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to add asset"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Added asset to '%s'", module)))
	fmt.Println(ui.RenderKeyValue("Stored at", stored))
	return nil
}

func runAssetsList(cmd *cobra.Command, args []string) error {
	module := args[0]

	assets, err := moduleRepo.ListAssets(getContext(), module)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list assets"))
		return err
	}

	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("No assets in module " + module))
		return nil
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Assets in %s (%d)", module, len(assets))))
	fmt.Println()
	for _, asset := range assets {
		fmt.Printf("  %s %s\n", ui.StyleAccent.Render("•"), asset)
	}
	return nil
}

func runAssetsRemove(cmd *cobra.Command, args []string) error {
	module, file := args[0], args[1]

	if err := moduleRepo.DeleteAsset(getContext(), module, domain.AssetType(assetType), file); err != nil {
		fmt.Println(ui.FormatError("Failed to remove asset"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed %s from '%s'", file, module)))
	return nil
}
