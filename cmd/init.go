package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/pkg/config"
	"github.com/erslice/erslice-cli/pkg/ui"
	"github.com/erslice/erslice-cli/pkg/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ErSlice workspace",
	Long: `Initialize the ErSlice workspace directory structure and write a
default configuration file.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to determine workspace paths: %w", err)
	}

	if ws.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.RenderKeyValue("Location", ws.RootPath))
		return nil
	}

	if err := ws.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(ws.ConfigPath); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized"))
	fmt.Println(ui.RenderKeyValue("Design assets", ws.AssetsPath))
	fmt.Println(ui.RenderKeyValue("Output", ws.OutputPath))
	fmt.Println(ui.RenderKeyValue("Config", ws.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Create your first module with: ers new \"User Mgmt\""))

	return nil
}
