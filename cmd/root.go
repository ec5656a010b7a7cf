package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/adapters/repository"
	"github.com/erslice/erslice-cli/internal/core/services"
	"github.com/erslice/erslice-cli/pkg/config"
	"github.com/erslice/erslice-cli/pkg/ui"
	"github.com/erslice/erslice-cli/pkg/workspace"
)

var (
	// Global workspace instance
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Repositories
	moduleRepo   *repository.FileModuleRepository
	manifestRepo *repository.FileManifestRepository

	// Services
	classifyService  *services.ClassifyService
	structureService *services.StructureService
	reportService    *services.ReportService
	importService    *services.ImportService
	scaffoldService  *services.ScaffoldService
	mermaidService   *services.MermaidService
	chartService     *services.ChartService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ers",
	Short: "ErSlice - design asset classifier and slice package generator",
	Long: ui.FormatTitle("ErSlice") + " - Design Asset Manager\n\n" +
		"Classifies design-asset filenames along device, module, page and state,\n" +
		"infers the folder structure of a batch, and generates front-end slice\n" +
		"packages and sitemaps from the result.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(mermaidCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(openCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" {
		return nil
	}

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	if !appWorkspace.Exists() {
		fmt.Println(ui.FormatError("Workspace not initialized"))
		fmt.Println(ui.FormatInfo("Run 'ers init' to initialize the workspace"))
		os.Exit(1)
	}

	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	// Repositories
	moduleRepo = repository.NewFileModuleRepository(appWorkspace)
	manifestRepo = repository.NewFileManifestRepository(appWorkspace)

	// Classification rules: built-in tables plus config vocabularies
	rules := services.DefaultRuleSet()
	for _, rule := range appConfig.ModuleRules {
		if err := rules.AppendModuleRule(rule.Label, rule.Patterns); err != nil {
			fmt.Println(ui.FormatWarning(fmt.Sprintf("Skipping module rule %q: %v", rule.Label, err)))
		}
	}

	// Services
	classifyService = services.NewClassifyService(rules)
	structureService = services.NewStructureService()
	reportService = services.NewReportService()
	importService = services.NewImportService(classifyService, structureService, reportService, manifestRepo)
	scaffoldService = services.NewScaffoldService(moduleRepo, manifestRepo, structureService, reportService, appWorkspace)
	mermaidService = services.NewMermaidService(moduleRepo, manifestRepo, structureService, appConfig)
	chartService = services.NewChartService()

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
