package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace represents the managed storage directory for ers
type Workspace struct {
	RootPath    string
	AssetsPath  string
	ArchivePath string
	OutputPath  string
	CachePath   string
	ConfigPath  string
}

// New creates a new Workspace instance with XDG-compliant paths
func New() (*Workspace, error) {
	rootPath, rootErr := getWorkspaceRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine workspace root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Workspace{
		RootPath:    rootPath,
		AssetsPath:  filepath.Join(rootPath, "design-assets"),
		ArchivePath: filepath.Join(rootPath, "archived"),
		OutputPath:  filepath.Join(rootPath, "output"),
		CachePath:   filepath.Join(rootPath, "cache"),
		ConfigPath:  configPath,
	}, nil
}

// getWorkspaceRoot returns the workspace root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getWorkspaceRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "erslice"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "erslice"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "erslice"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "erslice", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "erslice-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "erslice", "config.yaml"), nil
}

// Initialize creates the workspace directory structure if it doesn't exist
func (w *Workspace) Initialize() error {
	directories := []string{
		w.RootPath,
		w.AssetsPath,
		w.ArchivePath,
		w.OutputPath,
		w.CachePath,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.AssetsPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ModulePath returns the directory of an active design module
func (w *Workspace) ModulePath(name string) string {
	return filepath.Join(w.AssetsPath, name)
}

// ArchivedModulePath returns the directory of an archived design module
func (w *Workspace) ArchivedModulePath(name string) string {
	return filepath.Join(w.ArchivePath, name)
}

// OutputModulePath returns the slice-package output directory for a module
func (w *Workspace) OutputModulePath(name string) string {
	return filepath.Join(w.OutputPath, name)
}

// ManifestPath returns the classification manifest path for a module
func (w *Workspace) ManifestPath(name string) string {
	return filepath.Join(w.ModulePath(name), ".classification.json")
}
