package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/pkg/workspace"
)

// moduleSubdirs are the standard subdirectories of every design module
var moduleSubdirs = []domain.AssetType{
	domain.AssetScreenshot,
	domain.AssetHTML,
	domain.AssetCSS,
}

// FileModuleRepository stores design modules as directories under the
// workspace design-assets root
type FileModuleRepository struct {
	workspace *workspace.Workspace
}

// NewFileModuleRepository creates a new file-based module repository
func NewFileModuleRepository(ws *workspace.Workspace) *FileModuleRepository {
	return &FileModuleRepository{
		workspace: ws,
	}
}

// Create creates the module directory, its standard subdirectories and a
// starter README
func (r *FileModuleRepository) Create(ctx context.Context, name, description string) (*domain.DesignModule, error) {
	if err := domain.ValidateModuleName(name); err != nil {
		return nil, err
	}

	moduleDir := r.workspace.ModulePath(name)
	if _, err := os.Stat(moduleDir); err == nil {
		return nil, fmt.Errorf("module already exists: %s", name)
	}

	for _, subdir := range moduleSubdirs {
		if err := os.MkdirAll(filepath.Join(moduleDir, string(subdir)), 0755); err != nil {
			return nil, fmt.Errorf("failed to create module directory: %w", err)
		}
	}

	readme := fmt.Sprintf("# %s\n\n%s\n\n## Design assets\n- screenshots/: exported design screenshots\n- html/: HTML structure files\n- css/: CSS style files\n", name, description)
	if err := os.WriteFile(filepath.Join(moduleDir, "README.md"), []byte(readme), 0644); err != nil {
		return nil, fmt.Errorf("failed to write module README: %w", err)
	}

	return &domain.DesignModule{
		Name:        name,
		Description: description,
		AssetCount:  0,
		LastUpdated: time.Now(),
		Status:      domain.ModuleActive,
	}, nil
}

// List returns all active modules sorted by name
func (r *FileModuleRepository) List(ctx context.Context) ([]domain.DesignModule, error) {
	return r.listDir(r.workspace.AssetsPath, domain.ModuleActive)
}

// ListArchived returns all archived modules sorted by name
func (r *FileModuleRepository) ListArchived(ctx context.Context) ([]domain.DesignModule, error) {
	return r.listDir(r.workspace.ArchivePath, domain.ModuleArchived)
}

func (r *FileModuleRepository) listDir(root string, status domain.ModuleStatus) ([]domain.DesignModule, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read modules directory: %w", err)
	}

	var modules []domain.DesignModule
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		moduleDir := filepath.Join(root, entry.Name())
		modules = append(modules, domain.DesignModule{
			Name:        entry.Name(),
			Description: readModuleDescription(moduleDir),
			AssetCount:  countAssets(moduleDir),
			LastUpdated: lastModified(moduleDir),
			Status:      status,
		})
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	return modules, nil
}

// Exists checks if an active module directory exists
func (r *FileModuleRepository) Exists(ctx context.Context, name string) bool {
	info, err := os.Stat(r.workspace.ModulePath(name))
	return err == nil && info.IsDir()
}

// Archive moves a module directory under the archive root
func (r *FileModuleRepository) Archive(ctx context.Context, name string) error {
	if !r.Exists(ctx, name) {
		return fmt.Errorf("module not found: %s", name)
	}
	if err := os.MkdirAll(r.workspace.ArchivePath, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.Rename(r.workspace.ModulePath(name), r.workspace.ArchivedModulePath(name)); err != nil {
		return fmt.Errorf("failed to archive module %s: %w", name, err)
	}
	return nil
}

// Unarchive restores a module directory from the archive root
func (r *FileModuleRepository) Unarchive(ctx context.Context, name string) error {
	archived := r.workspace.ArchivedModulePath(name)
	if info, err := os.Stat(archived); err != nil || !info.IsDir() {
		return fmt.Errorf("archived module not found: %s", name)
	}
	if err := os.Rename(archived, r.workspace.ModulePath(name)); err != nil {
		return fmt.Errorf("failed to unarchive module %s: %w", name, err)
	}
	return nil
}

// Delete permanently removes an active module directory
func (r *FileModuleRepository) Delete(ctx context.Context, name string) error {
	if !r.Exists(ctx, name) {
		return fmt.Errorf("module not found: %s", name)
	}
	if err := os.RemoveAll(r.workspace.ModulePath(name)); err != nil {
		return fmt.Errorf("failed to delete module %s: %w", name, err)
	}
	return nil
}

// UploadAsset copies a file into the module subdirectory for its asset type
func (r *FileModuleRepository) UploadAsset(ctx context.Context, module string, assetType domain.AssetType, sourcePath string) (string, error) {
	if !r.Exists(ctx, module) {
		return "", fmt.Errorf("module not found: %s", module)
	}
	if err := domain.ValidateAssetType(assetType); err != nil {
		return "", err
	}

	targetPath := filepath.Join(r.workspace.ModulePath(module), string(assetType), filepath.Base(sourcePath))
	if err := copyFile(sourcePath, targetPath); err != nil {
		return "", fmt.Errorf("failed to copy asset: %w", err)
	}
	return targetPath, nil
}

// ListAssets returns asset paths relative to the module directory, sorted
// for deterministic classification input order
func (r *FileModuleRepository) ListAssets(ctx context.Context, module string) ([]string, error) {
	moduleDir := r.workspace.ModulePath(module)
	if !r.Exists(ctx, module) {
		return nil, fmt.Errorf("module not found: %s", module)
	}

	var assets []string
	for _, subdir := range moduleSubdirs {
		dir := filepath.Join(moduleDir, string(subdir))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				assets = append(assets, filepath.ToSlash(filepath.Join(string(subdir), entry.Name())))
			}
		}
	}

	sort.Strings(assets)
	return assets, nil
}

// DeleteAsset removes a stored asset file
func (r *FileModuleRepository) DeleteAsset(ctx context.Context, module string, assetType domain.AssetType, filename string) error {
	if err := domain.ValidateAssetType(assetType); err != nil {
		return err
	}
	target := filepath.Join(r.workspace.ModulePath(module), string(assetType), filepath.Base(filename))
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("asset not found: %s", filename)
	}
	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", filename, err)
	}
	return nil
}

// ExportAssets recursively copies the module's files into targetDir
func (r *FileModuleRepository) ExportAssets(ctx context.Context, module string, targetDir string) error {
	if !r.Exists(ctx, module) {
		return fmt.Errorf("module not found: %s", module)
	}
	return copyDir(r.workspace.ModulePath(module), targetDir)
}

// readModuleDescription pulls the first non-heading line out of the README
func readModuleDescription(moduleDir string) string {
	data, err := os.ReadFile(filepath.Join(moduleDir, "README.md"))
	if err != nil {
		return ""
	}
	for _, line := range splitLines(string(data)) {
		if line == "" || line[0] == '#' {
			continue
		}
		return line
	}
	return ""
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// countAssets counts regular files anywhere under the module directory,
// skipping the README and dot files
func countAssets(moduleDir string) int {
	count := 0
	filepath.WalkDir(moduleDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == "README.md" || name[0] == '.' {
			return nil
		}
		count++
		return nil
	})
	return count
}

// lastModified returns the newest modification time under the module directory
func lastModified(moduleDir string) time.Time {
	var newest time.Time
	filepath.WalkDir(moduleDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err == nil && info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	return newest
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func copyDir(source, target string) error {
	entries, err := os.ReadDir(source)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		sourcePath := filepath.Join(source, entry.Name())
		targetPath := filepath.Join(target, entry.Name())
		if entry.IsDir() {
			if err := copyDir(sourcePath, targetPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(sourcePath, targetPath); err != nil {
			return err
		}
	}
	return nil
}
