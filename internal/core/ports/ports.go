package ports

import (
	"context"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

// ModuleRepository defines the port for design-module storage operations
type ModuleRepository interface {
	// Create creates a new module with its standard subdirectories
	Create(ctx context.Context, name, description string) (*domain.DesignModule, error)

	// List returns all active modules
	List(ctx context.Context) ([]domain.DesignModule, error)

	// ListArchived returns all archived modules
	ListArchived(ctx context.Context) ([]domain.DesignModule, error)

	// Exists checks if an active module with the given name exists
	Exists(ctx context.Context, name string) bool

	// Archive moves a module out of the active set
	Archive(ctx context.Context, name string) error

	// Unarchive restores an archived module
	Unarchive(ctx context.Context, name string) error

	// Delete permanently removes an active module
	Delete(ctx context.Context, name string) error

	// UploadAsset copies a file into the module subdirectory for its type
	// and returns the stored path
	UploadAsset(ctx context.Context, module string, assetType domain.AssetType, sourcePath string) (string, error)

	// ListAssets returns the filenames stored in a module, relative to the
	// module directory (e.g. "screenshots/login.png")
	ListAssets(ctx context.Context, module string) ([]string, error)

	// DeleteAsset removes a stored asset
	DeleteAsset(ctx context.Context, module string, assetType domain.AssetType, filename string) error

	// ExportAssets copies a module's asset files into targetDir
	ExportAssets(ctx context.Context, module string, targetDir string) error
}

// ManifestRepository defines the port for persisting classification results
type ManifestRepository interface {
	// Save stores the classification manifest for a module
	Save(ctx context.Context, module string, assets []domain.ParsedAssetInfo) error

	// Load retrieves the classification manifest for a module.
	// A module that was never imported yields an empty manifest, not an error.
	Load(ctx context.Context, module string) ([]domain.ParsedAssetInfo, error)
}
