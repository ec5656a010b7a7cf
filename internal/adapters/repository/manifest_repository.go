package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/pkg/workspace"
)

// FileManifestRepository persists classification manifests as JSON files
// next to each module directory
type FileManifestRepository struct {
	workspace *workspace.Workspace
	mu        sync.RWMutex
}

// NewFileManifestRepository creates a new file-based manifest repository
func NewFileManifestRepository(ws *workspace.Workspace) *FileManifestRepository {
	return &FileManifestRepository{
		workspace: ws,
	}
}

// Save writes the classification manifest for a module
func (r *FileManifestRepository) Save(ctx context.Context, module string, assets []domain.ParsedAssetInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(r.workspace.ManifestPath(module), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest for %s: %w", module, err)
	}
	return nil
}

// Load reads the classification manifest for a module. A missing manifest
// is an empty classification, not an error.
func (r *FileManifestRepository) Load(ctx context.Context, module string) ([]domain.ParsedAssetInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.workspace.ManifestPath(module))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read manifest for %s: %w", module, err)
	}

	var assets []domain.ParsedAssetInfo
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("failed to parse manifest for %s: %w", module, err)
	}
	return assets, nil
}
