package mocks

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

// MockModuleRepository is an in-memory implementation of the ModuleRepository
// interface for testing
type MockModuleRepository struct {
	mu       sync.RWMutex
	active   map[string]*domain.DesignModule
	archived map[string]*domain.DesignModule
	assets   map[string][]string // module name -> relative asset paths
	exported map[string]string   // module name -> last export target
}

// NewMockModuleRepository creates a new mock module repository
func NewMockModuleRepository() *MockModuleRepository {
	return &MockModuleRepository{
		active:   make(map[string]*domain.DesignModule),
		archived: make(map[string]*domain.DesignModule),
		assets:   make(map[string][]string),
		exported: make(map[string]string),
	}
}

func (m *MockModuleRepository) Create(ctx context.Context, name, description string) (*domain.DesignModule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := domain.ValidateModuleName(name); err != nil {
		return nil, err
	}
	if _, ok := m.active[name]; ok {
		return nil, fmt.Errorf("module already exists: %s", name)
	}

	module := &domain.DesignModule{
		Name:        name,
		Description: description,
		LastUpdated: time.Now(),
		Status:      domain.ModuleActive,
	}
	m.active[name] = module
	return module, nil
}

func (m *MockModuleRepository) List(ctx context.Context) ([]domain.DesignModule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	modules := make([]domain.DesignModule, 0, len(m.active))
	for _, module := range m.active {
		copied := *module
		copied.AssetCount = len(m.assets[module.Name])
		modules = append(modules, copied)
	}
	return modules, nil
}

func (m *MockModuleRepository) ListArchived(ctx context.Context) ([]domain.DesignModule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	modules := make([]domain.DesignModule, 0, len(m.archived))
	for _, module := range m.archived {
		modules = append(modules, *module)
	}
	return modules, nil
}

func (m *MockModuleRepository) Exists(ctx context.Context, name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.active[name]
	return ok
}

func (m *MockModuleRepository) Archive(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	module, ok := m.active[name]
	if !ok {
		return fmt.Errorf("module not found: %s", name)
	}
	module.Status = domain.ModuleArchived
	m.archived[name] = module
	delete(m.active, name)
	return nil
}

func (m *MockModuleRepository) Unarchive(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	module, ok := m.archived[name]
	if !ok {
		return fmt.Errorf("archived module not found: %s", name)
	}
	module.Status = domain.ModuleActive
	m.active[name] = module
	delete(m.archived, name)
	return nil
}

func (m *MockModuleRepository) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[name]; !ok {
		return fmt.Errorf("module not found: %s", name)
	}
	delete(m.active, name)
	delete(m.assets, name)
	return nil
}

func (m *MockModuleRepository) UploadAsset(ctx context.Context, module string, assetType domain.AssetType, sourcePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[module]; !ok {
		return "", fmt.Errorf("module not found: %s", module)
	}
	if err := domain.ValidateAssetType(assetType); err != nil {
		return "", err
	}

	stored := path.Join(string(assetType), path.Base(sourcePath))
	m.assets[module] = append(m.assets[module], stored)
	return stored, nil
}

func (m *MockModuleRepository) ListAssets(ctx context.Context, module string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.active[module]; !ok {
		return nil, fmt.Errorf("module not found: %s", module)
	}
	assets := make([]string, len(m.assets[module]))
	copy(assets, m.assets[module])
	return assets, nil
}

func (m *MockModuleRepository) DeleteAsset(ctx context.Context, module string, assetType domain.AssetType, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := path.Join(string(assetType), filename)
	for i, asset := range m.assets[module] {
		if asset == target {
			m.assets[module] = append(m.assets[module][:i], m.assets[module][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("asset not found: %s", target)
}

func (m *MockModuleRepository) ExportAssets(ctx context.Context, module string, targetDir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[module]; !ok {
		return fmt.Errorf("module not found: %s", module)
	}
	m.exported[module] = targetDir
	return nil
}

// LastExport returns the last ExportAssets target for a module
func (m *MockModuleRepository) LastExport(module string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.exported[module]
}

// SeedAssets registers asset paths for a module without going through upload
func (m *MockModuleRepository) SeedAssets(module string, assets []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[module] = append(m.assets[module], assets...)
}

// --- MockManifestRepository ---

// MockManifestRepository is an in-memory ManifestRepository for testing
type MockManifestRepository struct {
	mu        sync.RWMutex
	manifests map[string][]domain.ParsedAssetInfo
	saveErr   error
}

// NewMockManifestRepository creates a new mock manifest repository
func NewMockManifestRepository() *MockManifestRepository {
	return &MockManifestRepository{
		manifests: make(map[string][]domain.ParsedAssetInfo),
	}
}

func (m *MockManifestRepository) Save(ctx context.Context, module string, assets []domain.ParsedAssetInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	stored := make([]domain.ParsedAssetInfo, len(assets))
	copy(stored, assets)
	m.manifests[module] = stored
	return nil
}

func (m *MockManifestRepository) Load(ctx context.Context, module string) ([]domain.ParsedAssetInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assets := make([]domain.ParsedAssetInfo, len(m.manifests[module]))
	copy(assets, m.manifests[module])
	return assets, nil
}

// SetSaveError makes subsequent Save calls fail
func (m *MockManifestRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}
