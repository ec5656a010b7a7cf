package repository

import (
	"context"
	"os"
	"testing"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

func TestManifestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t)
	modules := NewFileModuleRepository(ws)
	manifests := NewFileManifestRepository(ws)

	if _, err := modules.Create(ctx, "checkout", ""); err != nil {
		t.Fatalf("failed to create module: %v", err)
	}

	assets := []domain.ParsedAssetInfo{
		{
			OriginalName: "desktop-cart-list.png",
			Device:       domain.DeviceDesktop,
			Module:       domain.ModuleOrderManagement,
			Page:         domain.PageList,
			State:        domain.StateUnknown,
			Format:       domain.FormatPNG,
			Scale:        domain.Scale1x,
			Confidence:   0.75,
		},
	}

	if err := manifests.Save(ctx, "checkout", assets); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := manifests.Load(ctx, "checkout")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != assets[0] {
		t.Errorf("loaded manifest = %+v, want %+v", loaded, assets)
	}
}

func TestManifestLoad_Missing(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t)
	manifests := NewFileManifestRepository(ws)

	loaded, err := manifests.Load(ctx, "never-imported")
	if err != nil {
		t.Fatalf("missing manifest should not be an error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("loaded = %v, want empty", loaded)
	}
}

func TestManifestLoad_Corrupt(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t)
	modules := NewFileModuleRepository(ws)
	manifests := NewFileManifestRepository(ws)

	if _, err := modules.Create(ctx, "checkout", ""); err != nil {
		t.Fatalf("failed to create module: %v", err)
	}
	if err := os.WriteFile(ws.ManifestPath("checkout"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt manifest: %v", err)
	}

	if _, err := manifests.Load(ctx, "checkout"); err == nil {
		t.Error("expected error for corrupt manifest")
	}
}
