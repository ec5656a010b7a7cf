package services

import (
	"context"
	"errors"
	"testing"

	"github.com/erslice/erslice-cli/internal/core/ports/mocks"
)

func newTestImportService(manifests *mocks.MockManifestRepository) *ImportService {
	return NewImportService(
		newTestClassifier(),
		NewStructureService(),
		NewReportService(),
		manifests,
	)
}

func TestImportService_Execute(t *testing.T) {
	manifests := mocks.NewMockManifestRepository()
	svc := newTestImportService(manifests)

	result, err := svc.Execute(context.Background(), ImportRequest{
		Module: "checkout",
		Filenames: []string{
			"Checkout/Payment/desktop-card-form.png",
			"Checkout/Payment/mobile-card-form.png",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(result.Assets))
	}
	if result.Assets[0].OriginalName != "Checkout/Payment/desktop-card-form.png" {
		t.Errorf("asset order not preserved: %q", result.Assets[0].OriginalName)
	}
	if result.Tree == nil || result.Tree.CountAssets() != 2 {
		t.Errorf("tree missing or incomplete: %+v", result.Tree)
	}
	if result.Summary.Confidence == 0 {
		t.Error("expected non-zero batch confidence")
	}

	// The manifest was persisted under the module name
	saved, err := manifests.Load(context.Background(), "checkout")
	if err != nil {
		t.Fatalf("manifest load failed: %v", err)
	}
	if len(saved) != 2 {
		t.Errorf("manifest has %d records, want 2", len(saved))
	}
}

func TestImportService_Execute_NoModuleSkipsPersistence(t *testing.T) {
	manifests := mocks.NewMockManifestRepository()
	manifests.SetSaveError(errors.New("should not be called"))
	svc := newTestImportService(manifests)

	_, err := svc.Execute(context.Background(), ImportRequest{
		Filenames: []string{"ad-hoc.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error without module: %v", err)
	}
}

func TestImportService_Execute_SaveFailure(t *testing.T) {
	manifests := mocks.NewMockManifestRepository()
	manifests.SetSaveError(errors.New("disk full"))
	svc := newTestImportService(manifests)

	_, err := svc.Execute(context.Background(), ImportRequest{
		Module:    "checkout",
		Filenames: []string{"a.png"},
	})
	if err == nil {
		t.Fatal("expected error when manifest save fails")
	}
}

func TestImportService_Execute_EmptyBatch(t *testing.T) {
	manifests := mocks.NewMockManifestRepository()
	svc := newTestImportService(manifests)

	result, err := svc.Execute(context.Background(), ImportRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Assets) != 0 {
		t.Errorf("got %d assets, want 0", len(result.Assets))
	}
	if result.Summary.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Summary.Confidence)
	}
}
