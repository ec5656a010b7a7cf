package services

import (
	"context"
	"fmt"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/internal/core/ports"
)

// ImportService runs the full classification pipeline over a batch of
// filenames: per-item tagging, hierarchy inference with optimization, and
// the batch aggregate. Results are optionally persisted as a module
// manifest.
type ImportService struct {
	classifier *ClassifyService
	structure  *StructureService
	reporter   *ReportService
	manifests  ports.ManifestRepository
}

// NewImportService creates a new import service
func NewImportService(classifier *ClassifyService, structure *StructureService, reporter *ReportService, manifests ports.ManifestRepository) *ImportService {
	return &ImportService{
		classifier: classifier,
		structure:  structure,
		reporter:   reporter,
		manifests:  manifests,
	}
}

// ImportRequest represents a batch of filenames to classify
type ImportRequest struct {
	Module    string // optional: persist the manifest under this module
	Filenames []string
}

// ImportResult carries the three outputs of a batch import
type ImportResult struct {
	Assets  []domain.ParsedAssetInfo
	Tree    *domain.FolderStructure
	Summary domain.AssetStructure
}

// Execute classifies the batch. Asset order equals input order; the tree is
// already optimized. Classification itself cannot fail, only manifest
// persistence can.
func (s *ImportService) Execute(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	assets := s.classifier.ClassifyBatch(req.Filenames)
	tree := s.structure.Optimize(s.structure.Build(req.Filenames))
	summary := s.reporter.Summarize(assets)

	if req.Module != "" {
		if err := s.manifests.Save(ctx, req.Module, assets); err != nil {
			return nil, fmt.Errorf("failed to save classification manifest: %w", err)
		}
	}

	return &ImportResult{
		Assets:  assets,
		Tree:    tree,
		Summary: summary,
	}, nil
}
