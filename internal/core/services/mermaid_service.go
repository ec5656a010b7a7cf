package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/internal/core/ports"
	"github.com/erslice/erslice-cli/pkg/config"
)

// MermaidService renders the project sitemap as a mermaid flowchart built
// from each module's classified structure.
type MermaidService struct {
	modules   ports.ModuleRepository
	manifests ports.ManifestRepository
	structure *StructureService
	config    *config.Config
}

// NewMermaidService creates a new mermaid service
func NewMermaidService(modules ports.ModuleRepository, manifests ports.ManifestRepository, structure *StructureService, cfg *config.Config) *MermaidService {
	return &MermaidService{
		modules:   modules,
		manifests: manifests,
		structure: structure,
		config:    cfg,
	}
}

var reMermaidID = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// GenerateFlowchart builds a mermaid flowchart over all active modules.
// Each module becomes a top-level node; its classified folder tree supplies
// the page and subpage nodes underneath. Node count is capped by
// GraphMaxNodes from config.
func (s *MermaidService) GenerateFlowchart(ctx context.Context) (string, error) {
	modules, err := s.modules.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list modules: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s\n", s.config.GraphDirection)
	b.WriteString("    project[\"Design Project\"]\n")

	budget := s.config.GraphMaxNodes
	nodes := 1

	for _, module := range modules {
		if nodes >= budget {
			break
		}
		moduleID := mermaidID(module.Name)
		fmt.Fprintf(&b, "    project --> %s[\"%s\"]\n", moduleID, module.Name)
		nodes++

		assets, err := s.manifests.Load(ctx, module.Name)
		if err != nil || len(assets) == 0 {
			continue
		}

		names := make([]string, len(assets))
		for i, asset := range assets {
			names[i] = asset.OriginalName
		}
		tree := s.structure.Optimize(s.structure.Build(names))

		for _, child := range tree.Children {
			nodes = writeMermaidNode(&b, child, moduleID, nodes, budget)
		}
	}

	return b.String(), nil
}

// writeMermaidNode emits one folder node and recurses into its children
// while the node budget lasts
func writeMermaidNode(b *strings.Builder, node *domain.FolderStructure, parentID string, nodes, budget int) int {
	if nodes >= budget {
		return nodes
	}

	id := parentID + "_" + mermaidID(node.Path)
	label := node.Name
	if node.Metadata.State != "" {
		label = fmt.Sprintf("%s (%s)", node.Name, node.Metadata.State)
	}
	fmt.Fprintf(b, "    %s --> %s[\"%s\"]\n", parentID, id, label)
	nodes++

	for _, child := range node.Children {
		nodes = writeMermaidNode(b, child, id, nodes, budget)
	}
	return nodes
}

// GenerateHTML wraps the flowchart in a standalone HTML page that loads
// mermaid from a CDN
func (s *MermaidService) GenerateHTML(ctx context.Context) (string, error) {
	chart, err := s.GenerateFlowchart(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <title>Project Sitemap</title>\n")
	b.WriteString("    <script type=\"module\">\n")
	b.WriteString("        import mermaid from 'https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.esm.min.mjs';\n")
	b.WriteString("        mermaid.initialize({ startOnLoad: true });\n")
	b.WriteString("    </script>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("    <pre class=\"mermaid\">\n")
	b.WriteString(chart)
	b.WriteString("    </pre>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// mermaidID converts an arbitrary name into a safe mermaid node id
func mermaidID(name string) string {
	id := reMermaidID.ReplaceAllString(name, "_")
	return strings.Trim(strings.ToLower(id), "_")
}
