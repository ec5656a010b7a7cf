package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/internal/core/ports"
	"github.com/erslice/erslice-cli/pkg/workspace"
)

// ScaffoldService generates slice packages: a per-module output directory
// with the module's assets, an HTML/CSS scaffold and an AI hand-off spec
// derived from the classified structure.
type ScaffoldService struct {
	modules   ports.ModuleRepository
	manifests ports.ManifestRepository
	structure *StructureService
	reporter  *ReportService
	workspace *workspace.Workspace
}

// NewScaffoldService creates a new scaffold service
func NewScaffoldService(modules ports.ModuleRepository, manifests ports.ManifestRepository, structure *StructureService, reporter *ReportService, ws *workspace.Workspace) *ScaffoldService {
	return &ScaffoldService{
		modules:   modules,
		manifests: manifests,
		structure: structure,
		reporter:  reporter,
		workspace: ws,
	}
}

// ScaffoldRequest represents a slice-package generation request
type ScaffoldRequest struct {
	Module            string
	IncludeHTML       bool
	IncludeCSS        bool
	IncludeResponsive bool
}

// ScaffoldResult reports what was generated
type ScaffoldResult struct {
	OutputDir string
	Files     []string
}

var htmlTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}}</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="{{.Class}}">
        <header class="header">
            <h1>{{.Name}}</h1>
        </header>

        <main class="main-content">
            <p>Fill in the markup according to the design screenshots</p>
        </main>
    </div>
</body>
</html>
`))

var cssTemplate = template.Must(template.New("styles").Parse(`/* {{.Name}} module styles */

.{{.Class}} {
    font-family: 'Inter', system-ui, sans-serif;
    line-height: 1.6;
    color: #333;
}

.header {
    background: #f8f9fa;
    padding: 2rem;
    text-align: center;
    border-bottom: 1px solid #e9ecef;
}

.header h1 {
    margin: 0;
    color: #495057;
    font-size: 2rem;
    font-weight: 600;
}

.main-content {
    padding: 2rem;
    max-width: 1200px;
    margin: 0 auto;
}
{{if .Responsive}}
/* Responsive breakpoints */
@media (max-width: 768px) {
    .header {
        padding: 1rem;
    }

    .header h1 {
        font-size: 1.5rem;
    }

    .main-content {
        padding: 1rem;
    }
}

@media (max-width: 480px) {
    .header h1 {
        font-size: 1.25rem;
    }
}
{{end}}`))

type scaffoldTemplateData struct {
	Name       string
	Class      string
	Responsive bool
}

// Execute generates the slice package for one module
func (s *ScaffoldService) Execute(ctx context.Context, req ScaffoldRequest) (*ScaffoldResult, error) {
	if !s.modules.Exists(ctx, req.Module) {
		return nil, fmt.Errorf("module not found: %s", req.Module)
	}

	outputDir := s.workspace.OutputModulePath(req.Module)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := s.modules.ExportAssets(ctx, req.Module, outputDir); err != nil {
		return nil, fmt.Errorf("failed to copy module assets: %w", err)
	}

	result := &ScaffoldResult{OutputDir: outputDir}
	data := scaffoldTemplateData{
		Name:       req.Module,
		Class:      domain.CSSClassName(req.Module),
		Responsive: req.IncludeResponsive,
	}

	if req.IncludeHTML {
		if err := s.renderFile(htmlTemplate, data, filepath.Join(outputDir, "index.html")); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, "index.html")
	}

	if req.IncludeCSS {
		if err := s.renderFile(cssTemplate, data, filepath.Join(outputDir, "styles.css")); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, "styles.css")
	}

	spec, err := s.buildAISpec(ctx, req.Module)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "ai-spec.md"), []byte(spec), 0644); err != nil {
		return nil, fmt.Errorf("failed to write ai-spec.md: %w", err)
	}
	result.Files = append(result.Files, "ai-spec.md")

	return result, nil
}

// ExecuteAll generates slice packages for every active module
func (s *ScaffoldService) ExecuteAll(ctx context.Context, req ScaffoldRequest) ([]ScaffoldResult, error) {
	modules, err := s.modules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	var results []ScaffoldResult
	for _, module := range modules {
		moduleReq := req
		moduleReq.Module = module.Name
		result, err := s.Execute(ctx, moduleReq)
		if err != nil {
			return results, fmt.Errorf("failed to generate package for %s: %w", module.Name, err)
		}
		results = append(results, *result)
	}
	return results, nil
}

func (s *ScaffoldService) renderFile(tmpl *template.Template, data scaffoldTemplateData, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := tmpl.Execute(out, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// buildAISpec composes the hand-off document for a module from its
// classification manifest. Modules that were never imported still get the
// fixed slicing guidance, just without the structure section.
func (s *ScaffoldService) buildAISpec(ctx context.Context, module string) (string, error) {
	assets, err := s.manifests.Load(ctx, module)
	if err != nil {
		return "", fmt.Errorf("failed to load classification manifest: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s slicing guide\n\n", module)
	fmt.Fprintf(&b, "Front-end hand-off spec for the %s module. An AI agent can implement the markup from this document plus the bundled screenshots.\n\n", module)

	b.WriteString("## Package contents\n\n")
	b.WriteString("```\n")
	fmt.Fprintf(&b, "%s/\n", module)
	b.WriteString("├── screenshots/     # design screenshots\n")
	b.WriteString("├── html/            # HTML structure files\n")
	b.WriteString("├── css/             # CSS style files\n")
	b.WriteString("├── index.html       # page scaffold\n")
	b.WriteString("├── styles.css       # style scaffold\n")
	b.WriteString("└── ai-spec.md       # this document\n")
	b.WriteString("```\n\n")

	if len(assets) > 0 {
		names := make([]string, len(assets))
		for i, asset := range assets {
			names[i] = asset.OriginalName
		}
		tree := s.structure.Optimize(s.structure.Build(names))
		summary := s.reporter.Summarize(assets)

		b.WriteString("## Classified structure\n\n")
		writeSpecTree(&b, tree, 0)
		b.WriteString("\n")

		fmt.Fprintf(&b, "Classification confidence over %d assets: %.2f\n\n", len(assets), summary.Confidence)
	}

	b.WriteString("## Slicing requirements\n\n")
	b.WriteString("### Layout\n")
	b.WriteString("- Use semantic HTML tags\n")
	b.WriteString("- Keep the visual hierarchy of the screenshots\n")
	b.WriteString("- Ensure accessibility\n\n")
	b.WriteString("### Styling\n")
	b.WriteString("- Use CSS Grid or Flexbox for layout\n")
	b.WriteString("- Implement the responsive breakpoints\n")
	b.WriteString("- Keep the design system consistent\n\n")
	b.WriteString("### Workflow\n")
	b.WriteString("1. Study the screenshot layout\n")
	b.WriteString("2. Build the HTML skeleton\n")
	b.WriteString("3. Apply base styles\n")
	b.WriteString("4. Add responsive rules\n")
	b.WriteString("5. Verify against the screenshots\n")

	return b.String(), nil
}

// writeSpecTree renders the folder hierarchy as an indented markdown list
func writeSpecTree(b *strings.Builder, node *domain.FolderStructure, depth int) {
	indent := strings.Repeat("  ", depth)
	if node.Path != "" {
		label := fmt.Sprintf("%s- **%s** (%s)", indent, node.Name, node.Role)
		if node.Metadata.State != "" {
			label += fmt.Sprintf(" [%s]", node.Metadata.State)
		}
		b.WriteString(label + "\n")
		for _, asset := range node.Assets {
			fmt.Fprintf(b, "%s  - %s\n", indent, asset)
		}
	} else {
		for _, asset := range node.Assets {
			fmt.Fprintf(b, "%s- %s\n", indent, asset)
		}
		depth--
	}
	for _, child := range node.Children {
		writeSpecTree(b, child, depth+1)
	}
}
