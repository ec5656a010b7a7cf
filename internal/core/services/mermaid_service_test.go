package services

import (
	"context"
	"strings"
	"testing"

	"github.com/erslice/erslice-cli/internal/core/ports/mocks"
	"github.com/erslice/erslice-cli/pkg/config"
)

func newTestMermaidService(t *testing.T, cfg *config.Config) (*MermaidService, *mocks.MockModuleRepository, *mocks.MockManifestRepository) {
	t.Helper()
	modules := mocks.NewMockModuleRepository()
	manifests := mocks.NewMockManifestRepository()
	svc := NewMermaidService(modules, manifests, NewStructureService(), cfg)
	return svc, modules, manifests
}

func TestGenerateFlowchart(t *testing.T) {
	ctx := context.Background()
	svc, modules, manifests := newTestMermaidService(t, config.DefaultConfig())

	if _, err := modules.Create(ctx, "checkout", ""); err != nil {
		t.Fatalf("failed to create module: %v", err)
	}
	classifier := newTestClassifier()
	assets := classifier.ClassifyBatch([]string{
		"Checkout/Payment/card.png",
		"Checkout/Review/summary.png",
	})
	if err := manifests.Save(ctx, "checkout", assets); err != nil {
		t.Fatalf("failed to seed manifest: %v", err)
	}

	chart, err := svc.GenerateFlowchart(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(chart, "flowchart TD\n") {
		t.Errorf("chart missing header:\n%s", chart)
	}
	if !strings.Contains(chart, `project --> checkout["checkout"]`) {
		t.Errorf("chart missing module node:\n%s", chart)
	}
	if !strings.Contains(chart, `checkout_checkout["Checkout"]`) {
		t.Errorf("chart missing structure node:\n%s", chart)
	}
}

func TestGenerateFlowchart_RespectsNodeBudget(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	cfg.GraphMaxNodes = 2
	svc, modules, _ := newTestMermaidService(t, cfg)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		if _, err := modules.Create(ctx, name, ""); err != nil {
			t.Fatalf("failed to create module %s: %v", name, err)
		}
	}

	chart, err := svc.GenerateFlowchart(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The project node plus a single module node exhaust the budget
	lines := strings.Count(chart, "-->")
	if lines != 1 {
		t.Errorf("got %d edges, want 1:\n%s", lines, chart)
	}
}

func TestGenerateHTML(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestMermaidService(t, config.DefaultConfig())

	html, err := svc.GenerateHTML(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<pre class=\"mermaid\">") {
		t.Error("HTML wrapper missing mermaid block")
	}
	if !strings.Contains(html, "flowchart TD") {
		t.Error("HTML wrapper missing chart body")
	}
}

func TestMermaidID(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"checkout", "checkout"},
		{"User Management", "user_management"},
		{"a/b/c", "a_b_c"},
		{"--edge--", "edge"},
	}

	for _, tt := range tests {
		if got := mermaidID(tt.name); got != tt.expected {
			t.Errorf("mermaidID(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}
