package services

import (
	"reflect"
	"testing"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

func TestBuild_SlashPaths(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{
		"Checkout/Payment/card.png",
		"Checkout/Payment/wallet.png",
		"Checkout/ConfirmDialog/ok.png",
	})

	if len(tree.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(tree.Children))
	}

	checkout := tree.Children[0]
	if checkout.Name != "Checkout" || checkout.Role != domain.RoleModule {
		t.Errorf("top node = %q (%s), want Checkout (module)", checkout.Name, checkout.Role)
	}
	if checkout.Path != "Checkout" {
		t.Errorf("Path = %q, want Checkout", checkout.Path)
	}
	if len(checkout.Children) != 2 {
		t.Fatalf("Checkout has %d children, want 2", len(checkout.Children))
	}

	payment := checkout.Children[0]
	if payment.Role != domain.RolePage {
		t.Errorf("Payment role = %q, want page", payment.Role)
	}
	if !reflect.DeepEqual(payment.Assets, []string{"card", "wallet"}) {
		t.Errorf("Payment assets = %v", payment.Assets)
	}

	dialog := checkout.Children[1]
	if dialog.Metadata.ComponentType != "dialog" {
		t.Errorf("ComponentType = %q, want dialog", dialog.Metadata.ComponentType)
	}
	if !reflect.DeepEqual(dialog.Assets, []string{"ok"}) {
		t.Errorf("Dialog assets = %v", dialog.Assets)
	}
}

func TestBuild_UnderscoreFallback(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{"Orders_List_Row.png"})

	if len(tree.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(tree.Children))
	}
	orders := tree.Children[0]
	if orders.Name != "Orders" {
		t.Errorf("top node = %q, want Orders", orders.Name)
	}
	if len(orders.Children) != 1 || orders.Children[0].Name != "List" {
		t.Fatalf("unexpected second level: %+v", orders.Children)
	}
	if !reflect.DeepEqual(orders.Children[0].Assets, []string{"Row"}) {
		t.Errorf("assets = %v, want [Row]", orders.Children[0].Assets)
	}
}

func TestBuild_SingleSegmentLandsOnRoot(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{"logo.png", "favicon.svg"})

	if len(tree.Children) != 0 {
		t.Errorf("root has %d children, want 0", len(tree.Children))
	}
	if !reflect.DeepEqual(tree.Assets, []string{"logo", "favicon"}) {
		t.Errorf("root assets = %v", tree.Assets)
	}
}

func TestBuild_ChildOrderFollowsFirstOccurrence(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{
		"Beta/x.png",
		"Alpha/y.png",
		"Beta/z.png",
	})

	if len(tree.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(tree.Children))
	}
	if tree.Children[0].Name != "Beta" || tree.Children[1].Name != "Alpha" {
		t.Errorf("child order = [%s %s], want [Beta Alpha]",
			tree.Children[0].Name, tree.Children[1].Name)
	}
}

func TestBuild_DepthMetadata(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{"UserMgmt/Profile/ErrorState/icons/warn.png"})

	module := tree.Children[0]
	if module.Metadata.Complexity != "high" {
		t.Errorf("Complexity = %q, want high", module.Metadata.Complexity)
	}
	if module.Metadata.Category != "business" {
		t.Errorf("Category = %q, want business", module.Metadata.Category)
	}

	sub := module.Children[0].Children[0]
	if sub.Role != domain.RoleSubpage {
		t.Errorf("depth-2 role = %q, want subpage", sub.Role)
	}
	if sub.Metadata.State != "error" {
		t.Errorf("State = %q, want error", sub.Metadata.State)
	}

	deep := sub.Children[0]
	if deep.Role != domain.RoleAsset {
		t.Errorf("depth-3 role = %q, want asset", deep.Role)
	}
}

func TestPrune_RemovesEmptySubtrees(t *testing.T) {
	svc := NewStructureService()

	// A chain of empty folders under a populated root
	tree := &domain.FolderStructure{
		Name: "root",
		Children: []*domain.FolderStructure{
			{
				Name:   "kept",
				Assets: []string{"a"},
			},
			{
				Name: "hollow",
				Children: []*domain.FolderStructure{
					{Name: "inner"},
				},
			},
		},
	}

	svc.Prune(tree)

	if len(tree.Children) != 1 || tree.Children[0].Name != "kept" {
		t.Errorf("after prune children = %+v, want only kept", tree.Children)
	}
}

func TestMerge_CollapsesDefaultStateSiblings(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{
		"Shop/Grid/one.png",
		"Shop/Panel/two.png",
	})
	svc.Merge(tree)

	shop := tree.Children[0]
	if len(shop.Children) != 1 {
		t.Fatalf("Shop has %d children after merge, want 1", len(shop.Children))
	}
	merged := shop.Children[0]
	if merged.Name != "Grid" {
		t.Errorf("merged node = %q, want first sibling Grid", merged.Name)
	}
	if !reflect.DeepEqual(merged.Assets, []string{"one", "two"}) {
		t.Errorf("merged assets = %v, want [one two]", merged.Assets)
	}
}

func TestMerge_KeepsDistinctStatesApart(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{
		"Shop/Cart/Error/a.png",
		"Shop/Cart/Success/b.png",
	})
	svc.Merge(tree)

	cart := tree.Children[0].Children[0]
	if len(cart.Children) != 2 {
		t.Errorf("Cart has %d children after merge, want 2 (error and success)", len(cart.Children))
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	svc := NewStructureService()

	tree := svc.Build([]string{
		"Checkout/Payment/card.png",
		"Checkout/Review/summary.png",
		"Checkout/Review/Error/retry.png",
		"logo.png",
	})

	svc.Optimize(tree)
	nodes := tree.CountNodes()
	assets := tree.CountAssets()

	svc.Optimize(tree)
	if tree.CountNodes() != nodes || tree.CountAssets() != assets {
		t.Errorf("second Optimize changed the tree: %d/%d -> %d/%d",
			nodes, assets, tree.CountNodes(), tree.CountAssets())
	}
}

func TestTokenizePath(t *testing.T) {
	tests := []struct {
		filename string
		folders  []string
		stem     string
	}{
		{"a/b/c.png", []string{"a", "b"}, "c"},
		{"a_b_c.png", []string{"a", "b"}, "c"},
		{"a//b//c.png", []string{"a", "b"}, "c"},
		{`a\b\c.png`, []string{"a", "b"}, "c"},
		{"solo.png", nil, "solo"},
		{"", nil, ""},
		// A slash anywhere disables the underscore convention
		{"a/b_c.png", []string{"a"}, "b_c"},
	}

	for _, tt := range tests {
		folders, stem := tokenizePath(tt.filename)
		if !reflect.DeepEqual(folders, tt.folders) || stem != tt.stem {
			t.Errorf("tokenizePath(%q) = %v, %q; want %v, %q",
				tt.filename, folders, stem, tt.folders, tt.stem)
		}
	}
}
