package services

import (
	"testing"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

func newTestClassifier() *ClassifyService {
	return NewClassifyService(DefaultRuleSet())
}

func TestClassify_FullyTaggedName(t *testing.T) {
	svc := newTestClassifier()

	info := svc.Classify("Desktop_UserMgmt_List_Default@2x.png")

	if info.OriginalName != "Desktop_UserMgmt_List_Default@2x.png" {
		t.Errorf("OriginalName = %q", info.OriginalName)
	}
	if info.Device != domain.DeviceDesktop {
		t.Errorf("Device = %q, want desktop", info.Device)
	}
	if info.Module != domain.ModuleUserManagement {
		t.Errorf("Module = %q, want user-management", info.Module)
	}
	if info.Page != domain.PageList {
		t.Errorf("Page = %q, want list", info.Page)
	}
	if info.State != domain.StateDefault {
		t.Errorf("State = %q, want default", info.State)
	}
	if info.Format != domain.FormatPNG {
		t.Errorf("Format = %q, want png", info.Format)
	}
	if info.Scale != domain.Scale2x {
		t.Errorf("Scale = %q, want 2x", info.Scale)
	}
	if info.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", info.Confidence)
	}
}

func TestClassify_PartiallyTaggedName(t *testing.T) {
	svc := newTestClassifier()

	info := svc.Classify("hover-button.svg")

	if info.Device != domain.DeviceUnknown {
		t.Errorf("Device = %q, want unknown", info.Device)
	}
	if info.Module != domain.ModuleUnknown {
		t.Errorf("Module = %q, want unknown", info.Module)
	}
	if info.State != domain.StateHover {
		t.Errorf("State = %q, want hover", info.State)
	}
	if info.Scale != domain.ScaleVector {
		t.Errorf("Scale = %q, want vector", info.Scale)
	}
	if info.Confidence != 0.25 {
		t.Errorf("Confidence = %v, want 0.25", info.Confidence)
	}
}

func TestClassify_UnmatchedName(t *testing.T) {
	svc := newTestClassifier()

	info := svc.Classify("photo.jpg")

	if info.Device != domain.DeviceUnknown ||
		info.Module != domain.ModuleUnknown ||
		info.Page != domain.PageUnknown ||
		info.State != domain.StateUnknown {
		t.Errorf("expected all dimensions unknown, got %+v", info)
	}
	if info.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", info.Confidence)
	}
}

func TestClassify_DeviceNumericFallback(t *testing.T) {
	svc := newTestClassifier()

	tests := []struct {
		name     string
		expected domain.Device
	}{
		{"screenshot-1440.jpg", domain.DeviceDesktop},
		{"screenshot-1200.jpg", domain.DeviceDesktop},
		{"screenshot-1024.jpg", domain.DeviceTablet},
		{"screenshot-768.jpg", domain.DeviceTablet},
		{"screenshot-375.jpg", domain.DeviceMobile},
		{"screenshot-320.jpg", domain.DeviceMobile},
		{"screenshot-99.jpg", domain.DeviceUnknown},
		{"screenshot.jpg", domain.DeviceUnknown},
	}

	for _, tt := range tests {
		info := svc.Classify(tt.name)
		if info.Device != tt.expected {
			t.Errorf("Classify(%q).Device = %q, want %q", tt.name, info.Device, tt.expected)
		}
	}
}

func TestClassify_KeywordBeatsNumericFallback(t *testing.T) {
	svc := newTestClassifier()

	// "mobile" keyword wins over the 1440 width
	info := svc.Classify("mobile-banner-1440.png")
	if info.Device != domain.DeviceMobile {
		t.Errorf("Device = %q, want mobile", info.Device)
	}
}

func TestClassify_ModuleDeclarationOrder(t *testing.T) {
	svc := newTestClassifier()

	// "account" (user-management) is declared before "setting" (settings)
	info := svc.Classify("account-settings.png")
	if info.Module != domain.ModuleUserManagement {
		t.Errorf("Module = %q, want user-management", info.Module)
	}
}

func TestClassify_ConfidenceRange(t *testing.T) {
	svc := newTestClassifier()

	allowed := map[float64]bool{0: true, 0.25: true, 0.5: true, 0.75: true, 1.0: true}
	names := []string{
		"Desktop_UserMgmt_List_Default@2x.png",
		"mobile-product-detail.png",
		"tablet-login.png",
		"hover-button.svg",
		"photo.jpg",
		"",
		"order-form-error-mobile.webp",
	}

	for _, name := range names {
		info := svc.Classify(name)
		if !allowed[info.Confidence] {
			t.Errorf("Classify(%q).Confidence = %v, not a multiple of 0.25", name, info.Confidence)
		}
	}
}

func TestClassifyBatch_OrderIndependent(t *testing.T) {
	svc := newTestClassifier()

	names := []string{
		"Desktop_UserMgmt_List_Default@2x.png",
		"mobile-product-detail-error.jpg",
		"hover-button.svg",
	}
	reversed := []string{names[2], names[1], names[0]}

	forward := svc.ClassifyBatch(names)
	backward := svc.ClassifyBatch(reversed)

	if len(forward) != len(names) {
		t.Fatalf("ClassifyBatch returned %d records, want %d", len(forward), len(names))
	}
	for i := range names {
		if forward[i].OriginalName != names[i] {
			t.Errorf("batch order not preserved at %d: %q", i, forward[i].OriginalName)
		}
	}

	// The same name classifies identically regardless of batch position
	if forward[0] != backward[2] {
		t.Errorf("classification depends on batch order:\n%+v\n%+v", forward[0], backward[2])
	}
}

func TestClassify_CustomModuleRule(t *testing.T) {
	rules := DefaultRuleSet()
	if err := rules.AppendModuleRule("logistics", []string{`shipping`, `warehouse`}); err != nil {
		t.Fatalf("AppendModuleRule failed: %v", err)
	}
	svc := NewClassifyService(rules)

	info := svc.Classify("desktop-warehouse-list.png")
	if info.Module != domain.ModuleLabel("logistics") {
		t.Errorf("Module = %q, want logistics", info.Module)
	}

	// Built-in rules keep priority over appended ones
	info = svc.Classify("user-shipping-form.png")
	if info.Module != domain.ModuleUserManagement {
		t.Errorf("Module = %q, want user-management", info.Module)
	}
}

func TestAppendModuleRule_Invalid(t *testing.T) {
	rules := DefaultRuleSet()

	if err := rules.AppendModuleRule("", []string{"x"}); err == nil {
		t.Error("expected error for empty label")
	}
	if err := rules.AppendModuleRule("bad", nil); err == nil {
		t.Error("expected error for empty pattern list")
	}
	if err := rules.AppendModuleRule("bad", []string{"("}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
