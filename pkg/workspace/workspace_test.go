package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkspace_Paths(t *testing.T) {
	w := &Workspace{
		AssetsPath:  "/test/erslice/design-assets",
		ArchivePath: "/test/erslice/archived",
		OutputPath:  "/test/erslice/output",
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"module path", w.ModulePath("checkout"), "/test/erslice/design-assets/checkout"},
		{"archived module path", w.ArchivedModulePath("checkout"), "/test/erslice/archived/checkout"},
		{"output module path", w.OutputModulePath("checkout"), "/test/erslice/output/checkout"},
		{"manifest path", w.ManifestPath("checkout"), "/test/erslice/design-assets/checkout/.classification.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestNew_XDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dataHome, "config"))

	w, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.RootPath != filepath.Join(dataHome, "erslice") {
		t.Errorf("RootPath = %q", w.RootPath)
	}
	if w.AssetsPath != filepath.Join(dataHome, "erslice", "design-assets") {
		t.Errorf("AssetsPath = %q", w.AssetsPath)
	}
	if w.ConfigPath != filepath.Join(dataHome, "config", "erslice", "config.yaml") {
		t.Errorf("ConfigPath = %q", w.ConfigPath)
	}
}

func TestInitializeAndExists(t *testing.T) {
	root := t.TempDir()
	w := &Workspace{
		RootPath:    root,
		AssetsPath:  filepath.Join(root, "design-assets"),
		ArchivePath: filepath.Join(root, "archived"),
		OutputPath:  filepath.Join(root, "output"),
		CachePath:   filepath.Join(root, "cache"),
	}

	if w.Exists() {
		t.Error("workspace should not exist before Initialize")
	}

	if err := w.Initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if !w.Exists() {
		t.Error("workspace should exist after Initialize")
	}

	for _, dir := range []string{w.AssetsPath, w.ArchivePath, w.OutputPath, w.CachePath} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s: %v", dir, err)
		}
	}
}
