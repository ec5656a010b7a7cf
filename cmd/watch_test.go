package cmd

import (
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/erslice/erslice-cli/pkg/workspace"
)

func TestModuleWatchDirs(t *testing.T) {
	root := t.TempDir()
	appWorkspace = &workspace.Workspace{
		AssetsPath: filepath.Join(root, "design-assets"),
	}
	defer func() { appWorkspace = nil }()

	dirs := moduleWatchDirs("checkout")

	moduleDir := filepath.Join(root, "design-assets", "checkout")
	expected := []string{
		moduleDir,
		filepath.Join(moduleDir, "screenshots"),
		filepath.Join(moduleDir, "html"),
		filepath.Join(moduleDir, "css"),
	}
	if !reflect.DeepEqual(dirs, expected) {
		t.Errorf("moduleWatchDirs = %v, want %v", dirs, expected)
	}

	// Uploaded assets land in the subdirectories, so events from there
	// must map back to the owning module
	for _, dir := range dirs {
		if got := moduleForPath(filepath.Join(dir, "login.png")); got != "checkout" {
			t.Errorf("moduleForPath(%q) = %q, want checkout", dir, got)
		}
	}
}

func TestDirtySet_MarkAndDrain(t *testing.T) {
	dirty := newDirtySet()

	dirty.Mark("zeta")
	dirty.Mark("alpha")
	dirty.Mark("alpha")

	if got := dirty.Drain(); !reflect.DeepEqual(got, []string{"alpha", "zeta"}) {
		t.Errorf("Drain() = %v, want [alpha zeta]", got)
	}

	// Draining resets the set
	if got := dirty.Drain(); len(got) != 0 {
		t.Errorf("second Drain() = %v, want empty", got)
	}
}

func TestDirtySet_ConcurrentMarkAndDrain(t *testing.T) {
	dirty := newDirtySet()

	var wg sync.WaitGroup
	drained := make(chan []string, 64)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				dirty.Mark("checkout")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				drained <- dirty.Drain()
			}
		}()
	}
	wg.Wait()
	close(drained)

	for modules := range drained {
		for _, module := range modules {
			if module != "checkout" {
				t.Errorf("unexpected module %q", module)
			}
		}
	}

	dirty.Mark("final")
	if got := dirty.Drain(); !reflect.DeepEqual(got, []string{"final"}) {
		t.Errorf("Drain() after concurrent use = %v, want [final]", got)
	}
}
