package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/internal/core/services"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the asset workspace and reclassify on change",
	Long: `Watch the design-assets directory and re-run the classification for a
module whenever its assets change.

This command monitors the workspace for:
  - New asset files added to a module
  - Existing assets modified or renamed
  - Assets deleted

Changed modules are reclassified and their manifests rewritten, so tree,
stats and generate always see fresh data.

Use --quiet to suppress reclassification notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress reclassification notifications")
}

// dirtySet collects module names touched by filesystem events. The event
// loop marks, the debounced reclassify goroutine drains; both sides go
// through the mutex.
type dirtySet struct {
	mu      sync.Mutex
	modules map[string]bool
}

func newDirtySet() *dirtySet {
	return &dirtySet{modules: make(map[string]bool)}
}

func (d *dirtySet) Mark(module string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modules[module] = true
}

// Drain returns the marked modules in sorted order and resets the set
func (d *dirtySet) Drain() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	modules := make([]string, 0, len(d.modules))
	for module := range d.modules {
		modules = append(modules, module)
	}
	d.modules = make(map[string]bool)
	sort.Strings(modules)
	return modules
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify does not recurse, so the assets root, each module directory
	// and each asset-type subdirectory all need their own watch.
	if err := watcher.Add(appWorkspace.AssetsPath); err != nil {
		return fmt.Errorf("failed to watch assets directory: %w", err)
	}
	modules, err := moduleRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, module := range modules {
		watchModuleDirs(watcher, module.Name)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatInfo("Starting ers watcher..."))
		fmt.Println(ui.FormatMuted("Watching: " + appWorkspace.AssetsPath))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce to avoid reclassifying on every event of a burst
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	dirty := newDirtySet()

	doReclassify := func() {
		for _, module := range dirty.Drain() {
			filenames, err := moduleRepo.ListAssets(ctx, module)
			if err != nil || len(filenames) == 0 {
				continue
			}

			result, err := importService.Execute(ctx, services.ImportRequest{
				Module:    module,
				Filenames: filenames,
			})
			if err != nil {
				if !watchQuiet {
					fmt.Println(ui.FormatError("Reclassify failed: " + err.Error()))
				}
				log.Printf("Reclassify error for %s: %v", module, err)
				continue
			}

			if !watchQuiet {
				fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s reclassified (%d assets, confidence %.2f)",
					module, len(result.Assets), result.Summary.Confidence)))
			}
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			module := moduleForPath(event.Name)
			if module == "" {
				continue
			}

			// New directories (a module created after startup, or one of
			// its subdirectories) need their own watch too
			if event.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("Watch error for %s: %v", event.Name, err)
					}
				}
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				dirty.Mark(module)

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, doReclassify)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}

// moduleWatchDirs lists every directory of a module that needs a watch:
// the module directory itself plus its asset-type subdirectories, where
// uploaded files actually land.
func moduleWatchDirs(module string) []string {
	moduleDir := appWorkspace.ModulePath(module)
	dirs := []string{moduleDir}
	for _, assetType := range []domain.AssetType{domain.AssetScreenshot, domain.AssetHTML, domain.AssetCSS} {
		dirs = append(dirs, filepath.Join(moduleDir, string(assetType)))
	}
	return dirs
}

func watchModuleDirs(watcher *fsnotify.Watcher, module string) {
	for _, dir := range moduleWatchDirs(module) {
		if err := watcher.Add(dir); err != nil {
			log.Printf("Watch error for %s: %v", dir, err)
		}
	}
}

// moduleForPath maps an event path back to the module it belongs to
func moduleForPath(path string) string {
	rel, err := filepath.Rel(appWorkspace.AssetsPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) == 0 || parts[0] == "." || parts[0] == "" {
		return ""
	}
	return parts[0]
}
