package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ModuleStatus tracks the lifecycle of a design module
type ModuleStatus string

const (
	ModuleActive   ModuleStatus = "active"
	ModuleArchived ModuleStatus = "archived"
)

// AssetType identifies which subdirectory of a module an asset belongs to
type AssetType string

const (
	AssetScreenshot AssetType = "screenshots"
	AssetHTML       AssetType = "html"
	AssetCSS        AssetType = "css"
)

// DesignModule represents one design-asset module directory in the workspace
type DesignModule struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	AssetCount  int          `json:"asset_count"`
	LastUpdated time.Time    `json:"last_updated"`
	Status      ModuleStatus `json:"status"`
}

var reModuleName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 _-]*$`)

// ValidateModuleName checks that a module name is usable as a directory name
func ValidateModuleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("module name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("module name too long (max 100 characters)")
	}
	if !reModuleName.MatchString(name) {
		return fmt.Errorf("module name contains invalid characters")
	}
	return nil
}

// ValidateAssetType checks that an asset type names a known module subdirectory
func ValidateAssetType(t AssetType) error {
	switch t {
	case AssetScreenshot, AssetHTML, AssetCSS:
		return nil
	}
	return fmt.Errorf("unsupported asset type: %s", t)
}

// CSSClassName converts a module name to a CSS-friendly class name.
// "User Mgmt" -> "user-mgmt"
func CSSClassName(moduleName string) string {
	return strings.ToLower(strings.ReplaceAll(moduleName, " ", "-"))
}

// GetDisplayDate returns a human-readable last-updated timestamp
func (m *DesignModule) GetDisplayDate() string {
	if m.LastUpdated.IsZero() {
		return "-"
	}
	return m.LastUpdated.Format("2006-01-02 15:04")
}
