package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Device is the target device dimension of a classified asset
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceMobile  Device = "mobile"
	DeviceUnknown Device = "unknown"
)

// ModuleLabel is the business-module dimension of a classified asset
type ModuleLabel string

const (
	ModuleUserManagement  ModuleLabel = "user-management"
	ModuleOrderManagement ModuleLabel = "order-management"
	ModuleProduct         ModuleLabel = "product"
	ModuleDashboard       ModuleLabel = "dashboard"
	ModuleAuth            ModuleLabel = "auth"
	ModuleSettings        ModuleLabel = "settings"
	ModuleContent         ModuleLabel = "content"
	ModuleUnknown         ModuleLabel = "unknown"
)

// PageType is the page-type dimension of a classified asset
type PageType string

const (
	PageList    PageType = "list"
	PageDetail  PageType = "detail"
	PageForm    PageType = "form"
	PageLanding PageType = "landing"
	PageUnknown PageType = "unknown"
)

// InteractionState is the interaction-state dimension of a classified asset
type InteractionState string

const (
	StateDefault InteractionState = "default"
	StateHover   InteractionState = "hover"
	StateActive  InteractionState = "active"
	StateLoading InteractionState = "loading"
	StateError   InteractionState = "error"
	StateSuccess InteractionState = "success"
	StateUnknown InteractionState = "unknown"
)

// AssetFormat is the file encoding of an asset, derived from its extension
type AssetFormat string

const (
	FormatPNG    AssetFormat = "png"
	FormatJPG    AssetFormat = "jpg"
	FormatSVG    AssetFormat = "svg"
	FormatWebP   AssetFormat = "webp"
	FormatGIF    AssetFormat = "gif"
	FormatPDF    AssetFormat = "pdf"
	FormatJSON   AssetFormat = "json"
	FormatSketch AssetFormat = "sketch"
)

// AssetScale is the resolution multiplier of an asset
type AssetScale string

const (
	Scale1x     AssetScale = "1x"
	Scale2x     AssetScale = "2x"
	Scale3x     AssetScale = "3x"
	ScaleVector AssetScale = "vector"
)

// ParsedAssetInfo is the complete classification record for one filename.
// Records are immutable once produced; reclassifying always yields a new one.
type ParsedAssetInfo struct {
	OriginalName string           `json:"original_name"`
	Device       Device           `json:"device"`
	Module       ModuleLabel      `json:"module"`
	Page         PageType         `json:"page"`
	State        InteractionState `json:"state"`
	Format       AssetFormat      `json:"format"`
	Scale        AssetScale       `json:"scale"`
	Confidence   float64          `json:"confidence"`
}

// AssetStructure is the batch-level aggregate over a set of classified assets.
// Buckets exist for every label seen in the batch, including "unknown".
type AssetStructure struct {
	Devices    map[Device][]ParsedAssetInfo      `json:"devices"`
	Modules    map[ModuleLabel][]ParsedAssetInfo `json:"modules"`
	Confidence float64                           `json:"confidence"`
}

var (
	reTrailingExt = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)
	reNonAlnum    = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// NormalizeName converts a raw filename or path segment into the canonical
// token string used by all pattern matchers: the trailing extension is
// removed, every non-alphanumeric run becomes a single space, and the result
// is trimmed and lower-cased. Total over all inputs and idempotent.
func NormalizeName(raw string) string {
	name := reTrailingExt.ReplaceAllString(raw, "")
	name = reNonAlnum.ReplaceAllString(name, " ")
	return strings.ToLower(strings.TrimSpace(name))
}

// extensionFormats maps lower-case file extensions to formats.
// Unlisted extensions fall back to raster PNG rather than failing.
var extensionFormats = map[string]AssetFormat{
	"png":    FormatPNG,
	"jpg":    FormatJPG,
	"jpeg":   FormatJPG,
	"svg":    FormatSVG,
	"webp":   FormatWebP,
	"gif":    FormatGIF,
	"pdf":    FormatPDF,
	"json":   FormatJSON,
	"sketch": FormatSketch,
}

// vectorFormats are the formats whose extension implies a vector scale.
var vectorFormats = map[AssetFormat]bool{
	FormatSVG: true,
	FormatPDF: true,
}

// DetectFormat derives the asset format from the raw filename's extension.
func DetectFormat(raw string) AssetFormat {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(raw), "."))
	if format, ok := extensionFormats[ext]; ok {
		return format
	}
	return FormatPNG
}

// DetectScale derives the resolution multiplier from the raw filename.
// Order matters: 3x markers shadow 2x markers, and only scale-less vector
// formats report "vector".
func DetectScale(raw string) AssetScale {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "@3x"), strings.Contains(lower, "3x"):
		return Scale3x
	case strings.Contains(lower, "@2x"), strings.Contains(lower, "2x"):
		return Scale2x
	case vectorFormats[DetectFormat(raw)]:
		return ScaleVector
	default:
		return Scale1x
	}
}
