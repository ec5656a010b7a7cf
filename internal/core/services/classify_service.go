package services

import (
	"math"
	"regexp"
	"strconv"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

// ClassifyService tags asset filenames along the four semantic dimensions
// (device, module, page, state) plus format and scale. Classification is
// pure and total: any input string produces a record, never an error.
type ClassifyService struct {
	rules *RuleSet
}

// NewClassifyService creates a classifier over the given rule tables.
// The service never mutates the rule set.
func NewClassifyService(rules *RuleSet) *ClassifyService {
	return &ClassifyService{
		rules: rules,
	}
}

// reScreenSize matches candidate pixel widths used by the device fallback
var reScreenSize = regexp.MustCompile(`\d{3,4}`)

// Classify produces the full classification record for one filename.
// Format and scale read the raw name; the four dimensions read the
// normalized name. Worst case every dimension is unknown and confidence 0.
func (s *ClassifyService) Classify(name string) domain.ParsedAssetInfo {
	normalized := domain.NormalizeName(name)

	device := s.classifyDevice(normalized)
	module := s.classifyModule(normalized)
	page := s.classifyPage(normalized)
	state := s.classifyState(normalized)

	return domain.ParsedAssetInfo{
		OriginalName: name,
		Device:       device,
		Module:       module,
		Page:         page,
		State:        state,
		Format:       domain.DetectFormat(name),
		Scale:        domain.DetectScale(name),
		Confidence:   scoreConfidence(device, module, page, state),
	}
}

// ClassifyBatch classifies every filename, preserving input order.
// Per-item results do not depend on batch order or batch contents.
func (s *ClassifyService) ClassifyBatch(names []string) []domain.ParsedAssetInfo {
	infos := make([]domain.ParsedAssetInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, s.Classify(name))
	}
	return infos
}

// classifyDevice matches the device table, then falls back to bucketing the
// first 3-4 digit number in the name against common breakpoint widths.
func (s *ClassifyService) classifyDevice(normalized string) domain.Device {
	if label, ok := matchFirst(s.rules.Device, normalized); ok {
		return domain.Device(label)
	}

	if match := reScreenSize.FindString(normalized); match != "" {
		width, err := strconv.Atoi(match)
		if err == nil {
			switch {
			case width >= 1200:
				return domain.DeviceDesktop
			case width >= 768:
				return domain.DeviceTablet
			case width >= 320:
				return domain.DeviceMobile
			}
		}
	}

	return domain.DeviceUnknown
}

func (s *ClassifyService) classifyModule(normalized string) domain.ModuleLabel {
	if label, ok := matchFirst(s.rules.Module, normalized); ok {
		return domain.ModuleLabel(label)
	}
	return domain.ModuleUnknown
}

func (s *ClassifyService) classifyPage(normalized string) domain.PageType {
	if label, ok := matchFirst(s.rules.Page, normalized); ok {
		return domain.PageType(label)
	}
	return domain.PageUnknown
}

func (s *ClassifyService) classifyState(normalized string) domain.InteractionState {
	if label, ok := matchFirst(s.rules.State, normalized); ok {
		return domain.InteractionState(label)
	}
	return domain.StateUnknown
}

// scoreConfidence is 0.25 per classified dimension, rounded to two decimals.
// The result range is exactly {0, 0.25, 0.5, 0.75, 1.0}; downstream
// consumers rely on those five discrete values.
func scoreConfidence(device domain.Device, module domain.ModuleLabel, page domain.PageType, state domain.InteractionState) float64 {
	classified := 0
	if device != domain.DeviceUnknown {
		classified++
	}
	if module != domain.ModuleUnknown {
		classified++
	}
	if page != domain.PageUnknown {
		classified++
	}
	if state != domain.StateUnknown {
		classified++
	}
	return math.Round(0.25*float64(classified)*100) / 100
}
