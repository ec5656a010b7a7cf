package services

import (
	"math"
	"sort"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

// ReportService builds batch-level aggregates over classified assets
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// Summarize groups a batch by device and by module and computes the mean
// confidence. Unknown labels occupy their own buckets; an empty batch
// reports confidence 0, never NaN.
func (s *ReportService) Summarize(infos []domain.ParsedAssetInfo) domain.AssetStructure {
	structure := domain.AssetStructure{
		Devices: make(map[domain.Device][]domain.ParsedAssetInfo),
		Modules: make(map[domain.ModuleLabel][]domain.ParsedAssetInfo),
	}

	total := 0.0
	for _, info := range infos {
		structure.Devices[info.Device] = append(structure.Devices[info.Device], info)
		structure.Modules[info.Module] = append(structure.Modules[info.Module], info)
		total += info.Confidence
	}

	if len(infos) > 0 {
		structure.Confidence = math.Round(total/float64(len(infos))*100) / 100
	}

	return structure
}

// DeviceLabels returns the device bucket keys in a stable sorted order,
// for deterministic rendering.
func DeviceLabels(structure domain.AssetStructure) []domain.Device {
	labels := make([]domain.Device, 0, len(structure.Devices))
	for label := range structure.Devices {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// ModuleLabels returns the module bucket keys in a stable sorted order.
func ModuleLabels(structure domain.AssetStructure) []domain.ModuleLabel {
	labels := make([]domain.ModuleLabel, 0, len(structure.Modules))
	for label := range structure.Modules {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
