package services

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

// ChartService renders a batch aggregate as an HTML report with device and
// module distribution charts.
type ChartService struct{}

// NewChartService creates a new chart service
func NewChartService() *ChartService {
	return &ChartService{}
}

// RenderHTML writes the chart report for a batch aggregate
func (s *ChartService) RenderHTML(structure domain.AssetStructure, title string, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Assets by device",
		}),
	)

	var deviceAxis []string
	var deviceData []opts.BarData
	for _, label := range DeviceLabels(structure) {
		deviceAxis = append(deviceAxis, string(label))
		deviceData = append(deviceData, opts.BarData{Value: len(structure.Devices[label])})
	}
	bar.SetXAxis(deviceAxis).AddSeries("assets", deviceData)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Assets by module",
		}),
	)

	var moduleData []opts.PieData
	for _, label := range ModuleLabels(structure) {
		moduleData = append(moduleData, opts.PieData{
			Name:  string(label),
			Value: len(structure.Modules[label]),
		})
	}
	pie.AddSeries("modules", moduleData)

	page := components.NewPage()
	page.AddCharts(bar, pie)
	return page.Render(w)
}
