package charts

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog/log"

	"github.com/devopsboard/dashboard/internal/dashboard"
	"github.com/devopsboard/dashboard/internal/status"
)

var toneColors = map[string]string{
	"green":  "#16a34a",
	"yellow": "#ca8a04",
	"blue":   "#2563eb",
	"red":    "#dc2626",
	"gray":   "#6b7280",
}

var badgeColors = map[string]string{
	status.CategorySuccess.Badge: toneColors["green"],
	status.CategoryFailure.Badge: toneColors["red"],
	status.CategoryRunning.Badge: toneColors["blue"],
	status.CategoryPending.Badge: toneColors["yellow"],
	status.CategoryUnknown.Badge: toneColors["gray"],
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) SystemHealthChart(metrics []dashboard.Metric) string {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "System Health"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
		charts.WithInitializationOpts(opts.Initialization{
			Height: "240px",
			Width:  "100%",
		}),
	)

	xAxis := make([]string, len(metrics))
	data := make([]opts.BarData, len(metrics))
	for i, m := range metrics {
		xAxis[i] = m.Name
		data[i] = opts.BarData{
			Value:     m.Percent,
			ItemStyle: &opts.ItemStyle{Color: toneColor(m.Tone)},
		}
	}

	bar.SetXAxis(xAxis).AddSeries("Usage %", data)

	return g.renderToString(bar)
}

// StatusChart counts deployments and pipelines per badge.
func (g *Generator) StatusChart(deployments []dashboard.Deployment, pipelines []dashboard.Pipeline) string {
	order := []status.Category{
		status.CategorySuccess,
		status.CategoryRunning,
		status.CategoryPending,
		status.CategoryFailure,
		status.CategoryUnknown,
	}
	counts := make(map[string]int, len(order))
	for _, d := range deployments {
		counts[status.Classify(d.Status).Badge]++
	}
	for _, p := range pipelines {
		counts[status.Classify(p.Status).Badge]++
	}

	var data []opts.PieData
	for _, c := range order {
		if counts[c.Badge] == 0 {
			continue
		}
		data = append(data, opts.PieData{
			Name:      c.Badge,
			Value:     counts[c.Badge],
			ItemStyle: &opts.ItemStyle{Color: badgeColors[c.Badge]},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Status Breakdown"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Height: "240px",
			Width:  "100%",
		}),
	)
	pie.AddSeries("Status", data)

	return g.renderToString(pie)
}

// UsageBar draws a horizontal usage gauge. Percent is clamped to 0..100.
func UsageBar(percent int, tone string) template.HTML {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return template.HTML(fmt.Sprintf(`<svg class="usage-bar" viewBox="0 0 100 8" preserveAspectRatio="none" role="img" aria-label="%d%%">
	<rect width="100" height="8" rx="4" fill="#e5e7eb"/>
	<rect width="%d" height="8" rx="4" fill="%s"/>
</svg>`, percent, percent, toneColor(tone)))
}

func toneColor(tone string) string {
	if c, ok := toneColors[tone]; ok {
		return c
	}
	return toneColors["gray"]
}

// Interface for anything that can render itself to an io.Writer
type Renderer interface {
	Render(w io.Writer) error
}

func (g *Generator) renderToString(c Renderer) string {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		log.Error().Err(err).Msg("Failed to render chart")
		return ""
	}
	return buf.String()
}
