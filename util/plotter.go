package util

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"weather-forecaster/aggregator"
	"weather-forecaster/models"
)

// GraphType is the style of the temperature chart.
type GraphType string

const (
	GraphBar  GraphType = "bar"
	GraphLine GraphType = "line"
)

const (
	MIN_SERIES_COLOR = "#42bff4"
	MAX_SERIES_COLOR = "#ff5349"
	DAY_LABEL_FORMAT = "01/02"
	CHART_WIDTH      = "700px"
	CHART_HEIGHT     = "400px"

	TEMPERATURE_CHART_TITLE = "5-Day Min/Max Temperature"
	HUMIDITY_CHART_TITLE    = "5-Day Humidity Forecast"
)

// ParseGraphType accepts the chart styles offered by the form.
func ParseGraphType(s string) (GraphType, error) {
	switch g := GraphType(s); g {
	case GraphBar, GraphLine:
		return g, nil
	}
	return "", fmt.Errorf("unsupported graph type %q", s)
}

// DayLabels formats bucket dates as MM/DD axis labels.
func DayLabels(days []aggregator.DayBucket) []string {
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Date.Format(DAY_LABEL_FORMAT)
	}
	return labels
}

// Plotter renders forecast charts as standalone HTML documents.
type Plotter struct{}

func NewPlotter() *Plotter {
	return &Plotter{}
}

// RenderTemperature renders per-day min/max temperature as a bar or line chart.
func (p *Plotter) RenderTemperature(days []aggregator.DayBucket, unit models.TemperatureUnit, graph GraphType) ([]byte, error) {
	var buf bytes.Buffer
	if err := PlotTemperature(&buf, days, unit, graph); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHumidity renders the per-day maximum humidity as a bar chart.
func (p *Plotter) RenderHumidity(days []aggregator.DayBucket) ([]byte, error) {
	var buf bytes.Buffer
	if err := PlotHumidity(&buf, days); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func globalOptions(pageTitle, title, yAxis string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pageTitle,
			Width:     CHART_WIDTH,
			Height:    CHART_HEIGHT,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxis}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	}
}

// PlotTemperature writes the temperature chart to w.
func PlotTemperature(w io.Writer, days []aggregator.DayBucket, unit models.TemperatureUnit, graph GraphType) error {
	yAxis := fmt.Sprintf("Temperature (%s)", unit.Label())
	labels := DayLabels(days)

	switch graph {
	case GraphBar:
		mins := make([]opts.BarData, len(days))
		maxs := make([]opts.BarData, len(days))
		for i, d := range days {
			mins[i] = opts.BarData{Value: d.Min}
			maxs[i] = opts.BarData{Value: d.Max}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(globalOptions("Temperature", TEMPERATURE_CHART_TITLE, yAxis)...)
		bar.SetXAxis(labels).
			AddSeries("Min", mins, charts.WithItemStyleOpts(opts.ItemStyle{Color: MIN_SERIES_COLOR})).
			AddSeries("Max", maxs, charts.WithItemStyleOpts(opts.ItemStyle{Color: MAX_SERIES_COLOR}))
		if err := bar.Render(w); err != nil {
			return fmt.Errorf("failed to render temperature bar chart: %w", err)
		}

	case GraphLine:
		mins := make([]opts.LineData, len(days))
		maxs := make([]opts.LineData, len(days))
		for i, d := range days {
			mins[i] = opts.LineData{Value: d.Min}
			maxs[i] = opts.LineData{Value: d.Max}
		}

		line := charts.NewLine()
		line.SetGlobalOptions(globalOptions("Temperature", TEMPERATURE_CHART_TITLE, yAxis)...)
		line.SetXAxis(labels).
			AddSeries("Min", mins, charts.WithItemStyleOpts(opts.ItemStyle{Color: MIN_SERIES_COLOR})).
			AddSeries("Max", maxs, charts.WithItemStyleOpts(opts.ItemStyle{Color: MAX_SERIES_COLOR})).
			SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
		if err := line.Render(w); err != nil {
			return fmt.Errorf("failed to render temperature line chart: %w", err)
		}

	default:
		return fmt.Errorf("unsupported graph type %q", graph)
	}

	return nil
}

// PlotHumidity writes the humidity chart to w.
func PlotHumidity(w io.Writer, days []aggregator.DayBucket) error {
	values := make([]opts.BarData, len(days))
	for i, d := range days {
		values[i] = opts.BarData{Value: d.Max}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Humidity", HUMIDITY_CHART_TITLE, "Humidity (%)")...)
	bar.SetXAxis(DayLabels(days)).
		AddSeries("Humidity", values, charts.WithItemStyleOpts(opts.ItemStyle{Color: MIN_SERIES_COLOR}))
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render humidity chart: %w", err)
	}
	return nil
}
