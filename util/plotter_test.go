package util

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecaster/aggregator"
	"weather-forecaster/models"
)

var sampleDays = []aggregator.DayBucket{
	{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Min: 10, Max: 15},
	{Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), Min: 20, Max: 20},
}

func TestDayLabels(t *testing.T) {
	assert.Equal(t, []string{"01/01", "01/02"}, DayLabels(sampleDays))
}

func TestParseGraphType(t *testing.T) {
	g, err := ParseGraphType("line")
	require.NoError(t, err)
	assert.Equal(t, GraphLine, g)

	_, err = ParseGraphType("pie")
	assert.Error(t, err)
}

func TestPlotTemperature_Bar(t *testing.T) {
	var buf bytes.Buffer

	err := PlotTemperature(&buf, sampleDays, models.Celsius, GraphBar)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, TEMPERATURE_CHART_TITLE)
	assert.Contains(t, out, "Temperature (°C)")
	assert.Contains(t, out, "01/02")
	assert.Contains(t, out, `"bar"`)
}

func TestPlotTemperature_Line(t *testing.T) {
	var buf bytes.Buffer

	err := PlotTemperature(&buf, sampleDays, models.Fahrenheit, GraphLine)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Temperature (°F)")
	assert.Contains(t, buf.String(), `"line"`)
}

func TestPlotTemperature_UnknownGraph(t *testing.T) {
	err := PlotTemperature(&bytes.Buffer{}, sampleDays, models.Celsius, GraphType("pie"))

	assert.Error(t, err)
}

func TestPlotHumidity_NoDays(t *testing.T) {
	var buf bytes.Buffer

	err := PlotHumidity(&buf, []aggregator.DayBucket{})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), HUMIDITY_CHART_TITLE)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestPlotHumidity_WriteFailure(t *testing.T) {
	err := PlotHumidity(failingWriter{}, sampleDays)

	assert.Error(t, err)
}

func TestPlotter_RenderTemperature(t *testing.T) {
	html, err := NewPlotter().RenderTemperature(sampleDays, models.Celsius, GraphBar)

	require.NoError(t, err)
	assert.Contains(t, string(html), "<html")
}
