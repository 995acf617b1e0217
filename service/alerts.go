package services

import "weather-forecaster/models"

// Alert is an upcoming weather phenomenon found in the forecast.
type Alert struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type codeRange struct {
	start, end int
}

type alertRule struct {
	kind   string
	label  string
	ranges []codeRange
}

// OpenWeatherMap condition code ranges, checked in display order.
var alertRules = []alertRule{
	{kind: "clouds", label: "Clouds ⛅", ranges: []codeRange{{801, 804}}},
	{kind: "rain", label: "Rain 🌧️", ranges: []codeRange{{500, 531}}},
	{kind: "snow", label: "Snow ❄️", ranges: []codeRange{{600, 622}}},
	{kind: "hurricane", label: "Hurricane 🌀", ranges: []codeRange{{902, 902}, {962, 962}}},
	{kind: "tornado", label: "Tornado 🌪️", ranges: []codeRange{{781, 781}, {900, 900}}},
	{kind: "fog", label: "Fog 🌫️", ranges: []codeRange{{741, 741}}},
	{kind: "storm", label: "Storm 🌩️", ranges: []codeRange{{901, 901}, {960, 961}}},
}

// DetectAlerts reports every rule matched by at least one forecast condition.
func DetectAlerts(entries []models.ForecastEntry) []Alert {
	alerts := make([]Alert, 0)
	for _, rule := range alertRules {
		if rule.matchesAny(entries) {
			alerts = append(alerts, Alert{Kind: rule.kind, Label: rule.label})
		}
	}
	return alerts
}

func (r alertRule) matchesAny(entries []models.ForecastEntry) bool {
	for _, e := range entries {
		for _, c := range e.Weather {
			for _, cr := range r.ranges {
				if c.ID >= cr.start && c.ID <= cr.end {
					return true
				}
			}
		}
	}
	return false
}
