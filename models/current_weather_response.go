package models

import "time"

// CurrentWeatherResponse is the body of GET /weather.
type CurrentWeatherResponse struct {
	Weather    []WeatherCondition `json:"weather"`
	Main       MainReadings       `json:"main"`
	Visibility int                `json:"visibility"`
	Wind       Wind               `json:"wind"`
	Clouds     Clouds             `json:"clouds"`
	Dt         int64              `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
	Cod      int    `json:"cod"`
}

// Condition returns the primary condition, or the zero value when none was reported.
func (r *CurrentWeatherResponse) Condition() WeatherCondition {
	if len(r.Weather) == 0 {
		return WeatherCondition{}
	}
	return r.Weather[0]
}

func (r *CurrentWeatherResponse) SunriseTime() time.Time {
	return time.Unix(r.Sys.Sunrise, 0).UTC()
}

func (r *CurrentWeatherResponse) SunsetTime() time.Time {
	return time.Unix(r.Sys.Sunset, 0).UTC()
}

// VisibilityKm converts the reported visibility in meters.
func (r *CurrentWeatherResponse) VisibilityKm() float64 {
	return float64(r.Visibility) / 1000
}
