package models

import "fmt"

const OPEN_WEATHER_ICON_URL_FORMAT = "https://openweathermap.org/img/wn/%s@4x.png"

// WeatherCondition is one entry of the "weather" array of an OpenWeatherMap response.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// IconURL returns the 4x icon image for the condition.
func (c WeatherCondition) IconURL() string {
	if c.Icon == "" {
		return ""
	}
	return fmt.Sprintf(OPEN_WEATHER_ICON_URL_FORMAT, c.Icon)
}

// MainReadings holds the "main" block. Temperatures are Kelvin.
type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Clouds struct {
	All int `json:"all"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}
