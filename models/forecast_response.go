package models

import "time"

// ForecastEntry is one 3-hour interval of GET /forecast.
type ForecastEntry struct {
	Dt         int64              `json:"dt"`
	Main       MainReadings       `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Clouds     Clouds             `json:"clouds"`
	Wind       Wind               `json:"wind"`
	Visibility int                `json:"visibility"`
	Pop        float64            `json:"pop"`
	DtTxt      string             `json:"dt_txt"`
}

// ReferenceTime is the start of the interval. dt is epoch seconds, so UTC.
func (e ForecastEntry) ReferenceTime() time.Time {
	return time.Unix(e.Dt, 0).UTC()
}

// Temperature returns the interval temperature converted to unit.
func (e ForecastEntry) Temperature(unit TemperatureUnit) float64 {
	return unit.FromKelvin(e.Main.Temp)
}

// ForecastResponse is the body of GET /forecast.
type ForecastResponse struct {
	Cod  string          `json:"cod"`
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City ForecastCity    `json:"city"`
}

type ForecastCity struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
	Sunrise  int64  `json:"sunrise"`
	Sunset   int64  `json:"sunset"`
}
