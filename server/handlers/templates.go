package handlers

import (
	"html/template"
	"time"
)

const SUN_TIME_FORMAT = "2006-01-02 15:04:05"

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"suntime": func(t time.Time) string { return t.UTC().Format(SUN_TIME_FORMAT) },
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather Forecaster</title>
<style>
body { font-family: sans-serif; max-width: 760px; margin: 2em auto; }
.warning { background: #fff4d6; padding: .8em; border-left: 4px solid #f0b400; }
.error { background: #fde4e4; padding: .8em; border-left: 4px solid #d33; white-space: pre-wrap; }
iframe { border: 0; width: 740px; height: 420px; }
</style>
</head>
<body>
<h1>Weather Forecaster</h1>
<h2>Enter the city name, choose a temperature unit, and select a graph type:</h2>
<form action="/weather" method="get">
  <p><label>City Name: <input type="text" name="city" value="{{.City}}"></label></p>
  <p><label>Temperature Unit:
    <select name="units">{{range .Units}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
  </label></p>
  <p><label>Graph Type:
    <select name="graph">{{range .Graphs}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
  </label></p>
  <button type="submit">Show Weather</button>
</form>
{{with .Warning}}<p class="warning">{{.}}</p>{{end}}
{{with .Error}}<p class="error">{{.}}</p>{{end}}
{{with .Report}}
<figure>
  <img src="{{.Current.IconURL}}" alt="{{.Current.Status}}">
  <figcaption>{{.Current.Status}}</figcaption>
</figure>
<h2>🌡️ Temperature: <strong>{{.Current.Temperature}}{{.UnitLabel}}</strong></h2>
<h3>Feels Like: {{.Current.FeelsLike}}{{.UnitLabel}}</h3>
<h3>☁️ Clouds: {{.Current.Clouds}}%</h3>
<h3>💨 Wind: {{.Current.WindSpeed}} m/s</h3>
<h3>💧 Humidity: {{.Current.Humidity}}%</h3>
<h3>⏲️ Pressure: {{.Current.Pressure}} mBar</h3>
<h3>🛣️ Visibility: {{.Current.VisibilityKm}} km</h3>
{{end}}
{{with .TemperatureChart}}<iframe title="temperature" srcdoc="{{.}}"></iframe>{{end}}
{{with .Report}}
<h3>Upcoming Weather Alerts:</h3>
{{if .Alerts}}<ul>{{range .Alerts}}<li>{{.Label}}</li>{{end}}</ul>{{else}}<p>No upcoming alerts!</p>{{end}}
<h4>🌅 Sunrise: {{suntime .Sunrise}}</h4>
<h4>🌇 Sunset: {{suntime .Sunset}}</h4>
{{end}}
{{with .HumidityChart}}<iframe title="humidity" srcdoc="{{.}}"></iframe>{{end}}
</body>
</html>
`

type option struct {
	Value    string
	Label    string
	Selected bool
}
