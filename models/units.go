package models

import (
	"fmt"
	"math"
)

// TemperatureUnit selects how Kelvin readings are presented.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
	Kelvin     TemperatureUnit = "kelvin"
)

const DEGREE_SIGN = "°"

// ParseTemperatureUnit accepts the unit names offered by the form.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch u := TemperatureUnit(s); u {
	case Celsius, Fahrenheit:
		return u, nil
	}
	return "", fmt.Errorf("unsupported temperature unit %q", s)
}

// Symbol returns the unit letter, e.g. "C".
func (u TemperatureUnit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "F"
	case Kelvin:
		return "K"
	default:
		return "C"
	}
}

// Label returns the symbol with its degree sign, e.g. "°C".
func (u TemperatureUnit) Label() string {
	if u == Kelvin {
		return u.Symbol()
	}
	return DEGREE_SIGN + u.Symbol()
}

// FromKelvin converts k into u, rounded to two decimals.
func (u TemperatureUnit) FromKelvin(k float64) float64 {
	var v float64
	switch u {
	case Kelvin:
		v = k
	case Fahrenheit:
		v = (k-273.15)*9/5 + 32
	default:
		v = k - 273.15
	}
	return math.Round(v*100) / 100
}
