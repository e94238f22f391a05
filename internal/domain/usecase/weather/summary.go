package weather

import (
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

// ToSummary projects the first current condition and the first nearest area onto a
// WeatherSummary. Missing sections leave their fields empty.
func ToSummary(response *external.WeatherResponse) model.WeatherSummary {
	var summary model.WeatherSummary
	if response == nil {
		return summary
	}

	if current, ok := first(response.CurrentCondition); ok {
		summary.TemperatureC = current.TempC
		summary.TemperatureF = current.TempF
		summary.Humidity = current.Humidity
		summary.WindSpeed = current.WindspeedKmph
		summary.WindDirection = current.Winddir16Point
		summary.FeelsLikeC = current.FeelsLikeC
		summary.Visibility = current.Visibility
		summary.Pressure = current.Pressure
		summary.Description = firstValue(current.WeatherDesc)
	}

	if area, ok := first(response.NearestArea); ok {
		summary.City = firstValue(area.AreaName)
		summary.Country = firstValue(area.Country)
	}

	return summary
}

// missingSections lists the parts of the response a summary depends on that are absent
func missingSections(response *external.WeatherResponse) []string {
	if response == nil {
		return []string{"current_condition", "nearest_area"}
	}

	var missing []string
	if len(response.CurrentCondition) == 0 {
		missing = append(missing, "current_condition")
	}
	if len(response.NearestArea) == 0 {
		missing = append(missing, "nearest_area")
	}
	return missing
}

func first[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

func firstValue(values []external.NamedValue) string {
	value, _ := first(values)
	return value.Value
}
