package weather

import (
	"fmt"
	"regexp"
	"strings"

	"weather-api/internal/domain/model"
	"weather-api/pkg/util/numberutils"
)

const (
	MinForecastDays     = 1
	MaxForecastDays     = 7
	DefaultForecastDays = 3
)

var disallowedCityChars = regexp.MustCompile(`[^a-zA-Z0-9\s,-]`)

// SanitizeCity rejects blank input and strips every character outside [A-Za-z0-9\s,-]
// from the trimmed city name.
func SanitizeCity(city string) (string, error) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return "", model.NewInvalidInputError("City name cannot be null or empty")
	}
	return disallowedCityChars.ReplaceAllString(trimmed, ""), nil
}

// ValidateDays checks that the forecast length is within the range wttr.in serves.
func ValidateDays(days int) error {
	if !numberutils.IsIntInRange(days, MinForecastDays, MaxForecastDays) {
		return model.NewInvalidInputError(fmt.Sprintf("Number of days must be between %d and %d", MinForecastDays, MaxForecastDays))
	}
	return nil
}
