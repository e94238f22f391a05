package weather

import (
	"context"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

type UseCase interface {
	// GetCurrentWeather validates the city and returns the provider's full current payload
	GetCurrentWeather(ctx context.Context, city string) (*external.WeatherResponse, error)

	// GetWeatherForecast validates city and days (1-7) and returns the provider's forecast payload
	GetWeatherForecast(ctx context.Context, city string, days int) (*external.WeatherResponse, error)

	// GetWeatherSummary fetches current conditions and projects them onto a WeatherSummary
	GetWeatherSummary(ctx context.Context, city string) (*model.WeatherSummary, error)
}
