package api

import (
	"context"

	"weather-api/internal/domain/model/external"
)

// WeatherGateway defines the interface for calls to the wttr.in weather API
type WeatherGateway interface {
	// GetCurrentWeather fetches current conditions, today's forecast and the resolved area
	// for an already sanitized city
	GetCurrentWeather(ctx context.Context, city string) (*external.WeatherResponse, error)

	// GetWeatherForecast fetches the forecast for an already sanitized city
	// days: number of days (1-7), validated by the caller
	GetWeatherForecast(ctx context.Context, city string, days int) (*external.WeatherResponse, error)
}
