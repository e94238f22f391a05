package weather

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

// GetCurrentWeather validates the city and returns the provider's full current payload
func (uc *weatherUseCase) GetCurrentWeather(ctx context.Context, city string) (*external.WeatherResponse, error) {
	log.Info(msg.GetMessage("weather.current.fetching", city))

	sanitizedCity, err := SanitizeCity(city)
	if err != nil {
		return nil, err
	}

	response, err := uc.apiGateway.GetCurrentWeather(ctx, sanitizedCity)
	if err != nil {
		logFailure(err, zap.String("city", city))
		return nil, err
	}

	log.Info(msg.GetMessage("weather.current.fetched", city))
	return response, nil
}

// GetWeatherForecast validates city and days and returns the provider's forecast payload
func (uc *weatherUseCase) GetWeatherForecast(ctx context.Context, city string, days int) (*external.WeatherResponse, error) {
	log.Info(msg.GetMessage("weather.forecast.fetching", city, days))

	sanitizedCity, err := SanitizeCity(city)
	if err != nil {
		return nil, err
	}
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	response, err := uc.apiGateway.GetWeatherForecast(ctx, sanitizedCity, days)
	if err != nil {
		logFailure(err, zap.String("city", city), zap.Int("days", days))
		return nil, err
	}

	log.Info(msg.GetMessage("weather.forecast.fetched", city))
	return response, nil
}

// GetWeatherSummary fetches current conditions and projects them onto a WeatherSummary
func (uc *weatherUseCase) GetWeatherSummary(ctx context.Context, city string) (*model.WeatherSummary, error) {
	response, err := uc.GetCurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	if missing := missingSections(response); len(missing) > 0 {
		log.Warn(msg.GetMessage("weather.summary-partial", city, strings.Join(missing, ", ")),
			zap.String("city", city),
			zap.Strings("missing", missing))
	}

	summary := ToSummary(response)
	return &summary, nil
}

// logFailure logs upstream failures with the status and body the provider returned
func logFailure(err error, fields ...zap.Field) {
	var weatherErr *model.WeatherError
	if !errors.As(err, &weatherErr) {
		log.Error(err.Error(), append(fields, zap.Error(err))...)
		return
	}

	fields = append(fields, zap.String("kind", weatherErr.Kind.String()), zap.Error(weatherErr.Err))
	if weatherErr.Status != 0 {
		fields = append(fields, zap.Int("upstream_status", weatherErr.Status))
	}
	if weatherErr.Body != "" {
		fields = append(fields, zap.String("upstream_body", weatherErr.Body))
	}
	log.Error(weatherErr.Message, fields...)
}
