package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/internal/infra/metrics"
	"weather-api/pkg/http"
)

const (
	operationCurrent  = "current"
	operationForecast = "forecast"
)

// WeatherGatewayConfig holds the outbound request settings
type WeatherGatewayConfig struct {
	BaseURL   string
	UserAgent string
	Format    string
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	headers    map[string]string
	format     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config WeatherGatewayConfig, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(config.BaseURL, clientOptions)

	format := config.Format
	if format == "" {
		format = "j1"
	}

	return &weatherGatewayImpl{
		httpClient: httpClient,
		headers: map[string]string{
			"User-Agent": config.UserAgent,
			"Accept":     "application/json",
		},
		format: format,
	}
}

// GetCurrentWeather fetches current conditions for a city
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, city string) (*external.WeatherResponse, error) {
	queryParams := map[string]string{"format": w.format}
	return w.fetch(ctx, operationCurrent, city, queryParams)
}

// GetWeatherForecast fetches the forecast for a city
func (w *weatherGatewayImpl) GetWeatherForecast(ctx context.Context, city string, days int) (*external.WeatherResponse, error) {
	queryParams := map[string]string{
		"format": w.format,
		"days":   strconv.Itoa(days),
	}
	return w.fetch(ctx, operationForecast, city, queryParams)
}

func (w *weatherGatewayImpl) fetch(ctx context.Context, operation string, city string, queryParams map[string]string) (*external.WeatherResponse, error) {
	path := "/" + url.PathEscape(city)

	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(queryParams).
		WithHeaders(w.headers).
		WithSuccessResp(&external.WeatherResponse{}).
		Execute()

	if err == nil {
		if response, ok := successResp.(*external.WeatherResponse); ok && response != nil {
			return response, nil
		}
		err = http.ErrEmptyBody
	}

	weatherErr := classifyError(operation, city, err)
	metrics.UpstreamFailures.WithLabelValues(operation, weatherErr.Kind.String()).Inc()
	return nil, weatherErr
}

// classifyError maps transport level failures to weather error kinds
func classifyError(operation string, city string, err error) *model.WeatherError {
	subject := "weather data"
	if operation == operationForecast {
		subject = "weather forecast"
	}

	if errors.Is(err, http.ErrEmptyBody) {
		return model.NewUpstreamUnavailableError(fmt.Sprintf("No %s received for city: %s", subject, city), 0, err)
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode >= 400 && statusErr.StatusCode < 500:
			return model.NewUpstreamClientError(fmt.Sprintf("Failed to fetch %s", subject), statusErr.StatusCode, statusErr.Body, err)
		case statusErr.StatusCode >= 500:
			return model.NewUpstreamUnavailableError("Weather service temporarily unavailable", statusErr.StatusCode, err)
		}
	}

	return model.NewUnexpectedFailure(fmt.Sprintf("Failed to fetch %s", subject), err)
}
