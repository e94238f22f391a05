package weather

import (
	"context"
	"errors"
	"testing"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

type fakeGateway struct {
	response *external.WeatherResponse
	err      error

	calls    int
	lastCity string
	lastDays int
}

func (f *fakeGateway) GetCurrentWeather(ctx context.Context, city string) (*external.WeatherResponse, error) {
	f.calls++
	f.lastCity = city
	return f.response, f.err
}

func (f *fakeGateway) GetWeatherForecast(ctx context.Context, city string, days int) (*external.WeatherResponse, error) {
	f.calls++
	f.lastCity = city
	f.lastDays = days
	return f.response, f.err
}

func TestGetCurrentWeatherPassesSanitizedCity(t *testing.T) {
	gateway := &fakeGateway{response: decodePayload(t, istanbulPayload)}
	useCase := NewWeatherUseCase(gateway)

	response, err := useCase.GetCurrentWeather(context.Background(), " Istanbul<script> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response != gateway.response {
		t.Fatal("expected the gateway payload to be returned unchanged")
	}
	if gateway.lastCity != "Istanbulscript" {
		t.Fatalf("gateway received %q", gateway.lastCity)
	}
}

func TestBlankCityNeverReachesGateway(t *testing.T) {
	gateway := &fakeGateway{}
	useCase := NewWeatherUseCase(gateway)
	ctx := context.Background()

	_, currentErr := useCase.GetCurrentWeather(ctx, "  ")
	_, forecastErr := useCase.GetWeatherForecast(ctx, "", 3)
	_, summaryErr := useCase.GetWeatherSummary(ctx, "\t")

	for _, err := range []error{currentErr, forecastErr, summaryErr} {
		if model.KindOf(err) != model.InvalidInput {
			t.Errorf("expected invalid input, got %v", err)
		}
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway called %d times", gateway.calls)
	}
}

func TestGetWeatherForecastDays(t *testing.T) {
	tests := []struct {
		days    int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{7, false},
		{8, true},
	}

	for _, tt := range tests {
		gateway := &fakeGateway{response: &external.WeatherResponse{}}
		useCase := NewWeatherUseCase(gateway)

		_, err := useCase.GetWeatherForecast(context.Background(), "Ankara", tt.days)
		if tt.wantErr {
			if model.KindOf(err) != model.InvalidInput || gateway.calls != 0 {
				t.Errorf("days=%d: err=%v calls=%d, want invalid input and no call", tt.days, err, gateway.calls)
			}
			continue
		}
		if err != nil || gateway.lastDays != tt.days || gateway.lastCity != "Ankara" {
			t.Errorf("days=%d: err=%v forwarded city=%q days=%d", tt.days, err, gateway.lastCity, gateway.lastDays)
		}
	}
}

func TestGatewayErrorsArePropagated(t *testing.T) {
	upstreamErr := model.NewUpstreamClientError("Failed to fetch weather data", 404, "Unknown location", errors.New("http error: status 404"))
	gateway := &fakeGateway{err: upstreamErr}
	useCase := NewWeatherUseCase(gateway)

	_, err := useCase.GetWeatherSummary(context.Background(), "Atlantis")
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if model.KindOf(err) != model.UpstreamClientError {
		t.Fatalf("unexpected kind %s", model.KindOf(err))
	}

	_, err = useCase.GetWeatherForecast(context.Background(), "Atlantis", 2)
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestGetWeatherSummaryPartialPayload(t *testing.T) {
	gateway := &fakeGateway{response: decodePayload(t, `{"current_condition":[{"temp_C":"18","weatherDesc":[{"value":"Sunny"}]}]}`)}
	useCase := NewWeatherUseCase(gateway)

	summary, err := useCase.GetWeatherSummary(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TemperatureC != "18" || summary.Description != "Sunny" || summary.City != "" {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
