package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-api/configs"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

const londonPayload = `{
  "current_condition": [{"temp_C": "14", "temp_F": "57", "weatherDesc": [{"value": "Light rain"}]}],
  "weather": [],
  "nearest_area": [{"areaName": [{"value": "London"}], "country": [{"value": "United Kingdom"}]}]
}`

func setupServer(t *testing.T, env map[string]string) *echo.Echo {
	t.Helper()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Mozilla/5.0 (compatible; WeatherApp/1.0)" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, londonPayload)
	}))
	t.Cleanup(provider.Close)

	t.Setenv("WEATHER_API_BASE_URL", provider.URL)
	for key, value := range env {
		t.Setenv(key, value)
	}

	if err := resource.Load(configs.DefaultProperties); err != nil {
		t.Fatalf("fail to load properties: %v", err)
	}
	if err := msg.Load(configs.DefaultMessages); err != nil {
		t.Fatalf("fail to load messages: %v", err)
	}
	return newServer()
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServerRoutes(t *testing.T) {
	e := setupServer(t, nil)

	rec := get(e, "/api/weather/health")
	if rec.Code != http.StatusOK || rec.Body.String() != "Weather Service is running!" {
		t.Fatalf("health: %d %q", rec.Code, rec.Body.String())
	}

	rec = get(e, "/api/weather/current/London")
	if rec.Code != http.StatusOK {
		t.Fatalf("current: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"city":"London"`) || !strings.Contains(rec.Body.String(), `"description":"Light rain"`) {
		t.Fatalf("current: unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatal("expected a request id header")
	}

	rec = get(e, "/api/weather/forecast/London?days=9")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("forecast: expected 400, got %d", rec.Code)
	}

	rec = get(e, "/api/weather/invalid")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("invalid: expected 404, got %d", rec.Code)
	}
}

func TestDefaultOutboundTimeoutsAreUnset(t *testing.T) {
	setupServer(t, nil)

	if got := resource.GetDuration("weather.api.connection-timeout"); got != 0 {
		t.Errorf("connection-timeout = %s, want 0", got)
	}
	if got := resource.GetDuration("weather.api.read-timeout"); got != 0 {
		t.Errorf("read-timeout = %s, want 0", got)
	}
}

func TestServerExposesMetricsAndDocs(t *testing.T) {
	e := setupServer(t, nil)
	get(e, "/api/weather/full/London")

	rec := get(e, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	for _, series := range []string{"weather_api_requests_total", "weather_upstream_requests_total", "weather_upstream_request_duration_seconds"} {
		if !strings.Contains(rec.Body.String(), series) {
			t.Errorf("metrics output missing %s", series)
		}
	}

	rec = get(e, "/swagger/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("swagger: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"/forecast/{city}"`) || !strings.Contains(rec.Body.String(), `"basePath": "/api/weather"`) {
		t.Fatalf("swagger: unexpected document %s", rec.Body.String())
	}
}

func TestServerHonoursConfiguration(t *testing.T) {
	e := setupServer(t, map[string]string{
		"CONTEXT_PATH":    "/weather",
		"SWAGGER_ENABLED": "false",
	})

	if rec := get(e, "/weather/health"); rec.Code != http.StatusOK {
		t.Fatalf("expected health under the configured context path, got %d", rec.Code)
	}
	if rec := get(e, "/api/weather/health"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for the default context path, got %d", rec.Code)
	}
	if rec := get(e, "/swagger/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected swagger to be disabled, got %d", rec.Code)
	}
}
