package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-api/internal/infra/metrics"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	SetupMetrics(e)
	SetupCORS(e, []string{"http://allowed.example"})

	e.GET("/api/weather/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	e.GET("/api/weather/boom", func(c echo.Context) error {
		return c.NoContent(http.StatusInternalServerError)
	})
	return e
}

func TestRequestIDIsGeneratedAndPropagated(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weather/ping", nil))
	if id := rec.Header().Get(echo.HeaderXRequestID); len(id) != 36 {
		t.Fatalf("expected a generated uuid, got %q", id)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/weather/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "caller-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if id := rec.Header().Get(echo.HeaderXRequestID); id != "caller-id" {
		t.Fatalf("expected caller request id, got %q", id)
	}
}

func TestCORSPreflight(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodOptions, "/api/weather/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "http://allowed.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "http://allowed.example" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowMethods); !strings.Contains(got, http.MethodGet) {
		t.Fatalf("unexpected allow methods %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/weather/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "http://other.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Fatalf("expected no allow origin, got %q", got)
	}
}

func TestMetricsCountRoutes(t *testing.T) {
	e := newTestEcho()
	for _, target := range []string{"/api/weather/ping", "/api/weather/boom", "/api/weather/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	for _, series := range []string{
		`weather_api_requests_total{method="GET",route="/api/weather/ping",status="200"}`,
		`weather_api_requests_total{method="GET",route="/api/weather/boom",status="500"}`,
		`,status="404"}`,
	} {
		if !strings.Contains(body, series) {
			t.Errorf("metrics output missing %s", series)
		}
	}
}

func TestSkipInfrastructurePaths(t *testing.T) {
	e := echo.New()
	tests := []struct {
		route string
		path  string
		want  bool
	}{
		{"/api/weather/health", "/api/weather/health", true},
		{"/swagger/*", "/swagger/index.html", true},
		{"/metrics", "/metrics", true},
		{"/api/weather/current/:city", "/api/weather/current/London", false},
		{"/api/weather/current/:city", "/api/weather/current/healthville", false},
		{"/api/weather/forecast/:city", "/api/weather/forecast/metrics", false},
		{"/api/weather/full/:city", "/api/weather/full/swagger", false},
	}

	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
		c.SetPath(tt.route)
		if got := skipInfrastructurePaths(c); got != tt.want {
			t.Errorf("skipInfrastructurePaths(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
