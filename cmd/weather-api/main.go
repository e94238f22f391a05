package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-api/configs"
	"weather-api/docs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	apigateway "weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/internal/infra/metrics"
	"weather-api/internal/infra/upstream"
	httpclient "weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

// @title Weather Service API
// @version 1.0.0
// @description Real time weather information for cities worldwide, served from the free wttr.in service.
// @contact.name Weather Team
// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT
// @BasePath /api/weather
func main() {
	dotEnvErr := godotenv.Load(configs.Env.DotEnvFilePath)
	if err := resource.Init(configs.Env.PropertiesFilePath, configs.DefaultProperties); err != nil {
		log.Fatalf("Fail to load properties: %v", err)
	}
	if err := msg.Init(configs.Env.MessagesFilePath, configs.DefaultMessages); err != nil {
		log.Fatalf("Fail to load messages: %v", err)
	}

	log.Init(resource.GetStringOrDefault("app.name", configs.Env.ApplicationName))
	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	if dotEnvErr != nil && !errors.Is(dotEnvErr, os.ErrNotExist) {
		log.Warn(msg.GetMessage("app.env-missing", dotEnvErr))
	}
	log.Info(msg.GetMessage("app.start"))

	e := newServer()

	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped unexpectedly: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	log.Info(msg.GetMessage("app.stop"))
}

// newServer wires gateways, use cases and controllers from the loaded properties
func newServer() *echo.Echo {
	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupMetrics(e)
	middleware.SetupCORS(e, resource.GetStringSlice("app.cors.allowed-origins"))

	contextPath := resource.GetStringOrDefault("app.server.context-path", "/api/weather")
	api := e.Group(contextPath)

	// Init WeatherGateway
	weatherGateway := apigateway.NewWeatherGateway(
		apigateway.WeatherGatewayConfig{
			BaseURL:   resource.GetStringOrDefault("weather.api.base-url", "https://wttr.in"),
			UserAgent: resource.GetString("weather.api.user-agent"),
			Format:    resource.GetString("weather.api.format"),
		},
		httpclient.ClientOptions{
			FollowRedirect:    true,
			ConnectionTimeout: resource.GetDuration("weather.api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("weather.api.read-timeout"),
			Logger:            upstream.NewLogger(),
		},
	)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase()
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase, resource.GetInt("weather.forecast.default-days"))

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	if resource.GetBool("app.swagger.enabled") {
		docs.SwaggerInfo.BasePath = contextPath
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}
