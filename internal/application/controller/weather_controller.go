package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/util/numberutils"
)

type WeatherController struct {
	api         *echo.Group
	useCase     weather.UseCase
	defaultDays int
}

// NewWeatherController builds the weather routes. defaultDays is used when a forecast request
// has no days parameter; values outside 1-7 fall back to weather.DefaultForecastDays.
func NewWeatherController(api *echo.Group, useCase weather.UseCase, defaultDays int) *WeatherController {
	if weather.ValidateDays(defaultDays) != nil {
		defaultDays = weather.DefaultForecastDays
	}
	return &WeatherController{api: api, useCase: useCase, defaultDays: defaultDays}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/current/:city", controller.GetCurrentWeather)
	controller.api.GET("/forecast/:city", controller.GetWeatherForecast)
	controller.api.GET("/full/:city", controller.GetFullWeatherDetails)
}

// GetCurrentWeather godoc
// @Summary Get current weather summary
// @Description Fetch current conditions for a city from wttr.in and return a simplified summary
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(Istanbul)
// @Success 200 {object} model.WeatherSummary "Weather summary"
// @Failure 400 "Invalid city name"
// @Failure 500 "Weather provider failure"
// @Router /current/{city} [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	city, err := cityParam(c)
	if err != nil {
		return respondWithError(c, err, msg.GetMessage("weather.current.failed", c.Param("city")))
	}
	log.Info(msg.GetMessage("weather.current.received", city))

	summary, err := controller.useCase.GetWeatherSummary(c.Request().Context(), city)
	if err != nil {
		return respondWithError(c, err, msg.GetMessage("weather.current.failed", city), zap.String("city", city))
	}
	return c.JSON(http.StatusOK, summary)
}

// GetWeatherForecast godoc
// @Summary Get weather forecast
// @Description Fetch a 1 to 7 day forecast for a city from wttr.in and return the full provider payload
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(Ankara)
// @Param days query int false "Number of forecast days (1-7)" default(3) minimum(1) maximum(7)
// @Success 200 {object} external.WeatherResponse "Full weather payload"
// @Failure 400 "Invalid city name or days"
// @Failure 500 "Weather provider failure"
// @Router /forecast/{city} [get]
func (controller *WeatherController) GetWeatherForecast(c echo.Context) error {
	city, err := cityParam(c)
	if err != nil {
		return respondWithError(c, err, msg.GetMessage("weather.forecast.failed", c.Param("city"), c.QueryParam("days")))
	}
	daysParam := c.QueryParam("days")

	if daysParam != "" && !numberutils.IsInt(daysParam) {
		log.Warn(msg.GetMessage("weather.forecast.invalid-days", daysParam))
		return c.NoContent(http.StatusBadRequest)
	}
	days := numberutils.ToIntWithDefault(daysParam, controller.defaultDays)
	log.Info(msg.GetMessage("weather.forecast.received", city, days))

	if err := weather.ValidateDays(days); err != nil {
		log.Warn(msg.GetMessage("weather.forecast.invalid-days", days))
		return c.NoContent(http.StatusBadRequest)
	}

	response, err := controller.useCase.GetWeatherForecast(c.Request().Context(), city, days)
	if err != nil {
		return respondWithError(c, err, msg.GetMessage("weather.forecast.failed", city, days), zap.String("city", city), zap.Int("days", days))
	}
	return c.JSON(http.StatusOK, response)
}

// GetFullWeatherDetails godoc
// @Summary Get full weather details
// @Description Fetch current conditions for a city from wttr.in and return the full provider payload
// @Tags weather
// @Produce json
// @Param city path string true "City name" example(London)
// @Success 200 {object} external.WeatherResponse "Full weather payload"
// @Failure 400 "Invalid city name"
// @Failure 500 "Weather provider failure"
// @Router /full/{city} [get]
func (controller *WeatherController) GetFullWeatherDetails(c echo.Context) error {
	city, err := cityParam(c)
	if err != nil {
		return respondWithError(c, err, msg.GetMessage("weather.full.failed", c.Param("city")))
	}
	log.Info(msg.GetMessage("weather.full.received", city))

	response, err := controller.useCase.GetCurrentWeather(c.Request().Context(), city)
	if err != nil {
		return respondWithError(c, err, msg.GetMessage("weather.full.failed", city), zap.String("city", city))
	}
	return c.JSON(http.StatusOK, response)
}

// cityParam returns the percent-decoded city segment. A param spanning several segments
// means the path matched no route.
func cityParam(c echo.Context) (string, error) {
	city := c.Param("city")
	if strings.Contains(city, "/") {
		return "", echo.ErrNotFound
	}
	if c.Request().URL.RawPath == "" {
		return city, nil
	}

	decoded, err := url.PathUnescape(city)
	if err != nil {
		return "", model.NewInvalidInputError(fmt.Sprintf("Malformed city name: %s", city))
	}
	return decoded, nil
}

// respondWithError answers 400 for invalid input and 500 for anything else, both without a body
func respondWithError(c echo.Context, err error, message string, fields ...zap.Field) error {
	if errors.Is(err, echo.ErrNotFound) {
		return err
	}

	kind := model.KindOf(err)
	fields = append(fields, zap.String("kind", kind.String()), zap.Error(err))

	if kind == model.InvalidInput {
		log.Warn(msg.GetMessage("weather.invalid-city", c.Param("city")), fields...)
		return c.NoContent(http.StatusBadRequest)
	}

	log.Error(message, fields...)
	return c.NoContent(http.StatusInternalServerError)
}
