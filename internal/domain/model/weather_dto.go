package model

// WeatherSummary is the flattened view of the current conditions for a city. Values are
// passed through as the provider formats them.
type WeatherSummary struct {
	City          string `json:"city" example:"Istanbul"`
	Country       string `json:"country" example:"Turkey"`
	TemperatureC  string `json:"temperatureC" example:"22"`
	TemperatureF  string `json:"temperatureF" example:"72"`
	Description   string `json:"description" example:"Partly cloudy"`
	Humidity      string `json:"humidity" example:"65"`
	WindSpeed     string `json:"windSpeed" example:"12"`
	WindDirection string `json:"windDirection" example:"NW"`
	FeelsLikeC    string `json:"feelsLikeC" example:"24"`
	Visibility    string `json:"visibility" example:"10"`
	Pressure      string `json:"pressure" example:"1013"`
}
