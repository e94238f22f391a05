package external

// WeatherResponse represents the j1 payload returned by wttr.in. Every list may be
// missing or empty.
type WeatherResponse struct {
	CurrentCondition []CurrentCondition `json:"current_condition"`
	Weather          []WeatherInfo      `json:"weather"`
	NearestArea      []NearestArea      `json:"nearest_area"`
	Request          []RequestInfo      `json:"request,omitempty"`
}

// NamedValue is the single-value wrapper wttr.in uses for descriptions and place names
type NamedValue struct {
	Value string `json:"value"`
}

// CurrentCondition represents the observation at request time
type CurrentCondition struct {
	ObservationTime  string       `json:"observation_time,omitempty"`
	LocalObsDateTime string       `json:"localObsDateTime,omitempty"`
	TempC            string       `json:"temp_C"`
	TempF            string       `json:"temp_F"`
	WeatherCode      string       `json:"weatherCode"`
	WeatherDesc      []NamedValue `json:"weatherDesc"`
	WindspeedMiles   string       `json:"windspeedMiles"`
	WindspeedKmph    string       `json:"windspeedKmph"`
	WinddirDegree    string       `json:"winddirDegree"`
	Winddir16Point   string       `json:"winddir16Point"`
	PrecipMM         string       `json:"precipMM"`
	Humidity         string       `json:"humidity"`
	Visibility       string       `json:"visibility"`
	Pressure         string       `json:"pressure"`
	Cloudcover       string       `json:"cloudcover"`
	FeelsLikeC       string       `json:"FeelsLikeC"`
	FeelsLikeF       string       `json:"FeelsLikeF"`
	UVIndex          string       `json:"uvIndex,omitempty"`
}

// WeatherInfo represents a single forecast day
type WeatherInfo struct {
	Date        string          `json:"date"`
	MaxtempC    string          `json:"maxtempC"`
	MaxtempF    string          `json:"maxtempF"`
	MintempC    string          `json:"mintempC"`
	MintempF    string          `json:"mintempF"`
	AvgtempC    string          `json:"avgtempC"`
	AvgtempF    string          `json:"avgtempF"`
	TotalSnowCm string          `json:"totalSnow_cm"`
	SunHour     string          `json:"sunHour"`
	UVIndex     string          `json:"uvIndex"`
	Astronomy   []Astronomy     `json:"astronomy,omitempty"`
	Hourly      []HourlyWeather `json:"hourly"`
}

// Astronomy represents sun and moon data for a forecast day
type Astronomy struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

// HourlyWeather represents a three-hour slot of a forecast day
type HourlyWeather struct {
	Time           string       `json:"time"`
	TempC          string       `json:"tempC"`
	TempF          string       `json:"tempF"`
	WindspeedMiles string       `json:"windspeedMiles"`
	WindspeedKmph  string       `json:"windspeedKmph"`
	WinddirDegree  string       `json:"winddirDegree"`
	Winddir16Point string       `json:"winddir16Point"`
	WeatherCode    string       `json:"weatherCode"`
	WeatherDesc    []NamedValue `json:"weatherDesc"`
	PrecipMM       string       `json:"precipMM"`
	Humidity       string       `json:"humidity"`
	Visibility     string       `json:"visibility"`
	Pressure       string       `json:"pressure"`
	Cloudcover     string       `json:"cloudcover"`
	HeatIndexC     string       `json:"HeatIndexC"`
	HeatIndexF     string       `json:"HeatIndexF"`
	DewPointC      string       `json:"DewPointC"`
	DewPointF      string       `json:"DewPointF"`
	WindChillC     string       `json:"WindChillC"`
	WindChillF     string       `json:"WindChillF"`
	WindGustMiles  string       `json:"WindGustMiles"`
	WindGustKmph   string       `json:"WindGustKmph"`
	FeelsLikeC     string       `json:"FeelsLikeC"`
	FeelsLikeF     string       `json:"FeelsLikeF"`
	UVIndex        string       `json:"uvIndex"`
}

// NearestArea represents the location wttr.in resolved the query to
type NearestArea struct {
	AreaName   []NamedValue `json:"areaName"`
	Country    []NamedValue `json:"country"`
	Region     []NamedValue `json:"region"`
	Latitude   string       `json:"latitude"`
	Longitude  string       `json:"longitude"`
	Population string       `json:"population"`
	WeatherURL []NamedValue `json:"weatherUrl"`
}

// RequestInfo echoes the query wttr.in received
type RequestInfo struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}
