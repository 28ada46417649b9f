package external

// MarineResponse represents the response of the open-meteo marine API
type MarineResponse struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Current   MarineCurrent `json:"current"`
}

// MarineCurrent holds the current marine values; upstream sends null away from the sea
type MarineCurrent struct {
	Time                  string   `json:"time"`
	WaveHeight            *float64 `json:"wave_height"`
	WavePeriod            *float64 `json:"wave_period"`
	SeaSurfaceTemperature *float64 `json:"sea_surface_temperature"`
}

// ForecastResponse represents the response of the open-meteo forecast API
type ForecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Current   ForecastCurrent `json:"current"`
}

// ForecastCurrent holds the current weather values
type ForecastCurrent struct {
	Time          string   `json:"time"`
	Temperature2m *float64 `json:"temperature_2m"`
	Precipitation *float64 `json:"precipitation"`
	WindSpeed10m  *float64 `json:"wind_speed_10m"`
}

// APIErrorResponse represents the error body returned by open-meteo
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
