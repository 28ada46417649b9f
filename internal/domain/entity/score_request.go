package entity

// ScoreRequest holds the seven measurements a surf score is computed from.
type ScoreRequest struct {
	WaveHeight    float64 `json:"wave_height"`
	AirTemp       float64 `json:"air_temp"`
	WaterTemp     float64 `json:"water_temp"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	WavePeriod    float64 `json:"wave_period"`
	WavePower     float64 `json:"wave_power"`
}
