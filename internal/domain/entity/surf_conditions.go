package entity

import "time"

// SurfConditions are the measurements observed at a coordinate.
type SurfConditions struct {
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ObservedAt    time.Time `json:"observedAt"`
	WaveHeight    float64   `json:"waveHeight"`
	WavePeriod    float64   `json:"wavePeriod"`
	WavePower     float64   `json:"wavePower"`
	WaterTemp     float64   `json:"waterTemp"`
	AirTemp       float64   `json:"airTemp"`
	WindSpeed     float64   `json:"windSpeed"`
	Precipitation float64   `json:"precipitation"`
}

// ScoreRequest maps the conditions onto the scoring inputs.
func (c SurfConditions) ScoreRequest() ScoreRequest {
	return ScoreRequest{
		WaveHeight:    c.WaveHeight,
		AirTemp:       c.AirTemp,
		WaterTemp:     c.WaterTemp,
		WindSpeed:     c.WindSpeed,
		Precipitation: c.Precipitation,
		WavePeriod:    c.WavePeriod,
		WavePower:     c.WavePower,
	}
}
