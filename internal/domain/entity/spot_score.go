package entity

import "time"

// SpotScore is the outcome of scoring a spot, published for downstream consumers.
type SpotScore struct {
	ID           string         `json:"id"`
	RunID        string         `json:"runId"`
	Spot         Spot           `json:"spot"`
	Conditions   SurfConditions `json:"conditions"`
	Score        float64        `json:"score"`
	CalculatedAt time.Time      `json:"calculatedAt"`
}
