package model

import "surf-api/internal/domain/entity"

// SpotWatchResult summarizes one spot watch run
type SpotWatchResult struct {
	RunID string `json:"runId"`
	// Scores holds the spots that were scored, in configuration order
	Scores []entity.SpotScore `json:"scores"`
	// Failed maps a spot name to the reason it could not be scored
	Failed map[string]string `json:"failed"`
	// Unpublished lists score IDs rejected by the queue
	Unpublished []string `json:"unpublished"`
}
