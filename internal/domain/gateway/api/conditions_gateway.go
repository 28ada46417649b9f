package api

import (
	"context"

	"surf-api/internal/domain/entity"
)

// ConditionsGateway fetches the current surf conditions at a coordinate
type ConditionsGateway interface {
	// FetchConditions returns wave, wind and weather measurements for the given coordinate.
	// It fails when no marine data exists there, e.g. inland coordinates.
	FetchConditions(ctx context.Context, latitude, longitude float64) (*entity.SurfConditions, error)
}
