package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/model"
	"surf-api/internal/domain/usecase/score"
)

type ScoreController struct {
	api     *echo.Group
	useCase score.UseCase
}

func NewScoreController(api *echo.Group, useCase score.UseCase) *ScoreController {
	return &ScoreController{api: api, useCase: useCase}
}

// InitScoreRoutes initializes score routes
func (controller *ScoreController) InitScoreRoutes() {
	controller.api.POST("/calculate-score", controller.CalculateScore)
}

// CalculateScore godoc
// @Summary Calculate a surf score
// @Description Compute a surf score from wave, wind and weather measurements. All seven fields are required and must be numbers.
// @Tags score
// @Accept json
// @Produce json
// @Param request body entity.ScoreRequest true "Surf measurements"
// @Success 200 {object} model.ScoreResponse "Computed score"
// @Failure 400 {object} model.ErrorResponse "Malformed body, missing or non-numeric field, or rejected input"
// @Router /calculate-score [post]
func (controller *ScoreController) CalculateScore(c echo.Context) error {
	req, err := decodeScoreRequest(c.Request().Body)
	if err != nil {
		return badRequest(c, err)
	}

	value, err := controller.useCase.CalculateScore(c.Request().Context(), req)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, model.ScoreResponse{Score: value})
}

// badRequest is the only failure path of the score endpoint
func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

// scoreFields lists the request keys in lookup order; the first missing key is reported
var scoreFields = []struct {
	key    string
	target func(*entity.ScoreRequest) *float64
}{
	{"wave_height", func(r *entity.ScoreRequest) *float64 { return &r.WaveHeight }},
	{"air_temp", func(r *entity.ScoreRequest) *float64 { return &r.AirTemp }},
	{"water_temp", func(r *entity.ScoreRequest) *float64 { return &r.WaterTemp }},
	{"wind_speed", func(r *entity.ScoreRequest) *float64 { return &r.WindSpeed }},
	{"precipitation", func(r *entity.ScoreRequest) *float64 { return &r.Precipitation }},
	{"wave_period", func(r *entity.ScoreRequest) *float64 { return &r.WavePeriod }},
	{"wave_power", func(r *entity.ScoreRequest) *float64 { return &r.WavePower }},
}

// decodeScoreRequest reads a JSON object and extracts the seven numeric fields.
// Numeric strings are not coerced.
func decodeScoreRequest(body io.Reader) (entity.ScoreRequest, error) {
	var req entity.ScoreRequest

	raw, err := io.ReadAll(body)
	if err != nil {
		return req, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, errors.New("request body must be a JSON object, got an empty body")
	}

	var payload map[string]any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}
	if decoder.More() {
		return req, errors.New("invalid JSON body: unexpected data after the top-level object")
	}

	for _, field := range scoreFields {
		value, ok := payload[field.key]
		if !ok {
			return req, fmt.Errorf("missing required field '%s'", field.key)
		}

		number, ok := value.(json.Number)
		if !ok {
			return req, fmt.Errorf("field '%s' must be numeric", field.key)
		}
		parsed, err := number.Float64()
		if err != nil {
			return req, fmt.Errorf("field '%s' is out of range: %w", field.key, err)
		}
		*field.target(&req) = parsed
	}
	return req, nil
}
