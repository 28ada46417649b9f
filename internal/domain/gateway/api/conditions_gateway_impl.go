package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/model/external"
	"surf-api/pkg/http"
	"surf-api/pkg/metrics"
)

const (
	marinePath   = "/v1/marine"
	forecastPath = "/v1/forecast"

	marineFields   = "wave_height,wave_period,sea_surface_temperature"
	forecastFields = "temperature_2m,precipitation,wind_speed_10m"
)

var jsonHeaders = map[string]string{"Accept": "application/json"}

// ErrNoMarineData is returned for coordinates open-meteo has no sea state for
var ErrNoMarineData = errors.New("no marine data available for coordinate")

// openMeteoGateway implements ConditionsGateway over the open-meteo marine and forecast APIs
type openMeteoGateway struct {
	marineClient   *http.Client
	forecastClient *http.Client
}

// NewOpenMeteoGateway creates a ConditionsGateway with one HTTP client per upstream
func NewOpenMeteoGateway(marineURL, forecastURL string, clientOptions http.ClientOptions) ConditionsGateway {
	marineOptions := clientOptions
	marineOptions.Logger = http.NewZapLogger("open-meteo-marine")
	forecastOptions := clientOptions
	forecastOptions.Logger = http.NewZapLogger("open-meteo-forecast")

	return &openMeteoGateway{
		marineClient:   http.NewHttpClient(marineURL, marineOptions),
		forecastClient: http.NewHttpClient(forecastURL, forecastOptions),
	}
}

// FetchConditions queries both upstreams concurrently and merges the current values
func (g *openMeteoGateway) FetchConditions(ctx context.Context, latitude, longitude float64) (*entity.SurfConditions, error) {
	var (
		wg          sync.WaitGroup
		marine      *external.MarineResponse
		forecast    *external.ForecastResponse
		marineErr   error
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		marine, marineErr = g.fetchMarine(ctx, latitude, longitude)
	}()
	go func() {
		defer wg.Done()
		forecast, forecastErr = g.fetchForecast(ctx, latitude, longitude)
	}()
	wg.Wait()

	if err := errors.Join(marineErr, forecastErr); err != nil {
		return nil, err
	}
	return toSurfConditions(latitude, longitude, marine, forecast)
}

func (g *openMeteoGateway) fetchMarine(ctx context.Context, latitude, longitude float64) (*external.MarineResponse, error) {
	start := time.Now()
	successResp, errResp, _, err := g.marineClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(marinePath).
		WithQueryParams(coordinateParams(latitude, longitude, marineFields)).
		WithHeaders(jsonHeaders).
		WithSuccessResp(&external.MarineResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()
	metrics.RecordUpstream("marine", time.Since(start), err)

	if err != nil {
		return nil, upstreamError("marine", errResp, err)
	}
	return successResp.(*external.MarineResponse), nil
}

func (g *openMeteoGateway) fetchForecast(ctx context.Context, latitude, longitude float64) (*external.ForecastResponse, error) {
	start := time.Now()
	successResp, errResp, _, err := g.forecastClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(coordinateParams(latitude, longitude, forecastFields)).
		WithHeaders(jsonHeaders).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()
	metrics.RecordUpstream("forecast", time.Since(start), err)

	if err != nil {
		return nil, upstreamError("forecast", errResp, err)
	}
	return successResp.(*external.ForecastResponse), nil
}

func coordinateParams(latitude, longitude float64, fields string) map[string]string {
	return map[string]string{
		"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
		"current":   fields,
	}
}

// upstreamError prefers the reason sent by open-meteo over the bare status error
func upstreamError(upstream string, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
		return fmt.Errorf("%s: %s", upstream, apiErr.Reason)
	}
	return fmt.Errorf("%s: %w", upstream, err)
}

func toSurfConditions(latitude, longitude float64, marine *external.MarineResponse, forecast *external.ForecastResponse) (*entity.SurfConditions, error) {
	current := marine.Current
	if current.WaveHeight == nil || current.WavePeriod == nil || current.SeaSurfaceTemperature == nil {
		return nil, ErrNoMarineData
	}

	weather := forecast.Current
	if weather.Temperature2m == nil || weather.Precipitation == nil || weather.WindSpeed10m == nil {
		return nil, errors.New("forecast: incomplete current weather")
	}

	observedAt, err := time.Parse("2006-01-02T15:04", current.Time)
	if err != nil {
		observedAt = time.Now().UTC()
	}

	return &entity.SurfConditions{
		Latitude:      latitude,
		Longitude:     longitude,
		WaveHeight:    *current.WaveHeight,
		WavePeriod:    *current.WavePeriod,
		WavePower:     *current.WaveHeight * *current.WavePeriod,
		WaterTemp:     *current.SeaSurfaceTemperature,
		AirTemp:       *weather.Temperature2m,
		WindSpeed:     *weather.WindSpeed10m,
		Precipitation: *weather.Precipitation,
		ObservedAt:    observedAt,
	}, nil
}
