// Package scoring computes a surf score from wave, wind and weather measurements.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"

	"surf-api/internal/domain/entity"
)

// ErrInvalidInput is wrapped by every input rejection.
var ErrInvalidInput = errors.New("invalid scoring input")

const (
	maxComponentScore = 100

	defaultWaveHeightWeight = 0.3
	defaultWavePeriodWeight = 0.3
	defaultWavePowerWeight  = 0.2
	defaultWindWeight       = 0.1
	defaultComfortWeight    = 0.1
)

// Weights sets how much each component contributes to the final score.
type Weights struct {
	WaveHeight float64
	WavePeriod float64
	WavePower  float64
	Wind       float64
	Comfort    float64
}

// DefaultWeights returns the weights used by CalculateSurfScore.
func DefaultWeights() Weights {
	return Weights{
		WaveHeight: defaultWaveHeightWeight,
		WavePeriod: defaultWavePeriodWeight,
		WavePower:  defaultWavePowerWeight,
		Wind:       defaultWindWeight,
		Comfort:    defaultComfortWeight,
	}
}

// Scorer computes a surf score from a request.
type Scorer interface {
	Score(ctx context.Context, req entity.ScoreRequest) (float64, error)
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithWeights replaces the component weights. Negative weights are ignored.
func WithWeights(w Weights) Option {
	return func(c *Calculator) {
		if w.WaveHeight < 0 || w.WavePeriod < 0 || w.WavePower < 0 || w.Wind < 0 || w.Comfort < 0 {
			return
		}
		c.weights = w
	}
}

// Calculator is the default Scorer. It is stateless and safe for concurrent use.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a calculator with the default weights.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score computes the surf score for req.
func (c *Calculator) Score(_ context.Context, req entity.ScoreRequest) (float64, error) {
	return c.calculate(req)
}

// CalculateSurfScore computes the surf score from the seven measurements using the default weights.
func CalculateSurfScore(waveHeight, airTemp, waterTemp, windSpeed, precipitation, wavePeriod, wavePower float64) (float64, error) {
	return NewCalculator().calculate(entity.ScoreRequest{
		WaveHeight:    waveHeight,
		AirTemp:       airTemp,
		WaterTemp:     waterTemp,
		WindSpeed:     windSpeed,
		Precipitation: precipitation,
		WavePeriod:    wavePeriod,
		WavePower:     wavePower,
	})
}

func (c *Calculator) calculate(req entity.ScoreRequest) (float64, error) {
	if err := validate(req); err != nil {
		return 0, err
	}

	score := c.weights.WaveHeight*waveHeightScore(req.WaveHeight) +
		c.weights.WavePeriod*wavePeriodScore(req.WavePeriod) +
		c.weights.WavePower*wavePowerScore(req.WavePower) +
		c.weights.Wind*windSpeedScore(req.WindSpeed) +
		c.weights.Comfort*comfortScore(req.AirTemp, req.WaterTemp, req.Precipitation)

	return math.Round(score), nil
}

// validate rejects values no measurement can take. Temperatures may be negative.
func validate(req entity.ScoreRequest) error {
	fields := []struct {
		name        string
		value       float64
		nonNegative bool
	}{
		{"wave_height", req.WaveHeight, true},
		{"air_temp", req.AirTemp, false},
		{"water_temp", req.WaterTemp, false},
		{"wind_speed", req.WindSpeed, true},
		{"precipitation", req.Precipitation, true},
		{"wave_period", req.WavePeriod, true},
		{"wave_power", req.WavePower, true},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
		if f.nonNegative && f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// waveHeightScore peaks between half a metre and 1.5m, fading out by 3m
func waveHeightScore(height float64) float64 {
	switch {
	case height < 0.5:
		return height * 100
	case height <= 1.5:
		return maxComponentScore
	case height <= 3:
		return math.Max(0, maxComponentScore-(height-1.5)*50)
	default:
		return 0
	}
}

func wavePeriodScore(period float64) float64 {
	switch {
	case period < 8:
		return period * 12.5
	case period <= 12:
		return maxComponentScore
	case period <= 16:
		return math.Max(0, maxComponentScore-(period-12)*25)
	default:
		return 0
	}
}

func wavePowerScore(power float64) float64 {
	switch {
	case power < 4:
		return power * 25
	case power <= 8:
		return maxComponentScore
	case power <= 12:
		return math.Max(0, maxComponentScore-(power-8)*25)
	default:
		return 0
	}
}

func windSpeedScore(speed float64) float64 {
	switch {
	case speed < 5:
		return speed * 20
	case speed <= 15:
		return maxComponentScore
	case speed <= 30:
		return math.Max(0, maxComponentScore-(speed-15)*6.67)
	default:
		return 0
	}
}

// comfortScore averages air temperature, water temperature and rain
func comfortScore(airTemp, waterTemp, precipitation float64) float64 {
	air := linear(airTemp, 5, 20)
	water := linear(waterTemp, 10, 18)
	rain := math.Max(0, maxComponentScore-precipitation*20)
	return (air + water + rain) / 3
}

// linear maps value from [low, high] onto [0, 100], clamped
func linear(value, low, high float64) float64 {
	switch {
	case value <= low:
		return 0
	case value >= high:
		return maxComponentScore
	default:
		return (value - low) / (high - low) * maxComponentScore
	}
}
