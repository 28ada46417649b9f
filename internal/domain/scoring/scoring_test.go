package scoring_test

import (
	"context"
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"surf-api/internal/domain/entity"
	"surf-api/internal/domain/scoring"
)

func TestCalculateSurfScore(t *testing.T) {
	Convey("Given the default surf score formula", t, func() {
		Convey("When conditions are a solid overhead swell on a warm day", func() {
			score, err := scoring.CalculateSurfScore(2.5, 24, 20, 5, 0, 10, 30)

			Convey("Then the height and power penalties are applied", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 65)
			})
		})

		Convey("When every component is in its ideal band", func() {
			score, err := scoring.CalculateSurfScore(1, 25, 20, 10, 0, 10, 6)

			Convey("Then the score is the maximum", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 100)
			})
		})

		Convey("When the sea is flat and it pours", func() {
			score, err := scoring.CalculateSurfScore(0, 0, 0, 0, 10, 0, 0)

			Convey("Then the score is zero", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 0)
			})
		})

		Convey("When the air is below freezing", func() {
			score, err := scoring.CalculateSurfScore(1, -5, 5, 10, 0, 10, 6)

			Convey("Then only the comfort component drops", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 93)
			})
		})

		Convey("When the same input is scored twice", func() {
			first, _ := scoring.CalculateSurfScore(1.2, 18, 16, 12, 0.4, 9, 11)
			second, _ := scoring.CalculateSurfScore(1.2, 18, 16, 12, 0.4, 9, 11)

			Convey("Then the results are identical", func() {
				So(first, ShouldEqual, second)
				So(first, ShouldBeBetweenOrEqual, 0, 100)
			})
		})

		Convey("When a magnitude is negative", func() {
			_, err := scoring.CalculateSurfScore(-1, 20, 18, 5, 0, 10, 8)

			Convey("Then the input is rejected naming the field", func() {
				So(errors.Is(err, scoring.ErrInvalidInput), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "wave_height must not be negative")
			})
		})

		Convey("When a value is not finite", func() {
			_, err := scoring.CalculateSurfScore(1, math.NaN(), 18, 5, 0, 10, 8)

			Convey("Then the input is rejected naming the field", func() {
				So(errors.Is(err, scoring.ErrInvalidInput), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "air_temp must be a finite number")
			})
		})
	})
}

func TestCalculator_Score(t *testing.T) {
	Convey("Given a calculator", t, func() {
		req := entity.ScoreRequest{
			WaveHeight:    2.5,
			AirTemp:       24,
			WaterTemp:     20,
			WindSpeed:     5,
			Precipitation: 0,
			WavePeriod:    10,
			WavePower:     30,
		}

		Convey("With default weights", func() {
			score, err := scoring.NewCalculator().Score(context.Background(), req)

			Convey("Then it agrees with CalculateSurfScore", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 65)
			})
		})

		Convey("With weights that only count wave period", func() {
			calculator := scoring.NewCalculator(scoring.WithWeights(scoring.Weights{WavePeriod: 1}))
			score, err := calculator.Score(context.Background(), req)

			Convey("Then the score is the period component", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 100)
			})
		})

		Convey("With negative weights", func() {
			calculator := scoring.NewCalculator(scoring.WithWeights(scoring.Weights{WavePeriod: -1}))
			score, err := calculator.Score(context.Background(), req)

			Convey("Then the defaults are kept", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 65)
			})
		})
	})
}
