package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/smartystreets/goconvey/convey"

	"surf-api/internal/application/middleware"
	"surf-api/pkg/metrics"
)

func TestMiddleware(t *testing.T) {
	Convey("Given an echo server with the application middleware", t, func() {
		e := echo.New()
		middleware.SetupCORS(e, []string{"*"})
		middleware.SetupRequestLogger(e)
		middleware.SetupMetrics(e)
		e.POST("/calculate-score", func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required field 'wind_speed'"})
		})

		Convey("When a cross-origin preflight arrives", func() {
			req := httptest.NewRequest(http.MethodOptions, "/calculate-score", nil)
			req.Header.Set(echo.HeaderOrigin, "https://surf.example")
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			Convey("Then any origin is allowed", func() {
				So(rec.Code, ShouldEqual, http.StatusNoContent)
				So(rec.Header().Get(echo.HeaderAccessControlAllowOrigin), ShouldEqual, "*")
			})
		})

		Convey("When a request is served", func() {
			req := httptest.NewRequest(http.MethodPost, "/calculate-score", strings.NewReader("{}"))
			req.Header.Set(echo.HeaderOrigin, "https://surf.example")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			Convey("Then the route template and status are measured", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Header().Get(echo.HeaderAccessControlAllowOrigin), ShouldEqual, "*")

				scrape := httptest.NewRecorder()
				metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				So(scrape.Body.String(), ShouldContainSubstring,
					`surf_http_requests_total{endpoint="/calculate-score",method="POST",status="400"}`)
			})
		})
	})
}

func TestSetupMetrics_PropagatesErrors(t *testing.T) {
	Convey("Given a metrics middleware behind an outer middleware", t, func() {
		e := echo.New()
		var seen error
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				seen = next(c)
				return seen
			}
		})
		middleware.SetupMetrics(e)
		e.GET("/teapot", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusTeapot, "short and stout")
		})

		Convey("When the handler returns an error", func() {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

			Convey("Then outer middleware still receives it", func() {
				So(seen, ShouldNotBeNil)
				So(seen.Error(), ShouldContainSubstring, "short and stout")
			})

			Convey("Then the response is written once with the error status", func() {
				So(rec.Code, ShouldEqual, http.StatusTeapot)
				So(strings.Count(rec.Body.String(), "short and stout"), ShouldEqual, 1)

				scrape := httptest.NewRecorder()
				metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				So(scrape.Body.String(), ShouldContainSubstring,
					`surf_http_requests_total{endpoint="/teapot",method="GET",status="418"}`)
			})
		})
	})
}
