package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	httpclient "surf-api/pkg/http"
)

type payload struct {
	Value float64 `json:"value"`
}

type apiError struct {
	Reason string `json:"reason"`
}

func fastBackoff(retries int) *httpclient.BackoffConfig {
	backoff := httpclient.NewBackoffConfig(retries)
	backoff.InitialInterval = time.Millisecond
	backoff.MaxInterval = 2 * time.Millisecond
	return backoff
}

func TestClient_Execute(t *testing.T) {
	Convey("Given an HTTP client against a test server", t, func() {
		var calls int32
		var lastQuery atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&calls, 1)
			lastQuery.Store(r.URL.RawQuery)
			w.Header().Set("Content-Type", "application/json")

			switch r.URL.Path {
			case "/ok":
				_ = json.NewEncoder(w).Encode(payload{Value: 2.5})
			case "/bad":
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(apiError{Reason: "invalid latitude"})
			case "/flaky":
				if n < 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				_ = json.NewEncoder(w).Encode(payload{Value: 7})
			}
		}))
		defer server.Close()

		client := httpclient.NewHttpClient(server.URL+"/", httpclient.ClientOptions{})

		Convey("When the server answers 200", func() {
			success, failure, status, err := client.Request().
				WithPath("ok").
				WithQueryParams(map[string]string{"latitude": "43.66", "current": "wave_height,wave_period"}).
				WithSuccessResp(&payload{}).
				Execute()

			Convey("Then the body is decoded into the success response", func() {
				So(err, ShouldBeNil)
				So(failure, ShouldBeNil)
				So(status, ShouldEqual, http.StatusOK)
				So(success.(*payload).Value, ShouldEqual, 2.5)
				So(lastQuery.Load(), ShouldEqual, "current=wave_height%2Cwave_period&latitude=43.66")
			})
		})

		Convey("When the server answers 400", func() {
			_, failure, status, err := client.Request().
				WithPath("/bad").
				WithSuccessResp(&payload{}).
				WithErrorResp(&apiError{}).
				WithBackoff(fastBackoff(3)).
				Execute()

			Convey("Then the error response is decoded and not retried", func() {
				So(err, ShouldNotBeNil)
				So(status, ShouldEqual, http.StatusBadRequest)
				So(failure.(*apiError).Reason, ShouldEqual, "invalid latitude")
				So(atomic.LoadInt32(&calls), ShouldEqual, 1)
			})
		})

		Convey("When the server is temporarily unavailable", func() {
			Convey("And enough retries are allowed", func() {
				success, _, status, err := client.Request().
					WithPath("/flaky").
					WithSuccessResp(&payload{}).
					WithBackoff(fastBackoff(3)).
					Execute()

				Convey("Then the request eventually succeeds", func() {
					So(err, ShouldBeNil)
					So(status, ShouldEqual, http.StatusOK)
					So(success.(*payload).Value, ShouldEqual, 7)
					So(atomic.LoadInt32(&calls), ShouldEqual, 3)
				})
			})

			Convey("And retries are exhausted", func() {
				_, _, status, err := client.Request().
					WithPath("/flaky").
					WithSuccessResp(&payload{}).
					WithBackoff(fastBackoff(1)).
					Execute()

				Convey("Then the last failure is returned", func() {
					So(err, ShouldNotBeNil)
					So(status, ShouldEqual, http.StatusServiceUnavailable)
					So(atomic.LoadInt32(&calls), ShouldEqual, 2)
				})
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, _, _, err := client.Request().
				WithContext(ctx).
				WithPath("/ok").
				WithBackoff(fastBackoff(3)).
				Execute()

			Convey("Then the request fails without retrying", func() {
				So(err, ShouldNotBeNil)
				So(atomic.LoadInt32(&calls), ShouldEqual, 0)
			})
		})
	})
}
