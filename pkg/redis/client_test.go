package redis_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"surf-api/pkg/redis"
)

func TestConfig(t *testing.T) {
	Convey("Given a redis configuration", t, func() {
		config := redis.NewRedisConfig().
			WithHost("cache.internal").
			WithPort(6380).
			WithDatabase(2).
			WithCacheTTL("conditions", 15*time.Minute)

		Convey("When it is complete", func() {
			Convey("Then it validates and exposes its address", func() {
				So(config.Validate(), ShouldBeNil)
				So(config.Addr(), ShouldEqual, "cache.internal:6380")
				So(config.CacheTTLs["conditions"], ShouldEqual, 15*time.Minute)
			})
		})

		Convey("When the port is out of range", func() {
			_, err := redis.NewClient(config.WithPort(70000))

			Convey("Then the client is not created", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid port")
			})
		})

		Convey("When the host is empty", func() {
			So(config.WithHost("").Validate(), ShouldNotBeNil)
		})
	})
}

func TestClient_HealthCheck(t *testing.T) {
	Convey("Given a client pointing at a closed port", t, func() {
		config := redis.NewRedisConfig().WithHost("127.0.0.1").WithPort(1)
		config.DialTimeout = 200 * time.Millisecond
		config.MaxRetries = -1
		client, err := redis.NewClient(config)
		So(err, ShouldBeNil)
		defer func() { _ = client.Close() }()

		Convey("When the health is checked", func() {
			health := client.HealthCheck(context.Background())

			Convey("Then it is DOWN with the address and error", func() {
				So(health.Status, ShouldEqual, redis.StatusDown)
				So(health.Details["address"], ShouldEqual, "127.0.0.1:1")
				So(health.Details["error"], ShouldNotBeEmpty)
			})
		})
	})
}
