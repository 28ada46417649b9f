package resource_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"surf-api/pkg/resource"
)

const propertiesYAML = `app:
  name: surf-api
  server:
    port: ${SURF_TEST_PORT:5000}
    context-path: ${SURF_TEST_CONTEXT_PATH:}
  open-meteo:
    read-timeout: ${SURF_TEST_TIMEOUT:10s}
  spot-watch:
    spots:
      - name: hossegor
        latitude: 43.6647
        longitude: -1.4427
`

func writeProperties(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(propertiesYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInit(t *testing.T) {
	Convey("Given a properties file with placeholders", t, func() {
		path := writeProperties(t)

		Convey("When no environment override is set", func() {
			So(resource.Init(path), ShouldBeNil)

			Convey("Then defaults and plain values are resolved", func() {
				So(resource.GetString("app.name"), ShouldEqual, "surf-api")
				So(resource.GetInt("app.server.port"), ShouldEqual, 5000)
				So(resource.GetDuration("app.open-meteo.read-timeout"), ShouldEqual, 10*time.Second)
				So(resource.GetString("app.server.context-path"), ShouldBeEmpty)
			})

			Convey("Then lists can be decoded", func() {
				var spots []struct {
					Name     string  `mapstructure:"name"`
					Latitude float64 `mapstructure:"latitude"`
				}
				So(resource.UnmarshalKey("app.spot-watch.spots", &spots), ShouldBeNil)
				So(len(spots), ShouldEqual, 1)
				So(spots[0].Name, ShouldEqual, "hossegor")
			})
		})

		Convey("When the environment overrides a value", func() {
			t.Setenv("SURF_TEST_PORT", "8080")
			So(resource.Init(path), ShouldBeNil)

			Convey("Then the environment wins", func() {
				So(resource.GetString("app.server.port"), ShouldEqual, "8080")
			})
		})

		Convey("When the file does not exist", func() {
			err := resource.Init(filepath.Join(t.TempDir(), "missing.yml"))

			Convey("Then an error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
