package log

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func captureOutput() *bytes.Buffer {
	buf := &bytes.Buffer{}
	output = zapcore.AddSync(buf)
	return buf
}

func lastEntry(buf *bytes.Buffer) map[string]any {
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	entry := map[string]any{}
	_ = json.Unmarshal(lines[len(lines)-1], &entry)
	return entry
}

func TestLogger(t *testing.T) {
	Convey("Given the global logger writing to a buffer", t, func() {
		previousOutput, previousLogger := output, logger
		defer func() { output, logger = previousOutput, previousLogger }()
		defer func() { _ = SetLevel("info") }()
		buf := captureOutput()

		Convey("When the application name is set after startup", func() {
			SetName("surf-api")
			Info("Starting surf-api", zap.String("port", "5000"))

			Convey("Then entries carry the name and the fields", func() {
				entry := lastEntry(buf)
				So(entry["logName"], ShouldEqual, "surf-api")
				So(entry["msg"], ShouldEqual, "Starting surf-api")
				So(entry["port"], ShouldEqual, "5000")
				So(entry["@timestamp"], ShouldNotBeEmpty)
			})
		})

		Convey("When the level is raised to warn", func() {
			SetName("surf-api")
			So(SetLevel("WARN"), ShouldBeNil)
			Debug("hidden")
			Info("hidden")
			Warn("shown")

			Convey("Then lower levels are dropped", func() {
				So(bytes.Count(buf.Bytes(), []byte("\n")), ShouldEqual, 1)
				So(lastEntry(buf)["level"], ShouldEqual, "warn")
			})
		})

		Convey("When an unknown level is given", func() {
			Convey("Then it is rejected", func() {
				So(SetLevel("verbose"), ShouldNotBeNil)
			})
		})
	})
}
