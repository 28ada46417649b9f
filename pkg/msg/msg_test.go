package msg_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"surf-api/pkg/msg"
)

const messagesYAML = `app:
  started: "{0} listening on port {1}"
spot-watch:
  run-end: "Spot watch run {0} finished: {1} scored, {2} failed"
`

func TestGetMessage(t *testing.T) {
	Convey("Given a loaded messages file", t, func() {
		path := filepath.Join(t.TempDir(), "messages.yml")
		So(os.WriteFile(path, []byte(messagesYAML), 0o600), ShouldBeNil)
		So(msg.Init(path), ShouldBeNil)

		Convey("When a message is formatted", func() {
			message := msg.GetMessage("spot-watch.run-end", "run-1", 2, 1)

			Convey("Then the placeholders are replaced in order", func() {
				So(message, ShouldEqual, "Spot watch run run-1 finished: 2 scored, 1 failed")
			})
		})

		Convey("When a nested key mixes types", func() {
			message := msg.GetMessage("app.started", "surf-api", "5000")

			Convey("Then strings are inserted verbatim", func() {
				So(message, ShouldEqual, "surf-api listening on port 5000")
			})
		})

		Convey("When the key is unknown", func() {
			Convey("Then a not found message is returned", func() {
				So(msg.GetMessage("app.unknown"), ShouldEqual, "Message not found: app.unknown")
			})
		})
	})
}
