package config_test

import (
	"testing"

	"github.com/gridironlabs/draftboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.DBPath, convey.ShouldEqual, "draftboard.db")
			convey.So(cfg.DropWindow, convey.ShouldEqual, 6)
			convey.So(cfg.PickRetries, convey.ShouldEqual, 3)
			convey.So(cfg.MaxImportBytes, convey.ShouldEqual, int64(5<<20))
		})
	})
}
