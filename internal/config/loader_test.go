package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/gridironlabs/draftboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"DRAFTBOARD_CONFIG",
		"DRAFTBOARD_ADDR",
		"DRAFTBOARD_DB_PATH",
		"DRAFTBOARD_DROP_WINDOW",
		"DRAFTBOARD_PICK_RETRIES",
		"DRAFTBOARD_LOG_LEVEL",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DropWindow, convey.ShouldEqual, 6)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DRAFTBOARD_ADDR", ":8080")
			_ = os.Setenv("DRAFTBOARD_DB_PATH", "/tmp/draft-test.db")
			_ = os.Setenv("DRAFTBOARD_DROP_WINDOW", "4")
			_ = os.Setenv("DRAFTBOARD_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DBPath, convey.ShouldEqual, "/tmp/draft-test.db")
				convey.So(cfg.DropWindow, convey.ShouldEqual, 4)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When the drop window is invalid", func() {
			_ = os.Setenv("DRAFTBOARD_DROP_WINDOW", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails validation", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
