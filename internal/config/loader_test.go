package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"balancewheel/internal/config"

	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"BALANCE_CONFIG",
		"BALANCE_ADDR",
		"BALANCE_LOG_LEVEL",
		"BALANCE_DATA_FILE",
		"BALANCE_STRICT_IMPORT",
		"BALANCE_MAX_HISTORY_LIMIT",
		"BALANCE_READ_TIMEOUT_SEC",
		"BALANCE_WRITE_TIMEOUT_SEC",
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
				convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
				convey.So(cfg.DataFile, convey.ShouldEqual, "balance_wheel_history.json")
				convey.So(cfg.StrictImport, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("BALANCE_ADDR", ":8080")
			_ = os.Setenv("BALANCE_DATA_FILE", "/tmp/wheel.json")
			_ = os.Setenv("BALANCE_STRICT_IMPORT", "false")
			_ = os.Setenv("BALANCE_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataFile, convey.ShouldEqual, "/tmp/wheel.json")
				convey.So(cfg.StrictImport, convey.ShouldBeFalse)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()
			path := filepath.Join(t.TempDir(), "config.yaml")
			yamlBody := "addr: \":7070\"\ndata_file: wheel.json\nstrict_import: false\n"
			convey.So(os.WriteFile(path, []byte(yamlBody), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("BALANCE_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DataFile, convey.ShouldEqual, "wheel.json")
				convey.So(cfg.StrictImport, convey.ShouldBeFalse)
			})

			convey.Convey("And env still wins over the file", func() {
				_ = os.Setenv("BALANCE_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the file path is bogus", func() {
			clearConfigEnvVars()
			_ = os.Setenv("BALANCE_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the load sentinel", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
