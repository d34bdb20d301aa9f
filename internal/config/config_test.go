package config_test

import (
	"testing"

	"balancewheel/internal/config"

	"github.com/smartystreets/goconvey/convey"
)

func TestConfigDefaults(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("Then defaults are sensible", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
			convey.So(cfg.DataFile, convey.ShouldEqual, "balance_wheel_history.json")
			convey.So(cfg.StrictImport, convey.ShouldBeTrue)
			convey.So(cfg.MaxHistoryLimit, convey.ShouldEqual, 0)
			convey.So(cfg.ReadTimeoutSec, convey.ShouldEqual, 10)
			convey.So(cfg.WriteTimeoutSec, convey.ShouldEqual, 10)
		})
	})
}
