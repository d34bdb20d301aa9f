package metrics_test

import (
	"testing"

	"balancewheel/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func gathered(t *testing.T) map[string]float64 {
	t.Helper()
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	return out
}

func TestManager(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When store activity is recorded", func() {
			before := gathered(t)
			metrics.RecordSnapshotSaved()
			metrics.RecordSnapshotDeleted()
			metrics.RecordHistoryReset()
			metrics.RecordHistoryImported()
			metrics.RecordHistoryExported()
			metrics.RecordImportRejected()
			metrics.RecordStoreError()
			after := gathered(t)

			Convey("Then every counter advances by one", func() {
				for _, name := range []string{
					"balance_wheel_snapshot_saves_total",
					"balance_wheel_snapshot_deletes_total",
					"balance_wheel_history_resets_total",
					"balance_wheel_history_imports_total",
					"balance_wheel_history_exports_total",
					"balance_wheel_imports_rejected_total",
					"balance_wheel_store_errors_total",
				} {
					So(after[name]-before[name], ShouldEqual, 1)
				}
			})
		})

		Convey("When gauges are updated", func() {
			metrics.UpdateHistorySize(7)
			metrics.UpdateBackingFileBytes(2048)
			metrics.UpdateSystemMemoryUsage(1 << 20)
			metrics.UpdateSystemGoroutineCount(12)
			got := gathered(t)

			So(got["balance_wheel_history_size"], ShouldEqual, 7)
			So(got["balance_wheel_backing_file_bytes"], ShouldEqual, 2048)
			So(got["balance_wheel_system_memory_bytes"], ShouldEqual, 1<<20)
			So(got["balance_wheel_system_goroutine_count"], ShouldEqual, 12)
		})

		Convey("When durations are observed", func() {
			So(func() {
				metrics.RecordStoreOpDuration("save", 1.5)
				metrics.RecordHTTPRequest("history", "GET", "200")
				metrics.RecordHTTPRequestDuration("history", "GET", "200", 3.2)
				metrics.RecordSystemGCPauseTime(0.4)
			}, ShouldNotPanic)
		})
	})
}

func TestNewManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("Then construction registers without collisions", func() {
			So(func() {
				metrics.NewManager(
					metrics.WithPrometheusRegistry(reg),
					metrics.WithNamespace("test"),
					metrics.WithSubsystem("wheel"),
					metrics.WithHistogramBuckets([]float64{1, 2, 4}),
				)
			}, ShouldNotPanic)

			families, err := reg.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
