package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given metrics manager options", t, func() {
		Convey("When creating a manager on a fresh registry", func() {
			reg := prometheus.NewRegistry()
			m := NewManager(
				WithPrometheusRegistry(reg),
				WithNamespace("execap_test"),
				WithSubsystem("league"),
			)

			Convey("Then the manager should be configured", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "execap_test")
				So(m.subsystem, ShouldEqual, "league")
			})

			Convey("Then all metrics should be registered", func() {
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				// Gauges and counters register lazily for vecs, so only
				// assert the non-vec metrics are present.
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["execap_test_league_refresh_total"], ShouldBeTrue)
				So(names["execap_test_league_companies"], ShouldBeTrue)
				So(names["execap_test_league_snapshot_last_unix"], ShouldBeTrue)
			})
		})

		Convey("When applying custom histogram buckets", func() {
			reg := prometheus.NewRegistry()
			m := NewManager(
				WithPrometheusRegistry(reg),
				WithHistogramBuckets([]float64{1, 2, 3}),
			)

			Convey("Then the buckets should be stored", func() {
				So(m.histogramBuckets, ShouldResemble, []float64{1, 2, 3})
			})
		})
	})
}

func TestPackageLevelHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording refresh and ingest metrics", func() {
			So(func() {
				RecordRefresh()
				RecordRefreshFailure()
				RecordRefreshDuration(12.5)
				RecordRowsIngested("executive_compensation", 10)
				RecordRowSkipped("executive_compensation")
				RecordFileIngested()
				RecordLoadWarning()
				RecordSnapshotSwap(3.2)
			}, ShouldNotPanic)
		})

		Convey("When updating league gauges", func() {
			So(func() {
				UpdateCompanies(10)
				UpdatePeople(120)
				UpdateFreeAgents(4)
				UpdateOverBudgetCompanies(2)
				UpdateLeagueSpend(1_250_000_000)
			}, ShouldNotPanic)
		})

		Convey("When recording storage and HTTP metrics", func() {
			So(func() {
				RecordStorageFetchRetry()
				RecordStorageFetchFailure()
				RecordStorageFetchLatency(45)
				RecordHTTPRequest("league", "GET", "200")
				RecordHTTPRequestDuration("league", "GET", "200", 2.1)
				RecordErrorByEndpoint("league", "GET", "client_error")
				RecordErrorByType("client_error", "medium")
				RecordErrorLatency("http", "client_error", 2.1)
			}, ShouldNotPanic)
		})

		Convey("When the registry is requested", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
