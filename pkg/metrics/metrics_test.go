package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording data boundary metrics", func() {
			Convey("Then it should record queries and errors", func() {
				So(func() {
					RecordQuery(12.5)
					RecordQuery(40.0)
					RecordQueryError()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording cache metrics", func() {
			Convey("Then it should record hits, misses and size", func() {
				So(func() {
					RecordCacheHit()
					RecordCacheMiss()
					SetCacheEntries(3)
					SetCacheEntries(0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording catalog metrics", func() {
			Convey("Then it should record resolves and failures", func() {
				So(func() {
					RecordResolve()
					RecordResolveFailure()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording KPI latency", func() {
			Convey("Then it should record observations", func() {
				So(func() {
					RecordKPICompute(3.2)
					RecordKPICompute(7.9)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("healthz", "GET", "200")
					RecordHTTPRequest("kpis", "GET", "200")
					RecordHTTPRequestDuration("kpis", "GET", "200", 18.0)
					RecordEndpointError("kpis", "GET", "not_found")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("When fetching it", func() {
			registry := GetRegistry()

			Convey("Then it should be non-nil and gatherable", func() {
				So(registry, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeNil)
			})
		})
	})
}
