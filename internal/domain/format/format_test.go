package format_test

import (
	"testing"

	"github.com/kselvam/pulseboard/internal/domain/format"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNumber(t *testing.T) {
	Convey("Given the unit-band number formatter", t, func() {
		Convey("When the value sits below the thousand band", func() {
			So(format.Number(999), ShouldEqual, "999")
			So(format.Number(0), ShouldEqual, "0")
			So(format.Number(42), ShouldEqual, "42")
		})

		Convey("When the value crosses each band edge", func() {
			So(format.Number(1_000), ShouldEqual, "1.00K")
			So(format.Number(1_500), ShouldEqual, "1.50K")
			So(format.Number(100_000), ShouldEqual, "1.00L")
			So(format.Number(150_000), ShouldEqual, "1.50L")
			So(format.Number(1_500_000), ShouldEqual, "15.00L")
			So(format.Number(10_000_000), ShouldEqual, "1.00Cr")
			So(format.Number(15_000_000), ShouldEqual, "1.50Cr")
			So(format.Number(1_000_000_000), ShouldEqual, "1.00B")
			So(format.Number(2_500_000_000), ShouldEqual, "2.50B")
		})
	})
}

func TestCurrency(t *testing.T) {
	Convey("Given the currency formatter", t, func() {
		Convey("When values fall into the scaled bands", func() {
			So(format.Currency(150_000), ShouldEqual, "₹1.50L")
			So(format.Currency(1_500_000), ShouldEqual, "₹15.00L")
			So(format.Currency(15_000_000), ShouldEqual, "₹1.50Cr")
			So(format.Currency(1_500), ShouldEqual, "₹1.50K")
			So(format.Currency(3_200_000_000), ShouldEqual, "₹3.20B")
		})

		Convey("When the value is unscaled it keeps two decimals and separators", func() {
			So(format.Currency(999), ShouldEqual, "₹999.00")
			So(format.Currency(0), ShouldEqual, "₹0.00")
			So(format.Currency(123.456), ShouldEqual, "₹123.46")
		})
	})
}

func TestPercentage(t *testing.T) {
	Convey("Given the percentage formatter", t, func() {
		Convey("When the value is positive", func() {
			So(format.Percentage(50.0), ShouldEqual, "📈 50.0%")
		})

		Convey("When the value is negative", func() {
			So(format.Percentage(-3.25), ShouldEqual, "📉 -3.2%")
		})

		Convey("When the value is zero", func() {
			So(format.Percentage(0), ShouldEqual, "➡️ 0.0%")
		})

		Convey("When a decimal count is supplied", func() {
			So(format.Percentage(12.3456, 2), ShouldEqual, "📈 12.35%")
			So(format.Percentage(12.3456, 0), ShouldEqual, "📈 12%")
		})
	})
}
