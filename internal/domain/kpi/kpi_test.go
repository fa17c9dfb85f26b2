package kpi_test

import (
	"math/rand"
	"testing"

	"github.com/kselvam/pulseboard/internal/domain/catalog"
	"github.com/kselvam/pulseboard/internal/domain/frame"
	"github.com/kselvam/pulseboard/internal/domain/kpi"
	. "github.com/smartystreets/goconvey/convey"
)

func stateConfig() catalog.Config {
	return catalog.Config{
		Category:    "Insurance State",
		Dataset:     "aggregated_insurence_state",
		ValueColumn: "total_amount",
		CountColumn: "number_of_transactions",
		LabelColumn: "state",
		Kind:        catalog.KindInsurance,
	}
}

func row(state string, year, quarter int, amount, count float64) frame.Row {
	return frame.Row{
		Year:    year,
		Quarter: quarter,
		Labels:  map[string]string{"state": state},
		Values: map[string]float64{
			"total_amount":           amount,
			"number_of_transactions": count,
		},
	}
}

func TestCompute(t *testing.T) {
	Convey("Given the two-year West Bengal scenario", t, func() {
		f := &frame.Frame{Rows: []frame.Row{
			row("West Bengal", 2022, 1, 100, 10),
			row("West Bengal", 2023, 1, 150, 12),
		}}

		Convey("When computing the KPI bundle", func() {
			b := kpi.Compute(f, stateConfig())

			Convey("Then totals, average and YoY match the hand computation", func() {
				So(b.TotalValue, ShouldAlmostEqual, 250, 1e-9)
				So(b.TotalCount, ShouldAlmostEqual, 22, 1e-9)
				So(b.Average, ShouldAlmostEqual, 250.0/22.0, 1e-9)
				So(b.YoY, ShouldAlmostEqual, 50.0, 1e-9)
				So(b.TopEntity, ShouldEqual, "West Bengal")
				So(b.TopEntityValue, ShouldAlmostEqual, 250, 1e-9)
				So(b.UniqueEntities, ShouldEqual, 1)
				So(b.BestQuarter, ShouldEqual, 1)
			})

			Convey("And CAGR over two years equals the single-interval growth", func() {
				// (150/100)^(1/1) - 1 = 50%
				So(b.CAGR, ShouldAlmostEqual, 50.0, 1e-9)
			})
		})
	})

	Convey("Given an empty frame", t, func() {
		b := kpi.Compute(&frame.Frame{}, stateConfig())

		Convey("Then every metric is neutral and nothing panics", func() {
			So(b.TotalValue, ShouldEqual, 0)
			So(b.TotalCount, ShouldEqual, 0)
			So(b.Average, ShouldEqual, 0)
			So(b.TopEntity, ShouldEqual, "N/A")
			So(b.TopEntityValue, ShouldEqual, 0)
			So(b.HighestAvgEntity, ShouldEqual, "N/A")
			So(b.YoY, ShouldEqual, 0)
			So(b.QoQ, ShouldEqual, 0)
			So(b.CAGR, ShouldEqual, 0)
			So(b.CountCAGR, ShouldEqual, 0)
			So(b.BestQuarter, ShouldEqual, 0)
		})
	})

	Convey("Given a single distinct year", t, func() {
		f := &frame.Frame{Rows: []frame.Row{
			row("Kerala", 2023, 1, 100, 5),
			row("Kerala", 2023, 2, 200, 9),
		}}
		b := kpi.Compute(f, stateConfig())

		Convey("Then YoY and CAGR are exactly zero while QoQ is defined", func() {
			So(b.YoY, ShouldEqual, 0)
			So(b.CAGR, ShouldEqual, 0)
			So(b.QoQ, ShouldAlmostEqual, 100.0, 1e-9)
			So(b.BestQuarter, ShouldEqual, 2)
		})
	})

	Convey("Given a zero-valued base year", t, func() {
		f := &frame.Frame{Rows: []frame.Row{
			row("Goa", 2022, 1, 0, 0),
			row("Goa", 2023, 1, 150, 12),
		}}
		b := kpi.Compute(f, stateConfig())

		Convey("Then growth degrades to zero instead of dividing by zero", func() {
			So(b.YoY, ShouldEqual, 0)
			So(b.CAGR, ShouldEqual, 0)
		})
	})

	Convey("Given a category without a count column", t, func() {
		cfg := catalog.Config{
			Category:    "User Country",
			Dataset:     "aggregated_user_counry",
			ValueColumn: "registered_users",
			Kind:        catalog.KindUser,
		}
		f := &frame.Frame{Rows: []frame.Row{
			{Year: 2022, Quarter: 1, Values: map[string]float64{"registered_users": 500}},
			{Year: 2023, Quarter: 1, Values: map[string]float64{"registered_users": 800}},
		}}
		b := kpi.Compute(f, cfg)

		Convey("Then the count measure is zero and the average neutral", func() {
			So(b.TotalValue, ShouldAlmostEqual, 1300, 1e-9)
			So(b.TotalCount, ShouldEqual, 0)
			So(b.Average, ShouldEqual, 0)
			So(b.TopEntity, ShouldEqual, "N/A")
			So(b.CountCAGR, ShouldEqual, 0)
		})
	})

	Convey("Given the same rows in shuffled order", t, func() {
		rows := []frame.Row{
			row("West Bengal", 2022, 1, 100, 10),
			row("Karnataka", 2022, 2, 300, 25),
			row("West Bengal", 2023, 1, 150, 12),
			row("Karnataka", 2023, 3, 350, 28),
			row("Goa", 2022, 4, 40, 4),
		}
		base := kpi.Compute(&frame.Frame{Rows: rows}, stateConfig())

		Convey("Then every permutation yields the identical bundle", func() {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 10; i++ {
				shuffled := make([]frame.Row, len(rows))
				copy(shuffled, rows)
				rng.Shuffle(len(shuffled), func(a, b int) {
					shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
				})
				So(kpi.Compute(&frame.Frame{Rows: shuffled}, stateConfig()), ShouldResemble, base)
			}
		})
	})
}

func TestGrouping(t *testing.T) {
	Convey("Given rows across states and periods", t, func() {
		f := &frame.Frame{Rows: []frame.Row{
			row("West Bengal", 2022, 1, 100, 10),
			row("Karnataka", 2022, 1, 300, 25),
			row("West Bengal", 2022, 2, 120, 11),
			row("Karnataka", 2023, 1, 350, 28),
		}}

		Convey("SumByLabel orders groups by value descending", func() {
			groups := kpi.SumByLabel(f, "state", "total_amount", "number_of_transactions")
			So(len(groups), ShouldEqual, 2)
			So(groups[0].Key, ShouldEqual, "Karnataka")
			So(groups[0].Value, ShouldAlmostEqual, 650, 1e-9)
			So(groups[0].Count, ShouldAlmostEqual, 53, 1e-9)
			So(groups[1].Key, ShouldEqual, "West Bengal")
			So(groups[1].Value, ShouldAlmostEqual, 220, 1e-9)
		})

		Convey("SumByYear orders groups chronologically", func() {
			groups := kpi.SumByYear(f, "total_amount")
			So(len(groups), ShouldEqual, 2)
			So(groups[0].Key, ShouldEqual, "2022")
			So(groups[0].Value, ShouldAlmostEqual, 520, 1e-9)
			So(groups[1].Key, ShouldEqual, "2023")
			So(groups[1].Value, ShouldAlmostEqual, 350, 1e-9)
		})

		Convey("SumByPeriod renders year-quarter keys in order", func() {
			groups := kpi.SumByPeriod(f, "total_amount")
			So(len(groups), ShouldEqual, 3)
			So(groups[0].Key, ShouldEqual, "2022-Q1")
			So(groups[1].Key, ShouldEqual, "2022-Q2")
			So(groups[2].Key, ShouldEqual, "2023-Q1")
		})
	})
}
