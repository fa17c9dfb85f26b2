// Package kpi computes aggregate metrics over a filtered frame. Every
// computation degrades to a neutral value (0 or "N/A") on empty input,
// missing columns or zero denominators. Missing data is never an error
// here, the worst case is an uninteresting display.
package kpi

import (
	"math"
	"sort"
	"strconv"

	"github.com/kselvam/pulseboard/internal/domain/catalog"
	"github.com/kselvam/pulseboard/internal/domain/frame"
)

// NoEntity is the top-entity placeholder when no groups exist.
const NoEntity = "N/A"

const percent = 100

// Bundle is the scalar metric set for one category snapshot. Produced once,
// consumed by presentation, never mutated.
type Bundle struct {
	TotalValue     float64 `json:"total_value"`
	TotalCount     float64 `json:"total_count"`
	Average        float64 `json:"average"`
	TopEntity      string  `json:"top_entity"`
	TopEntityValue float64 `json:"top_entity_value"`
	UniqueEntities int     `json:"unique_entities"`
	// BestQuarter is the quarter (1..4) with the highest summed value, 0
	// when the frame is empty.
	BestQuarter int `json:"best_quarter"`
	// HighestAvgEntity has the largest value/count ratio among entities;
	// only populated for categories with a count measure.
	HighestAvgEntity string  `json:"highest_avg_entity"`
	HighestAvgValue  float64 `json:"highest_avg_value"`
	// Growth percentages. Fewer than two periods, or a nonpositive base
	// period, yields exactly 0.
	YoY       float64 `json:"yoy"`
	QoQ       float64 `json:"qoq"`
	CAGR      float64 `json:"cagr"`
	CountCAGR float64 `json:"count_cagr"`
}

// Group is one aggregated bucket of a grouped table.
type Group struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count float64 `json:"count"`
}

// Compute derives the full KPI bundle for a frame under a category config.
// The result is invariant to the row order of f.
func Compute(f *frame.Frame, cfg catalog.Config) Bundle {
	b := Bundle{TopEntity: NoEntity, HighestAvgEntity: NoEntity}
	if f == nil {
		f = &frame.Frame{}
	}

	for _, r := range f.Rows {
		b.TotalValue += r.Value(cfg.ValueColumn)
		if cfg.HasCount() {
			b.TotalCount += r.Value(cfg.CountColumn)
		}
	}
	if b.TotalCount > 0 {
		b.Average = b.TotalValue / b.TotalCount
	}

	if cfg.LabelColumn != "" {
		groups := SumByLabel(f, cfg.LabelColumn, cfg.ValueColumn, cfg.CountColumn)
		b.UniqueEntities = len(groups)
		if len(groups) > 0 {
			b.TopEntity = groups[0].Key
			b.TopEntityValue = groups[0].Value
		}
		if cfg.HasCount() {
			b.HighestAvgEntity, b.HighestAvgValue = highestAverage(groups)
		}
	}

	if q, ok := bestQuarter(f, cfg.ValueColumn); ok {
		b.BestQuarter = q
	}

	yearly := SumByYear(f, cfg.ValueColumn)
	b.YoY = latestGrowth(yearly)
	b.CAGR = compoundGrowth(yearly)
	if cfg.HasCount() {
		b.CountCAGR = compoundGrowth(SumByYear(f, cfg.CountColumn))
	}
	b.QoQ = latestGrowth(SumByPeriod(f, cfg.ValueColumn))

	return b
}

// SumByLabel groups rows by a label dimension and sums the value and count
// measures per group, ordered by value descending with ties broken by key so
// the result does not depend on input row order.
func SumByLabel(f *frame.Frame, label, valueCol, countCol string) []Group {
	if f == nil || label == "" {
		return nil
	}
	sums := make(map[string]*Group)
	for _, r := range f.Rows {
		key := r.Label(label)
		if key == "" {
			continue
		}
		g, ok := sums[key]
		if !ok {
			g = &Group{Key: key}
			sums[key] = g
		}
		g.Value += r.Value(valueCol)
		if countCol != "" {
			g.Count += r.Value(countCol)
		}
	}
	out := make([]Group, 0, len(sums))
	for _, g := range sums {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// SumByYear sums a measure per year, ascending by year.
func SumByYear(f *frame.Frame, valueCol string) []Group {
	if f == nil {
		return nil
	}
	sums := make(map[int]float64)
	for _, r := range f.Rows {
		sums[r.Year] += r.Value(valueCol)
	}
	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]Group, 0, len(years))
	for _, y := range years {
		out = append(out, Group{Key: strconv.Itoa(y), Value: sums[y]})
	}
	return out
}

// SumByPeriod sums a measure per (year, quarter), ascending chronologically.
// Keys render as "2022-Q1".
func SumByPeriod(f *frame.Frame, valueCol string) []Group {
	if f == nil {
		return nil
	}
	type period struct{ year, quarter int }
	sums := make(map[period]float64)
	for _, r := range f.Rows {
		sums[period{r.Year, r.Quarter}] += r.Value(valueCol)
	}
	periods := make([]period, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].year != periods[j].year {
			return periods[i].year < periods[j].year
		}
		return periods[i].quarter < periods[j].quarter
	})
	out := make([]Group, 0, len(periods))
	for _, p := range periods {
		out = append(out, Group{Key: strconv.Itoa(p.year) + "-Q" + strconv.Itoa(p.quarter), Value: sums[p]})
	}
	return out
}

// latestGrowth is the percent change between the last two groups of an
// ascending series. Fewer than two groups, or a nonpositive previous value,
// yields 0.
func latestGrowth(series []Group) float64 {
	if len(series) < 2 {
		return 0
	}
	prev := series[len(series)-2].Value
	last := series[len(series)-1].Value
	if prev <= 0 {
		return 0
	}
	return (last - prev) / prev * percent
}

// compoundGrowth is the constant per-period rate taking the first group's
// value to the last over n-1 intervals, as a percentage. Requires at least
// two groups and a positive first value; otherwise 0.
func compoundGrowth(series []Group) float64 {
	n := len(series)
	if n < 2 {
		return 0
	}
	first := series[0].Value
	last := series[n-1].Value
	if first <= 0 {
		return 0
	}
	return (math.Pow(last/first, 1/float64(n-1)) - 1) * percent
}

func bestQuarter(f *frame.Frame, valueCol string) (int, bool) {
	if f.Empty() {
		return 0, false
	}
	sums := make(map[int]float64)
	for _, r := range f.Rows {
		sums[r.Quarter] += r.Value(valueCol)
	}
	best, bestSum, found := 0, 0.0, false
	for q, sum := range sums {
		if !found || sum > bestSum || (sum == bestSum && q < best) {
			best, bestSum, found = q, sum, true
		}
	}
	return best, found
}

func highestAverage(groups []Group) (string, float64) {
	best, bestAvg, found := NoEntity, 0.0, false
	for _, g := range groups {
		if g.Count <= 0 {
			continue
		}
		avg := g.Value / g.Count
		if !found || avg > bestAvg || (avg == bestAvg && g.Key < best) {
			best, bestAvg, found = g.Key, avg, true
		}
	}
	if !found {
		return NoEntity, 0
	}
	return best, bestAvg
}
