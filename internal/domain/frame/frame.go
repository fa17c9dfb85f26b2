// Package frame holds the tabular result type shared by the loader, the
// filter engine and the metric engine. A Frame is schema-light: every row
// carries the temporal pair (year, quarter), string label dimensions and
// numeric measures keyed by column name. Within one logical dataset all rows
// share the same column set.
package frame

import "sort"

// Row is a single dataset record.
type Row struct {
	Year    int
	Quarter int
	Labels  map[string]string
	Values  map[string]float64
}

// Label returns the named label dimension, or "" when absent.
func (r Row) Label(name string) string {
	if r.Labels == nil {
		return ""
	}
	return r.Labels[name]
}

// Value returns the named measure, or 0 when absent.
func (r Row) Value(name string) float64 {
	if r.Values == nil {
		return 0
	}
	return r.Values[name]
}

// Frame is an ordered collection of rows from one dataset.
type Frame struct {
	Rows []Row
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Empty reports whether the frame has no rows.
func (f *Frame) Empty() bool { return f.Len() == 0 }

// Years returns the distinct years present, ascending.
func (f *Frame) Years() []int {
	return f.distinctInts(func(r Row) int { return r.Year })
}

// Quarters returns the distinct quarters present, ascending.
func (f *Frame) Quarters() []int {
	return f.distinctInts(func(r Row) int { return r.Quarter })
}

// LabelValues returns the distinct values of a label dimension, ascending.
func (f *Frame) LabelValues(name string) []string {
	if f == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range f.Rows {
		v := r.Label(name)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// MaxYear returns the latest year present, or 0 for an empty frame.
func (f *Frame) MaxYear() int {
	years := f.Years()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

func (f *Frame) distinctInts(key func(Row) int) []int {
	if f == nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for _, r := range f.Rows {
		v := key(r)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
