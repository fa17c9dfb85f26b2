package frame

// Selection is the set of user-chosen dimension values. A nil or empty slice
// leaves that dimension unconstrained. Values within one dimension are
// OR-combined; dimensions are AND-combined.
type Selection struct {
	Years    []int
	Quarters []int
	// Labels maps a label dimension name (state, phone_brand,
	// type_of_transaction, entity_type) to its allowed values.
	Labels map[string][]string
}

// IsEmpty reports whether no constraint is active.
func (s Selection) IsEmpty() bool {
	if len(s.Years) > 0 || len(s.Quarters) > 0 {
		return false
	}
	for _, vals := range s.Labels {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// DefaultSelection builds the selection the UI applies before any user
// interaction: the most recent year, every quarter present, and no label
// constraint.
func DefaultSelection(f *Frame) Selection {
	return Selection{}.WithDefaults(f)
}

// WithDefaults fills the unset period dimensions of a selection from the
// default policy: an empty year set becomes the most recent year, an empty
// quarter set every quarter present. Label dimensions stay as given, since
// unconstrained is their default.
func (s Selection) WithDefaults(f *Frame) Selection {
	if f.Empty() {
		return s
	}
	if len(s.Years) == 0 {
		s.Years = []int{f.MaxYear()}
	}
	if len(s.Quarters) == 0 {
		s.Quarters = f.Quarters()
	}
	return s
}

// Apply returns the subset of rows matching every active constraint. The
// result shares row data with the input; neither frame is mutated. An empty
// result is valid input for all downstream computation.
func Apply(f *Frame, sel Selection) *Frame {
	if f == nil {
		return &Frame{}
	}
	if sel.IsEmpty() {
		return f
	}

	years := toIntSet(sel.Years)
	quarters := toIntSet(sel.Quarters)
	labels := make(map[string]map[string]bool)
	for dim, vals := range sel.Labels {
		if len(vals) > 0 {
			labels[dim] = toStringSet(vals)
		}
	}

	out := &Frame{Rows: make([]Row, 0, len(f.Rows))}
	for _, r := range f.Rows {
		if years != nil && !years[r.Year] {
			continue
		}
		if quarters != nil && !quarters[r.Quarter] {
			continue
		}
		if !matchLabels(r, labels) {
			continue
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

func matchLabels(r Row, labels map[string]map[string]bool) bool {
	for dim, set := range labels {
		if !set[r.Label(dim)] {
			return false
		}
	}
	return true
}

func toIntSet(vals []int) map[int]bool {
	if len(vals) == 0 {
		return nil
	}
	set := make(map[int]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

func toStringSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}
