package glotlint

import "sort"

// Report maps a translation index to the rules that failed for it, each
// with a rendered failure message. A nil Report means no issues were found;
// an index absent from the report means that candidate passed every rule.
type Report map[int]map[string]string

// IsClean reports whether no issues were recorded.
func (r Report) IsClean() bool {
	return len(r) == 0
}

// Indices returns the translation indices with issues, in ascending order.
func (r Report) Indices() []int {
	indices := make([]int, 0, len(r))
	for i := range r {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// add records a failure message for (index, rule).
func (r Report) add(index int, rule, message string) {
	if r[index] == nil {
		r[index] = make(map[string]string)
	}
	r[index][rule] = message
}
