package chart

import (
	"sort"

	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// Reorder applies spec to the (values, labels) pair and returns the permuted
// sequences. The inputs are never mutated; a zero spec returns them
// unchanged. Named policies sort by numeric value with a stable sort, so
// ties keep their order of first occurrence; descending is the exact
// reverse of the ascending permutation. An explicit permutation is used
// directly, validated only for length.
func Reorder(values []float64, labels []string, spec SortSpec) ([]float64, []string, error) {
	if spec.IsZero() {
		return values, labels, nil
	}

	var order []int
	switch {
	case spec.Perm != nil:
		if len(spec.Perm) != len(values) {
			return nil, nil, errors.New(errors.ErrCodeInvalidConfig,
				"sort_by permutation has %d indices for %d data points", len(spec.Perm), len(values))
		}
		order = spec.Perm
	case spec.Policy == SortAscending:
		order = argsort(values)
	case spec.Policy == SortDescending:
		order = reverse(argsort(values))
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid sort_by policy: %q", spec.Policy)
	}

	return permute(values, order), permuteLabels(labels, order), nil
}

// argsort returns the permutation that sorts values ascending, stable in
// the order of first occurrence for equal values.
func argsort(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})
	return order
}

func reverse(order []int) []int {
	out := make([]int, len(order))
	for i, idx := range order {
		out[len(order)-1-i] = idx
	}
	return out
}

func permute(values []float64, order []int) []float64 {
	out := make([]float64, len(order))
	for i, idx := range order {
		out[i] = values[idx]
	}
	return out
}

func permuteLabels(labels []string, order []int) []string {
	if len(labels) == 0 {
		return labels
	}
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = labels[idx]
	}
	return out
}
