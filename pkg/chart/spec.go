package chart

import (
	"strconv"
	"strings"

	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// SortPolicy names a built-in ordering of bars by value.
type SortPolicy string

// Recognized sort policies.
const (
	SortAscending  SortPolicy = "ascending"
	SortDescending SortPolicy = "descending"
)

// SortSpec selects the display order of a series. The zero value means
// identity order. Exactly one of Policy or Perm should be set; when Perm is
// non-nil it takes precedence and is used directly as the permutation.
type SortSpec struct {
	Policy SortPolicy
	Perm   []int
}

// IsZero reports whether the spec requests no reordering.
func (s SortSpec) IsZero() bool {
	return s.Policy == "" && s.Perm == nil
}

// ParseSortSpec parses a CLI/TOML sort_by value. Accepted forms are the
// policy names "ascending" and "descending", and a comma-separated index
// sequence such as "2,0,1" for an explicit permutation.
func ParseSortSpec(s string) (SortSpec, error) {
	switch SortPolicy(strings.ToLower(s)) {
	case "":
		return SortSpec{}, nil
	case SortAscending:
		return SortSpec{Policy: SortAscending}, nil
	case SortDescending:
		return SortSpec{Policy: SortDescending}, nil
	}

	parts := strings.Split(s, ",")
	perm := make([]int, len(parts))
	for i, p := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return SortSpec{}, errors.New(errors.ErrCodeInvalidConfig,
				"invalid sort_by: %q (must be 'ascending', 'descending', or an index sequence)", s)
		}
		perm[i] = idx
	}
	return SortSpec{Perm: perm}, nil
}

// ScaleSpec is an optional element-wise divisor for series values. The zero
// value means no scaling. A scalar broadcasts to every element; a vector
// must have the series length.
type ScaleSpec struct {
	scalar  float64
	vector  []float64
	hasScal bool
}

// ScaleBy returns a ScaleSpec dividing every value by v.
func ScaleBy(v float64) ScaleSpec {
	return ScaleSpec{scalar: v, hasScal: true}
}

// ScaleByVector returns a ScaleSpec dividing values element-wise.
func ScaleByVector(vs ...float64) ScaleSpec {
	return ScaleSpec{vector: vs}
}

// IsZero reports whether the spec requests no scaling.
func (s ScaleSpec) IsZero() bool {
	return !s.hasScal && s.vector == nil
}

// factors broadcasts the spec against a series of length n.
func (s ScaleSpec) factors(n int) ([]float64, error) {
	if s.hasScal {
		fs := make([]float64, n)
		for i := range fs {
			fs[i] = s.scalar
		}
		return fs, nil
	}
	if len(s.vector) != n {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"scale_by has %d elements, not broadcastable to %d data points", len(s.vector), n)
	}
	return s.vector, nil
}

// ParseScaleSpec parses a CLI/TOML scale_by value: a single number or a
// comma-separated list of per-element divisors.
func ParseScaleSpec(s string) (ScaleSpec, error) {
	if s == "" {
		return ScaleSpec{}, nil
	}
	parts := strings.Split(s, ",")
	vs := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return ScaleSpec{}, errors.New(errors.ErrCodeInvalidConfig,
				"invalid scale_by: %q (must be a number or a comma-separated list)", s)
		}
		vs[i] = v
	}
	if len(vs) == 1 {
		return ScaleBy(vs[0]), nil
	}
	return ScaleByVector(vs...), nil
}
