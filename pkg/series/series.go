// Package series defines the numeric data model consumed by charts.
//
// A Series pairs an ordered sequence of values with an optional, equally
// ordered sequence of labels. The pairing is positional: values[i] and
// labels[i] describe the same bar, and every transformation applied to a
// Series must permute both sides identically.
package series

import (
	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// Series is one finite, already-loaded numeric collection driving a chart.
// Labels may be empty, in which case the series is unlabeled. A Series is
// immutable by convention: transformations return new value slices.
type Series struct {
	Values []float64
	Labels []string
}

// New constructs a Series from values and optional labels. Labels, when
// present, must pair one-to-one with values.
func New(values []float64, labels []string) (Series, error) {
	if len(values) == 0 {
		return Series{}, errors.New(errors.ErrCodeInvalidInput, "data is required")
	}
	if len(labels) > 0 && len(labels) != len(values) {
		return Series{}, errors.New(errors.ErrCodeLabelMismatch,
			"len(labels) = %d does not match len(data) = %d", len(labels), len(values))
	}
	return Series{Values: values, Labels: labels}, nil
}

// Len returns the number of data points.
func (s Series) Len() int { return len(s.Values) }

// Labeled reports whether the series carries per-point labels.
func (s Series) Labeled() bool { return len(s.Labels) > 0 }

// Max returns the largest value in the series. It assumes a non-empty
// series; New rejects empty data.
func (s Series) Max() float64 {
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
