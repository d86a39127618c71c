package chart

// Normalize rescales values for display and returns the rescaled sequence
// together with the reference maximum the chart should anchor a marker line
// to. The input slice is never mutated.
//
// When a scale is given, values are divided element-wise and the reference
// maximum becomes the constant 1: scaled charts are read against "all of
// it", not against the empirical peak. Without a scale the reference
// maximum is the data's maximum. Percent mode multiplies the result by 100
// and pins the reference maximum to 100 regardless of the prior branch.
//
// Normalize always runs after Reorder, so named sort policies are computed
// on unscaled values. That ordering is only preserved for strictly positive
// scale factors; negative or zero factors invert or collapse it.
func Normalize(values []float64, scale ScaleSpec, percent bool) ([]float64, float64, error) {
	out := make([]float64, len(values))
	copy(out, values)

	var refMax float64
	if !scale.IsZero() {
		factors, err := scale.factors(len(out))
		if err != nil {
			return nil, 0, err
		}
		for i := range out {
			out[i] /= factors[i]
		}
		refMax = 1
	} else {
		refMax = maxOf(out)
	}

	if percent {
		for i := range out {
			out[i] *= 100
		}
		refMax = 100
	}

	return out, refMax, nil
}

// PercentLimits converts caller-supplied y-limits to percent display units.
// Limits scale independently of the values themselves.
func PercentLimits(l Limits) Limits {
	return Limits{Min: l.Min * 100, Max: l.Max * 100}
}

func maxOf(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
