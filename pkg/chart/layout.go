package chart

import (
	"fmt"
	"strconv"

	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// Limits is a closed [Min, Max] axis range in data units.
type Limits struct {
	Min float64
	Max float64
}

// RefLine is a constant horizontal marker spanning the chart with one unit
// of margin beyond the outermost bars.
type RefLine struct {
	Y    float64
	XMin float64
	XMax float64
}

// BarText is a per-bar annotation anchored just above the bar top.
type BarText struct {
	X, Y float64
	Text string
}

// Layout is the derived geometry a renderer needs to draw one bar chart.
// It is computed fresh per chart and never stored.
type Layout struct {
	Offsets       []float64 // integer x positions 0..N-1, one per bar
	BarWidth      float64   // uniform bar width in data units
	XLim          Limits
	YLim          Limits
	BottomLabels  []string // empty when bottom labels are disabled
	LabelRotation float64  // degrees; 45 when more than 7 labels, else 0
	RefLine       *RefLine // nil unless a reference line was requested
	BarTexts      []BarText
}

// rotationThreshold is the label count above which bottom labels tilt 45°.
const rotationThreshold = 7

// LayoutParams carries everything Derive needs. Values are the
// display-ready (reordered, normalized) heights; RawValues are the
// reordered but unscaled values, used for the sample-count annotation on
// bottom labels.
type LayoutParams struct {
	Values    []float64
	RawValues []float64
	Labels    []string

	YLim      *Limits // explicit y-limits, already percent-converted
	MaxValPad float64 // autoscale headroom fraction
	BarWidth  float64

	ShowBottomLabels bool
	ShowRefLine      bool
	RefMax           float64

	ShowBarTexts bool
	BarTextFmt   func(float64) string // nil means plain stringification
	BarTextPad   float64              // vertical offset above each bar top
}

// Derive computes the layout for one bar chart. All validation here is
// eager: an error means nothing has been drawn yet.
func Derive(p LayoutParams) (Layout, error) {
	n := len(p.Values)
	if n == 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "data is required")
	}

	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = float64(i)
	}

	l := Layout{
		Offsets:  offsets,
		BarWidth: p.BarWidth,
		XLim:     Limits{Min: -p.BarWidth, Max: float64(n-1) + p.BarWidth},
	}

	if p.YLim != nil {
		l.YLim = *p.YLim
	} else {
		max := maxOf(p.Values)
		l.YLim = Limits{Min: 0, Max: max * (1 + p.MaxValPad)}
		if l.YLim.Max <= l.YLim.Min {
			return Layout{}, errors.New(errors.ErrCodeInvalidConfig,
				"autoscaled y-limits (%g, %g) are empty; check max_val_pad", l.YLim.Min, l.YLim.Max)
		}
	}

	if p.ShowBottomLabels && len(p.Labels) > 0 {
		if len(p.Labels) != n {
			return Layout{}, errors.New(errors.ErrCodeLabelMismatch,
				"len(labels) = %d does not match len(data) = %d", len(p.Labels), n)
		}
		raw := p.RawValues
		if len(raw) != n {
			raw = p.Values
		}
		l.BottomLabels = make([]string, n)
		for i, label := range p.Labels {
			l.BottomLabels[i] = fmt.Sprintf("%s\nN = %s", label, formatValue(raw[i]))
		}
		if n > rotationThreshold {
			l.LabelRotation = 45
		}
	}

	if p.ShowRefLine {
		l.RefLine = &RefLine{
			Y:    p.RefMax,
			XMin: offsets[0] - 1,
			XMax: offsets[n-1] + 1,
		}
	}

	if p.ShowBarTexts {
		format := p.BarTextFmt
		if format == nil {
			format = formatValue
		}
		l.BarTexts = make([]BarText, n)
		for i, v := range p.Values {
			l.BarTexts[i] = BarText{X: offsets[i], Y: v + p.BarTextPad, Text: format(v)}
		}
	}

	return l, nil
}

// formatValue is the default stringification for values in annotations.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
