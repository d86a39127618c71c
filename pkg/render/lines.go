package render

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// Lines draws one line per y-series against a shared x sequence. When
// labels are given they key a legend, one entry per series. The caller
// guarantees each y-series has the length of x.
func Lines(c *Canvas, x []float64, ys [][]float64, labels []string, ylim *chart.Limits) error {
	if len(ys) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one y series is required")
	}

	for i, y := range ys {
		pts := make(plotter.XYs, len(y))
		for j := range y {
			pts[j] = plotter.XY{X: x[j], Y: y[j]}
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "line %d", i)
		}
		ln.Color = plotutil.Color(i)
		ln.LineStyle.Width = vg.Points(1.5)
		c.plot.Add(ln)
		if len(labels) > 0 {
			c.plot.Legend.Add(labels[i], ln)
		}
	}
	c.plot.Legend.Top = true

	if ylim != nil {
		c.plot.Y.Min, c.plot.Y.Max = ylim.Min, ylim.Max
	}
	return nil
}
