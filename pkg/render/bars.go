package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
	"github.com/JoshuaBeard/plottools/pkg/series"
)

// BarsOption configures bar drawing.
type BarsOption func(*barsRenderer)

type barsRenderer struct {
	multicolor bool
	legend     bool
}

// WithSingleColor draws every bar in the same color instead of cycling the
// palette per bar.
func WithSingleColor() BarsOption {
	return func(r *barsRenderer) { r.multicolor = false }
}

// WithLegend adds a legend entry per bar, keyed by the series labels.
func WithLegend() BarsOption {
	return func(r *barsRenderer) { r.legend = true }
}

// refLineColor is a light gray so the marker reads as a guide, not data.
var refLineColor = color.Gray{Y: 0xbf}

// Bars draws a fully laid-out bar chart onto the canvas. The layout is read
// verbatim: offsets, limits, tick labels, rotation, reference line and bar
// texts were all decided upstream.
func Bars(c *Canvas, s series.Series, l chart.Layout, opts ...BarsOption) error {
	r := barsRenderer{multicolor: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.legend && !s.Labeled() {
		return errors.New(errors.ErrCodeInvalidConfig, "show_legend requires labels")
	}

	width := barDisplayWidth(c.width, s.Len(), l.BarWidth)
	for i, v := range s.Values {
		b, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "bar %d", i)
		}
		b.XMin = l.Offsets[i]
		if r.multicolor {
			b.Color = plotutil.Color(i)
		} else {
			b.Color = plotutil.Color(0)
		}
		c.plot.Add(b)
		if r.legend {
			c.plot.Legend.Add(s.Labels[i], b)
		}
	}
	c.plot.Legend.Top = true

	if l.RefLine != nil {
		if err := addRefLine(c.plot, *l.RefLine); err != nil {
			return err
		}
	}

	if len(l.BarTexts) > 0 {
		if err := addBarTexts(c.plot, l.BarTexts); err != nil {
			return err
		}
	}

	addTicks(c.plot, l)

	c.plot.X.Min, c.plot.X.Max = l.XLim.Min, l.XLim.Max
	c.plot.Y.Min, c.plot.Y.Max = l.YLim.Min, l.YLim.Max
	return nil
}

// barDisplayWidth converts the data-unit bar width into canvas units by its
// share of the full x extent.
func barDisplayWidth(frameWidth vg.Length, n int, barWidth float64) vg.Length {
	span := float64(n-1) + 2*barWidth
	return frameWidth * vg.Length(barWidth/span)
}

func addRefLine(p *plot.Plot, rl chart.RefLine) error {
	pts := plotter.XYs{
		{X: rl.XMin, Y: rl.Y},
		{X: rl.XMax, Y: rl.Y},
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "reference line")
	}
	ln.LineStyle = draw.LineStyle{
		Color:  refLineColor,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
	p.Add(ln)
	return nil
}

func addBarTexts(p *plot.Plot, texts []chart.BarText) error {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(texts)),
		Labels: make([]string, len(texts)),
	}
	for i, bt := range texts {
		xyl.XYs[i] = plotter.XY{X: bt.X, Y: bt.Y}
		xyl.Labels[i] = bt.Text
	}
	lbls, err := plotter.NewLabels(xyl)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "bar labels")
	}
	p.Add(lbls)
	return nil
}

// addTicks places one tick per bar. Without bottom labels the ticks carry
// empty text, which gonum renders as unlabeled marks.
func addTicks(p *plot.Plot, l chart.Layout) {
	ticks := make([]plot.Tick, len(l.Offsets))
	for i, off := range l.Offsets {
		ticks[i] = plot.Tick{Value: off}
		if len(l.BottomLabels) > 0 {
			ticks[i].Label = l.BottomLabels[i]
		}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	if l.LabelRotation != 0 {
		p.X.Tick.Label.Rotation = l.LabelRotation * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
}
