package render

import (
	"bytes"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// Canvas is a single-owner handle to one figure. It wraps a gonum plot and
// the physical size it will be encoded at. Access must be serialized by the
// owner; the zero value is not usable, construct with NewCanvas.
type Canvas struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

// NewCanvas creates a figure of figWidth x figHeight inches with the given
// title. Font sizes scale with the larger figure dimension: tick and legend
// text at max(figsize) points, the title at twice that.
func NewCanvas(title string, figWidth, figHeight float64) *Canvas {
	p := plot.New()
	p.Title.Text = title

	base := vg.Points(math.Max(figWidth, figHeight))
	p.Title.TextStyle.Font.Size = 2 * base
	p.X.Tick.Label.Font.Size = base
	p.Y.Tick.Label.Font.Size = base
	p.Legend.TextStyle.Font.Size = base

	return &Canvas{
		plot:   p,
		width:  vg.Length(figWidth) * vg.Inch,
		height: vg.Length(figHeight) * vg.Inch,
	}
}

// SetXLabel sets the x-axis label text.
func (c *Canvas) SetXLabel(s string) { c.plot.X.Label.Text = s }

// SetYLabel sets the y-axis label text.
func (c *Canvas) SetYLabel(s string) { c.plot.Y.Label.Text = s }

// Encode renders the canvas into the given image format. Supported formats
// are those of gonum/plot's WriterTo (png, svg, pdf, eps, jpg, tif).
func (c *Canvas) Encode(format string) ([]byte, error) {
	w, err := c.plot.WriterTo(c.width, c.height, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unsupported image format %q", format)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding %s", format)
	}
	return buf.Bytes(), nil
}
