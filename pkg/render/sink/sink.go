package sink

import (
	"github.com/JoshuaBeard/plottools/pkg/errors"
	"github.com/JoshuaBeard/plottools/pkg/render"
)

// Format names accepted by Render.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
	FormatPDF: true,
}

// Render encodes the canvas in the named format.
func Render(c *render.Canvas, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		return PNG(c)
	case FormatSVG:
		return SVG(c)
	case FormatPDF:
		return PDF(c)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, pdf)", format)
	}
}
