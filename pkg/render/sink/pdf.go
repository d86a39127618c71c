package sink

import "github.com/JoshuaBeard/plottools/pkg/render"

// PDF encodes the canvas as a single-page PDF document.
func PDF(c *render.Canvas) ([]byte, error) {
	return c.Encode(FormatPDF)
}
