package sink

import "github.com/JoshuaBeard/plottools/pkg/render"

// SVG encodes the canvas as a scalable vector image.
func SVG(c *render.Canvas) ([]byte, error) {
	return c.Encode(FormatSVG)
}
