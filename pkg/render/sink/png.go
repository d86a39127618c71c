package sink

import "github.com/JoshuaBeard/plottools/pkg/render"

// PNG encodes the canvas as a raster PNG at the canvas's physical size.
func PNG(c *render.Canvas) ([]byte, error) {
	return c.Encode(FormatPNG)
}
