package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
	plotio "github.com/JoshuaBeard/plottools/pkg/io"
	"github.com/JoshuaBeard/plottools/pkg/render"
	"github.com/JoshuaBeard/plottools/pkg/render/sink"
)

// LineOptions contains all configuration for one line chart. Build with
// [NewLineOptions] for the documented defaults.
type LineOptions struct {
	// X is the shared x sequence. Required.
	X []float64
	// Ys are the y series, one line each. Every series must have the
	// length of X.
	Ys [][]float64
	// Labels name the series for the legend. Optional; when present there
	// must be one per series.
	Labels []string

	FigWidth  float64
	FigHeight float64
	Title     string
	XLabel    string
	YLabel    string
	YLim      *chart.Limits

	Save     bool
	SaveName string
	Formats  []string

	Logger *log.Logger
}

// NewLineOptions returns LineOptions with defaults applied.
func NewLineOptions(x []float64, ys ...[]float64) LineOptions {
	return LineOptions{
		X:         x,
		Ys:        ys,
		FigWidth:  DefaultFigWidth,
		FigHeight: DefaultFigHeight,
		Formats:   []string{FormatPNG},
	}
}

// Validate checks the options eagerly.
func (o *LineOptions) Validate() error {
	if len(o.X) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "x is required")
	}
	if len(o.Ys) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one y series is required")
	}
	for i, y := range o.Ys {
		if len(y) != len(o.X) {
			return errors.New(errors.ErrCodeShapeMismatch,
				"series %d has %d points, x has %d", i, len(y), len(o.X))
		}
	}
	if len(o.Labels) > 0 && len(o.Labels) != len(o.Ys) {
		return errors.New(errors.ErrCodeLabelMismatch,
			"len(labels) = %d does not match series count %d", len(o.Labels), len(o.Ys))
	}
	if o.FigWidth <= 0 || o.FigHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"figsize must be positive, got (%g, %g)", o.FigWidth, o.FigHeight)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	return ValidateFormats(o.Formats)
}

// saveBase is the output basename: an explicit save_name wins, otherwise
// the title with spaces collapsed to underscores, prefixed "graph_".
func (o *LineOptions) saveBase() string {
	if o.SaveName != "" {
		return o.SaveName
	}
	return "graph_" + strings.Join(strings.Fields(o.Title), "_")
}

// LineResult contains everything one ExecuteLine produced.
type LineResult struct {
	Artifacts map[string][]byte
	Saved     []string
	Stats     Stats
}

// ExecuteLine renders a line chart. Line charts skip the transform and
// layout stages; the data is drawn as given.
func (r *Runner) ExecuteLine(ctx context.Context, opts LineOptions) (*LineResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	canvas := render.NewCanvas(opts.Title, opts.FigWidth, opts.FigHeight)
	canvas.SetXLabel(opts.XLabel)
	canvas.SetYLabel(opts.YLabel)
	if err := render.Lines(canvas, opts.X, opts.Ys, opts.Labels, opts.YLim); err != nil {
		return nil, err
	}

	result := &LineResult{Artifacts: make(map[string][]byte)}
	for _, format := range opts.Formats {
		data, err := sink.Render(canvas, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(start)
	logger.Info("rendered line chart",
		"series", len(opts.Ys),
		"points", len(opts.X),
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	if opts.Save {
		base := opts.saveBase()
		for _, format := range opts.Formats {
			path := savePath(base, format)
			if err := plotio.Export(path, result.Artifacts[format]); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
			}
			result.Saved = append(result.Saved, path)
			logger.Info("saved chart", "path", path, "bytes", len(result.Artifacts[format]))
		}
	}
	return result, nil
}
