package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
	plotio "github.com/JoshuaBeard/plottools/pkg/io"
	"github.com/JoshuaBeard/plottools/pkg/render"
	"github.com/JoshuaBeard/plottools/pkg/render/sink"
	"github.com/JoshuaBeard/plottools/pkg/series"
)

// Stats contains timing information for pipeline stages.
type Stats struct {
	TransformTime time.Duration // reorder + normalize
	LayoutTime    time.Duration
	RenderTime    time.Duration // drawing + encoding all formats
}

// Result contains everything one Execute produced.
type Result struct {
	// Series holds the display-ready values and labels, after reordering
	// and normalization.
	Series series.Series
	// Raw holds the reordered but unscaled values, the numbers shown in
	// bottom-label annotations.
	Raw []float64
	// RefMax is the reference maximum: the raw data maximum, 1 under a
	// scale factor, or 100 under percent mode.
	RefMax float64
	// Layout is the derived geometry the chart was drawn from.
	Layout chart.Layout
	// Artifacts maps format name to encoded bytes.
	Artifacts map[string][]byte
	// Saved lists the paths written when saving was requested.
	Saved []string
	Stats Stats
}

// Runner executes the chart pipeline.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger silences stage logging.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger}
}

// Execute runs the full bar-chart pipeline. All validation happens before
// the first drawing call, so an error means no artifact was produced and no
// file was touched.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	// Stage 1: reorder and normalize.
	start := time.Now()
	s, err := series.New(opts.Data, opts.Labels)
	if err != nil {
		return nil, err
	}
	values, labels, err := chart.Reorder(s.Values, s.Labels, opts.SortBy)
	if err != nil {
		return nil, err
	}
	raw := append([]float64(nil), values...)
	values, refMax, err := chart.Normalize(values, opts.ScaleBy, opts.ShowAsPercent)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Series:    series.Series{Values: values, Labels: labels},
		Raw:       raw,
		RefMax:    refMax,
		Artifacts: make(map[string][]byte),
	}
	result.Stats.TransformTime = time.Since(start)
	logger.Info("transformed data",
		"bars", len(values),
		"ref_max", refMax,
		"duration", result.Stats.TransformTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: derive layout. Explicit y-limits are percent-converted here
	// so they stay in the same units as the data.
	start = time.Now()
	ylim := opts.YLim
	if ylim != nil && opts.ShowAsPercent {
		converted := chart.PercentLimits(*ylim)
		ylim = &converted
	}
	layout, err := chart.Derive(chart.LayoutParams{
		Values:           values,
		RawValues:        raw,
		Labels:           labels,
		YLim:             ylim,
		MaxValPad:        opts.MaxValPad,
		BarWidth:         opts.BarWidth,
		ShowBottomLabels: opts.ShowBottomLabels,
		ShowRefLine:      opts.ShowMaxVal,
		RefMax:           refMax,
		ShowBarTexts:     opts.ShowBarLabels,
		BarTextFmt:       opts.BarLabelFormat,
		BarTextPad:       opts.barLabelPad(),
	})
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(start)
	logger.Info("derived layout",
		"xlim", layout.XLim,
		"ylim", layout.YLim,
		"rotation", layout.LabelRotation,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: render and encode.
	start = time.Now()
	canvas := render.NewCanvas(opts.Title, opts.FigWidth, opts.FigHeight)
	var barOpts []render.BarsOption
	if !opts.Multicolor {
		barOpts = append(barOpts, render.WithSingleColor())
	}
	if opts.ShowLegend {
		barOpts = append(barOpts, render.WithLegend())
	}
	if err := render.Bars(canvas, result.Series, layout, barOpts...); err != nil {
		return nil, err
	}
	for _, format := range opts.Formats {
		data, err := sink.Render(canvas, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(start)
	logger.Info("rendered chart",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	if opts.Save {
		if err := saveArtifacts(logger, opts.saveBase(), opts.Formats, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// saveArtifacts writes every encoded format next to the working directory,
// one file per format.
func saveArtifacts(logger *log.Logger, base string, formats []string, result *Result) error {
	for _, format := range formats {
		path := savePath(base, format)
		if err := plotio.Export(path, result.Artifacts[format]); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
		}
		result.Saved = append(result.Saved, path)
		logger.Info("saved chart", "path", path, "bytes", len(result.Artifacts[format]))
	}
	return nil
}
