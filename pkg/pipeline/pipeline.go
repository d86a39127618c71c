// Package pipeline provides the chart-generation pipeline for plottools.
//
// This package implements the complete reorder → normalize → layout →
// render pipeline behind a single entry point. By centralizing this logic,
// the CLI and library callers get identical behavior for every option
// combination.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Reorder: permute (values, labels) by a sort policy or explicit order
//  2. Normalize: apply scale factors and percent conversion
//  3. Layout: derive offsets, axis limits, tick labels, and annotations
//  4. Render: draw through gonum/plot and encode the requested formats
//
// Stages 1–3 are pure; only stage 4 touches the drawing library, and each
// invocation draws into its own canvas.
//
// # Usage
//
//	opts := pipeline.NewOptions([]float64{3, 1, 2}, []string{"a", "b", "c"})
//	opts.SortBy = chart.SortSpec{Policy: chart.SortAscending}
//	opts.Title = "My Chart"
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
	"github.com/JoshuaBeard/plottools/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultBarWidth is the uniform bar width in data units.
	DefaultBarWidth = 0.75

	// DefaultFigWidth and DefaultFigHeight are the canvas size in inches.
	// The larger of the two also drives font scaling.
	DefaultFigWidth  = 12.0
	DefaultFigHeight = 8.0

	// DefaultMaxValPad is the autoscale headroom fraction above the
	// largest value.
	DefaultMaxValPad = 0.1

	// DefaultBarLabelPad is the vertical offset of per-bar text above the
	// bar top. It is applied only when a scale factor is in effect; unscaled
	// charts place the text directly at the bar top. Set
	// Options.BarLabelPad to override either case.
	DefaultBarLabelPad = 0.05
)

// Format constants for output formats.
const (
	FormatPNG = sink.FormatPNG
	FormatSVG = sink.FormatSVG
	FormatPDF = sink.FormatPDF
)

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !sink.ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one bar chart.
//
// Build Options with [NewOptions] so boolean and numeric defaults match the
// documented behavior; a zero Options value renders nothing useful.
type Options struct {
	// Data are the bar heights. Required.
	Data []float64
	// Labels annotate bars positionally. Optional; when present there must
	// be one per data point.
	Labels []string

	BarWidth  float64
	FigWidth  float64
	FigHeight float64
	// Title is the chart title; it is also the default save basename.
	Title string

	// YLim pins the y-axis bounds. Nil means autoscale to
	// (0, max*(1+MaxValPad)). Under percent mode the bounds are multiplied
	// by 100 along with the data.
	YLim      *chart.Limits
	MaxValPad float64

	// SortBy selects display order; applied before any scaling.
	SortBy chart.SortSpec
	// ScaleBy divides values element-wise and anchors the reference line
	// at 1 instead of the data maximum.
	ScaleBy chart.ScaleSpec

	ShowBottomLabels bool
	ShowLegend       bool
	// ShowMaxVal draws a dashed horizontal marker at the reference maximum:
	// the data maximum, 1 under ScaleBy, or 100 under ShowAsPercent.
	ShowMaxVal    bool
	ShowBarLabels bool
	ShowAsPercent bool
	// Multicolor cycles the palette per bar; disable for uniform bars.
	Multicolor bool

	// BarLabelFormat renders per-bar text; nil means plain stringification
	// of the (possibly scaled) value.
	BarLabelFormat func(float64) string
	// BarLabelPad overrides the vertical offset of per-bar text. Nil keeps
	// the default: DefaultBarLabelPad when scaled, zero otherwise.
	BarLabelPad *float64

	// Save writes each rendered format to SaveName (or Title) plus the
	// format extension.
	Save     bool
	SaveName string
	// Formats selects the encodings to produce. Defaults to ["png"].
	Formats []string

	// Logger overrides the runner's logger for this execution.
	Logger *log.Logger
}

// NewOptions returns Options with the documented defaults applied.
func NewOptions(data []float64, labels []string) Options {
	return Options{
		Data:             data,
		Labels:           labels,
		BarWidth:         DefaultBarWidth,
		FigWidth:         DefaultFigWidth,
		FigHeight:        DefaultFigHeight,
		MaxValPad:        DefaultMaxValPad,
		ShowBottomLabels: true,
		Multicolor:       true,
		Formats:          []string{FormatPNG},
	}
}

// Validate checks the options eagerly, before any rendering side effect.
func (o *Options) Validate() error {
	if len(o.Data) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "data is required")
	}
	if len(o.Labels) > 0 && len(o.Labels) != len(o.Data) {
		return errors.New(errors.ErrCodeLabelMismatch,
			"len(labels) = %d does not match len(data) = %d", len(o.Labels), len(o.Data))
	}
	if o.BarWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bar_width must be positive, got %g", o.BarWidth)
	}
	if o.FigWidth <= 0 || o.FigHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"figsize must be positive, got (%g, %g)", o.FigWidth, o.FigHeight)
	}
	if o.ShowLegend && len(o.Labels) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "show_legend requires labels")
	}
	if o.Save && o.SaveName == "" && o.Title == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "save requires save_name or title")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	return ValidateFormats(o.Formats)
}

// barLabelPad resolves the per-bar text offset: an explicit override wins,
// otherwise the pad applies only under a scale factor.
func (o *Options) barLabelPad() float64 {
	if o.BarLabelPad != nil {
		return *o.BarLabelPad
	}
	if !o.ScaleBy.IsZero() {
		return DefaultBarLabelPad
	}
	return 0
}

// saveBase is the output basename: save_name falls back to title.
func (o *Options) saveBase() string {
	if o.SaveName != "" {
		return o.SaveName
	}
	return o.Title
}

// savePath derives the output path for a format, avoiding doubled
// extensions when the basename already carries one.
func savePath(base, format string) string {
	if strings.HasSuffix(base, "."+format) {
		return base
	}
	return base + "." + format
}
