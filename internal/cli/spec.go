package cli

import (
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
	plotio "github.com/JoshuaBeard/plottools/pkg/io"
	"github.com/JoshuaBeard/plottools/pkg/pipeline"
)

// chartSpec is the TOML form of a bar-chart configuration. sort_by and
// scale_by are decoded lazily because TOML allows both a scalar and an array
// there: sort_by takes a policy name or an index array, scale_by a single
// divisor or one per data point.
type chartSpec struct {
	Title    string    `toml:"title"`
	Data     []float64 `toml:"data"`
	DataFile string    `toml:"data_file"`
	Labels   []string  `toml:"labels"`

	SortBy  toml.Primitive `toml:"sort_by"`
	ScaleBy toml.Primitive `toml:"scale_by"`

	Percent          *bool     `toml:"percent"`
	BarWidth         *float64  `toml:"bar_width"`
	FigSize          []float64 `toml:"figsize"`
	YLim             []float64 `toml:"ylim"`
	MaxValPad        *float64  `toml:"max_val_pad"`
	ShowBottomLabels *bool     `toml:"show_bottom_labels"`
	ShowLegend       *bool     `toml:"show_legend"`
	ShowMaxVal       *bool     `toml:"show_max_val"`
	ShowBarLabels    *bool     `toml:"show_bar_labels"`
	Multicolor       *bool     `toml:"multicolor"`
	BarLabelPad      *float64  `toml:"bar_label_pad"`

	Save     *bool    `toml:"save"`
	SaveName string   `toml:"save_name"`
	Formats  []string `toml:"formats"`
}

// loadSpec reads a TOML chart spec into pipeline options. Fields absent from
// the file keep the pipeline defaults. A data_file path is resolved relative
// to the spec file.
func loadSpec(path string) (pipeline.Options, error) {
	var doc chartSpec
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	data, labels := doc.Data, doc.Labels
	if doc.DataFile != "" {
		p := doc.DataFile
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		s, err := plotio.ImportSeries(p)
		if err != nil {
			return pipeline.Options{}, err
		}
		data = s.Values
		if labels == nil {
			labels = s.Labels
		}
	}

	opts := pipeline.NewOptions(data, labels)
	opts.Title = doc.Title
	opts.SaveName = doc.SaveName
	// A spec describes a chart to produce, so saving defaults on.
	opts.Save = true

	if md.IsDefined("sort_by") {
		if opts.SortBy, err = decodeSortSpec(md, doc.SortBy); err != nil {
			return pipeline.Options{}, err
		}
	}
	if md.IsDefined("scale_by") {
		if opts.ScaleBy, err = decodeScaleSpec(md, doc.ScaleBy); err != nil {
			return pipeline.Options{}, err
		}
	}

	switch len(doc.FigSize) {
	case 0:
	case 2:
		opts.FigWidth, opts.FigHeight = doc.FigSize[0], doc.FigSize[1]
	default:
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"figsize must have 2 elements, got %d", len(doc.FigSize))
	}
	switch len(doc.YLim) {
	case 0:
	case 2:
		opts.YLim = &chart.Limits{Min: doc.YLim[0], Max: doc.YLim[1]}
	default:
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"ylim must have 2 elements, got %d", len(doc.YLim))
	}

	if doc.Percent != nil {
		opts.ShowAsPercent = *doc.Percent
	}
	if doc.BarWidth != nil {
		opts.BarWidth = *doc.BarWidth
	}
	if doc.MaxValPad != nil {
		opts.MaxValPad = *doc.MaxValPad
	}
	if doc.ShowBottomLabels != nil {
		opts.ShowBottomLabels = *doc.ShowBottomLabels
	}
	if doc.ShowLegend != nil {
		opts.ShowLegend = *doc.ShowLegend
	}
	if doc.ShowMaxVal != nil {
		opts.ShowMaxVal = *doc.ShowMaxVal
	}
	if doc.ShowBarLabels != nil {
		opts.ShowBarLabels = *doc.ShowBarLabels
	}
	if doc.Multicolor != nil {
		opts.Multicolor = *doc.Multicolor
	}
	if doc.BarLabelPad != nil {
		opts.BarLabelPad = doc.BarLabelPad
	}
	if doc.Save != nil {
		opts.Save = *doc.Save
	}
	if len(doc.Formats) > 0 {
		opts.Formats = doc.Formats
	}
	return opts, nil
}

func decodeSortSpec(md toml.MetaData, prim toml.Primitive) (chart.SortSpec, error) {
	var s string
	if err := md.PrimitiveDecode(prim, &s); err == nil {
		return chart.ParseSortSpec(s)
	}
	var perm []int
	if err := md.PrimitiveDecode(prim, &perm); err == nil {
		return chart.SortSpec{Perm: perm}, nil
	}
	return chart.SortSpec{}, errors.New(errors.ErrCodeInvalidConfig,
		"sort_by must be a policy name or an index array")
}

func decodeScaleSpec(md toml.MetaData, prim toml.Primitive) (chart.ScaleSpec, error) {
	var v float64
	if err := md.PrimitiveDecode(prim, &v); err == nil {
		return chart.ScaleBy(v), nil
	}
	var vs []float64
	if err := md.PrimitiveDecode(prim, &vs); err == nil {
		return chart.ScaleByVector(vs...), nil
	}
	return chart.ScaleSpec{}, errors.New(errors.ErrCodeInvalidConfig,
		"scale_by must be a number or an array of numbers")
}
