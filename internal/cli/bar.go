package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
	plotio "github.com/JoshuaBeard/plottools/pkg/io"
	"github.com/JoshuaBeard/plottools/pkg/pipeline"
)

// barFlags holds the command-line flags for the bar command. Flags override
// the corresponding chart-spec fields only when explicitly set.
type barFlags struct {
	specPath    string
	title       string
	sortBy      string
	scaleBy     string
	percent     bool
	maxVal      bool
	barLabels   bool
	barWidth    float64
	width       float64
	height      float64
	ylim        string
	pad         float64
	noBottom    bool
	legend      bool
	formats     string
	save        bool
	saveName    string
	singleColor bool
	preview     bool
}

// newBarCmd creates the bar command.
//
// Data comes either from a JSON data file argument, a TOML chart spec
// (--spec), or both, with the argument winning for the data itself.
func newBarCmd() *cobra.Command {
	var f barFlags

	cmd := &cobra.Command{
		Use:   "bar [data.json]",
		Short: "Render a bar chart from a data file or chart spec",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBar(cmd, args, &f)
		},
	}

	cmd.Flags().StringVar(&f.specPath, "spec", "", "TOML chart spec file")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "bar order: ascending, descending, or an index sequence like '2,0,1'")
	cmd.Flags().StringVar(&f.scaleBy, "scale", "", "divisor: a number or a comma-separated list, one per bar")
	cmd.Flags().BoolVar(&f.percent, "percent", false, "display values as percentages")
	cmd.Flags().BoolVar(&f.maxVal, "max-val", false, "draw a dashed line at the reference maximum")
	cmd.Flags().BoolVar(&f.barLabels, "bar-labels", false, "print each value above its bar")
	cmd.Flags().Float64Var(&f.barWidth, "bar-width", pipeline.DefaultBarWidth, "bar width in data units")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultFigWidth, "figure width in inches")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultFigHeight, "figure height in inches")
	cmd.Flags().StringVar(&f.ylim, "ylim", "", "explicit y-limits as 'min,max'")
	cmd.Flags().Float64Var(&f.pad, "pad", pipeline.DefaultMaxValPad, "autoscale headroom fraction above the tallest bar")
	cmd.Flags().BoolVar(&f.noBottom, "no-bottom-labels", false, "hide per-bar tick labels")
	cmd.Flags().BoolVar(&f.legend, "legend", false, "show a legend keyed by labels")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")
	cmd.Flags().BoolVar(&f.save, "save", true, "write the rendered chart to disk")
	cmd.Flags().StringVarP(&f.saveName, "save-name", "o", "", "output basename (defaults to the title)")
	cmd.Flags().BoolVar(&f.singleColor, "single-color", false, "draw every bar in the same color")
	cmd.Flags().BoolVar(&f.preview, "preview", false, "print a rough terminal rendition")

	return cmd
}

func runBar(cmd *cobra.Command, args []string, f *barFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var opts pipeline.Options
	switch {
	case f.specPath != "":
		var err error
		if opts, err = loadSpec(f.specPath); err != nil {
			return err
		}
		if len(args) == 1 {
			s, err := plotio.ImportSeries(args[0])
			if err != nil {
				return err
			}
			opts.Data, opts.Labels = s.Values, s.Labels
		}
	case len(args) == 1:
		s, err := plotio.ImportSeries(args[0])
		if err != nil {
			return err
		}
		opts = pipeline.NewOptions(s.Values, s.Labels)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "a data file or --spec is required")
	}

	if err := applyBarFlags(cmd, f, &opts); err != nil {
		return err
	}
	// Without an explicit title the default basename would be empty.
	if opts.Save && opts.SaveName == "" && opts.Title == "" {
		opts.SaveName = "chart"
	}

	p := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	p.done(fmt.Sprintf("Rendered %d bars", len(result.Series.Values)))

	printSuccess("Rendered %d bars", len(result.Series.Values))
	for _, path := range result.Saved {
		printFile(path)
	}
	printDetail("transform %s · layout %s · render %s",
		result.Stats.TransformTime.Round(time.Microsecond),
		result.Stats.LayoutTime.Round(time.Microsecond),
		result.Stats.RenderTime.Round(time.Millisecond))

	if f.preview {
		fmt.Print(renderPreview(opts.Title, result.Series.Values, result.Series.Labels))
	}
	return nil
}

// applyBarFlags overrides spec-derived options with explicitly set flags.
func applyBarFlags(cmd *cobra.Command, f *barFlags, opts *pipeline.Options) error {
	fl := cmd.Flags()

	if fl.Changed("title") {
		opts.Title = f.title
	}
	if fl.Changed("sort") {
		spec, err := chart.ParseSortSpec(f.sortBy)
		if err != nil {
			return err
		}
		opts.SortBy = spec
	}
	if fl.Changed("scale") {
		spec, err := chart.ParseScaleSpec(f.scaleBy)
		if err != nil {
			return err
		}
		opts.ScaleBy = spec
	}
	if fl.Changed("percent") {
		opts.ShowAsPercent = f.percent
	}
	if fl.Changed("max-val") {
		opts.ShowMaxVal = f.maxVal
	}
	if fl.Changed("bar-labels") {
		opts.ShowBarLabels = f.barLabels
	}
	if fl.Changed("bar-width") {
		opts.BarWidth = f.barWidth
	}
	if fl.Changed("width") {
		opts.FigWidth = f.width
	}
	if fl.Changed("height") {
		opts.FigHeight = f.height
	}
	if fl.Changed("ylim") {
		lim, err := parseYLim(f.ylim)
		if err != nil {
			return err
		}
		opts.YLim = lim
	}
	if fl.Changed("pad") {
		opts.MaxValPad = f.pad
	}
	if fl.Changed("no-bottom-labels") {
		opts.ShowBottomLabels = !f.noBottom
	}
	if fl.Changed("legend") {
		opts.ShowLegend = f.legend
	}
	if fl.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if fl.Changed("save") || f.specPath == "" {
		opts.Save = f.save
	}
	if fl.Changed("save-name") {
		opts.SaveName = f.saveName
	}
	if fl.Changed("single-color") {
		opts.Multicolor = !f.singleColor
	}
	return nil
}
