package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaBeard/plottools/pkg/errors"
	plotio "github.com/JoshuaBeard/plottools/pkg/io"
	"github.com/JoshuaBeard/plottools/pkg/pipeline"
)

// lineFlags holds the command-line flags for the line command.
type lineFlags struct {
	title    string
	xlabel   string
	ylabel   string
	ylim     string
	width    float64
	height   float64
	formats  string
	save     bool
	saveName string
}

// newLineCmd creates the line command for multi-series line charts.
func newLineCmd() *cobra.Command {
	var f lineFlags

	cmd := &cobra.Command{
		Use:   "line <data.json>",
		Short: "Render a line chart from a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, args[0], &f)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().StringVar(&f.xlabel, "xlabel", "", "x-axis label")
	cmd.Flags().StringVar(&f.ylabel, "ylabel", "", "y-axis label")
	cmd.Flags().StringVar(&f.ylim, "ylim", "", "explicit y-limits as 'min,max'")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultFigWidth, "figure width in inches")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultFigHeight, "figure height in inches")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")
	cmd.Flags().BoolVar(&f.save, "save", true, "write the rendered chart to disk")
	cmd.Flags().StringVarP(&f.saveName, "save-name", "o", "", "output basename (defaults to graph_<title>)")

	return cmd
}

func runLine(cmd *cobra.Command, input string, f *lineFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ld, err := plotio.ImportLineData(input)
	if err != nil {
		return err
	}

	opts := pipeline.NewLineOptions(ld.X, ld.Ys...)
	opts.Labels = ld.Labels
	opts.Title = f.title
	opts.XLabel = f.xlabel
	opts.YLabel = f.ylabel
	opts.FigWidth = f.width
	opts.FigHeight = f.height
	opts.Save = f.save
	opts.SaveName = f.saveName
	if opts.YLim, err = parseYLim(f.ylim); err != nil {
		return err
	}
	if formats := parseFormats(f.formats); formats != nil {
		opts.Formats = formats
	}

	p := newProgress(logger)
	result, err := pipeline.NewRunner(logger).ExecuteLine(ctx, opts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	p.done(fmt.Sprintf("Rendered %d series", len(opts.Ys)))

	printSuccess("Rendered %d series over %d points", len(opts.Ys), len(opts.X))
	for _, path := range result.Saved {
		printFile(path)
	}
	return nil
}
