package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
)

func TestExecuteSortsBeforeRendering(t *testing.T) {
	opts := NewOptions([]float64{3, 1, 2}, []string{"c", "a", "b"})
	opts.SortBy = chart.SortSpec{Policy: chart.SortAscending}
	opts.Formats = []string{FormatSVG}

	result, err := NewRunner(nil).Execute(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, result.Series.Values)
	assert.Equal(t, []string{"a", "b", "c"}, result.Series.Labels)
	assert.Equal(t, []float64{1, 2, 3}, result.Raw)
	assert.Equal(t, 3.0, result.RefMax)
}

func TestExecuteScalesValues(t *testing.T) {
	opts := NewOptions([]float64{50, 50}, []string{"cats", "dogs"})
	opts.ScaleBy = chart.ScaleBy(100)
	opts.ShowMaxVal = true
	opts.Formats = []string{FormatSVG}

	result, err := NewRunner(nil).Execute(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.5}, result.Series.Values)
	assert.Equal(t, 1.0, result.RefMax)
	require.NotNil(t, result.Layout.RefLine)
	assert.Equal(t, 1.0, result.Layout.RefLine.Y)

	// Bottom labels annotate with the pre-scale values.
	require.Len(t, result.Layout.BottomLabels, 2)
	assert.Equal(t, "cats\nN = 50", result.Layout.BottomLabels[0])
}

func TestExecutePercentConvertsLimits(t *testing.T) {
	opts := NewOptions([]float64{1000, 2000, 3000}, nil)
	opts.ShowAsPercent = true
	opts.ScaleBy = chart.ScaleBy(10000)
	opts.YLim = &chart.Limits{Min: 0, Max: 0.5}
	opts.Formats = []string{FormatSVG}

	result, err := NewRunner(nil).Execute(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 20, 30}, result.Series.Values)
	assert.Equal(t, 100.0, result.RefMax)
	assert.Equal(t, chart.Limits{Min: 0, Max: 50}, result.Layout.YLim)

	// The caller's options are not mutated.
	assert.Equal(t, chart.Limits{Min: 0, Max: 0.5}, *opts.YLim)
}

func TestExecuteLabelMismatch(t *testing.T) {
	opts := NewOptions([]float64{1, 2, 3}, []string{"a", "b"})

	_, err := NewRunner(nil).Execute(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeLabelMismatch))
}

func TestExecuteProducesArtifacts(t *testing.T) {
	opts := NewOptions([]float64{4, 8, 15, 16, 23, 42}, nil)
	opts.Title = "Numbers"
	opts.Formats = []string{FormatSVG}

	result, err := NewRunner(nil).Execute(context.Background(), opts)
	require.NoError(t, err)

	svg := result.Artifacts[FormatSVG]
	require.NotEmpty(t, svg)
	assert.True(t, bytes.Contains(svg, []byte("<svg")))
	assert.Positive(t, result.Stats.RenderTime)
}

func TestExecuteSavesFiles(t *testing.T) {
	opts := NewOptions([]float64{1, 2}, nil)
	opts.Save = true
	opts.SaveName = filepath.Join(t.TempDir(), "chart")
	opts.Formats = []string{FormatSVG}

	result, err := NewRunner(nil).Execute(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Saved, 1)

	data, err := os.ReadFile(result.Saved[0])
	require.NoError(t, err)
	assert.Equal(t, result.Artifacts[FormatSVG], data)
}

func TestExecuteCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := NewOptions([]float64{1, 2}, nil)
	_, err := NewRunner(nil).Execute(ctx, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteLine(t *testing.T) {
	opts := NewLineOptions([]float64{0, 1, 2}, []float64{1, 2, 3}, []float64{3, 2, 1})
	opts.Labels = []string{"up", "down"}
	opts.Title = "trend"
	opts.Formats = []string{FormatSVG}
	opts.Save = true
	opts.SaveName = filepath.Join(t.TempDir(), "trend")

	result, err := NewRunner(nil).ExecuteLine(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(result.Artifacts[FormatSVG], []byte("<svg")))
	require.Len(t, result.Saved, 1)
	assert.FileExists(t, result.Saved[0])
}
