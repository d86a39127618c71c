package pipeline

import (
	"testing"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
)

func TestOptionsValidate(t *testing.T) {
	valid := func() Options {
		return NewOptions([]float64{3, 1, 2}, []string{"a", "b", "c"})
	}

	tests := []struct {
		name     string
		mutate   func(*Options)
		wantCode errors.Code
	}{
		{
			name:   "defaults are valid",
			mutate: func(o *Options) {},
		},
		{
			name:     "empty data",
			mutate:   func(o *Options) { o.Data = nil },
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "label mismatch",
			mutate:   func(o *Options) { o.Labels = []string{"a"} },
			wantCode: errors.ErrCodeLabelMismatch,
		},
		{
			name:     "zero bar width",
			mutate:   func(o *Options) { o.BarWidth = 0 },
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "negative figsize",
			mutate:   func(o *Options) { o.FigHeight = -1 },
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name: "legend without labels",
			mutate: func(o *Options) {
				o.Labels = nil
				o.ShowLegend = true
			},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "save without name or title",
			mutate:   func(o *Options) { o.Save = true },
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name: "save with title only",
			mutate: func(o *Options) {
				o.Save = true
				o.Title = "My Chart"
			},
		},
		{
			name:     "unknown format",
			mutate:   func(o *Options) { o.Formats = []string{"bmp"} },
			wantCode: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Validate() error = %v, want code %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
		})
	}
}

func TestOptionsValidateDefaultsFormats(t *testing.T) {
	opts := NewOptions([]float64{1}, nil)
	opts.Formats = nil
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
}

func TestBarLabelPad(t *testing.T) {
	override := 0.2

	tests := []struct {
		name string
		opts Options
		want float64
	}{
		{
			name: "unscaled",
			opts: Options{},
			want: 0,
		},
		{
			name: "scaled",
			opts: Options{ScaleBy: chart.ScaleBy(100)},
			want: DefaultBarLabelPad,
		},
		{
			name: "explicit override",
			opts: Options{BarLabelPad: &override},
			want: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.barLabelPad(); got != tt.want {
				t.Errorf("barLabelPad() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestSavePath(t *testing.T) {
	if got := savePath("chart", "png"); got != "chart.png" {
		t.Errorf("savePath = %q, want chart.png", got)
	}
	if got := savePath("chart.png", "png"); got != "chart.png" {
		t.Errorf("savePath = %q, want no doubled extension", got)
	}
}

func TestLineOptionsValidate(t *testing.T) {
	t.Run("shape mismatch", func(t *testing.T) {
		opts := NewLineOptions([]float64{0, 1, 2}, []float64{1, 2})
		if err := opts.Validate(); !errors.Is(err, errors.ErrCodeShapeMismatch) {
			t.Errorf("Validate() error = %v, want code %v", err, errors.ErrCodeShapeMismatch)
		}
	})

	t.Run("label count mismatch", func(t *testing.T) {
		opts := NewLineOptions([]float64{0, 1}, []float64{1, 2})
		opts.Labels = []string{"a", "b"}
		if err := opts.Validate(); !errors.Is(err, errors.ErrCodeLabelMismatch) {
			t.Errorf("Validate() error = %v, want code %v", err, errors.ErrCodeLabelMismatch)
		}
	})
}

func TestLineSaveBase(t *testing.T) {
	opts := LineOptions{Title: "loss over time"}
	if got := opts.saveBase(); got != "graph_loss_over_time" {
		t.Errorf("saveBase() = %q, want graph_loss_over_time", got)
	}

	opts.SaveName = "loss"
	if got := opts.saveBase(); got != "loss" {
		t.Errorf("saveBase() = %q, want explicit save name to win", got)
	}
}
