package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"png", []string{"png"}},
		{"png,svg", []string{"png", "svg"}},
		{"png, svg , pdf", []string{"png", "svg", "pdf"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseYLim(t *testing.T) {
	tests := []struct {
		in      string
		want    *chart.Limits
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "0,1", want: &chart.Limits{Min: 0, Max: 1}},
		{in: " -1.5 , 2.5 ", want: &chart.Limits{Min: -1.5, Max: 2.5}},
		{in: "1", wantErr: true},
		{in: "a,b", wantErr: true},
		{in: "1,2,3", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseYLim(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("parseYLim(%q) error = %v, want INVALID_CONFIG", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseYLim(%q) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseYLim(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderPreview(t *testing.T) {
	out := renderPreview("Pets", []float64{2, 4}, []string{"cats", "dogs"})
	for _, want := range []string{"Pets", "cats", "dogs", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}
