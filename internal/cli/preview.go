package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// previewWidth is the maximum bar extent in terminal cells.
const previewWidth = 40

// previewPalette cycles per bar, mirroring the multicolor rendering of the
// real chart.
var previewPalette = []lipgloss.Color{"36", "220", "75", "167", "35", "171", "214"}

// renderPreview draws a rough horizontal-bar rendition of a chart for the
// terminal. Bars scale to the largest displayed value; it is a sanity check,
// not a faithful rendering.
func renderPreview(title string, values []float64, labels []string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(StyleTitle.Render(title) + "\n")
	}

	max := 0.0
	labelWidth := 0
	for i, v := range values {
		if v > max {
			max = v
		}
		if len(labels) > i && len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	for i, v := range values {
		label := ""
		if len(labels) > i {
			label = labels[i]
		}
		cells := 0
		if max > 0 && v > 0 {
			cells = int(math.Round(v / max * previewWidth))
			if cells == 0 {
				cells = 1
			}
		}
		style := lipgloss.NewStyle().Foreground(previewPalette[i%len(previewPalette)])
		fmt.Fprintf(&b, "%*s ", labelWidth, label)
		b.WriteString(style.Render(strings.Repeat("█", cells)))
		b.WriteString(" " + StyleDim.Render(strconv.FormatFloat(v, 'g', 4, 64)))
		b.WriteByte('\n')
	}
	return b.String()
}
