package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/JoshuaBeard/plottools/pkg/errors"
	"github.com/JoshuaBeard/plottools/pkg/series"
)

type seriesDoc struct {
	Data   []float64 `json:"data"`
	Labels []string  `json:"labels,omitempty"`
}

// ReadSeries decodes a series document from r.
func ReadSeries(r io.Reader) (series.Series, error) {
	var doc seriesDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return series.Series{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode series")
	}
	return series.New(doc.Data, doc.Labels)
}

// ImportSeries reads a series document from a JSON file at path.
func ImportSeries(path string) (series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return series.Series{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return series.Series{}, err
	}
	defer f.Close()
	return ReadSeries(f)
}

// LineData is the decoded form of a line-chart input document.
type LineData struct {
	X      []float64
	Ys     [][]float64
	Labels []string
}

type lineDoc struct {
	X      []float64 `json:"x"`
	Series []struct {
		Label string    `json:"label,omitempty"`
		Y     []float64 `json:"y"`
	} `json:"series"`
}

// ReadLineData decodes a line-chart document from r. Every y series must
// have the length of x.
func ReadLineData(r io.Reader) (LineData, error) {
	var doc lineDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return LineData{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode line data")
	}
	if len(doc.X) == 0 {
		return LineData{}, errors.New(errors.ErrCodeInvalidInput, "x is required")
	}
	if len(doc.Series) == 0 {
		return LineData{}, errors.New(errors.ErrCodeInvalidInput, "at least one y series is required")
	}

	out := LineData{X: doc.X}
	labeled := false
	for i, s := range doc.Series {
		if len(s.Y) != len(doc.X) {
			return LineData{}, errors.New(errors.ErrCodeShapeMismatch,
				"series %d has %d points, x has %d", i, len(s.Y), len(doc.X))
		}
		out.Ys = append(out.Ys, s.Y)
		out.Labels = append(out.Labels, s.Label)
		if s.Label != "" {
			labeled = true
		}
	}
	if !labeled {
		out.Labels = nil
	}
	return out, nil
}

// ImportLineData reads a line-chart document from a JSON file at path.
func ImportLineData(path string) (LineData, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LineData{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return LineData{}, err
	}
	defer f.Close()
	return ReadLineData(f)
}
