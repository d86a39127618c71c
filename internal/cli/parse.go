package cli

import (
	"strconv"
	"strings"

	"github.com/JoshuaBeard/plottools/pkg/chart"
	"github.com/JoshuaBeard/plottools/pkg/errors"
)

// parseFormats parses a comma-separated --format value.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseYLim parses a --ylim value of the form "min,max".
func parseYLim(s string) (*chart.Limits, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid ylim: %q (must be 'min,max')", s)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid ylim: %q (must be 'min,max')", s)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid ylim: %q (must be 'min,max')", s)
	}
	return &chart.Limits{Min: min, Max: max}, nil
}
