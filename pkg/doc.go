// Package pkg provides the core libraries for plottools chart generation.
//
// # Overview
//
// plottools turns small datasets into bar and line charts with declarative
// sorting, scaling, and annotation options. The pkg directory is organized
// into five main areas:
//
//  1. [series] - Input data model (values paired with optional labels)
//  2. [chart] - Pure chart math (ordering, normalization, layout derivation)
//  3. [render] - Drawing through gonum/plot and encoding to image formats
//  4. [io] - Reading input documents and persisting rendered artifacts
//  5. [pipeline] - Orchestration (reorder → normalize → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	JSON data / TOML spec
//	         ↓
//	    [chart] package (reorder, normalize, derive layout)
//	         ↓
//	    [render] package (draw bars or lines onto a canvas)
//	         ↓
//	    [render/sink] package (encode PNG/SVG/PDF)
//	         ↓
//	    [io] package (write artifacts)
//
// # Quick Start
//
// Render a sorted, scaled bar chart:
//
//	opts := pipeline.NewOptions([]float64{50, 30, 20}, []string{"a", "b", "c"})
//	opts.SortBy = chart.SortSpec{Policy: chart.SortDescending}
//	opts.ScaleBy = chart.ScaleBy(100)
//	opts.ShowMaxVal = true
//	opts.Title = "Share"
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts[pipeline.FormatPNG]
//
// # Main Packages
//
// [chart] - The pure pipeline stages. Reorder permutes values and labels by
// a sort policy or explicit permutation, Normalize applies scale factors and
// percent conversion, Derive computes offsets, axis limits, tick labels, the
// reference line, and per-bar annotations. None of them touch the drawing
// library, so every layout decision is unit-testable.
//
// [render] - Canvas construction and bar/line drawing on gonum/plot.
// [render/sink] encodes a finished canvas into PNG, SVG, or PDF bytes.
//
// [pipeline] - Complete chart pipeline used by the CLI and library callers.
// Ensures consistent behavior across all entry points.
//
// [series] - The (values, labels) pair with its pairing invariant.
//
// [io] - JSON input documents for bar and line data, artifact export.
//
// [errors] - Structured errors with machine-readable codes shared by every
// package.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/chart/...    # Specific package
//
// [series]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/series
// [chart]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/chart
// [render]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/JoshuaBeard/plottools/pkg/buildinfo
package pkg
