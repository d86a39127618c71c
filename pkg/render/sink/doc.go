// Package sink encodes rendered canvases into output formats.
//
// Each format gets its own entry point ([PNG], [SVG], [PDF]); [Render]
// dispatches on a format name. All of them delegate to the canvas encoder,
// which in turn uses gonum/plot's native writers, so no external conversion
// tools are required.
package sink
