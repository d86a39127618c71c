// Package render is the boundary to the gonum/plot drawing library.
//
// Nothing in this package computes chart semantics: it receives a fully
// derived [chart.Layout] and transcribes it onto a Canvas. Each Canvas owns
// one gonum plot.Plot; no process-wide drawing state exists, so separate
// charts may render concurrently as long as each Canvas has a single owner.
//
// Output encoding lives in the [sink] subpackage.
//
// [chart.Layout]: github.com/JoshuaBeard/plottools/pkg/chart
// [sink]: github.com/JoshuaBeard/plottools/pkg/render/sink
package render
