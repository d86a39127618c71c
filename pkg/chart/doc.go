// Package chart implements the bar-chart data-to-layout pipeline.
//
// The pipeline chains three ordered, independent transformations before
// anything is drawn:
//
//  1. Reorder: apply an optional permutation to the (values, labels) pair,
//     derived from a named policy or an explicit index sequence.
//  2. Normalize: divide values by a broadcastable scale factor and/or
//     convert to percent, tracking the reference maximum for later stages.
//  3. Derive: compute rendering geometry (bar offsets, axis limits, bottom
//     labels and their rotation, reference line, per-bar text).
//
// The order is load-bearing: sorting runs on raw values, so named sort
// policies keep their meaning under any positive scale factor. Negative or
// zero scale factors are not guarded and can invert the displayed order.
//
// All functions here are pure. They never mutate their inputs and retain no
// state between calls, so the pipeline may run concurrently with itself.
// Drawing happens in the render package, which only reads the Layout.
package chart
