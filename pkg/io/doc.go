// Package io reads chart input data and persists rendered artifacts.
//
// Series data is exchanged as a small JSON document pairing values with
// optional labels:
//
//	{
//	  "data":   [3, 1, 2],
//	  "labels": ["a", "b", "c"]
//	}
//
// Line data adds a shared x sequence and one or more named y series. The
// export side is deliberately dumb: rendered artifacts are opaque bytes and
// are written as-is.
package io
