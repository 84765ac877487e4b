// SPDX-License-Identifier: MIT

// Package pjplot is a small toolkit for dimension-aware arrays and for
// rendering numeric samples into pixel matrices.
//
// Subpackages, leaves first:
//
//	element/ — closed set of element types (int32, uint8, uint32, float32, float64, Pixel) and their names
//	shape/   — static (type-level) and dynamic extents, row-major strides, bounds-checked offsets
//	storage/ — Fixed and Growable buffers behind one Storage interface, read-only View
//	array/   — N-D Array and 2-D Matrix: indexed access, bulk views, iteration, element-wise ops, stats
//	result/  — success/failure Result with checked access and a faulting Unwrap
//	colour/  — named colour enumeration and its pixel palette
//	plot/    — validated AppearanceOptions, Params, chart kinds and the Plot façade
//	series/  — deterministic ramp, pulse and chirp generators
//
// Static shapes put their extents in a marker type and get fixed-capacity
// storage; dynamic shapes take extents at run time and get a buffer sized
// once. Every index is checked on every access for both.
//
//	type screen struct{}
//
//	func (screen) Extents() []int { return []int{600, 600} }
//
//	img := array.NewStaticMatrix[element.Pixel, screen]()
//	err := plot.PlotInto(plot.NewFactory(), samples.Values(), params, img)
package pjplot
