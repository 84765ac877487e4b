// SPDX-License-Identifier: MIT

// Package plot renders numeric samples into pixel matrices.
//
// The façade takes a read-only view of samples, a Params value saying how the
// samples split into series, and validated AppearanceOptions held by a
// Factory. It returns (or fills) an array.Matrix of element.Pixel whose every
// element has been written.
//
//	f := plot.NewFactory(plot.WithChart(plot.Bar{}))
//	if err := f.Appearance().SetBackground(colour.Black); err != nil {
//		return err
//	}
//	p := plot.NewParams(1, 5).Unwrap()
//	img, err := plot.Plot(f, samples.Values(), p, 600, 600)
//
// Canvas exposes a pixel matrix as a tinygo drivers.Displayer; ToImage,
// FromImage and Resize convert to and from the image package.
package plot
