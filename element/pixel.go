// SPDX-License-Identifier: MIT

package element

import "image/color"

// Pixel is a packed 4-channel colour with 8 bits per channel.
// Channels follow the image/color.RGBA convention (alpha-premultiplied).
// The zero Pixel is transparent black and is the default array element.
type Pixel struct {
	R, G, B, A uint8
}

var _ color.Color = Pixel{}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Packed returns the pixel as 0xRRGGBBAA.
func (p Pixel) Packed() uint32 {
	return uint32(p.R)<<24 | uint32(p.G)<<16 | uint32(p.B)<<8 | uint32(p.A)
}

// Unpack is the inverse of Pixel.Packed.
func Unpack(v uint32) Pixel {
	return Pixel{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// PixelOf converts any color.Color to a Pixel.
func PixelOf(c color.Color) Pixel {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)

	return Pixel{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}

// ToRGBA returns the pixel as a color.RGBA.
func (p Pixel) ToRGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
