// SPDX-License-Identifier: MIT

// Package colour defines the closed set of named colours used for chart
// appearance, and their mapping to packed pixels.
//
// A Colour is an integer tag. Values outside [Black, Magenta] can still be
// produced by conversion from a raw integer (Colour(42)); Valid reports
// whether a value is one of the declared tags, and every consumer that
// accepts a Colour from outside is expected to check it.
package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pjplot/element"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownName is returned by Parse for a name outside the enumeration.
var ErrUnknownName = errors.New("colour: unknown colour name")

// ErrInvalid is the payload of Pixel on a value outside the enumeration.
var ErrInvalid = errors.New("colour: value outside enumeration")

// Colour is a named colour tag.
type Colour int

const (
	Black Colour = iota
	White
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
	Grey

	count // keep last
)

var names = [...]string{
	Black:   "BLACK",
	White:   "WHITE",
	Red:     "RED",
	Green:   "GREEN",
	Blue:    "BLUE",
	Yellow:  "YELLOW",
	Cyan:    "CYAN",
	Magenta: "MAGENTA",
	Grey:    "GREY",
}

var palette = [...]string{
	Black:   "#000000",
	White:   "#ffffff",
	Red:     "#ff0000",
	Green:   "#00ff00",
	Blue:    "#0000ff",
	Yellow:  "#ffff00",
	Cyan:    "#00ffff",
	Magenta: "#ff00ff",
	Grey:    "#808080",
}

// Both tables must have exactly one entry per tag.
var (
	_ [len(names) - int(count)]struct{}
	_ [int(count) - len(names)]struct{}
	_ [len(palette) - int(count)]struct{}
	_ [int(count) - len(palette)]struct{}
)

// parsed holds the palette as colorful values, indexed by tag.
var parsed = parsePalette()

func parsePalette() [count]colorful.Color {
	var out [count]colorful.Color
	for i, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Errorf("colour: palette[%d]=%q: %w", i, hex, err))
		}
		out[i] = c
	}

	return out
}

// Valid reports whether c is a declared tag.
func (c Colour) Valid() bool { return c >= 0 && c < count }

// String returns the upper-case name, or "Colour(n)" for an invalid value.
func (c Colour) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Colour(%d)", int(c))
	}

	return names[c]
}

// Parse maps a case-insensitive name ("white", "GREY") to its tag.
func Parse(name string) (Colour, error) {
	up := strings.ToUpper(strings.TrimSpace(name))
	for c, n := range names {
		if n == up {
			return Colour(c), nil
		}
	}

	return 0, fmt.Errorf("Parse(%q): %w", name, ErrUnknownName)
}

// All returns every declared tag in declaration order.
func All() []Colour {
	out := make([]Colour, count)
	for i := range out {
		out[i] = Colour(i)
	}

	return out
}

// Pixel returns the opaque pixel for c.
// Panics with ErrInvalid if c is not a declared tag.
func (c Colour) Pixel() element.Pixel {
	if !c.Valid() {
		panic(fmt.Errorf("%v.Pixel: %w", c, ErrInvalid))
	}
	r, g, b := parsed[c].RGB255()

	return element.Pixel{R: r, G: g, B: b, A: 0xff}
}

// Nearest returns the declared colour closest to p in CIE L*a*b* space.
// Alpha is ignored. Ties resolve to the earlier tag.
func Nearest(p element.Pixel) Colour {
	target := colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
	best, bestDist := Black, -1.0
	for _, c := range All() {
		d := target.DistanceLab(parsed[c])
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}
