// seehuhn.de/go/glazeblend - a ceramic glaze blend calculator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package blend

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with components in the range [0, 255].
//
// Components are stored as floating point numbers, so that mixtures of
// colors can be computed without intermediate rounding.
type RGB struct {
	R, G, B float64
}

// ParseHex parses a color in the form "rrggbb" or "rgb", with or without
// a leading '#'.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if n := len(s); n != 4 && n != 7 {
		return RGB{}, fmt.Errorf("invalid color %q: wrong length", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: float64(r), G: float64(g), B: float64(b)}, nil
}

// Hex formats the color as "rrggbb", without a leading '#'.
func (c RGB) Hex() string {
	return strings.TrimPrefix(c.colorful().Clamped().Hex(), "#")
}

// CSS formats the color as a CSS rgb() expression.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%g,%g,%g)", c.R, c.G, c.B)
}

// RGBA converts the color to an opaque [color.RGBA], rounding and
// clamping each component.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

// Lightness returns the CIE L* lightness of the color, in the range
// [0, 1].
func (c RGB) Lightness() float64 {
	l, _, _ := c.colorful().Clamped().Lab()
	return l
}

// Scale multiplies every component by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Add returns the component-wise sum of c and other.
func (c RGB) Add(other RGB) RGB {
	return RGB{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

func to8(x float64) uint8 {
	return uint8(math.Round(max(0, min(255, x))))
}

// Mix returns the swatch color of a sample: the average of the
// ingredient colors, weighted by the ingredient percentages.
func (c *Constraints) Mix(s Sample) RGB {
	var res RGB
	for k := range c {
		res = res.Add(c[k].Color.Scale(s.Percent[k] / 100))
	}
	return res
}
