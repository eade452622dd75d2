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

package chart

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"

	blend "seehuhn.de/go/glazeblend"
	"seehuhn.de/go/glazeblend/raster"
)

var (
	paperColor   = blend.RGB{R: 255, G: 255, B: 255}
	outlineColor = blend.RGB{R: 0xe4, G: 0xe4, B: 0xe4}
)

// darkCaptionLimit is the swatch lightness above which captions are
// drawn in black rather than white.
const darkCaptionLimit = 0.55

// LightSwatch reports whether captions on a swatch of color c are drawn
// in black rather than white.
func LightSwatch(c blend.RGB) bool {
	return c.Lightness() > darkCaptionLimit
}

// Image renders the sheet.
func (s *Sheet) Image() *image.RGBA {
	w := int(math.Ceil(s.Width))
	h := int(math.Ceil(s.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := paperColor.RGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	for _, outline := range s.Outlines {
		r.Fill(polygon(outline), blendInto(img, outlineColor.RGBA()))
	}

	face := basicfont.Face7x13
	for _, m := range s.Markers {
		r.Fill(roundedRect(m.Box, MarkerRadius), blendInto(img, m.Color.RGBA()))

		ink := image.White
		if LightSwatch(m.Color) {
			ink = image.Black
		}
		d := &font.Drawer{Dst: img, Src: ink, Face: face}

		lineHeight := face.Metrics().Height.Ceil()
		top := (m.Box.LLy+m.Box.URy)/2 - float64(lineHeight*len(m.Caption))/2
		for i, line := range m.Caption {
			adv := d.MeasureString(line)
			x := (m.Box.LLx+m.Box.URx)/2 - float64(adv.Round())/2
			baseline := top + float64(i*lineHeight+face.Ascent)
			d.Dot = fixed.P(int(math.Round(x)), int(math.Round(baseline)))
			d.DrawString(line)
		}
	}
	return img
}

// WritePNG renders the sheet and writes it to w as a PNG image.
func (s *Sheet) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// blendInto returns an emit callback which paints col into img, using the
// coverage values as opacity.
func blendInto(img *image.RGBA, col color.RGBA) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			px := row[4*i : 4*i+3]
			px[0] = mix8(px[0], col.R, c)
			px[1] = mix8(px[1], col.G, c)
			px[2] = mix8(px[2], col.B, c)
		}
	}
}

func mix8(dst, src uint8, alpha float32) uint8 {
	v := float32(dst) + (float32(src)-float32(dst))*alpha
	return uint8(v + 0.5)
}
