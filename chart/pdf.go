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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	blend "seehuhn.de/go/glazeblend"
)

// WritePDF writes the sheet as a single page PDF file, one point per
// sheet pixel. Captions are not included; the sample numbers can be
// looked up by position in the table output.
func (s *Sheet) WritePDF(fileName string) error {
	paper := &pdf.Rectangle{
		URx: s.Width,
		URy: s.Height,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, sheet coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, s.Height})

	page.SetFillColor(deviceRGB(outlineColor))
	for _, outline := range s.Outlines {
		drawPath(page, polygon(outline))
		page.Fill()
	}

	for _, m := range s.Markers {
		page.SetFillColor(deviceRGB(m.Color))
		drawPath(page, roundedRect(m.Box, MarkerRadius))
		page.Fill()
	}

	return page.Close()
}

func deviceRGB(c blend.RGB) color.Color {
	c = blend.RGB{R: min(max(c.R, 0), 255), G: min(max(c.G, 0), 255), B: min(max(c.B, 0), 255)}
	return color.DeviceRGB{c.R / 255, c.G / 255, c.B / 255}
}

// drawPath appends the path to the current PDF path. Quadratic segments
// are converted to cubics, since PDF has no quadratic Bézier operator.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
