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

// Package chart draws blend sheets: one colored swatch per sample of a
// blend, placed according to the blend geometry, on top of light outlines
// of the sample lattice.
//
// Sheets can be rendered to PNG images, with captions, or to single page
// PDF files.
package chart

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	blend "seehuhn.de/go/glazeblend"
)

// Marker geometry in pixels. Each marker occupies the top-left part of
// its grid cell, inset by MarkerInset.
const (
	MarkerWidth  = 112
	MarkerHeight = 44
	MarkerInset  = 8
	MarkerRadius = 6
)

// Marker is the swatch of one sample.
type Marker struct {
	Sample blend.Sample

	// Box is the marker rectangle in sheet coordinates. The y axis points
	// down, so that LLy is the top edge of the marker.
	Box rect.Rect

	Color   blend.RGB
	Caption []string
}

// Sheet is a blend laid out for drawing.
type Sheet struct {
	Width, Height float64

	Markers []Marker

	// Outlines holds closed polygons connecting the centers of the corner
	// markers of each lattice: one triangle per triaxial lattice or
	// tetrahedral layer, one rectangle for rectangular grids.
	Outlines [][]vec.Vec2
}

// New lays out the samples of the blend described by cfg.
func New(cfg *blend.Config, samples []blend.Sample) *Sheet {
	w, h := cfg.Container()
	sheet := &Sheet{
		Width:   w,
		Height:  h,
		Markers: make([]Marker, len(samples)),
	}

	for i, s := range samples {
		sheet.Markers[i] = Marker{
			Sample:  s,
			Box:     markerBox(cfg, s, w, h),
			Color:   cfg.Ingredients.Mix(s),
			Caption: Caption(cfg.Type.Slots(), s),
		}
	}

	centre := func(s blend.Sample) vec.Vec2 {
		b := markerBox(cfg, s, w, h)
		return vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2}
	}
	n := cfg.Resolution
	switch cfg.Type {
	case blend.TypeTriaxial, blend.TypeTetrahedral:
		layers := 1
		if cfg.Type == blend.TypeTetrahedral {
			layers = n - 1 // the top layer is a single sample
		}
		for layer := range layers {
			last := n - 1 - layer
			sheet.Outlines = append(sheet.Outlines, []vec.Vec2{
				centre(blend.Sample{H: layer}),
				centre(blend.Sample{H: layer, I: last}),
				centre(blend.Sample{H: layer, J: last}),
			})
		}
	default:
		last := n - 1
		sheet.Outlines = append(sheet.Outlines, []vec.Vec2{
			centre(blend.Sample{}),
			centre(blend.Sample{I: last}),
			centre(blend.Sample{I: last, J: last}),
			centre(blend.Sample{J: last}),
		})
	}

	blend.Logger().Debug("sheet laid out",
		"type", cfg.Type.String(),
		"width", w,
		"height", h,
		"markers", len(sheet.Markers))
	return sheet
}

func markerBox(cfg *blend.Config, s blend.Sample, w, h float64) rect.Rect {
	p := cfg.Position(s)
	x := p.Left*w/100 + MarkerInset
	y := p.Top*h/100 + MarkerInset
	return rect.Rect{LLx: x, LLy: y, URx: x + MarkerWidth, URy: y + MarkerHeight}
}

// Caption returns the two caption lines of a marker: the sample number,
// and the first k ingredient percentages rounded to integers.
func Caption(k int, s blend.Sample) []string {
	parts := make([]string, k)
	for i := range k {
		parts[i] = fmt.Sprint(roundHalfUp(s.Percent[i]))
	}
	return []string{
		fmt.Sprintf("#%d", s.ID),
		strings.Join(parts, "/"),
	}
}

// roundHalfUp rounds to the nearest integer, with halves rounded up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// roundedRect builds the outline of a rectangle with rounded corners.
func roundedRect(b rect.Rect, radius float64) *path.Data {
	radius = min(radius, (b.URx-b.LLx)/2, (b.URy-b.LLy)/2)
	k := radius * (1 - circleKappa)
	x0, y0, x1, y1 := b.LLx, b.LLy, b.URx, b.URy

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0 + radius, Y: y0}).
		LineTo(vec.Vec2{X: x1 - radius, Y: y0}).
		CubeTo(vec.Vec2{X: x1 - k, Y: y0}, vec.Vec2{X: x1, Y: y0 + k}, vec.Vec2{X: x1, Y: y0 + radius}).
		LineTo(vec.Vec2{X: x1, Y: y1 - radius}).
		CubeTo(vec.Vec2{X: x1, Y: y1 - k}, vec.Vec2{X: x1 - k, Y: y1}, vec.Vec2{X: x1 - radius, Y: y1}).
		LineTo(vec.Vec2{X: x0 + radius, Y: y1}).
		CubeTo(vec.Vec2{X: x0 + k, Y: y1}, vec.Vec2{X: x0, Y: y1 - k}, vec.Vec2{X: x0, Y: y1 - radius}).
		LineTo(vec.Vec2{X: x0, Y: y0 + radius}).
		CubeTo(vec.Vec2{X: x0, Y: y0 + k}, vec.Vec2{X: x0 + k, Y: y0}, vec.Vec2{X: x0 + radius, Y: y0}).
		Close()
}

// polygon builds a closed polygon path.
func polygon(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p.Close()
}

// circleKappa places the control points of a cubic Bézier quarter circle.
const circleKappa = 0.5522847498
