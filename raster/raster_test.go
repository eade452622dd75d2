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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// render fills p into a w×h coverage buffer.
func render(r *Rasterizer, p *path.Data, w, h int) []float32 {
	buf := make([]float32, w*h)
	r.Fill(p, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func box(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	coverage := render(r, trianglePath, 10, 1)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestAlignedRectangle(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	coverage := render(r, box(2, 3, 6, 5), 8, 8)

	for y := range 8 {
		for x := range 8 {
			expected := float32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 5 {
				expected = 1
			}
			if got := coverage[y*8+x]; math.Abs(float64(got-expected)) > 1e-6 {
				t.Errorf("pixel (%d,%d): expected %.2f, got %.4f", x, y, expected, got)
			}
		}
	}
}

func TestHalfPixelEdges(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 4, URy: 4})
	coverage := render(r, box(0.5, 0.5, 3.5, 3.5), 4, 4)

	expected := []float32{
		0.25, 0.5, 0.5, 0.25,
		0.5, 1, 1, 0.5,
		0.5, 1, 1, 0.5,
		0.25, 0.5, 0.5, 0.25,
	}
	for i, want := range expected {
		if got := coverage[i]; math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("pixel %d: expected %.2f, got %.4f", i, want, got)
		}
	}
}

// The winding direction must not matter for the nonzero rule.
func TestOrientation(t *testing.T) {
	cw := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 7}).
		LineTo(vec.Vec2{X: 7, Y: 7}).
		LineTo(vec.Vec2{X: 7, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	a := render(r, cw, 8, 8)
	b := render(r, box(1, 1, 7, 7), 8, 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d: %.4f != %.4f", i, a[i], b[i])
		}
	}
}

func TestOpenSubpathIsClosed(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4})

	r := NewRasterizer(rect.Rect{URx: 4, URy: 4})
	for i, c := range render(r, open, 4, 4) {
		if math.Abs(float64(c-1)) > 1e-6 {
			t.Errorf("pixel %d: expected full coverage, got %.4f", i, c)
		}
	}
}

func TestClipAndCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1}

	var rows []int
	r.Fill(box(0, 0, 10, 2), func(y, xMin int, coverage []float32) {
		rows = append(rows, y)
		if xMin != 1 {
			t.Errorf("row %d: expected xMin 1, got %d", y, xMin)
		}
		if len(coverage) != 9 {
			t.Errorf("row %d: expected 9 pixels, got %d", y, len(coverage))
		}
	})
	if len(rows) != 4 || rows[0] != 1 || rows[3] != 4 {
		t.Errorf("expected rows 1-4, got %v", rows)
	}
}

// A circle approximated by four cubic arcs must cover close to πr².
func TestCircleArea(t *testing.T) {
	const (
		cx, cy, radius = 20, 20, 15
		k              = 0.5522847498
	)
	circle := (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + radius, Y: cy}).
		CubeTo(vec.Vec2{X: cx + radius, Y: cy + k*radius}, vec.Vec2{X: cx + k*radius, Y: cy + radius}, vec.Vec2{X: cx, Y: cy + radius}).
		CubeTo(vec.Vec2{X: cx - k*radius, Y: cy + radius}, vec.Vec2{X: cx - radius, Y: cy + k*radius}, vec.Vec2{X: cx - radius, Y: cy}).
		CubeTo(vec.Vec2{X: cx - radius, Y: cy - k*radius}, vec.Vec2{X: cx - k*radius, Y: cy - radius}, vec.Vec2{X: cx, Y: cy - radius}).
		CubeTo(vec.Vec2{X: cx + k*radius, Y: cy - radius}, vec.Vec2{X: cx + radius, Y: cy - k*radius}, vec.Vec2{X: cx + radius, Y: cy}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
	r.Flatness = 0.01
	var total float64
	for _, c := range render(r, circle, 40, 40) {
		total += float64(c)
	}

	expected := math.Pi * radius * radius
	if math.Abs(total-expected) > 2 {
		t.Errorf("expected area %.2f, got %.2f", expected, total)
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 4, URy: 4})
	called := false
	emit := func(y, xMin int, coverage []float32) { called = true }

	r.Fill(&path.Data{}, emit)
	r.Fill(box(10, 10, 20, 20), emit)
	r.Fill(box(1, 1, 3, 1), emit)
	if called {
		t.Error("expected no output")
	}
}
