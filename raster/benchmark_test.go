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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// swatchPath builds a rectangle with rounded corners, the shape used for
// blend sheet markers.
func swatchPath(x, y, w, h, radius float64) *path.Data {
	k := radius * (1 - 0.5522847498)
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: x + radius, Y: y})
	p.LineTo(vec.Vec2{X: x + w - radius, Y: y})
	p.CubeTo(vec.Vec2{X: x + w - k, Y: y}, vec.Vec2{X: x + w, Y: y + k}, vec.Vec2{X: x + w, Y: y + radius})
	p.LineTo(vec.Vec2{X: x + w, Y: y + h - radius})
	p.CubeTo(vec.Vec2{X: x + w, Y: y + h - k}, vec.Vec2{X: x + w - k, Y: y + h}, vec.Vec2{X: x + w - radius, Y: y + h})
	p.LineTo(vec.Vec2{X: x + radius, Y: y + h})
	p.CubeTo(vec.Vec2{X: x + k, Y: y + h}, vec.Vec2{X: x, Y: y + h - k}, vec.Vec2{X: x, Y: y + h - radius})
	p.LineTo(vec.Vec2{X: x, Y: y + radius})
	p.CubeTo(vec.Vec2{X: x, Y: y + k}, vec.Vec2{X: x + k, Y: y}, vec.Vec2{X: x + radius, Y: y})
	p.Close()
	return p
}

// BenchmarkSwatches measures filling a sheet of rounded swatches, reusing
// one Rasterizer.
func BenchmarkSwatches(b *testing.B) {
	for _, n := range []int{3, 10, 30} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			size := 128 * n
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			var swatches []*path.Data
			for i := range n {
				for j := range n {
					swatches = append(swatches, swatchPath(float64(128*i+8), float64(128*j+8), 112, 44, 6))
				}
			}

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				for _, p := range swatches {
					r.Fill(p, func(y, xMin int, coverage []float32) {
						row := dst.Pix[y*dst.Stride+xMin:]
						for i, c := range coverage {
							row[i] = uint8(c * 255)
						}
					})
				}
			}
		})
	}
}

// BenchmarkVectorSwatches draws the same sheet with x/image/vector.
func BenchmarkVectorSwatches(b *testing.B) {
	for _, n := range []int{3, 10, 30} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			size := 128 * n
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				for i := range n {
					for j := range n {
						x, y := float32(128*i+8), float32(128*j+8)
						roundedRect(z, x, y, 112, 44, 6)
					}
				}
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func roundedRect(z *vector.Rasterizer, x, y, w, h, radius float32) {
	k := float32(1 - 0.5522847498)
	z.MoveTo(x+radius, y)
	z.LineTo(x+w-radius, y)
	z.CubeTo(x+w-radius*k, y, x+w, y+radius*k, x+w, y+radius)
	z.LineTo(x+w, y+h-radius)
	z.CubeTo(x+w, y+h-radius*k, x+w-radius*k, y+h, x+w-radius, y+h)
	z.LineTo(x+radius, y+h)
	z.CubeTo(x+radius*k, y+h, x, y+h-radius*k, x, y+h-radius)
	z.LineTo(x, y+radius)
	z.CubeTo(x, y+radius*k, x+radius*k, y, x+radius, y)
	z.ClosePath()
}
