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

// Position is the location of a sample marker on the blend sheet, in
// percent of the container width and height, measured from the top-left
// corner of the container to the top-left corner of the marker.
type Position struct {
	Left, Top float64
}

// Sheet cell sizes in pixels. The horizontal step between neighbouring
// markers of a row is CellWidth for rectangular grids and CellWidth/2
// for the staggered rows of triangular lattices.
const (
	CellWidth          = 128
	TriangleRowHeight  = 96
	UnstackedRowHeight = 72
	GridRowHeight      = 80
)

// Position returns where the marker of sample s is placed on the sheet.
// The layout mode is only used for tetrahedral blends.
func (cfg *Config) Position(s Sample) Position {
	return Place(cfg.Type, cfg.Resolution, cfg.Layout, s)
}

// Place returns the marker position of sample s of a blend of type t with
// resolution n.
func Place(t Type, n int, mode Layout, s Sample) Position {
	fn := float64(n)
	switch t {
	case TypeTriaxial:
		return trianglePosition(n, s.I, s.J)

	case TypeTetrahedral:
		p := trianglePosition(n, s.I, s.J)
		h := float64(s.H)
		if mode == Unstacked {
			p.Top /= (fn + 1) / 2
			p.Top += 200 * (h - h*(h-1)/(2*fn)) / (fn + 1)
		} else {
			p.Top += 50 * h / fn
		}
		return p

	default:
		return Position{
			Left: 100 * float64(s.I) / fn,
			Top:  100 * float64(s.J) / fn,
		}
	}
}

// trianglePosition arranges a triangular lattice as an equilateral
// triangle: row i+j holds the samples with the same amount of A, and
// B increases from left to right.
func trianglePosition(n, i, j int) Position {
	fn := float64(n)
	return Position{
		Left: 50 * float64(n-1-i+j) / fn,
		Top:  100 * float64(i+j) / fn,
	}
}

// Container returns the size of the blend sheet in pixels.
func Container(t Type, n int, mode Layout) (width, height float64) {
	fn := float64(n)
	width = CellWidth * fn
	switch t {
	case TypeTetrahedral:
		if mode == Unstacked {
			height = UnstackedRowHeight * fn * (fn + 1) / 2
		} else {
			height = TriangleRowHeight * fn
		}
	case TypeTriaxial:
		height = TriangleRowHeight * fn
	default:
		height = GridRowHeight * fn
	}
	return width, height
}

// Container is like the package level [Container] for the blend described
// by cfg.
func (cfg *Config) Container() (width, height float64) {
	return Container(cfg.Type, cfg.Resolution, cfg.Layout)
}
