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

package blend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blend "seehuhn.de/go/glazeblend"
)

func TestTriaxialPlacement(t *testing.T) {
	cfg := blend.DefaultConfig(blend.TypeTriaxial)
	cfg.Resolution = 4

	cases := []struct {
		i, j      int
		left, top float64
	}{
		{0, 0, 37.5, 0},
		{3, 0, 0, 75},
		{0, 3, 75, 75},
		{1, 1, 37.5, 50},
	}
	for _, tc := range cases {
		p := cfg.Position(blend.Sample{I: tc.i, J: tc.j})
		assert.InDelta(t, tc.left, p.Left, 1e-12, "left at %d,%d", tc.i, tc.j)
		assert.InDelta(t, tc.top, p.Top, 1e-12, "top at %d,%d", tc.i, tc.j)
	}
}

func TestTetrahedralPlacement(t *testing.T) {
	const n = 3
	s := blend.Sample{H: 2, I: 0, J: 0}

	stacked := blend.Place(blend.TypeTetrahedral, n, blend.Stacked, s)
	assert.InDelta(t, 100.0/3, stacked.Left, 1e-12)
	assert.InDelta(t, 100.0/3, stacked.Top, 1e-12)

	// top = 200*(2 - 2/6)/4
	unstacked := blend.Place(blend.TypeTetrahedral, n, blend.Unstacked, s)
	assert.InDelta(t, 100.0/3, unstacked.Left, 1e-12)
	assert.InDelta(t, 250.0/3, unstacked.Top, 1e-12)

	s = blend.Sample{H: 0, I: 1, J: 1}
	unstacked = blend.Place(blend.TypeTetrahedral, n, blend.Unstacked, s)
	assert.InDelta(t, 100.0/3, unstacked.Top, 1e-12)
}

// In the unstacked layout, markers of different layers must not share a
// row of the sheet.
func TestUnstackedLayersSeparate(t *testing.T) {
	for n := 2; n <= 8; n++ {
		samples, err := blend.Tetrahedral(n, blend.Constraints{})
		require.NoError(t, err)

		width, height := blend.Container(blend.TypeTetrahedral, n, blend.Unstacked)
		assert.Equal(t, float64(blend.CellWidth*n), width)

		lastBottom := -1.0
		for h := range n {
			top, bottom := 1e9, -1e9
			for _, s := range samples {
				if s.H != h {
					continue
				}
				p := blend.Place(blend.TypeTetrahedral, n, blend.Unstacked, s)
				y := p.Top * height / 100
				top = min(top, y)
				bottom = max(bottom, y)
			}
			assert.Greater(t, top, lastBottom, "n=%d, layer %d", n, h)
			assert.Less(t, bottom, height, "n=%d, layer %d", n, h)
			lastBottom = bottom
		}
	}
}

func TestGridPlacement(t *testing.T) {
	for _, typ := range []blend.Type{blend.TypeBilinear, blend.TypeQuadraxial} {
		p := blend.Place(typ, 5, blend.Stacked, blend.Sample{I: 2, J: 4})
		assert.Equal(t, blend.Position{Left: 40, Top: 80}, p)
	}
}

func TestContainer(t *testing.T) {
	cases := []struct {
		typ           blend.Type
		mode          blend.Layout
		width, height float64
	}{
		{blend.TypeTriaxial, blend.Stacked, 512, 384},
		{blend.TypeTetrahedral, blend.Stacked, 512, 384},
		{blend.TypeTetrahedral, blend.Unstacked, 512, 720},
		{blend.TypeBilinear, blend.Unstacked, 512, 320},
		{blend.TypeQuadraxial, blend.Stacked, 512, 320},
	}
	for _, tc := range cases {
		w, h := blend.Container(tc.typ, 4, tc.mode)
		assert.Equal(t, tc.width, w, "%s/%s", tc.typ, tc.mode)
		assert.Equal(t, tc.height, h, "%s/%s", tc.typ, tc.mode)
	}
}
