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
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blend "seehuhn.de/go/glazeblend"
	"seehuhn.de/go/glazeblend/scenarios"
)

func newSheet(t *testing.T, cfg blend.Config) *Sheet {
	t.Helper()
	samples, err := blend.Generate(&cfg)
	require.NoError(t, err)
	return New(&cfg, samples)
}

func TestCaption(t *testing.T) {
	s := blend.Sample{ID: 7, Percent: [blend.MaxSlots]float64{33.5, 33.3333, 33.1667, 0}}
	assert.Equal(t, []string{"#7", "34/33/33"}, Caption(3, s))
	assert.Equal(t, []string{"#7", "34/33/33/0"}, Caption(4, s))
}

func TestMarkersInsideSheet(t *testing.T) {
	for category, list := range scenarios.All {
		for _, sc := range list {
			sheet := newSheet(t, sc.Config)
			name := category + "_" + sc.Name
			require.Len(t, sheet.Markers, blend.Count(sc.Config.Type, sc.Config.Resolution), name)

			for _, m := range sheet.Markers {
				assert.GreaterOrEqual(t, m.Box.LLx, 0.0, name)
				assert.GreaterOrEqual(t, m.Box.LLy, 0.0, name)
				assert.LessOrEqual(t, m.Box.URx, sheet.Width, name)
				assert.LessOrEqual(t, m.Box.URy, sheet.Height, name)
				assert.Len(t, m.Caption, 2)
			}
		}
	}
}

func TestOutlines(t *testing.T) {
	tri := newSheet(t, blend.DefaultConfig(blend.TypeTriaxial))
	require.Len(t, tri.Outlines, 1)
	assert.Len(t, tri.Outlines[0], 3)

	tet := blend.DefaultConfig(blend.TypeTetrahedral)
	tet.Resolution = 4
	assert.Len(t, newSheet(t, tet).Outlines, 3)

	quad := newSheet(t, blend.DefaultConfig(blend.TypeQuadraxial))
	require.Len(t, quad.Outlines, 1)
	assert.Len(t, quad.Outlines[0], 4)
}

func TestImage(t *testing.T) {
	cfg := blend.DefaultConfig(blend.TypeBilinear)
	sheet := newSheet(t, cfg)

	img := sheet.Image()
	assert.Equal(t, 384, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	assert.Equal(t, paperColor.RGBA(), img.RGBAAt(0, 0))

	for _, m := range sheet.Markers {
		x := int(m.Box.LLx) + 4
		y := int((m.Box.LLy + m.Box.URy) / 2)
		assert.Equal(t, m.Color.RGBA(), img.RGBAAt(x, y), "marker %d", m.Sample.ID)
	}
}

func TestWritePNG(t *testing.T) {
	sheet := newSheet(t, blend.DefaultConfig(blend.TypeTriaxial))

	buf := &bytes.Buffer{}
	require.NoError(t, sheet.WritePNG(buf))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 384, img.Bounds().Dx())
	assert.Equal(t, 288, img.Bounds().Dy())
}

func TestWritePDF(t *testing.T) {
	cfg := blend.DefaultConfig(blend.TypeTetrahedral)
	cfg.Layout = blend.Unstacked
	sheet := newSheet(t, cfg)

	fileName := filepath.Join(t.TempDir(), "sheet.pdf")
	require.NoError(t, sheet.WritePDF(fileName))

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
