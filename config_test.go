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

func TestDefaultConfig(t *testing.T) {
	for _, typ := range blend.Types {
		cfg := blend.DefaultConfig(typ)
		require.NoError(t, cfg.Validate(), typ)
		assert.Equal(t, 3, cfg.Resolution)
		assert.Equal(t, blend.RGB{R: 0, G: 255, B: 255}, cfg.Ingredients[blend.A].Color)
		assert.Equal(t, blend.RGB{}, cfg.Ingredients[blend.D].Color)
	}

	tri := blend.DefaultConfig(blend.TypeTriaxial)
	assert.Equal(t, "Ingredient B", tri.Ingredients[blend.B].Label)

	bil := blend.DefaultConfig(blend.TypeBilinear)
	assert.Equal(t, "B", bil.Ingredients[blend.B].Label)
	assert.Equal(t, 50.0, bil.PercentAB)
}

func TestParseType(t *testing.T) {
	for _, typ := range blend.Types {
		got, err := blend.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := blend.ParseType("trilinear")
	assert.ErrorIs(t, err, blend.ErrUnknownType)
}

func TestParseLayout(t *testing.T) {
	l, err := blend.ParseLayout("unstacked")
	require.NoError(t, err)
	assert.Equal(t, blend.Unstacked, l)

	_, err = blend.ParseLayout("sideways")
	assert.Error(t, err)
}

func TestBilinearRanges(t *testing.T) {
	cfg := blend.DefaultConfig(blend.TypeBilinear)
	cfg.PercentAB = 80
	cfg.Ingredients[blend.A].Min = 10
	cfg.Ingredients[blend.D].Min = 5

	r := cfg.Ranges()
	assert.Equal(t, blend.Range{Min: 10, Max: 80}, r[blend.A])
	assert.Equal(t, blend.Range{Min: 0, Max: 70}, r[blend.B])
	assert.Equal(t, blend.Range{Min: 0, Max: 15}, r[blend.C])
	assert.Equal(t, blend.Range{Min: 5, Max: 20}, r[blend.D])
}

func TestSlotString(t *testing.T) {
	assert.Equal(t, "A", blend.A.String())
	assert.Equal(t, "D", blend.D.String())
	assert.Equal(t, "Slot(7)", blend.Slot(7).String())
}
