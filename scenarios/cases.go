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

package scenarios

import blend "seehuhn.de/go/glazeblend"

var (
	feldspar = blend.Ingredient{Label: "Custer feldspar", Color: blend.RGB{R: 0xf2, G: 0xe8, B: 0xdc}}
	silica   = blend.Ingredient{Label: "Silica", Color: blend.RGB{R: 0xff, G: 0xff, B: 0xff}}
	whiting  = blend.Ingredient{Label: "Whiting", Color: blend.RGB{R: 0xe0, G: 0xe0, B: 0xd0}}
	kaolin   = blend.Ingredient{Label: "EPK", Color: blend.RGB{R: 0xd8, G: 0xc8, B: 0xa8}}
	rutile   = blend.Ingredient{Label: "Rutile", Color: blend.RGB{R: 0xb0, G: 0x60, B: 0x20}}
	cobalt   = blend.Ingredient{Label: "Cobalt carbonate", Color: blend.RGB{R: 0x20, G: 0x40, B: 0xc0}}
	iron     = blend.Ingredient{Label: "Red iron oxide", Color: blend.RGB{R: 0x80, G: 0x20, B: 0x10}}
	copper   = blend.Ingredient{Label: "Copper carbonate", Color: blend.RGB{R: 0x20, G: 0x90, B: 0x60}}
)

var triaxialCases = []Scenario{
	{Name: "minimal", Config: config(blend.TypeTriaxial, 2)},
	{Name: "default", Config: config(blend.TypeTriaxial, 3)},
	{Name: "fine", Config: config(blend.TypeTriaxial, 11)},
	{
		Name: "base_glaze",
		Config: labelled(config(blend.TypeTriaxial, 6, 20, 10, 10),
			feldspar, silica, whiting),
	},
	{Name: "saturated", Config: config(blend.TypeTriaxial, 4, 50, 30, 20)},
}

var tetrahedralCases = []Scenario{
	{Name: "minimal", Config: config(blend.TypeTetrahedral, 2)},
	{Name: "default", Config: config(blend.TypeTetrahedral, 3)},
	{Name: "unstacked", Config: unstacked(config(blend.TypeTetrahedral, 4))},
	{
		Name: "base_glaze",
		Config: labelled(config(blend.TypeTetrahedral, 5, 15, 15, 10, 10),
			feldspar, silica, whiting, kaolin),
	},
	{
		Name: "base_glaze_unstacked",
		Config: unstacked(labelled(config(blend.TypeTetrahedral, 5, 15, 15, 10, 10),
			feldspar, silica, whiting, kaolin)),
	},
}

var bilinearCases = []Scenario{
	{Name: "minimal", Config: bilinear(2, 60)},
	{Name: "default", Config: bilinear(3, 50)},
	{
		Name: "colorants",
		Config: labelled(bilinear(5, 92, 40, 40, 1, 0.5),
			feldspar, silica, iron, cobalt),
	},
	{Name: "all_ab", Config: bilinear(4, 100)},
	{Name: "all_cd", Config: bilinear(4, 0)},
}

var quadraxialCases = []Scenario{
	{Name: "minimal", Config: config(blend.TypeQuadraxial, 2)},
	{Name: "default", Config: config(blend.TypeQuadraxial, 3)},
	{Name: "fine", Config: config(blend.TypeQuadraxial, 7)},
	{Name: "lopsided", Config: config(blend.TypeQuadraxial, 3, 0, 0, 0, 60)},
	{
		Name: "colorants",
		Config: labelled(config(blend.TypeQuadraxial, 5, 10, 10, 10, 10),
			rutile, cobalt, iron, copper),
	},
}
