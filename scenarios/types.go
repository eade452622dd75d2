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

// Scenario is a named blend configuration.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Config blend.Config
}

// config returns the defaults for t with the given resolution and
// minimums. Minimums not given are zero.
func config(t blend.Type, n int, mins ...float64) blend.Config {
	cfg := blend.DefaultConfig(t)
	cfg.Resolution = n
	for s, m := range mins {
		cfg.Ingredients[s].Min = m
	}
	return cfg
}

// bilinear returns a bilinear configuration with the given A/B share.
func bilinear(n int, percentAB float64, mins ...float64) blend.Config {
	cfg := config(blend.TypeBilinear, n, mins...)
	cfg.PercentAB = percentAB
	return cfg
}

// unstacked switches a tetrahedral configuration to the unstacked layout.
func unstacked(cfg blend.Config) blend.Config {
	cfg.Layout = blend.Unstacked
	return cfg
}

// labelled sets ingredient labels and colors, in slot order.
func labelled(cfg blend.Config, ingredients ...blend.Ingredient) blend.Config {
	for s, ing := range ingredients {
		ing.Min = cfg.Ingredients[s].Min
		cfg.Ingredients[s] = ing
	}
	return cfg
}
