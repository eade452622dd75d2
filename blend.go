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

// Package blend generates sample grids for ceramic glaze line blends.
//
// A blend combines two to four ingredients, each with a reserved minimum
// percentage. For a given blend geometry and resolution N, the samplers in
// this package enumerate a lattice of compositions which evenly covers the
// feasible region:
//
//   - [Triaxial]: three ingredients on a triangular lattice, N(N+1)/2 samples
//   - [Tetrahedral]: four ingredients on a tetrahedral lattice, one
//     triangular layer per amount of ingredient D
//   - [Bilinear]: two pairs of ingredients with a fixed pair ratio,
//     N² samples on a rectangular grid
//   - [Quadraxial]: four ingredients on a rectangular grid, each corner
//     dominated by one ingredient (an approximation, renormalized to 100%)
//
// The samplers are pure functions. Every call returns a fresh slice of
// [Sample] values, numbered from 1 in generation order. [Place] and
// [Container] map samples onto a 2D sheet for display, and [Constraints.Mix]
// computes the swatch color of a sample.
package blend

import "fmt"

// Slot identifies one ingredient of a blend.
type Slot int

// The ingredient slots. Blends with fewer than four ingredients use the
// first slots only.
const (
	A Slot = iota
	B
	C
	D
)

// MaxSlots is the largest number of ingredients in any blend.
const MaxSlots = 4

func (s Slot) String() string {
	if s < A || s > D {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return string(rune('A' + s))
}

// Type is a blend geometry.
type Type int

// The supported blend geometries.
const (
	TypeTriaxial Type = iota
	TypeTetrahedral
	TypeBilinear
	TypeQuadraxial
)

// Types lists all blend geometries in display order.
var Types = []Type{TypeTriaxial, TypeQuadraxial, TypeTetrahedral, TypeBilinear}

var typeNames = map[Type]string{
	TypeTriaxial:    "triaxial",
	TypeTetrahedral: "tetrahedral",
	TypeBilinear:    "bilinear",
	TypeQuadraxial:  "quadraxial",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType converts a blend name, as returned by [Type.String], back
// into a Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Slots returns the number of ingredients used by the blend geometry.
func (t Type) Slots() int {
	if t == TypeTriaxial {
		return 3
	}
	return 4
}

// Sample is one composition of a blend.
type Sample struct {
	// ID numbers the samples from 1, in generation order.
	ID int

	// Percent holds the amount of each ingredient. The entries for the
	// slots used by the blend sum to 100; unused slots are zero.
	Percent [MaxSlots]float64

	// H, I and J are the lattice coordinates the sample was generated
	// from. H is the tetrahedral layer and is zero for the other
	// geometries.
	H, I, J int
}
