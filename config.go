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

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by [Config.Validate] and the samplers.
var (
	ErrResolution      = errors.New("invalid resolution")
	ErrNegativeMinimum = errors.New("negative minimum")
	ErrMinimum         = errors.New("minimum is not a finite number")
	ErrInfeasible      = errors.New("minimums exceed the available total")
	ErrPercentAB       = errors.New("invalid A/B percentage")
	ErrUnknownType     = errors.New("unknown blend type")
)

// MinResolution is the smallest number of subdivisions per axis.
const MinResolution = 2

// Ingredient describes one ingredient of a blend.
type Ingredient struct {
	// Min is the percentage reserved for this ingredient in every sample.
	Min float64

	// Label and Color are only used for display.
	Label string
	Color RGB
}

// Constraints holds the ingredients of a blend, indexed by [Slot].
type Constraints [MaxSlots]Ingredient

func (c *Constraints) mins() [MaxSlots]float64 {
	var m [MaxSlots]float64
	for i := range c {
		m[i] = c[i].Min
	}
	return m
}

// Layout selects how the layers of a tetrahedral blend are arranged on
// the sheet.
type Layout int

const (
	// Stacked draws all layers on top of each other, each one shifted
	// down by half a row, like a pyramid seen from above.
	Stacked Layout = iota

	// Unstacked draws the layers one below the other, without overlap.
	Unstacked
)

func (l Layout) String() string {
	switch l {
	case Stacked:
		return "stacked"
	case Unstacked:
		return "unstacked"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout converts "stacked" or "unstacked" into a Layout.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "stacked":
		return Stacked, nil
	case "unstacked":
		return Unstacked, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", name)
	}
}

// Config is the complete input for one blend computation.
//
// Use [DefaultConfig] to obtain a fully populated value and overwrite the
// fields which differ from the defaults.
type Config struct {
	Type       Type
	Resolution int

	// PercentAB is the combined share of ingredients A and B in a
	// bilinear blend. Ingredients C and D make up the remaining
	// 100-PercentAB percent. Other geometries ignore this field.
	PercentAB float64

	Ingredients Constraints

	// Layout is only used by tetrahedral blends.
	Layout Layout
}

var defaultColors = [MaxSlots]RGB{
	{R: 0x00, G: 0xff, B: 0xff},
	{R: 0xff, G: 0x00, B: 0xff},
	{R: 0xff, G: 0xff, B: 0x00},
	{R: 0x00, G: 0x00, B: 0x00},
}

// DefaultConfig returns the default configuration for the given blend
// geometry: resolution 3, no minimums, and the default labels and colors.
func DefaultConfig(t Type) Config {
	cfg := Config{
		Type:       t,
		Resolution: 3,
		PercentAB:  50,
		Layout:     Stacked,
	}
	for s := A; s <= D; s++ {
		label := "Ingredient " + s.String()
		if t == TypeBilinear {
			label = s.String()
		}
		cfg.Ingredients[s] = Ingredient{
			Label: label,
			Color: defaultColors[s],
		}
	}
	return cfg
}

// Validate checks that the configuration describes a feasible blend.
// The returned error wraps one of the Err* values of this package.
func (cfg *Config) Validate() error {
	if _, ok := typeNames[cfg.Type]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(cfg.Type))
	}
	if cfg.Type == TypeBilinear {
		return validateBilinear(cfg.Resolution, cfg.PercentAB, cfg.Ingredients.mins())
	}
	return validate(cfg.Resolution, cfg.Ingredients.mins(), cfg.Type.Slots())
}

func validateResolution(n int) error {
	if n < MinResolution {
		return fmt.Errorf("%w: %d < %d", ErrResolution, n, MinResolution)
	}
	return nil
}

func validateMins(mins [MaxSlots]float64, k int) error {
	for s := range k {
		if math.IsNaN(mins[s]) || math.IsInf(mins[s], 0) {
			return fmt.Errorf("%w: %s = %g", ErrMinimum, Slot(s), mins[s])
		}
		if mins[s] < 0 {
			return fmt.Errorf("%w: %s = %g", ErrNegativeMinimum, Slot(s), mins[s])
		}
	}
	return nil
}

// validate checks the constraints of a blend whose k ingredients share
// the full 100%.
func validate(n int, mins [MaxSlots]float64, k int) error {
	if err := validateResolution(n); err != nil {
		return err
	}
	if err := validateMins(mins, k); err != nil {
		return err
	}
	var total float64
	for s := range k {
		total += mins[s]
	}
	if total > 100 {
		return fmt.Errorf("%w: minimums sum to %g%%", ErrInfeasible, total)
	}
	return nil
}

func validateBilinear(n int, percentAB float64, mins [MaxSlots]float64) error {
	if err := validateResolution(n); err != nil {
		return err
	}
	if !(percentAB >= 0 && percentAB <= 100) {
		return fmt.Errorf("%w: %g", ErrPercentAB, percentAB)
	}
	if err := validateMins(mins, 4); err != nil {
		return err
	}
	if ab := mins[A] + mins[B]; ab > percentAB {
		return fmt.Errorf("%w: A+B minimums %g%% > %g%%", ErrInfeasible, ab, percentAB)
	}
	if cd := mins[C] + mins[D]; cd > 100-percentAB {
		return fmt.Errorf("%w: C+D minimums %g%% > %g%%", ErrInfeasible, cd, 100-percentAB)
	}
	return nil
}
