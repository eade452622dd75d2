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

// Triaxial generates the samples of a three-ingredient blend.
//
// The samples form a triangular lattice with grid coordinates
// 0 <= i, j and i+j <= n-1, N(N+1)/2 samples in total. Ingredient A
// dominates at i = j = 0, ingredient B at j = n-1 and ingredient C at
// i = n-1. Only slots A to C of c are used.
func Triaxial(n int, c Constraints) ([]Sample, error) {
	mins := c.mins()
	if err := validate(n, mins, 3); err != nil {
		return nil, err
	}
	r := sharedRanges(mins, 3)

	last := n - 1
	samples := make([]Sample, 0, n*(n+1)/2)
	for i := range n {
		for j := range n - i {
			samples = append(samples, Sample{
				ID: len(samples) + 1,
				Percent: [MaxSlots]float64{
					A: r[A].at(last-i-j, last),
					B: r[B].at(j, last),
					C: r[C].at(i, last),
				},
				I: i,
				J: j,
			})
		}
	}
	logGenerated(TypeTriaxial, n, len(samples))
	return samples, nil
}

// Tetrahedral generates the samples of a four-ingredient blend on a
// tetrahedral lattice.
//
// Layer h, for h = 0, ..., n-1, is a triaxial lattice of size n-h in
// the coordinates i and j, where ingredient D takes h/(n-1) of its range.
// The sample count is the sum of the triangular numbers 1, 3, ..., n(n+1)/2.
func Tetrahedral(n int, c Constraints) ([]Sample, error) {
	mins := c.mins()
	if err := validate(n, mins, 4); err != nil {
		return nil, err
	}
	r := sharedRanges(mins, 4)

	last := n - 1
	samples := make([]Sample, 0, TetrahedralCount(n))
	for h := range n {
		for i := range n - h {
			for j := range n - h - i {
				samples = append(samples, Sample{
					ID: len(samples) + 1,
					Percent: [MaxSlots]float64{
						A: r[A].at(last-i-j-h, last),
						B: r[B].at(j, last),
						C: r[C].at(i, last),
						D: r[D].at(h, last),
					},
					H: h,
					I: i,
					J: j,
				})
			}
		}
	}
	logGenerated(TypeTetrahedral, n, len(samples))
	return samples, nil
}

// Bilinear generates the samples of a blend of two ingredient pairs.
//
// Ingredients A and B always add up to percentAB, C and D to the
// remaining 100-percentAB. The grid coordinate i moves the AB pair from
// B towards A, and j moves the CD pair from D towards C. This gives
// n² samples.
func Bilinear(n int, percentAB float64, c Constraints) ([]Sample, error) {
	mins := c.mins()
	if err := validateBilinear(n, percentAB, mins); err != nil {
		return nil, err
	}
	r := bilinearRanges(percentAB, mins)

	last := n - 1
	samples := make([]Sample, 0, n*n)
	for i := range n {
		for j := range n {
			samples = append(samples, Sample{
				ID: len(samples) + 1,
				Percent: [MaxSlots]float64{
					A: r[A].at(i, last),
					B: r[B].at(last-i, last),
					C: r[C].at(j, last),
					D: r[D].at(last-j, last),
				},
				I: i,
				J: j,
			})
		}
	}
	logGenerated(TypeBilinear, n, len(samples))
	return samples, nil
}

// Quadraxial generates the samples of a four-ingredient blend on a
// rectangular grid, with one ingredient dominating each corner.
//
// Each ingredient is weighted by the grid distance to the opposite
// sides of its corner, and the result is rescaled to 100%. Unlike
// [Tetrahedral], this is not an exact linear interpolation: away from
// the corners the ingredients may leave their [Range] slightly. With equal
// minimums the samples stay in range; with uneven minimums the inner
// samples can fall below a minimum. For example, with n = 3
// and a minimum of 60% for D, the centre sample has only 400/7 ≈ 57.1% D.
func Quadraxial(n int, c Constraints) ([]Sample, error) {
	mins := c.mins()
	if err := validate(n, mins, 4); err != nil {
		return nil, err
	}
	r := sharedRanges(mins, 4)

	last := n - 1
	samples := make([]Sample, 0, n*n)
	for i := range n {
		for j := range n {
			raw := [MaxSlots]float64{
				A: r[A].at(min(last-i, last-j), last),
				B: r[B].at(min(i, last-j), last),
				C: r[C].at(min(i, j), last),
				D: r[D].at(min(last-i, j), last),
			}
			total := raw[A] + raw[B] + raw[C] + raw[D]

			s := Sample{ID: len(samples) + 1, I: i, J: j}
			for k := range raw {
				s.Percent[k] = 100 * raw[k] / total
			}
			samples = append(samples, s)
		}
	}
	logGenerated(TypeQuadraxial, n, len(samples))
	return samples, nil
}

// Generate runs the sampler selected by cfg.Type.
func Generate(cfg *Config) ([]Sample, error) {
	switch cfg.Type {
	case TypeTriaxial:
		return Triaxial(cfg.Resolution, cfg.Ingredients)
	case TypeTetrahedral:
		return Tetrahedral(cfg.Resolution, cfg.Ingredients)
	case TypeBilinear:
		return Bilinear(cfg.Resolution, cfg.PercentAB, cfg.Ingredients)
	case TypeQuadraxial:
		return Quadraxial(cfg.Resolution, cfg.Ingredients)
	default:
		return nil, cfg.Validate()
	}
}

// Count returns the number of samples of a blend of type t with
// resolution n.
func Count(t Type, n int) int {
	switch t {
	case TypeTriaxial:
		return n * (n + 1) / 2
	case TypeTetrahedral:
		return TetrahedralCount(n)
	default:
		return n * n
	}
}

// TetrahedralCount returns the number of samples of a tetrahedral blend
// with resolution n, n(n+1)(n+2)/6.
func TetrahedralCount(n int) int {
	return n * (n + 1) * (n + 2) / 6
}
