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

// Range is the band of percentages an ingredient covers across a blend.
type Range struct {
	Min, Max float64
}

// at returns Min + (Max-Min)*num/den.
func (r Range) at(num, den int) float64 {
	return r.Min + (r.Max-r.Min)*float64(num)/float64(den)
}

// sharedRanges computes the ranges of k ingredients which share the full
// 100%: each ingredient can take whatever the minimums of the others
// leave over.
func sharedRanges(mins [MaxSlots]float64, k int) [MaxSlots]Range {
	var res [MaxSlots]Range
	for s := range k {
		hi := 100.0
		for other := range k {
			if other != s {
				hi -= mins[other]
			}
		}
		res[s] = Range{Min: mins[s], Max: hi}
	}
	return res
}

// bilinearRanges computes the ranges of a bilinear blend, where A and B
// share percentAB and C and D share the rest.
func bilinearRanges(percentAB float64, mins [MaxSlots]float64) [MaxSlots]Range {
	percentCD := 100 - percentAB
	return [MaxSlots]Range{
		A: {Min: mins[A], Max: percentAB - mins[B]},
		B: {Min: mins[B], Max: percentAB - mins[A]},
		C: {Min: mins[C], Max: percentCD - mins[D]},
		D: {Min: mins[D], Max: percentCD - mins[C]},
	}
}

// Ranges returns the range of every ingredient of the blend. Entries for
// unused slots are zero.
func (cfg *Config) Ranges() [MaxSlots]Range {
	mins := cfg.Ingredients.mins()
	if cfg.Type == TypeBilinear {
		return bilinearRanges(cfg.PercentAB, mins)
	}
	return sharedRanges(mins, cfg.Type.Slots())
}
