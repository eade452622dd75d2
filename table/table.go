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

// Package table writes the samples of a blend as text.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	blend "seehuhn.de/go/glazeblend"
)

// WriteRanges writes the percentage range of every ingredient of the
// blend, one line per ingredient.
func WriteRanges(w io.Writer, cfg *blend.Config) error {
	ranges := cfg.Ranges()
	for s := range cfg.Type.Slots() {
		ing := cfg.Ingredients[s]
		_, err := fmt.Fprintf(w, "%s: %s%% - %s%%\n",
			ing.Label, FormatPercent(ranges[s].Min), FormatPercent(ranges[s].Max))
		if err != nil {
			return err
		}
	}
	return nil
}

// Write writes the samples as an aligned text table, one row per sample.
func Write(w io.Writer, cfg *blend.Config, samples []blend.Sample) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	for _, row := range rows(cfg, samples) {
		for _, cell := range row {
			if _, err := io.WriteString(tw, cell+"\t"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(tw, "\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCSV writes the samples in CSV format, with a header row.
func WriteCSV(w io.Writer, cfg *blend.Config, samples []blend.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows(cfg, samples)); err != nil {
		return err
	}
	return cw.Error()
}

// rows returns the header and one row per sample.
func rows(cfg *blend.Config, samples []blend.Sample) [][]string {
	k := cfg.Type.Slots()
	res := make([][]string, 0, len(samples)+1)

	header := make([]string, 0, k+1)
	header = append(header, "Sample #")
	for s := range k {
		header = append(header, "% "+cfg.Ingredients[s].Label)
	}
	res = append(res, header)

	for _, sample := range samples {
		row := make([]string, 0, k+1)
		row = append(row, strconv.Itoa(sample.ID))
		for s := range k {
			row = append(row, FormatPercent(sample.Percent[s]))
		}
		res = append(res, row)
	}
	return res
}

// FormatPercent rounds x to two decimal places, with halves rounded up,
// and formats it without trailing zeros.
func FormatPercent(x float64) string {
	r := math.Floor(x*100+0.5) / 100
	if r == 0 {
		r = 0 // avoid "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
