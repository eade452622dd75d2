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

// Command gensheets draws a blend sheet for every scenario, as PNG and
// as PDF. Run from the module root directory.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	blend "seehuhn.de/go/glazeblend"
	"seehuhn.de/go/glazeblend/chart"
	"seehuhn.de/go/glazeblend/scenarios"
)

const sheetDir = "testdata/sheets"

func main() {
	blend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := os.MkdirAll(sheetDir, 0755); err != nil {
		panic(err)
	}

	for _, group := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[group] {
			name := group + "_" + sc.Name
			if err := generate(sc, filepath.Join(sheetDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(sc scenarios.Scenario, base string) error {
	cfg := sc.Config
	samples, err := blend.Generate(&cfg)
	if err != nil {
		return err
	}
	sheet := chart.New(&cfg, samples)

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = sheet.WritePNG(f)
	err2 := f.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return err
	}

	if err := sheet.WritePDF(base + ".pdf"); err != nil {
		return err
	}
	blend.Logger().Info("sheet written", "name", filepath.Base(base), "samples", len(samples))
	return nil
}
