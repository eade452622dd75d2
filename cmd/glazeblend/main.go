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

// Command glazeblend computes the samples of a ceramic glaze line blend.
//
// The blend starts from the settings of the previous run, if any, and is
// modified by the command line flags. The ingredient ranges and the
// sample table are printed to standard output; sheets and CSV files are
// written on request. Example:
//
//	glazeblend -type tetrahedral -n 4 -min A=40 -label A=Feldspar -png sheet.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	blend "seehuhn.de/go/glazeblend"
	"seehuhn.de/go/glazeblend/chart"
	"seehuhn.de/go/glazeblend/store"
	"seehuhn.de/go/glazeblend/table"
	"seehuhn.de/go/glazeblend/termview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "glazeblend:", err)
		os.Exit(1)
	}
}

// edit is a modification of the blend requested on the command line.
type edit func(cfg *blend.Config) error

func run() error {
	var (
		typeName    = flag.String("type", "", "blend `type`: triaxial, tetrahedral, bilinear or quadraxial")
		resolution  = flag.Int("n", 0, "number of subdivisions per axis (at least 2)")
		percentAB   = flag.Float64("ab", 0, "combined `percentage` of A and B in a bilinear blend")
		layoutName  = flag.String("layout", "", "tetrahedral layout: stacked or unstacked")
		pngFile     = flag.String("png", "", "write the blend sheet to this PNG `file`")
		pdfFile     = flag.String("pdf", "", "write the blend sheet to this PDF `file`")
		csvFile     = flag.String("csv", "", "write the sample table to this CSV `file`")
		interactive = flag.Bool("tui", false, "show the blend sheet in the terminal")
		settings    = flag.String("settings", defaultSettings(), "settings `file`; empty to start from the defaults and save nothing")
		verbose     = flag.Bool("v", false, "log progress to standard error")
	)
	var edits []edit
	slotFlag := func(name, usage string, set func(ing *blend.Ingredient, val string) error) {
		flag.Func(name, usage+" (`slot=value`, repeatable)", func(arg string) error {
			slot, val, err := parseSlot(arg)
			if err != nil {
				return err
			}
			edits = append(edits, func(cfg *blend.Config) error {
				return set(&cfg.Ingredients[slot], val)
			})
			return nil
		})
	}
	slotFlag("min", "minimum percentage of an ingredient", func(ing *blend.Ingredient, val string) error {
		x, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		ing.Min = x
		return nil
	})
	slotFlag("label", "label of an ingredient", func(ing *blend.Ingredient, val string) error {
		ing.Label = val
		return nil
	})
	slotFlag("color", "hex color of an ingredient", func(ing *blend.Ingredient, val string) error {
		col, err := blend.ParseHex(val)
		if err != nil {
			return err
		}
		ing.Color = col
		return nil
	})
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		return fmt.Errorf("unexpected argument %q", flag.Arg(0))
	}

	if *verbose {
		blend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	st, cfg := loadSettings(*settings)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// A new blend type starts from the defaults of that type.
	if set["type"] {
		t, err := blend.ParseType(*typeName)
		if err != nil {
			return err
		}
		if t != cfg.Type {
			cfg = blend.DefaultConfig(t)
		}
	}
	if set["layout"] {
		mode, err := blend.ParseLayout(*layoutName)
		if err != nil {
			return err
		}
		cfg.Layout = mode
	}
	if set["n"] {
		cfg.Resolution = *resolution
	}
	if set["ab"] {
		cfg.PercentAB = *percentAB
	}
	for _, e := range edits {
		if err := e(&cfg); err != nil {
			return err
		}
	}

	if *interactive {
		var err error
		cfg, err = runView(cfg)
		if err != nil {
			return err
		}
	}

	samples, err := blend.Generate(&cfg)
	if err != nil {
		return err
	}

	out := os.Stdout
	if err := table.WriteRanges(out, &cfg); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := table.Write(out, &cfg, samples); err != nil {
		return err
	}

	if *pngFile != "" || *pdfFile != "" {
		sheet := chart.New(&cfg, samples)
		if *pngFile != "" {
			if err := writeFile(*pngFile, sheet.WritePNG); err != nil {
				return err
			}
		}
		if *pdfFile != "" {
			if err := sheet.WritePDF(*pdfFile); err != nil {
				return err
			}
			blend.Logger().Info("file written", "name", *pdfFile)
		}
	}
	if *csvFile != "" {
		err := writeFile(*csvFile, func(w io.Writer) error {
			return table.WriteCSV(w, &cfg, samples)
		})
		if err != nil {
			return err
		}
	}

	if st != nil {
		if err := store.Save(st, &cfg); err != nil {
			return err
		}
		blend.Logger().Debug("settings saved", "name", st.Path())
	}
	return nil
}

// loadSettings opens the settings file and returns the stored blend.
// A file which cannot be read is left alone: the defaults are used and
// the returned store is nil, so that nothing is saved over it.
func loadSettings(name string) (*store.Store, blend.Config) {
	if name == "" {
		return nil, blend.DefaultConfig(blend.TypeTriaxial)
	}
	st, err := store.Open(name)
	if err != nil {
		blend.Logger().Warn("settings file ignored, settings will not be saved",
			slog.String("file", name), slog.Any("error", err))
		return nil, blend.DefaultConfig(blend.TypeTriaxial)
	}
	cfg, _ := store.Load(st)
	return st, cfg
}

// parseSlot splits an argument of the form "A=value".
func parseSlot(arg string) (blend.Slot, string, error) {
	name, val, ok := strings.Cut(arg, "=")
	name = strings.ToUpper(strings.TrimSpace(name))
	if !ok || len(name) != 1 || name[0] < 'A' || name[0] > 'D' {
		return 0, "", fmt.Errorf("expected slot=value with slot A to D, got %q", arg)
	}
	return blend.Slot(name[0] - 'A'), val, nil
}

func writeFile(name string, write func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(f)
	err2 := f.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return err
	}
	blend.Logger().Info("file written", "name", name)
	return nil
}

func defaultSettings() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "glazeblend", "settings.toml")
}

// runView shows the blend in the terminal and returns the blend as
// modified by the user.
func runView(cfg blend.Config) (blend.Config, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return cfg, err
	}
	if err := screen.Init(); err != nil {
		return cfg, err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v := termview.New(screen, cfg)
	err = v.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return v.Config(), err
}
