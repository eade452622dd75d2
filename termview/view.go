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

// Package termview shows a blend sheet in a terminal.
package termview

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	blend "seehuhn.de/go/glazeblend"
	"seehuhn.de/go/glazeblend/chart"
)

// View draws one blend on a tcell screen and lets the user change the
// resolution and the layout mode.
type View struct {
	screen tcell.Screen
	cfg    blend.Config

	sheet *chart.Sheet
	err   error
}

// New creates a view of the blend described by cfg. The screen must
// already be initialised.
func New(screen tcell.Screen, cfg blend.Config) *View {
	v := &View{
		screen: screen,
		cfg:    cfg,
	}
	v.update()
	return v
}

// Config returns the blend currently shown.
func (v *View) Config() blend.Config {
	return v.cfg
}

func (v *View) update() {
	samples, err := blend.Generate(&v.cfg)
	v.err = err
	if err != nil {
		v.sheet = nil
		return
	}
	v.sheet = chart.New(&v.cfg, samples)
}

var (
	paperStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	errorStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
)

// Draw redraws the whole screen. The bottom line is the status line,
// the rest shows the sheet scaled to fit.
func (v *View) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	rows := h - 1
	fill(v.screen, 0, 0, w, rows, paperStyle)
	if v.sheet != nil && rows > 0 {
		// terminal cells are about twice as high as wide
		scale := max(v.sheet.Width/float64(w), v.sheet.Height/float64(2*rows))
		for _, m := range v.sheet.Markers {
			v.drawMarker(m, scale, scale*2)
		}
	}

	v.drawStatus(w, h-1)
	v.screen.Show()
}

func (v *View) drawMarker(m chart.Marker, sx, sy float64) {
	x0, x1 := cellSpan(m.Box.LLx, m.Box.URx, sx)
	y0, y1 := cellSpan(m.Box.LLy, m.Box.URy, sy)

	c := m.Color.RGBA()
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	fg := tcell.ColorWhite
	if chart.LightSwatch(m.Color) {
		fg = tcell.ColorBlack
	}
	style := tcell.StyleDefault.Background(bg).Foreground(fg)

	fill(v.screen, x0, y0, x1, y1, style)
	for i, line := range m.Caption {
		if y0+i >= y1 {
			break
		}
		text := []rune(line)
		if len(text) > x1-x0 {
			text = text[:x1-x0]
		}
		x := x0 + (x1-x0-len(text))/2
		putString(v.screen, x, y0+i, string(text), style)
	}
}

// cellSpan converts a pixel interval into the half-open range of cells it
// touches. The result always contains at least one cell.
func cellSpan(from, to, scale float64) (int, int) {
	a := int(math.Floor(from / scale))
	b := int(math.Ceil(to / scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (v *View) drawStatus(w, y int) {
	fill(v.screen, 0, y, w, y+1, statusStyle)
	if v.err != nil {
		putString(v.screen, 0, y, v.err.Error(), errorStyle)
		return
	}
	putString(v.screen, 0, y, v.status(), statusStyle)
}

func (v *View) status() string {
	msg := fmt.Sprintf("%s  N=%d  %d samples", v.cfg.Type, v.cfg.Resolution, len(v.sheet.Markers))
	if v.cfg.Type == blend.TypeTetrahedral {
		msg += "  " + v.cfg.Layout.String()
		return msg + "  [+/-] resolution  [l] layout  [q] quit"
	}
	return msg + "  [+/-] resolution  [q] quit"
}

func fill(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleEvent processes one screen event and reports whether the view
// should keep running.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !v.handleKey(ev.Key(), ev.Rune()) {
			return false
		}
		v.Draw()
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	}
	return true
}

func (v *View) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q':
		return false
	case '+', '=':
		v.cfg.Resolution++
	case '-':
		if v.cfg.Resolution <= blend.MinResolution {
			return true
		}
		v.cfg.Resolution--
	case 'l':
		if v.cfg.Layout == blend.Stacked {
			v.cfg.Layout = blend.Unstacked
		} else {
			v.cfg.Layout = blend.Stacked
		}
	default:
		return true
	}
	v.update()
	return true
}

// Run draws the view and processes events until the user quits or ctx
// is cancelled. In the latter case the context's error is returned.
//
// The caller is responsible for finalising the screen.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		}
	}
}
