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

package store

import (
	"log/slog"
	"math"

	blend "seehuhn.de/go/glazeblend"
)

// LastConfig is the key under which [Save] keeps the most recent blend.
const LastConfig = "lastConfig"

// Settings is the persisted form of a [blend.Config].
//
// The ingredient fields are kept in Values under flat keys, minA, labelA,
// colorA and so on for every slot, plus percentAB and layout. Unknown keys
// are ignored when the settings are read back.
type Settings struct {
	BlendType  string         `toml:"blendType"`
	Resolution int            `toml:"resolution"`
	Values     map[string]any `toml:"values"`
}

// FromConfig converts a blend configuration into settings.
func FromConfig(cfg *blend.Config) Settings {
	values := map[string]any{
		"percentAB": cfg.PercentAB,
		"layout":    cfg.Layout.String(),
	}
	for s := blend.A; s <= blend.D; s++ {
		ing := cfg.Ingredients[s]
		values["min"+s.String()] = ing.Min
		values["label"+s.String()] = ing.Label
		values["color"+s.String()] = ing.Color.Hex()
	}
	return Settings{
		BlendType:  cfg.Type.String(),
		Resolution: cfg.Resolution,
		Values:     values,
	}
}

// Config converts the settings back into a blend configuration.
//
// The result starts from [blend.DefaultConfig]. Every entry which is
// present and has the right type replaces the default; all other entries
// are skipped with a warning. The result is not validated.
func (st Settings) Config() blend.Config {
	log := blend.Logger()

	t, err := blend.ParseType(st.BlendType)
	if err != nil {
		log.Warn("stored blend type ignored", slog.String("type", st.BlendType))
		t = blend.TypeTriaxial
	}
	cfg := blend.DefaultConfig(t)
	if st.Resolution >= blend.MinResolution {
		cfg.Resolution = st.Resolution
	} else if st.Resolution != 0 {
		log.Warn("stored resolution ignored", slog.Int("resolution", st.Resolution))
	}

	skip := func(key string, val any) {
		log.Warn("stored value ignored", slog.String("key", key), slog.Any("value", val))
	}

	if val, ok := st.Values["percentAB"]; ok {
		if x, ok := number(val); ok {
			cfg.PercentAB = x
		} else {
			skip("percentAB", val)
		}
	}
	if val, ok := st.Values["layout"]; ok {
		name, _ := val.(string)
		if mode, err := blend.ParseLayout(name); err == nil {
			cfg.Layout = mode
		} else {
			skip("layout", val)
		}
	}

	for s := blend.A; s <= blend.D; s++ {
		ing := &cfg.Ingredients[s]

		key := "min" + s.String()
		if val, ok := st.Values[key]; ok {
			if x, ok := number(val); ok {
				ing.Min = x
			} else {
				skip(key, val)
			}
		}

		key = "label" + s.String()
		if val, ok := st.Values[key]; ok {
			if label, ok := val.(string); ok {
				ing.Label = label
			} else {
				skip(key, val)
			}
		}

		key = "color" + s.String()
		if val, ok := st.Values[key]; ok {
			hex, _ := val.(string)
			if col, err := blend.ParseHex(hex); err == nil {
				ing.Color = col
			} else {
				skip(key, val)
			}
		}
	}
	return cfg
}

// number accepts the finite numbers produced by the TOML decoder.
func number(val any) (float64, bool) {
	switch x := val.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

// Load returns the most recently saved blend configuration. If nothing
// usable has been saved yet, the triaxial defaults are returned and ok is
// false. Entries with the wrong type are skipped with a warning, as
// described for [Settings.Config].
func Load(s *Store) (cfg blend.Config, ok bool) {
	var raw map[string]any
	ok, err := s.Get(LastConfig, &raw)
	if err != nil {
		blend.Logger().Warn("stored settings ignored",
			slog.String("file", s.Path()), slog.Any("error", err))
		ok = false
	}
	if !ok {
		return blend.DefaultConfig(blend.TypeTriaxial), false
	}
	return decodeSettings(raw).Config(), true
}

// decodeSettings extracts the fields of [Settings] from a decoded TOML
// table. Fields with the wrong type are left at their zero value.
func decodeSettings(raw map[string]any) Settings {
	log := blend.Logger()
	var st Settings

	if val, ok := raw["blendType"]; ok {
		if name, ok := val.(string); ok {
			st.BlendType = name
		} else {
			log.Warn("stored value ignored", slog.String("key", "blendType"), slog.Any("value", val))
		}
	}
	if val, ok := raw["resolution"]; ok {
		if x, ok := number(val); ok && x == math.Trunc(x) && math.Abs(x) <= math.MaxInt32 {
			st.Resolution = int(x)
		} else {
			log.Warn("stored value ignored", slog.String("key", "resolution"), slog.Any("value", val))
		}
	}
	if val, ok := raw["values"]; ok {
		if values, ok := val.(map[string]any); ok {
			st.Values = values
		} else {
			log.Warn("stored value ignored", slog.String("key", "values"), slog.Any("value", val))
		}
	}
	return st
}

// Save stores cfg as the most recent blend configuration.
func Save(s *Store, cfg *blend.Config) error {
	return s.Put(LastConfig, FromConfig(cfg))
}
