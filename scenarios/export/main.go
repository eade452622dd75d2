// Command export writes all scenarios, together with their samples, to
// JSON. Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	blend "seehuhn.de/go/glazeblend"
	"seehuhn.de/go/glazeblend/scenarios"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, group := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[group] {
			js, err := toJSON(group, sc)
			if err != nil {
				panic(err)
			}
			out.Scenarios = append(out.Scenarios, js)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenarios.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Resolution  int              `json:"resolution"`
	PercentAB   float64          `json:"percent_ab,omitempty"`
	Layout      string           `json:"layout,omitempty"`
	Ingredients []jsonIngredient `json:"ingredients"`
	Samples     []jsonSample     `json:"samples"`
}

type jsonIngredient struct {
	Label string  `json:"label"`
	Color string  `json:"color"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type jsonSample struct {
	ID      int       `json:"id"`
	Percent []float64 `json:"percent"`
	Left    float64   `json:"left"`
	Top     float64   `json:"top"`
	Color   string    `json:"color"`
}

func toJSON(group string, sc scenarios.Scenario) (jsonScenario, error) {
	cfg := sc.Config
	samples, err := blend.Generate(&cfg)
	if err != nil {
		return jsonScenario{}, err
	}

	js := jsonScenario{
		Name:       group + "_" + sc.Name,
		Type:       cfg.Type.String(),
		Resolution: cfg.Resolution,
	}
	if cfg.Type == blend.TypeBilinear {
		js.PercentAB = cfg.PercentAB
	}
	if cfg.Type == blend.TypeTetrahedral {
		js.Layout = cfg.Layout.String()
	}

	k := cfg.Type.Slots()
	ranges := cfg.Ranges()
	for s := range k {
		ing := cfg.Ingredients[s]
		js.Ingredients = append(js.Ingredients, jsonIngredient{
			Label: ing.Label,
			Color: ing.Color.Hex(),
			Min:   ranges[s].Min,
			Max:   ranges[s].Max,
		})
	}
	for _, s := range samples {
		pos := cfg.Position(s)
		js.Samples = append(js.Samples, jsonSample{
			ID:      s.ID,
			Percent: s.Percent[:k],
			Left:    pos.Left,
			Top:     pos.Top,
			Color:   cfg.Ingredients.Mix(s).Hex(),
		})
	}
	return js, nil
}
