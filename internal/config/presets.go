package config

import "sort"

// Presets are named starting points; CLI flags override their fields.
var Presets = map[string]*Config{
	"small": {
		Width: 10, Height: 8, Bias: DefaultBias,
	},
	"classic": {
		Width: 40, Height: 40, Bias: DefaultBias,
	},
	"wide": {
		Width: 80, Height: 24, Start: StartConfig{X: 40, Y: 12}, Bias: DefaultBias,
	},
	"corridors": {
		Width: 30, Height: 20, Bias: 0,
	},
	"bushy": {
		Width: 30, Height: 20, Bias: 1,
	},
}

// PresetInfo describes each preset in one line.
var PresetInfo = map[string]string{
	"small":     "10x8 quick look",
	"classic":   "40x40 from the top-left corner",
	"wide":      "terminal-shaped, grown from the centre",
	"corridors": "always extends the newest branch",
	"bushy":     "always takes the oldest candidate",
}

// GetPreset returns a copy of the named preset filled in over the
// defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = p.Width, p.Height
	cfg.Start = p.Start
	cfg.Bias = p.Bias
	cfg.Seed = p.Seed
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
