package config

var Presets = map[string]map[string]*Config{
	"logistic": {
		"classic": {
			Map: "logistic", X0: 0.5, RMin: 2.8, RMax: 4.0,
			RPoints: 2000, Skip: 600, Samples: 200,
		},
		"cascade": {
			Map: "logistic", X0: 0.5, RMin: 2.9, RMax: 3.6,
			RPoints: 2500, Skip: 800, Samples: 150,
		},
		"edge-of-chaos": {
			Map: "logistic", X0: 0.5, RMin: 3.5, RMax: 3.7,
			RPoints: 3000, Skip: 1000, Samples: 250,
		},
		"window": {
			Map: "logistic", X0: 0.5, RMin: 3.82, RMax: 3.87,
			RPoints: 2500, Skip: 1000, Samples: 200,
		},
	},
	"sine": {
		"classic": {
			Map: "sine", X0: 0.5, RMin: 0.7, RMax: 1.0,
			RPoints: 2000, Skip: 600, Samples: 200,
		},
	},
	"tent": {
		"classic": {
			Map: "tent", X0: 0.4, RMin: 1.0, RMax: 2.0,
			RPoints: 2000, Skip: 400, Samples: 200,
		},
	},
	"cubic": {
		"classic": {
			Map: "cubic", X0: 0.3, RMin: 2.0, RMax: 3.0,
			RPoints: 2000, Skip: 600, Samples: 200,
		},
	},
	"gauss": {
		"classic": {
			Map: "gauss", X0: 0.1, RMin: -1.0, RMax: 1.0,
			RPoints: 2000, Skip: 600, Samples: 200,
		},
	},
}

func GetPreset(mapName, preset string) *Config {
	mapPresets, ok := Presets[mapName]
	if !ok {
		return nil
	}
	cfg, ok := mapPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mapName string) []string {
	mapPresets, ok := Presets[mapName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(mapPresets))
	for name := range mapPresets {
		names = append(names, name)
	}
	return names
}
