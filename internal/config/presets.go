package config

import "github.com/san-kum/regatta/internal/weather"

var Presets = map[string]*Config{
	"sprint": {
		Boats: 50, Finish: 150, WindGain: 50, WindGainSolarRig: 50, SolarGain: 20,
		Windy: weather.DefaultWindy, Sunny: weather.DefaultSunny,
	},
	"crossing": {
		Boats: 100, Finish: 500, WindGain: 50, WindGainSolarRig: 50, SolarGain: 20,
		Windy: weather.DefaultWindy, Sunny: weather.DefaultSunny,
	},
	"doldrums": {
		Boats: 100, Finish: 500, WindGain: 80, WindGainSolarRig: 80, SolarGain: 30,
		Windy: []bool{true, false, false, false, false},
		Sunny: []bool{true, true, true, true, false},
	},
	"trades": {
		Boats: 100, Finish: 800, WindGain: 60, WindGainSolarRig: 60, SolarGain: 10,
		Windy: []bool{true, true, true, true, false},
		Sunny: []bool{true, false},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
