package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/regatta/internal/race"
	"github.com/san-kum/regatta/internal/weather"
)

const (
	DefaultBoats     = 100
	DefaultFinish    = 500
	DefaultWindGain  = 50
	DefaultSolarGain = 20
)

type Config struct {
	Boats            int    `yaml:"boats"`
	Finish           int    `yaml:"finish"`
	WindGain         int    `yaml:"wind_gain"`
	WindGainSolarRig int    `yaml:"wind_gain_solar_rig"`
	SolarGain        int    `yaml:"solar_gain"`
	Seed             int64  `yaml:"seed"`
	MaxDays          int    `yaml:"max_days"`
	Windy            []bool `yaml:"windy_distribution"`
	Sunny            []bool `yaml:"sunny_distribution"`
}

func DefaultConfig() *Config {
	return &Config{
		Boats:            DefaultBoats,
		Finish:           DefaultFinish,
		WindGain:         DefaultWindGain,
		WindGainSolarRig: DefaultWindGain,
		SolarGain:        DefaultSolarGain,
		Windy:            weather.DefaultWindy,
		Sunny:            weather.DefaultSunny,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Boats <= 0 {
		return fmt.Errorf("boats must be positive, got %d", c.Boats)
	}
	return c.RaceConfig().Validate()
}

// RaceConfig maps the file-level settings onto the core parameters.
func (c *Config) RaceConfig() race.Config {
	return race.Config{
		Finish:           c.Finish,
		WindGain:         c.WindGain,
		WindGainSolarRig: c.WindGainSolarRig,
		SolarGain:        c.SolarGain,
		MaxDays:          c.MaxDays,
	}
}

// Generator builds the weather source for this configuration.
func (c *Config) Generator() (*weather.Generator, error) {
	return weather.New(weather.Marginal(c.Windy), weather.Marginal(c.Sunny), c.Seed)
}
