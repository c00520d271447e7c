package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultX0        = 0.5
	DefaultRMin      = 2.8
	DefaultRMax      = 4.0
	DefaultRPoints   = 2000
	DefaultSkip      = 600
	DefaultSamples   = 200
	DefaultWorkers   = 1
	DefaultDPI       = 350
	DefaultPointSize = 1.0
	DefaultOut       = "bifurcation.png"
)

type Config struct {
	Map     string       `yaml:"map"`
	X0      float64      `yaml:"x0"`
	RMin    float64      `yaml:"r_min"`
	RMax    float64      `yaml:"r_max"`
	RPoints int          `yaml:"r_points"`
	Skip    int          `yaml:"skip"`
	Samples int          `yaml:"samples"`
	Workers int          `yaml:"workers"`
	Render  RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	DPI        int      `yaml:"dpi"`
	PointSize  float64  `yaml:"point_size"`
	Background string   `yaml:"background"`
	Colors     []string `yaml:"colors"`
	Out        string   `yaml:"out"`
}

func DefaultConfig() *Config {
	return &Config{
		Map:     "logistic",
		X0:      DefaultX0,
		RMin:    DefaultRMin,
		RMax:    DefaultRMax,
		RPoints: DefaultRPoints,
		Skip:    DefaultSkip,
		Samples: DefaultSamples,
		Workers: DefaultWorkers,
		Render: RenderConfig{
			DPI:       DefaultDPI,
			PointSize: DefaultPointSize,
			Out:       DefaultOut,
		},
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
