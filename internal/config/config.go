package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flow-eng/joggerspan/internal/bridge"
)

const (
	DefaultTraceSamples  = 100
	DefaultTraceDuration = 20.0
)

type Config struct {
	Span  SpanConfig  `yaml:"span"`
	Trace TraceConfig `yaml:"trace"`
}

type SpanConfig struct {
	Length    float64 `yaml:"length"`
	Velocity  float64 `yaml:"velocity"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
}

type TraceConfig struct {
	Samples  int     `yaml:"samples"`
	Duration float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Span: SpanConfig{
			Length:    bridge.DefaultLength,
			Velocity:  bridge.DefaultVelocity,
			Frequency: bridge.DefaultFrequency,
			Damping:   bridge.DefaultDamping,
			Mass:      bridge.DefaultMass,
		},
		Trace: TraceConfig{
			Samples:  DefaultTraceSamples,
			Duration: DefaultTraceDuration,
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

// ToSpan builds a bridge.Span from the configured parameters.
func (c *Config) ToSpan() *bridge.Span {
	return &bridge.Span{
		Length:    c.Span.Length,
		Velocity:  c.Span.Velocity,
		Frequency: c.Span.Frequency,
		Damping:   c.Span.Damping,
		Mass:      c.Span.Mass,
	}
}
