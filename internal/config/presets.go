package config

// Presets holds named deck configurations covering the typical footbridge
// range of the jogger load case.
var Presets = map[string]*Config{
	"steel-light": {
		Span:  SpanConfig{Length: 10, Velocity: 3, Frequency: 2.8, Damping: 0.006, Mass: 5000},
		Trace: TraceConfig{Samples: DefaultTraceSamples, Duration: DefaultTraceDuration},
	},
	"steel-long": {
		Span:  SpanConfig{Length: 30, Velocity: 3, Frequency: 2.3, Damping: 0.004, Mass: 24000},
		Trace: TraceConfig{Samples: DefaultTraceSamples, Duration: DefaultTraceDuration},
	},
	"concrete": {
		Span:  SpanConfig{Length: 18, Velocity: 3, Frequency: 2.5, Damping: 0.014, Mass: 40000},
		Trace: TraceConfig{Samples: DefaultTraceSamples, Duration: DefaultTraceDuration},
	},
	"timber": {
		Span:  SpanConfig{Length: 12, Velocity: 3, Frequency: 2.6, Damping: 0.01, Mass: 6500},
		Trace: TraceConfig{Samples: DefaultTraceSamples, Duration: DefaultTraceDuration},
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
