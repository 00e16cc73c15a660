package scoring

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

// Override adjusts part of the default scoring configuration for a single
// indicator. Every field is optional; unset fields keep the default.
type Override struct {
	ComparisonType *transport.ComparisonType `yaml:"comparisonType"`
	Margin         *float64                  `yaml:"margin"`
	BaseValue      *float64                  `yaml:"baseValue"`
	Direction      *transport.Direction      `yaml:"direction"`
}

func (o Override) apply(base transport.ScoringConfig) transport.ScoringConfig {
	if o.ComparisonType != nil {
		base.ComparisonType = *o.ComparisonType
	}
	if o.Margin != nil {
		base.Margin = *o.Margin
	}
	if o.BaseValue != nil {
		v := *o.BaseValue
		base.BaseValue = &v
	}
	if o.Direction != nil {
		base.Direction = *o.Direction
	}
	return base
}

// Overrides holds per-source, per-indicator scoring adjustments. The zero
// value is usable and yields the default configuration for everything, so a
// missing or unreadable overrides file degrades gracefully.
type Overrides map[transport.Source]map[string]Override

// ConfigFor resolves the effective scoring configuration for one indicator.
func (ov Overrides) ConfigFor(source transport.Source, key string) transport.ScoringConfig {
	cfg := DefaultConfig()
	perSource, ok := ov[source]
	if !ok {
		return cfg
	}
	o, ok := perSource[key]
	if !ok {
		return cfg
	}
	return o.apply(cfg)
}

// LoadOverrides reads scoring overrides from a YAML file. Failures are
// logged and swallowed: the engine runs fine on defaults, and a bad config
// file should never take the service down.
func LoadOverrides(path string, log *logger.Logger) Overrides {
	if path == "" {
		return Overrides{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("scoring overrides not loaded, using defaults", "path", path, "error", err.Error())
		return Overrides{}
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		log.Warn("scoring overrides malformed, using defaults", "path", path, "error", err.Error())
		return Overrides{}
	}

	for source := range ov {
		if !source.Valid() {
			log.Warn("scoring overrides reference unknown source", "source", string(source))
		}
	}

	return ov
}
