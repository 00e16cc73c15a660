// Package scoring classifies parsed indicators against a national baseline.
// The outcome per indicator is coarse on purpose: -1 (below the expected
// range), 0 (within it) or 1 (above it), so downstream consumers can color
// an indicator without re-deriving statistics.
package scoring

import (
	"math"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

// DefaultConfig is the scoring configuration applied to any indicator without
// an override: compare percentages against the national figure with a 20%
// tolerance band, higher is better.
func DefaultConfig() transport.ScoringConfig {
	return transport.ScoringConfig{
		ComparisonType: transport.ComparisonRelative,
		Margin:         20,
		Direction:      transport.DirectionPositive,
	}
}

// Value scores one location indicator against its national counterpart.
//
// The compared figure is selected by cfg.ComparisonType. The baseline is
// cfg.BaseValue when set, otherwise the national figure of the same type.
// The tolerance band is |baseline| * Margin / 100 wide on each side, and only
// values strictly outside the band score non-zero. A negative direction flips
// the sign, so that exceeding a crime baseline scores -1 rather than 1.
//
// When either side of the comparison is missing the indicator is unscorable:
// the configuration is still attached but CalculatedScore stays nil. The
// inputs are never mutated.
func Value(location, national transport.ParsedValue, cfg transport.ScoringConfig) transport.ParsedValue {
	out := location
	attached := cfg
	out.Scoring = &attached
	out.CalculatedScore = nil

	value := figure(location, cfg.ComparisonType)
	baseline := cfg.BaseValue
	if baseline == nil {
		baseline = figure(national, cfg.ComparisonType)
	}
	if value == nil || baseline == nil {
		return out
	}

	margin := math.Abs(*baseline) * cfg.Margin / 100

	score := 0
	switch {
	case *value < *baseline-margin:
		score = -1
	case *value > *baseline+margin:
		score = 1
	}
	if cfg.Direction == transport.DirectionNegative {
		score = -score
	}

	out.CalculatedScore = &score
	return out
}

// Dataset scores every indicator of a location dataset against the national
// dataset, applying per-indicator overrides on top of the default
// configuration. Indicators without a national counterpart and without a
// configured base value come out unscored. The input datasets are not
// modified.
func Dataset(location, national *transport.ParsedDataset, overrides Overrides) *transport.ParsedDataset {
	if location == nil {
		return nil
	}

	scored := transport.NewParsedDataset(location.Metadata.Source, location.Metadata.FetchedAt)

	for key, pv := range location.Indicators {
		cfg := overrides.ConfigFor(location.Metadata.Source, key)

		var counterpart transport.ParsedValue
		if national != nil {
			counterpart = national.Indicators[key]
		}

		scored.Indicators[key] = Value(pv, counterpart, cfg)
	}

	return scored
}

// figure selects the compared representation of a parsed value.
func figure(pv transport.ParsedValue, ct transport.ComparisonType) *float64 {
	if ct == transport.ComparisonAbsolute {
		return pv.Absolute
	}
	return pv.Relative
}
