// Package transport provides DTOs for the statistics domain: the raw upstream
// record shape, the canonical parsed indicator, and scoring configuration.
package transport

import (
	"strconv"
	"strings"
	"time"
)

// Source identifies one of the four government statistical datasets.
type Source string

const (
	// SourceDemographics is CBS "Kerncijfers wijken en buurten" population data.
	SourceDemographics Source = "demographics"
	// SourceHealth is RIVM "Gezondheid per wijk en buurt" survey data.
	SourceHealth Source = "health"
	// SourceLivability is CBS livability/perception survey data.
	SourceLivability Source = "livability"
	// SourceSafety is Politie registered crime data.
	SourceSafety Source = "safety"
)

// Sources lists all supported sources in the order they are processed.
// Demographics comes first because it supplies the population denominator
// the other three parsers need.
var Sources = []Source{SourceDemographics, SourceHealth, SourceLivability, SourceSafety}

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceDemographics, SourceHealth, SourceLivability, SourceSafety:
		return true
	}
	return false
}

// RawRecord is one location's record for one source as delivered by the
// upstream API: an opaque bag of string keys mapping to numbers, strings or
// nulls. Upstream schemas are unstable, so no fields are assumed beyond what
// the per-source derivation tables reference.
type RawRecord map[string]interface{}

// Number extracts the value under key as a float, applying the shared
// null-sentinel policy: absent keys, nulls, empty strings and the CBS "."
// placeholder all yield nil, as do strings that do not parse as a number.
func (r RawRecord) Number(key string) *float64 {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		f := v
		return &f
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || trimmed == "." {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// ComparisonType selects which figure of a ParsedValue is compared during
// scoring. The values mirror the upstream configuration vocabulary.
type ComparisonType string

const (
	// ComparisonRelative compares the percentage figure.
	ComparisonRelative ComparisonType = "relatief"
	// ComparisonAbsolute compares the count figure.
	ComparisonAbsolute ComparisonType = "absoluut"
)

// Direction indicates whether a higher value is better (positive) or worse
// (negative, e.g. crime rates).
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// ScoringConfig controls how one indicator is classified against its baseline.
type ScoringConfig struct {
	// ComparisonType selects relative or absolute comparison.
	ComparisonType ComparisonType `json:"comparisonType" yaml:"comparisonType"`
	// Margin is the tolerance band in percent of the baseline.
	Margin float64 `json:"margin" yaml:"margin"`
	// BaseValue overrides the national baseline when set.
	BaseValue *float64 `json:"baseValue" yaml:"baseValue"`
	// Direction inverts non-zero scores for lower-is-better indicators.
	Direction Direction `json:"direction" yaml:"direction"`
}

// ParsedValue is the canonical output unit for a single indicator.
type ParsedValue struct {
	// Title is the human-readable label resolved by the key normalizer.
	Title string `json:"title"`
	// OriginalValue is the verbatim source value.
	OriginalValue interface{} `json:"originalValue"`
	// Absolute is the count-based representation, nil when not derivable.
	Absolute *float64 `json:"absolute"`
	// Relative is the percentage representation (0-100), nil when not derivable.
	Relative *float64 `json:"relative"`
	// Unit is a display hint (%, kWh, km, ha, ...); it never affects computation.
	Unit string `json:"unit,omitempty"`
	// Scoring carries the configuration used when the value was scored.
	Scoring *ScoringConfig `json:"scoring,omitempty"`
	// CalculatedScore is -1 (below), 0 (within) or 1 (above) the expected
	// range, nil when the indicator is unscorable.
	CalculatedScore *int `json:"calculatedScore,omitempty"`
}

// DatasetMetadata describes where and when a dataset was produced.
type DatasetMetadata struct {
	Source    Source    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// ParsedDataset is the full parsed output for one (location, source) pair.
// Indicators are keyed by the raw source key, not the display label, so joins
// between a location dataset and the national dataset stay stable.
type ParsedDataset struct {
	Indicators map[string]ParsedValue `json:"indicators"`
	Metadata   DatasetMetadata        `json:"metadata"`
}

// NewParsedDataset creates an empty dataset for a source stamped with now.
func NewParsedDataset(source Source, now time.Time) *ParsedDataset {
	return &ParsedDataset{
		Indicators: make(map[string]ParsedValue),
		Metadata:   DatasetMetadata{Source: source, FetchedAt: now},
	}
}
