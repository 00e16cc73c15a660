// Package parse turns raw upstream records into canonical ParsedDatasets.
// Each source has a declarative derivation table describing how its fields
// map to absolute (count) and relative (percentage) figures; the parsers are
// thin loops over those tables. Parsing is pure: no I/O, inputs are never
// mutated, and malformed or missing fields degrade to nil figures instead of
// errors.
package parse

import (
	"math"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

// Context carries cross-source figures a parser needs. Demographics is parsed
// first and supplies the population denominator for the other three sources.
type Context struct {
	// TotalPopulation is the area's resolved inhabitant count, nil when the
	// demographics feed did not report one.
	TotalPopulation *float64
}

// ContextFrom derives a parse context from an already-parsed demographics
// dataset.
func ContextFrom(demographics *transport.ParsedDataset) Context {
	return Context{TotalPopulation: TotalPopulation(demographics)}
}

// TotalPopulation reads the inhabitant count from a parsed demographics
// dataset, nil when absent.
func TotalPopulation(demographics *transport.ParsedDataset) *float64 {
	if demographics == nil {
		return nil
	}
	pv, ok := demographics.Indicators[keyTotalPopulation]
	if !ok {
		return nil
	}
	return pv.Absolute
}

// denominator describes how a demographics field relates to a reference total.
type denominator int

const (
	// denomNone: a scalar with no natural denominator; only absolute is set.
	denomNone denominator = iota
	// denomText: textual metadata; both figures stay nil.
	denomText
	// denomPopulation: a head count; relative is derived against inhabitants.
	denomPopulation
	// denomHouseholds: a household count; relative is derived against
	// total households.
	denomHouseholds
)

// field is one row of a per-source derivation table.
type field struct {
	key   string
	denom denominator
	unit  string
}

// ratio returns num/denom*100, or nil when either side is missing or the
// denominator is zero. Guarding here keeps Infinity/NaN out of every dataset.
func ratio(num, denom *float64) *float64 {
	if num == nil || denom == nil || *denom == 0 {
		return nil
	}
	r := *num / *denom * 100
	return &r
}

// percentToCount converts a percentage figure to a rounded head count, or nil
// when the percentage or the population is missing.
func percentToCount(pct, population *float64) *float64 {
	if pct == nil || population == nil {
		return nil
	}
	c := math.Round(*pct * *population / 100)
	return &c
}

// originalValue returns the verbatim source value for key, nil when absent.
func originalValue(raw transport.RawRecord, key string) interface{} {
	if v, ok := raw[key]; ok {
		return v
	}
	return nil
}
