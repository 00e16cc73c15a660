package parse

import (
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/normalize"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

// Safety parses a raw Politie crime record. Unlike the other sources the key
// set is open-ended: every field whose key embeds a crime code (for example
// "Crime_1.1.1") becomes an indicator, keys without a code are treated as
// record metadata and skipped. The source value is a registered incident
// count; the relative figure is incidents per 100 inhabitants.
func Safety(raw transport.RawRecord, ctx Context, now time.Time) *transport.ParsedDataset {
	ds := transport.NewParsedDataset(transport.SourceSafety, now)
	for key, original := range raw {
		if normalize.CrimeCode(key) == "" {
			continue
		}
		count := raw.Number(key)
		ds.Indicators[key] = transport.ParsedValue{
			Title:         normalize.SafetyKey(key),
			OriginalValue: original,
			Absolute:      count,
			Relative:      ratio(count, ctx.TotalPopulation),
			Unit:          "misdrijven",
		}
	}
	return ds
}
