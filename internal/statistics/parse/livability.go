package parse

import (
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/normalize"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

// livabilityFields lists the livability survey percentages in presentation
// order. Derivation is identical to the health source.
var livabilityFields = []string{
	"TevredenMetWoonomgeving_4",
	"TevredenMetWoning_5",
	"ErvaartVeelOverlastInBuurt_6",
	"VoeltZichVeiligInBuurt_7",
	"VeelContactMetBuren_8",
	"VoeltZichVerbondenMetBuurt_9",
	"ActiefInDeBuurt_10",
	"TevredenMetGroenvoorziening_11",
	"TevredenMetVoorzieningen_12",
	"WilVerhuizenBinnen2Jaar_13",
}

// Livability parses a raw livability survey record. Source values are
// percentages of surveyed residents; the absolute figure is a rounded head
// count against ctx.TotalPopulation.
func Livability(raw transport.RawRecord, ctx Context, now time.Time) *transport.ParsedDataset {
	ds := transport.NewParsedDataset(transport.SourceLivability, now)
	for _, key := range livabilityFields {
		pct := raw.Number(key)
		ds.Indicators[key] = transport.ParsedValue{
			Title:         normalize.LivabilityKey(key),
			OriginalValue: originalValue(raw, key),
			Absolute:      percentToCount(pct, ctx.TotalPopulation),
			Relative:      pct,
			Unit:          "%",
		}
	}
	return ds
}
