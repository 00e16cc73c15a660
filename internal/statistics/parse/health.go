package parse

import (
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/normalize"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

// healthFields lists the RIVM survey percentages in presentation order.
// Every field follows the same rule: the source reports a percentage, the
// absolute figure is derived against the area's population.
var healthFields = []string{
	"ErvarenGezondheidGoedZeerGoed_5",
	"EenOfMeerLangdurigeAandoeningen_6",
	"BeperktVanwegeGezondheid_7",
	"ErnstigBeperktVanwegeGezondheid_8",
	"Overgewicht_9",
	"ErnstigOvergewicht_10",
	"Roker_11",
	"VoldoetAanAlcoholRichtlijn_12",
	"ZwareDrinker_13",
	"OvermatigeDrinker_14",
	"VoldoetAanBeweegrichtlijn_15",
	"WekelijkseSporter_16",
	"HoogRisicoOpAngstOfDepressie_17",
	"VeelStressInAfgelopen4Weken_18",
	"Eenzaam_19",
	"ErnstigZeerErnstigEenzaam_20",
	"Mantelzorger_21",
	"MoeiteMetRondkomen_22",
}

// Health parses a raw RIVM district health survey record. The source values
// are percentages, so they become the relative figure verbatim and the
// absolute figure is a rounded head count against ctx.TotalPopulation.
func Health(raw transport.RawRecord, ctx Context, now time.Time) *transport.ParsedDataset {
	ds := transport.NewParsedDataset(transport.SourceHealth, now)
	for _, key := range healthFields {
		pct := raw.Number(key)
		ds.Indicators[key] = transport.ParsedValue{
			Title:         normalize.HealthKey(key),
			OriginalValue: originalValue(raw, key),
			Absolute:      percentToCount(pct, ctx.TotalPopulation),
			Relative:      pct,
			Unit:          "%",
		}
	}
	return ds
}
