package parse

import (
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/normalize"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

const (
	keyTotalPopulation = "AantalInwoners_5"
	keyTotalHouseholds = "HuishoudensTotaal_28"
	keyWesternTotal    = "WestersTotaal_17"
	keyNonWesternTotal = "NietWestersTotaal_18"
	keyNativeDutch     = "Autochtoon"
)

// demographicsFields is the derivation table for the CBS Kerncijfers feed.
// Head counts derive a percentage against total inhabitants, household counts
// against total households, scalars and averages keep only their absolute
// figure, and textual metadata keeps neither.
var demographicsFields = []field{
	{key: "Gemeentenaam_1", denom: denomText},
	{key: "SoortRegio_2", denom: denomText},
	{key: keyTotalPopulation, denom: denomNone, unit: "inwoners"},
	{key: "Mannen_6", denom: denomPopulation, unit: "inwoners"},
	{key: "Vrouwen_7", denom: denomPopulation, unit: "inwoners"},
	{key: "k_0Tot15Jaar_8", denom: denomPopulation, unit: "inwoners"},
	{key: "k_15Tot25Jaar_9", denom: denomPopulation, unit: "inwoners"},
	{key: "k_25Tot45Jaar_10", denom: denomPopulation, unit: "inwoners"},
	{key: "k_45Tot65Jaar_11", denom: denomPopulation, unit: "inwoners"},
	{key: "k_65JaarOfOuder_12", denom: denomPopulation, unit: "inwoners"},
	{key: "Ongehuwd_13", denom: denomPopulation, unit: "inwoners"},
	{key: "Gehuwd_14", denom: denomPopulation, unit: "inwoners"},
	{key: "Gescheiden_15", denom: denomPopulation, unit: "inwoners"},
	{key: "Verweduwd_16", denom: denomPopulation, unit: "inwoners"},
	{key: keyWesternTotal, denom: denomPopulation, unit: "inwoners"},
	{key: keyNonWesternTotal, denom: denomPopulation, unit: "inwoners"},
	{key: "Marokko_19", denom: denomPopulation, unit: "inwoners"},
	{key: "NederlandseAntillenEnAruba_20", denom: denomPopulation, unit: "inwoners"},
	{key: "Suriname_21", denom: denomPopulation, unit: "inwoners"},
	{key: "Turkije_22", denom: denomPopulation, unit: "inwoners"},
	{key: "OverigNietWesters_23", denom: denomPopulation, unit: "inwoners"},
	{key: "GeboorteTotaal_24", denom: denomPopulation, unit: "inwoners"},
	{key: "SterfteTotaal_26", denom: denomPopulation, unit: "inwoners"},
	{key: keyTotalHouseholds, denom: denomNone, unit: "huishoudens"},
	{key: "Eenpersoonshuishoudens_29", denom: denomHouseholds, unit: "huishoudens"},
	{key: "HuishoudensZonderKinderen_30", denom: denomHouseholds, unit: "huishoudens"},
	{key: "HuishoudensMetKinderen_31", denom: denomHouseholds, unit: "huishoudens"},
	{key: "GemiddeldeHuishoudensgrootte_32", denom: denomNone, unit: "personen"},
	{key: "Bevolkingsdichtheid_33", denom: denomNone, unit: "inwoners/km²"},
	{key: "Woningvoorraad_34", denom: denomNone, unit: "woningen"},
	{key: "GemiddeldeWoningwaarde_35", denom: denomNone, unit: "€ x1000"},
	{key: "GemiddeldElektriciteitsverbruikTotaal_47", denom: denomNone, unit: "kWh"},
	{key: "GemiddeldAardgasverbruikTotaal_55", denom: denomNone, unit: "m³"},
	{key: "AfstandTotHuisartsenpraktijk_95", denom: denomNone, unit: "km"},
	{key: "AfstandTotGroteSupermarkt_96", denom: denomNone, unit: "km"},
	{key: "AfstandTotKinderdagverblijf_97", denom: denomNone, unit: "km"},
	{key: "AfstandTotSchool_98", denom: denomNone, unit: "km"},
	{key: "OppervlakteTotaal_109", denom: denomNone, unit: "ha"},
	{key: "OppervlakteLand_110", denom: denomNone, unit: "ha"},
}

// Demographics parses a raw CBS Kerncijfers record. It also synthesizes the
// "Autochtoon" indicator, which the upstream feed does not report directly:
// inhabitants minus both migration-background totals. The derived figure is
// only produced when all three inputs are present.
func Demographics(raw transport.RawRecord, now time.Time) *transport.ParsedDataset {
	ds := transport.NewParsedDataset(transport.SourceDemographics, now)

	population := raw.Number(keyTotalPopulation)
	households := raw.Number(keyTotalHouseholds)

	for _, f := range demographicsFields {
		pv := transport.ParsedValue{
			Title:         normalize.DemographicsKey(f.key),
			OriginalValue: originalValue(raw, f.key),
			Unit:          f.unit,
		}
		num := raw.Number(f.key)
		switch f.denom {
		case denomText:
			// metadata, no figures
		case denomNone:
			pv.Absolute = num
		case denomPopulation:
			pv.Absolute = num
			pv.Relative = ratio(num, population)
		case denomHouseholds:
			pv.Absolute = num
			pv.Relative = ratio(num, households)
		}
		ds.Indicators[f.key] = pv
	}

	native := nativeDutch(population, raw.Number(keyWesternTotal), raw.Number(keyNonWesternTotal))
	ds.Indicators[keyNativeDutch] = transport.ParsedValue{
		Title:    normalize.DemographicsKey(keyNativeDutch),
		Absolute: native,
		Relative: ratio(native, population),
		Unit:     "inwoners",
	}

	return ds
}

func nativeDutch(population, western, nonWestern *float64) *float64 {
	if population == nil || western == nil || nonWestern == nil {
		return nil
	}
	n := *population - *western - *nonWestern
	return &n
}
