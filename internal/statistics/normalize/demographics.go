// Package normalize maps opaque, suffix-encoded source field keys to stable
// human-readable labels. Each source carries its own lookup table; unknown
// keys pass through unchanged so callers never have to guard against misses.
//
// The tables are pinned to one upstream schema version per source (the CBS
// "Kerncijfers wijken en buurten" suffix scheme for demographics, the RIVM
// district health survey for health, the Politie crime taxonomy for safety).
// Suffix numbers shift between dataset vintages, so the tables are the single
// place to update when a new vintage is adopted.
package normalize

// demographicsLabels maps CBS Kerncijfers field keys to display labels.
// The numeric suffixes are column ordinals from the upstream TypedDataSet.
var demographicsLabels = map[string]string{
	"Gemeentenaam_1":                           "Gemeentenaam",
	"SoortRegio_2":                             "Soort regio",
	"AantalInwoners_5":                         "Aantal inwoners",
	"Mannen_6":                                 "Mannen",
	"Vrouwen_7":                                "Vrouwen",
	"k_0Tot15Jaar_8":                           "0 tot 15 jaar",
	"k_15Tot25Jaar_9":                          "15 tot 25 jaar",
	"k_25Tot45Jaar_10":                         "25 tot 45 jaar",
	"k_45Tot65Jaar_11":                         "45 tot 65 jaar",
	"k_65JaarOfOuder_12":                       "65 jaar of ouder",
	"Ongehuwd_13":                              "Ongehuwd",
	"Gehuwd_14":                                "Gehuwd",
	"Gescheiden_15":                            "Gescheiden",
	"Verweduwd_16":                             "Verweduwd",
	"WestersTotaal_17":                         "Westerse migratieachtergrond",
	"NietWestersTotaal_18":                     "Niet-westerse migratieachtergrond",
	"Marokko_19":                               "Marokkaanse achtergrond",
	"NederlandseAntillenEnAruba_20":            "Antilliaanse of Arubaanse achtergrond",
	"Suriname_21":                              "Surinaamse achtergrond",
	"Turkije_22":                               "Turkse achtergrond",
	"OverigNietWesters_23":                     "Overige niet-westerse achtergrond",
	"GeboorteTotaal_24":                        "Geboorten",
	"SterfteTotaal_26":                         "Sterfte",
	"HuishoudensTotaal_28":                     "Huishoudens totaal",
	"Eenpersoonshuishoudens_29":                "Eenpersoonshuishoudens",
	"HuishoudensZonderKinderen_30":             "Huishoudens zonder kinderen",
	"HuishoudensMetKinderen_31":                "Huishoudens met kinderen",
	"GemiddeldeHuishoudensgrootte_32":          "Gemiddelde huishoudensgrootte",
	"Bevolkingsdichtheid_33":                   "Bevolkingsdichtheid",
	"Woningvoorraad_34":                        "Woningvoorraad",
	"GemiddeldeWoningwaarde_35":                "Gemiddelde woningwaarde",
	"GemiddeldElektriciteitsverbruikTotaal_47": "Gemiddeld elektriciteitsverbruik",
	"GemiddeldAardgasverbruikTotaal_55":        "Gemiddeld aardgasverbruik",
	"AfstandTotHuisartsenpraktijk_95":          "Afstand tot huisartsenpraktijk",
	"AfstandTotGroteSupermarkt_96":             "Afstand tot grote supermarkt",
	"AfstandTotKinderdagverblijf_97":           "Afstand tot kinderdagverblijf",
	"AfstandTotSchool_98":                      "Afstand tot school",
	"OppervlakteTotaal_109":                    "Oppervlakte totaal",
	"OppervlakteLand_110":                      "Oppervlakte land",

	// Derived indicator, not present in the upstream feed.
	"Autochtoon": "Autochtoon",
}

// DemographicsKey returns the display label for a CBS demographics field key,
// or the key itself when unknown.
func DemographicsKey(key string) string {
	if label, ok := demographicsLabels[key]; ok {
		return label
	}
	return key
}

// IsKnownDemographicsKey reports whether key has a mapped label.
func IsKnownDemographicsKey(key string) bool {
	_, ok := demographicsLabels[key]
	return ok
}
