package normalize

// healthLabels maps RIVM district health survey field keys to display labels.
// All indicators in this source are percentages of the adult population.
var healthLabels = map[string]string{
	"ErvarenGezondheidGoedZeerGoed_5":   "Ervaren gezondheid: goed of zeer goed",
	"EenOfMeerLangdurigeAandoeningen_6": "Eén of meer langdurige aandoeningen",
	"BeperktVanwegeGezondheid_7":        "Beperkt vanwege gezondheid",
	"ErnstigBeperktVanwegeGezondheid_8": "Ernstig beperkt vanwege gezondheid",
	"Overgewicht_9":                     "Overgewicht",
	"ErnstigOvergewicht_10":             "Ernstig overgewicht",
	"Roker_11":                          "Roker",
	"VoldoetAanAlcoholRichtlijn_12":     "Voldoet aan alcoholrichtlijn",
	"ZwareDrinker_13":                   "Zware drinker",
	"OvermatigeDrinker_14":              "Overmatige drinker",
	"VoldoetAanBeweegrichtlijn_15":      "Voldoet aan beweegrichtlijn",
	"WekelijkseSporter_16":              "Wekelijkse sporter",
	"HoogRisicoOpAngstOfDepressie_17":   "Hoog risico op angst of depressie",
	"VeelStressInAfgelopen4Weken_18":    "Veel stress in afgelopen 4 weken",
	"Eenzaam_19":                        "Eenzaam",
	"ErnstigZeerErnstigEenzaam_20":      "Ernstig of zeer ernstig eenzaam",
	"Mantelzorger_21":                   "Mantelzorger",
	"MoeiteMetRondkomen_22":             "Moeite met rondkomen",
}

// HealthKey returns the display label for a RIVM health field key, or the key
// itself when unknown.
func HealthKey(key string) string {
	if label, ok := healthLabels[key]; ok {
		return label
	}
	return key
}

// IsKnownHealthKey reports whether key has a mapped label.
func IsKnownHealthKey(key string) bool {
	_, ok := healthLabels[key]
	return ok
}
