package normalize

// livabilityLabels maps livability survey field keys to display labels.
// All indicators in this source are percentages of surveyed residents.
var livabilityLabels = map[string]string{
	"TevredenMetWoonomgeving_4":      "Tevreden met woonomgeving",
	"TevredenMetWoning_5":            "Tevreden met woning",
	"ErvaartVeelOverlastInBuurt_6":   "Ervaart veel overlast in buurt",
	"VoeltZichVeiligInBuurt_7":       "Voelt zich veilig in buurt",
	"VeelContactMetBuren_8":          "Veel contact met buren",
	"VoeltZichVerbondenMetBuurt_9":   "Voelt zich verbonden met buurt",
	"ActiefInDeBuurt_10":             "Actief in de buurt",
	"TevredenMetGroenvoorziening_11": "Tevreden met groenvoorziening",
	"TevredenMetVoorzieningen_12":    "Tevreden met voorzieningen",
	"WilVerhuizenBinnen2Jaar_13":     "Wil verhuizen binnen 2 jaar",
}

// LivabilityKey returns the display label for a livability field key, or the
// key itself when unknown.
func LivabilityKey(key string) string {
	if label, ok := livabilityLabels[key]; ok {
		return label
	}
	return key
}

// IsKnownLivabilityKey reports whether key has a mapped label.
func IsKnownLivabilityKey(key string) bool {
	_, ok := livabilityLabels[key]
	return ok
}
