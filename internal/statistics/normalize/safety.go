package normalize

import "regexp"

// crimeCodePattern matches the Politie major.minor.sub crime taxonomy inside a
// raw key, e.g. "1.1.1" in "Crime_1.1.1".
var crimeCodePattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// crimeLabels maps Politie crime taxonomy codes to display labels.
var crimeLabels = map[string]string{
	"0.0.0": "Totaal misdrijven",
	"1.1.1": "Diefstal/inbraak woning",
	"1.1.2": "Diefstal/inbraak box/garage/schuur",
	"1.2.1": "Diefstal uit/vanaf motorvoertuigen",
	"1.2.2": "Diefstal van motorvoertuigen",
	"1.2.3": "Diefstal van brom-, snor-, fietsen",
	"1.2.4": "Zakkenrollerij",
	"1.2.5": "Diefstal af/uit/van overige voertuigen",
	"1.3.1": "Ongevallen (weg)",
	"1.4.1": "Zedenmisdrijf",
	"1.4.2": "Moord, doodslag",
	"1.4.3": "Openlijk geweld (persoon)",
	"1.4.4": "Bedreiging",
	"1.4.5": "Mishandeling",
	"1.4.6": "Straatroof",
	"1.4.7": "Overval",
	"1.6.1": "Brand/ontploffing",
	"1.6.2": "Overige vermogensdelicten",
	"2.1.1": "Drugs/drankoverlast",
	"2.2.1": "Vernieling/zaakbeschadiging",
	"2.4.1": "Burengerucht (relatieproblemen)",
	"2.4.2": "Huisvredebreuk",
	"2.5.1": "Diefstal/inbraak bedrijven en instellingen",
	"2.5.2": "Winkeldiefstal",
	"2.6.9": "Vuurwerk",
	"2.7.2": "Bijzondere wetten",
	"2.7.3": "Leefbaarheid (overig)",
	"3.1.1": "Drugshandel",
	"3.1.3": "Wapenhandel",
	"3.5.2": "Onder invloed (weg)",
	"3.6.4": "Aantasting openbare orde",
	"3.7.1": "Discriminatie",
	"3.7.4": "Cybercrime",
	"3.9.1": "Horizontale fraude",
	"3.9.2": "Verticale fraude",
}

// SafetyKey returns the display label for a Politie crime key. The key may be
// a bare code ("1.1.1") or carry a prefix ("Crime_1.1.1"); the code is
// extracted by pattern match before lookup. Keys without a recognizable code,
// or with an unmapped code, pass through unchanged.
func SafetyKey(key string) string {
	code := crimeCodePattern.FindString(key)
	if code == "" {
		return key
	}
	if label, ok := crimeLabels[code]; ok {
		return label
	}
	return key
}

// CrimeCode extracts the major.minor.sub code from a raw safety key.
// Returns "" when the key contains no code.
func CrimeCode(key string) string {
	return crimeCodePattern.FindString(key)
}

// IsKnownCrimeCode reports whether code is present in the crime taxonomy table.
func IsKnownCrimeCode(code string) bool {
	_, ok := crimeLabels[code]
	return ok
}
