package parse

import (
	"testing"
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fptr(f float64) *float64 { return &f }

func TestDemographicsDerivesRelativeAgainstPopulation(t *testing.T) {
	raw := transport.RawRecord{
		"AantalInwoners_5": float64(10000),
		"Mannen_6":         float64(4800),
	}

	ds := Demographics(raw, testNow)

	men := ds.Indicators["Mannen_6"]
	if men.Absolute == nil || *men.Absolute != 4800 {
		t.Fatalf("Mannen_6 absolute = %v, want 4800", men.Absolute)
	}
	if men.Relative == nil || *men.Relative != 48 {
		t.Fatalf("Mannen_6 relative = %v, want 48", men.Relative)
	}
	if men.Title != "Mannen" {
		t.Errorf("Mannen_6 title = %q, want %q", men.Title, "Mannen")
	}
}

func TestDemographicsDerivesRelativeAgainstHouseholds(t *testing.T) {
	raw := transport.RawRecord{
		"AantalInwoners_5":          float64(10000),
		"HuishoudensTotaal_28":      float64(5000),
		"Eenpersoonshuishoudens_29": float64(2000),
	}

	ds := Demographics(raw, testNow)

	single := ds.Indicators["Eenpersoonshuishoudens_29"]
	if single.Relative == nil || *single.Relative != 40 {
		t.Fatalf("Eenpersoonshuishoudens_29 relative = %v, want 40 (against households, not population)", single.Relative)
	}
}

func TestDemographicsScalarsKeepOnlyAbsolute(t *testing.T) {
	raw := transport.RawRecord{
		"AantalInwoners_5":                float64(10000),
		"GemiddeldeHuishoudensgrootte_32": float64(2.1),
	}

	ds := Demographics(raw, testNow)

	size := ds.Indicators["GemiddeldeHuishoudensgrootte_32"]
	if size.Absolute == nil || *size.Absolute != 2.1 {
		t.Fatalf("GemiddeldeHuishoudensgrootte_32 absolute = %v, want 2.1", size.Absolute)
	}
	if size.Relative != nil {
		t.Errorf("GemiddeldeHuishoudensgrootte_32 relative = %v, want nil for a scalar", *size.Relative)
	}
}

func TestDemographicsTextualFieldsHaveNoFigures(t *testing.T) {
	raw := transport.RawRecord{
		"Gemeentenaam_1": "Utrecht",
		"SoortRegio_2":   "Buurt",
	}

	ds := Demographics(raw, testNow)

	name := ds.Indicators["Gemeentenaam_1"]
	if name.OriginalValue != "Utrecht" {
		t.Errorf("Gemeentenaam_1 original = %v, want Utrecht", name.OriginalValue)
	}
	if name.Absolute != nil || name.Relative != nil {
		t.Errorf("Gemeentenaam_1 figures = (%v, %v), want both nil", name.Absolute, name.Relative)
	}
}

func TestDemographicsNullSentinelsStayNull(t *testing.T) {
	// Privacy-suppressed and missing fields must come out as nil figures,
	// never as zero.
	raw := transport.RawRecord{
		"AantalInwoners_5": float64(10000),
		"Gehuwd_14":        ".",
		"Gescheiden_15":    "",
		"Verweduwd_16":     nil,
	}

	ds := Demographics(raw, testNow)

	for _, key := range []string{"Gehuwd_14", "Gescheiden_15", "Verweduwd_16", "Ongehuwd_13"} {
		pv := ds.Indicators[key]
		if pv.Absolute != nil {
			t.Errorf("%s absolute = %v, want nil", key, *pv.Absolute)
		}
		if pv.Relative != nil {
			t.Errorf("%s relative = %v, want nil", key, *pv.Relative)
		}
	}
}

func TestDemographicsZeroPopulationYieldsNilRelatives(t *testing.T) {
	raw := transport.RawRecord{
		"AantalInwoners_5": float64(0),
		"Mannen_6":         float64(0),
	}

	ds := Demographics(raw, testNow)

	men := ds.Indicators["Mannen_6"]
	if men.Relative != nil {
		t.Fatalf("Mannen_6 relative = %v, want nil on zero population", *men.Relative)
	}
	if men.Absolute == nil || *men.Absolute != 0 {
		t.Fatalf("Mannen_6 absolute = %v, want 0 (a real zero count is kept)", men.Absolute)
	}
}

func TestDemographicsDerivesNativeDutch(t *testing.T) {
	tests := []struct {
		name string
		raw  transport.RawRecord
		want *float64
	}{
		{
			name: "all inputs present",
			raw: transport.RawRecord{
				"AantalInwoners_5":     float64(10000),
				"WestersTotaal_17":     float64(1500),
				"NietWestersTotaal_18": float64(2500),
			},
			want: fptr(6000),
		},
		{
			name: "missing migration total",
			raw: transport.RawRecord{
				"AantalInwoners_5": float64(10000),
				"WestersTotaal_17": float64(1500),
			},
			want: nil,
		},
		{
			name: "missing population",
			raw: transport.RawRecord{
				"WestersTotaal_17":     float64(1500),
				"NietWestersTotaal_18": float64(2500),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Demographics(tt.raw, testNow)
			got := ds.Indicators["Autochtoon"].Absolute
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Autochtoon absolute = %v, want nil", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("Autochtoon absolute = %v, want %v", got, *tt.want)
			}
		})
	}
}

func TestDemographicsNativeDutchRelative(t *testing.T) {
	raw := transport.RawRecord{
		"AantalInwoners_5":     float64(10000),
		"WestersTotaal_17":     float64(1500),
		"NietWestersTotaal_18": float64(800),
	}

	ds := Demographics(raw, testNow)

	native := ds.Indicators["Autochtoon"]
	if native.Absolute == nil || *native.Absolute != 7700 {
		t.Fatalf("Autochtoon absolute = %v, want 7700", native.Absolute)
	}
	if native.Relative == nil || *native.Relative != 77 {
		t.Fatalf("Autochtoon relative = %v, want 77", native.Relative)
	}
}

func TestHealthDerivesAbsoluteFromPercentage(t *testing.T) {
	raw := transport.RawRecord{
		"Roker_11": float64(18.4),
	}
	ctx := Context{TotalPopulation: fptr(10000)}

	ds := Health(raw, ctx, testNow)

	smoker := ds.Indicators["Roker_11"]
	if smoker.Relative == nil || *smoker.Relative != 18.4 {
		t.Fatalf("Roker_11 relative = %v, want 18.4", smoker.Relative)
	}
	if smoker.Absolute == nil || *smoker.Absolute != 1840 {
		t.Fatalf("Roker_11 absolute = %v, want 1840", smoker.Absolute)
	}
	if smoker.Unit != "%" {
		t.Errorf("Roker_11 unit = %q, want %%", smoker.Unit)
	}
}

func TestHealthRoundsDerivedCounts(t *testing.T) {
	raw := transport.RawRecord{
		"Eenzaam_19": float64(33.335),
	}
	ctx := Context{TotalPopulation: fptr(1000)}

	ds := Health(raw, ctx, testNow)

	lonely := ds.Indicators["Eenzaam_19"]
	if lonely.Absolute == nil || *lonely.Absolute != 333 {
		t.Fatalf("Eenzaam_19 absolute = %v, want 333 (rounded)", lonely.Absolute)
	}
}

func TestHealthWithoutPopulationKeepsPercentageOnly(t *testing.T) {
	raw := transport.RawRecord{
		"Overgewicht_9": float64(50),
	}

	ds := Health(raw, Context{}, testNow)

	weight := ds.Indicators["Overgewicht_9"]
	if weight.Relative == nil || *weight.Relative != 50 {
		t.Fatalf("Overgewicht_9 relative = %v, want 50", weight.Relative)
	}
	if weight.Absolute != nil {
		t.Fatalf("Overgewicht_9 absolute = %v, want nil without a population", *weight.Absolute)
	}
}

func TestLivabilityDerivesAbsoluteFromPercentage(t *testing.T) {
	raw := transport.RawRecord{
		"TevredenMetWoning_5": float64(85),
	}
	ctx := Context{TotalPopulation: fptr(2000)}

	ds := Livability(raw, ctx, testNow)

	satisfied := ds.Indicators["TevredenMetWoning_5"]
	if satisfied.Relative == nil || *satisfied.Relative != 85 {
		t.Fatalf("TevredenMetWoning_5 relative = %v, want 85", satisfied.Relative)
	}
	if satisfied.Absolute == nil || *satisfied.Absolute != 1700 {
		t.Fatalf("TevredenMetWoning_5 absolute = %v, want 1700", satisfied.Absolute)
	}
}

func TestSafetyDerivesRatePer100Inhabitants(t *testing.T) {
	raw := transport.RawRecord{
		"Crime_1.1.1": float64(50),
	}
	ctx := Context{TotalPopulation: fptr(10000)}

	ds := Safety(raw, ctx, testNow)

	burglary := ds.Indicators["Crime_1.1.1"]
	if burglary.Absolute == nil || *burglary.Absolute != 50 {
		t.Fatalf("Crime_1.1.1 absolute = %v, want 50", burglary.Absolute)
	}
	if burglary.Relative == nil || *burglary.Relative != 0.5 {
		t.Fatalf("Crime_1.1.1 relative = %v, want 0.5", burglary.Relative)
	}
	if burglary.Title != "Diefstal/inbraak woning" {
		t.Errorf("Crime_1.1.1 title = %q, want %q", burglary.Title, "Diefstal/inbraak woning")
	}
}

func TestSafetySkipsKeysWithoutCrimeCode(t *testing.T) {
	raw := transport.RawRecord{
		"WijkenEnBuurten": "BU03440101",
		"Crime_0.0.0":     float64(120),
	}

	ds := Safety(raw, Context{TotalPopulation: fptr(5000)}, testNow)

	if _, ok := ds.Indicators["WijkenEnBuurten"]; ok {
		t.Error("metadata key WijkenEnBuurten leaked into indicators")
	}
	if len(ds.Indicators) != 1 {
		t.Fatalf("indicator count = %d, want 1", len(ds.Indicators))
	}
}

func TestSafetyUnmappedCodeKeepsRawKeyAsTitle(t *testing.T) {
	raw := transport.RawRecord{
		"Crime_9.9.9": float64(3),
	}

	ds := Safety(raw, Context{TotalPopulation: fptr(1000)}, testNow)

	pv := ds.Indicators["Crime_9.9.9"]
	if pv.Title != "Crime_9.9.9" {
		t.Errorf("title = %q, want raw key passthrough", pv.Title)
	}
	if pv.Relative == nil || *pv.Relative != 0.3 {
		t.Errorf("relative = %v, want 0.3", pv.Relative)
	}
}

func TestSafetyNullCountsStayNull(t *testing.T) {
	raw := transport.RawRecord{
		"Crime_1.4.2": nil,
	}

	ds := Safety(raw, Context{TotalPopulation: fptr(1000)}, testNow)

	pv := ds.Indicators["Crime_1.4.2"]
	if pv.Absolute != nil || pv.Relative != nil {
		t.Errorf("figures = (%v, %v), want both nil for a null count", pv.Absolute, pv.Relative)
	}
}

func TestContextFromReadsPopulation(t *testing.T) {
	raw := transport.RawRecord{"AantalInwoners_5": float64(7500)}
	ds := Demographics(raw, testNow)

	ctx := ContextFrom(ds)
	if ctx.TotalPopulation == nil || *ctx.TotalPopulation != 7500 {
		t.Fatalf("TotalPopulation = %v, want 7500", ctx.TotalPopulation)
	}

	if got := TotalPopulation(nil); got != nil {
		t.Errorf("TotalPopulation(nil) = %v, want nil", *got)
	}
}

func TestRawRecordNumberParsesStringFigures(t *testing.T) {
	raw := transport.RawRecord{
		"AantalInwoners_5": "10000",
		"Mannen_6":         "  4800 ",
	}

	ds := Demographics(raw, testNow)

	men := ds.Indicators["Mannen_6"]
	if men.Relative == nil || *men.Relative != 48 {
		t.Fatalf("Mannen_6 relative = %v, want 48 from string-typed source values", men.Relative)
	}
}
