package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/scoring"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/apperr"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/cache"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	records map[string]transport.RawRecord
	errs    map[string]error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		calls:   make(map[string]int),
		records: make(map[string]transport.RawRecord),
		errs:    make(map[string]error),
	}
}

func (f *fakeFetcher) key(source transport.Source, region string) string {
	return fmt.Sprintf("%s:%s", source, region)
}

func (f *fakeFetcher) set(source transport.Source, region string, record transport.RawRecord) {
	f.records[f.key(source, region)] = record
}

func (f *fakeFetcher) fail(source transport.Source, region string, err error) {
	f.errs[f.key(source, region)] = err
}

func (f *fakeFetcher) callCount(source transport.Source, region string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[f.key(source, region)]
}

func (f *fakeFetcher) Fetch(ctx context.Context, source transport.Source, region string) (transport.RawRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := f.key(source, region)
	f.calls[key]++
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if record, ok := f.records[key]; ok {
		return record, nil
	}
	return nil, apperr.NotFound("no record configured")
}

func testConfig() *config.Config {
	return &config.Config{
		DatasetCacheTTL:  time.Hour,
		NationalCacheTTL: 24 * time.Hour,
	}
}

// seedRegion configures all four sources for a region with simple figures.
func seedRegion(f *fakeFetcher, region string, population float64) {
	f.set(transport.SourceDemographics, region, transport.RawRecord{
		"AantalInwoners_5": population,
		"Mannen_6":         population / 2,
	})
	f.set(transport.SourceHealth, region, transport.RawRecord{
		"Roker_11": float64(20),
	})
	f.set(transport.SourceLivability, region, transport.RawRecord{
		"TevredenMetWoning_5": float64(80),
	})
	f.set(transport.SourceSafety, region, transport.RawRecord{
		"Crime_1.1.1": float64(10),
	})
}

func newTestService(f *fakeFetcher, store cache.Store, overrides scoring.Overrides) *Service {
	return New(f, store, overrides, testConfig(), logger.New("test"))
}

func TestProfileThreadsPopulationThroughSources(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)

	svc := newTestService(f, nil, scoring.Overrides{})

	profile, err := svc.Profile(context.Background(), "BU03440101")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if len(profile.Datasets) != 4 {
		t.Fatalf("dataset count = %d, want 4", len(profile.Datasets))
	}

	// Health absolute derives from the demographics population.
	smoker := profile.Datasets[transport.SourceHealth].Indicators["Roker_11"]
	if smoker.Absolute == nil || *smoker.Absolute != 2000 {
		t.Errorf("Roker_11 absolute = %v, want 2000 (20%% of 10000)", smoker.Absolute)
	}

	// Safety relative derives from the same population.
	burglary := profile.Datasets[transport.SourceSafety].Indicators["Crime_1.1.1"]
	if burglary.Relative == nil || *burglary.Relative != 0.1 {
		t.Errorf("Crime_1.1.1 relative = %v, want 0.1", burglary.Relative)
	}
}

func TestProfileSkipsSourcesWithoutData(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)
	f.fail(transport.SourceLivability, "BU03440101", apperr.NotFound("no rows"))

	svc := newTestService(f, nil, scoring.Overrides{})

	profile, err := svc.Profile(context.Background(), "BU03440101")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if _, ok := profile.Datasets[transport.SourceLivability]; ok {
		t.Error("livability present, want skipped for a region without data")
	}
	if len(profile.Datasets) != 3 {
		t.Errorf("dataset count = %d, want 3", len(profile.Datasets))
	}
}

func TestProfileFailsOnUpstreamError(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)
	f.fail(transport.SourceSafety, "BU03440101", apperr.Unavailable("politie feed down"))

	svc := newTestService(f, nil, scoring.Overrides{})

	_, err := svc.Profile(context.Background(), "BU03440101")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("error = %v, want unavailable", err)
	}
}

func TestProfileFailsWhenRegionUnknown(t *testing.T) {
	f := newFakeFetcher()

	svc := newTestService(f, nil, scoring.Overrides{})

	_, err := svc.Profile(context.Background(), "BU99999999")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("error = %v, want not found when demographics has no region", err)
	}
}

func TestDatasetUsesCacheOnSecondCall(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)

	svc := newTestService(f, cache.NewMemory(), scoring.Overrides{})

	for i := 0; i < 3; i++ {
		ds, err := svc.Dataset(context.Background(), "BU03440101", transport.SourceHealth)
		if err != nil {
			t.Fatalf("Dataset() call %d error = %v", i, err)
		}
		smoker := ds.Indicators["Roker_11"]
		if smoker.Absolute == nil || *smoker.Absolute != 2000 {
			t.Fatalf("call %d Roker_11 absolute = %v, want 2000", i, smoker.Absolute)
		}
	}

	if got := f.callCount(transport.SourceHealth, "BU03440101"); got != 1 {
		t.Errorf("health fetch count = %d, want 1 (cache hits after first)", got)
	}
	if got := f.callCount(transport.SourceDemographics, "BU03440101"); got != 1 {
		t.Errorf("demographics fetch count = %d, want 1", got)
	}
}

func TestDatasetRejectsUnknownSource(t *testing.T) {
	svc := newTestService(newFakeFetcher(), nil, scoring.Overrides{})

	_, err := svc.Dataset(context.Background(), "BU03440101", transport.Source("weather"))
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("error = %v, want bad request", err)
	}
}

func TestScoredProfileComparesAgainstNationalBaseline(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)
	seedRegion(f, "NL00", 17000000)

	// Local smoking rate 20% vs national 20% => within band => 0.
	// Local housing satisfaction 80% vs national 50% => above band => 1.
	f.set(transport.SourceHealth, "NL00", transport.RawRecord{"Roker_11": float64(20)})
	f.set(transport.SourceLivability, "NL00", transport.RawRecord{"TevredenMetWoning_5": float64(50)})

	svc := newTestService(f, nil, scoring.Overrides{})

	profile, err := svc.ScoredProfile(context.Background(), "BU03440101")
	if err != nil {
		t.Fatalf("ScoredProfile() error = %v", err)
	}

	smoker := profile.Datasets[transport.SourceHealth].Indicators["Roker_11"]
	if smoker.CalculatedScore == nil || *smoker.CalculatedScore != 0 {
		t.Errorf("Roker_11 score = %v, want 0", smoker.CalculatedScore)
	}

	satisfied := profile.Datasets[transport.SourceLivability].Indicators["TevredenMetWoning_5"]
	if satisfied.CalculatedScore == nil || *satisfied.CalculatedScore != 1 {
		t.Errorf("TevredenMetWoning_5 score = %v, want 1", satisfied.CalculatedScore)
	}
	if satisfied.Scoring == nil {
		t.Error("scored indicator missing its scoring configuration")
	}
}

func TestScoredProfileAppliesOverrides(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)
	seedRegion(f, "NL00", 17000000)

	// Local burglary rate 0.1 per 100 vs a near-zero national rate: far
	// above band. With a negative direction that must come out as -1.
	negative := transport.DirectionNegative
	overrides := scoring.Overrides{
		transport.SourceSafety: {
			"Crime_1.1.1": {Direction: &negative},
		},
	}

	svc := newTestService(f, nil, overrides)

	profile, err := svc.ScoredProfile(context.Background(), "BU03440101")
	if err != nil {
		t.Fatalf("ScoredProfile() error = %v", err)
	}

	burglary := profile.Datasets[transport.SourceSafety].Indicators["Crime_1.1.1"]
	if burglary.CalculatedScore == nil || *burglary.CalculatedScore != -1 {
		t.Errorf("Crime_1.1.1 score = %v, want -1 with negative direction", burglary.CalculatedScore)
	}
}

func TestScoredProfileLeavesIndicatorsUnscoredWithoutNationalCounterpart(t *testing.T) {
	f := newFakeFetcher()
	seedRegion(f, "BU03440101", 10000)
	// National region exposes demographics only.
	f.set(transport.SourceDemographics, "NL00", transport.RawRecord{
		"AantalInwoners_5": float64(17000000),
	})

	svc := newTestService(f, nil, scoring.Overrides{})

	profile, err := svc.ScoredProfile(context.Background(), "BU03440101")
	if err != nil {
		t.Fatalf("ScoredProfile() error = %v", err)
	}

	smoker := profile.Datasets[transport.SourceHealth].Indicators["Roker_11"]
	if smoker.CalculatedScore != nil {
		t.Errorf("Roker_11 score = %d, want nil without a national counterpart", *smoker.CalculatedScore)
	}
}
