// Package service orchestrates the statistics pipeline: fetch raw records,
// parse them into canonical datasets, cache the results, and score location
// datasets against the national baseline.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/client"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/parse"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/scoring"
	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/apperr"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/cache"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

// Fetcher retrieves one raw upstream record. Satisfied by client.Client.
type Fetcher interface {
	Fetch(ctx context.Context, source transport.Source, region string) (transport.RawRecord, error)
}

// Profile bundles the parsed datasets of one region. Sources that hold no
// data for the region are absent from the map.
type Profile struct {
	Region   string                                        `json:"region"`
	Datasets map[transport.Source]*transport.ParsedDataset `json:"datasets"`
}

// Service is the statistics orchestrator.
type Service struct {
	fetcher     Fetcher
	store       cache.Store
	overrides   scoring.Overrides
	datasetTTL  time.Duration
	nationalTTL time.Duration
	log         *logger.Logger
	now         func() time.Time
}

// New creates the statistics service. The overrides are resolved once at
// startup and injected here; the service never reloads them.
func New(fetcher Fetcher, store cache.Store, overrides scoring.Overrides, cfg config.StatisticsConfig, log *logger.Logger) *Service {
	return &Service{
		fetcher:     fetcher,
		store:       store,
		overrides:   overrides,
		datasetTTL:  cfg.GetDatasetCacheTTL(),
		nationalTTL: cfg.GetNationalCacheTTL(),
		log:         log,
		now:         time.Now,
	}
}

// Dataset returns the parsed dataset for one source and region, served from
// cache when possible. For the non-demographics sources the region's
// demographics are resolved first, because their parsers derive counts and
// rates from the population figure.
func (s *Service) Dataset(ctx context.Context, region string, source transport.Source) (*transport.ParsedDataset, error) {
	if !source.Valid() {
		return nil, apperr.BadRequest(fmt.Sprintf("unknown source %q", source))
	}
	if source == transport.SourceDemographics {
		return s.demographics(ctx, region)
	}

	key := cacheKey(source, region)
	if ds, ok := s.cached(ctx, key); ok {
		return ds, nil
	}

	demographics, err := s.demographics(ctx, region)
	if err != nil {
		return nil, err
	}

	ds, err := s.fetchAndParse(ctx, region, source, parse.ContextFrom(demographics))
	if err != nil {
		return nil, err
	}

	s.put(ctx, key, region, ds)
	return ds, nil
}

// Profile returns all parsed datasets for a region. Demographics resolves
// first and supplies the population denominator, then the remaining sources
// load concurrently. A source without data for the region is skipped; any
// other failure aborts the profile.
func (s *Service) Profile(ctx context.Context, region string) (*Profile, error) {
	demographics, err := s.demographics(ctx, region)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		Region: region,
		Datasets: map[transport.Source]*transport.ParsedDataset{
			transport.SourceDemographics: demographics,
		},
	}

	parseCtx := parse.ContextFrom(demographics)
	results := make([]*transport.ParsedDataset, len(transport.Sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range transport.Sources {
		if source == transport.SourceDemographics {
			continue
		}
		i, source := i, source
		g.Go(func() error {
			ds, err := s.sourceDataset(gctx, region, source, parseCtx)
			if err != nil {
				if apperr.Is(err, apperr.KindNotFound) {
					s.log.WithSource(string(source)).Info("no data for region", "region", region)
					return nil
				}
				return err
			}
			results[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, source := range transport.Sources {
		if results[i] != nil {
			profile.Datasets[source] = results[i]
		}
	}
	return profile, nil
}

// National returns the country-wide baseline profile, cached under a longer
// TTL than regional data since the national figures barely move.
func (s *Service) National(ctx context.Context) (*Profile, error) {
	return s.Profile(ctx, client.NationalRegionCode)
}

// ScoredProfile returns the region's profile with every indicator scored
// against the national baseline. Sources missing from the national profile
// leave their indicators unscored rather than failing the request.
func (s *Service) ScoredProfile(ctx context.Context, region string) (*Profile, error) {
	profile, err := s.Profile(ctx, region)
	if err != nil {
		return nil, err
	}

	national, err := s.National(ctx)
	if err != nil {
		return nil, err
	}

	scored := &Profile{
		Region:   profile.Region,
		Datasets: make(map[transport.Source]*transport.ParsedDataset, len(profile.Datasets)),
	}
	for source, ds := range profile.Datasets {
		scored.Datasets[source] = scoring.Dataset(ds, national.Datasets[source], s.overrides)
	}
	return scored, nil
}

func (s *Service) demographics(ctx context.Context, region string) (*transport.ParsedDataset, error) {
	key := cacheKey(transport.SourceDemographics, region)
	if ds, ok := s.cached(ctx, key); ok {
		return ds, nil
	}

	ds, err := s.fetchAndParse(ctx, region, transport.SourceDemographics, parse.Context{})
	if err != nil {
		return nil, err
	}

	s.put(ctx, key, region, ds)
	return ds, nil
}

// sourceDataset is the cache-then-fetch path for a non-demographics source
// when the parse context is already known.
func (s *Service) sourceDataset(ctx context.Context, region string, source transport.Source, parseCtx parse.Context) (*transport.ParsedDataset, error) {
	key := cacheKey(source, region)
	if ds, ok := s.cached(ctx, key); ok {
		return ds, nil
	}

	ds, err := s.fetchAndParse(ctx, region, source, parseCtx)
	if err != nil {
		return nil, err
	}

	s.put(ctx, key, region, ds)
	return ds, nil
}

func (s *Service) fetchAndParse(ctx context.Context, region string, source transport.Source, parseCtx parse.Context) (*transport.ParsedDataset, error) {
	raw, err := s.fetcher.Fetch(ctx, source, region)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch source {
	case transport.SourceDemographics:
		return parse.Demographics(raw, now), nil
	case transport.SourceHealth:
		return parse.Health(raw, parseCtx, now), nil
	case transport.SourceLivability:
		return parse.Livability(raw, parseCtx, now), nil
	case transport.SourceSafety:
		return parse.Safety(raw, parseCtx, now), nil
	default:
		return nil, apperr.BadRequest(fmt.Sprintf("unknown source %q", source))
	}
}

func (s *Service) cached(ctx context.Context, key string) (*transport.ParsedDataset, bool) {
	if s.store == nil {
		return nil, false
	}
	var ds transport.ParsedDataset
	hit, err := s.store.GetJSON(ctx, key, &ds)
	if err != nil {
		s.log.CacheError("get", key, err)
		return nil, false
	}
	if !hit {
		return nil, false
	}
	return &ds, true
}

func (s *Service) put(ctx context.Context, key, region string, ds *transport.ParsedDataset) {
	if s.store == nil {
		return
	}
	ttl := s.datasetTTL
	if region == client.NationalRegionCode {
		ttl = s.nationalTTL
	}
	if err := s.store.SetJSON(ctx, key, ds, ttl); err != nil {
		s.log.CacheError("set", key, err)
	}
}

func cacheKey(source transport.Source, region string) string {
	return fmt.Sprintf("stats:%s:%s", source, region)
}
