// Package client fetches raw statistical records from the Dutch open-data
// APIs: CBS OData for demographics and livability, RIVM StatLine for health,
// and the Politie feed on dataderden.cbs.nl for registered crime. All three
// speak the same OData dialect, so one request path serves every source.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/Pleijten-dev/GroosHub-sub002/internal/statistics/transport"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/apperr"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

const (
	// NationalRegionCode is the CBS region code for the whole country,
	// used to fetch national baseline figures.
	NationalRegionCode = "NL00"

	demographicsDataset = "84583NED"
	healthDataset       = "50090NED"
	livabilityDataset   = "85146NED"
	safetyDataset       = "47018NED"
)

// Client is the HTTP client for the statistical open-data APIs.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	cbsBase     string
	rivmBase    string
	politieBase string
	log         *logger.Logger
}

// New creates a client from the statistics configuration. A shared rate
// limiter keeps request bursts within what the open-data portals tolerate.
func New(cfg config.StatisticsConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		limiter:     rate.NewLimiter(rate.Limit(10), 4),
		cbsBase:     cfg.GetCBSBaseURL(),
		rivmBase:    cfg.GetRIVMBaseURL(),
		politieBase: cfg.GetPolitieBaseURL(),
		log:         log,
	}
}

// Fetch retrieves the raw record for one source and region.
func (c *Client) Fetch(ctx context.Context, source transport.Source, region string) (transport.RawRecord, error) {
	switch source {
	case transport.SourceDemographics:
		return c.Demographics(ctx, region)
	case transport.SourceHealth:
		return c.Health(ctx, region)
	case transport.SourceLivability:
		return c.Livability(ctx, region)
	case transport.SourceSafety:
		return c.Safety(ctx, region)
	default:
		return nil, apperr.BadRequest(fmt.Sprintf("unknown source %q", source))
	}
}

// Demographics fetches the CBS Kerncijfers record for a region.
func (c *Client) Demographics(ctx context.Context, region string) (transport.RawRecord, error) {
	return c.fetchTypedRecord(ctx, c.cbsBase, demographicsDataset, region)
}

// Health fetches the RIVM district health survey record for a region.
func (c *Client) Health(ctx context.Context, region string) (transport.RawRecord, error) {
	return c.fetchTypedRecord(ctx, c.rivmBase, healthDataset, region)
}

// Livability fetches the livability survey record for a region.
func (c *Client) Livability(ctx context.Context, region string) (transport.RawRecord, error) {
	return c.fetchTypedRecord(ctx, c.cbsBase, livabilityDataset, region)
}

// Safety fetches the Politie registered-crime rows for a region and folds
// them into a single record keyed by crime code. The crime feed is shaped
// differently from the other sources: one row per crime type rather than one
// wide row per region.
func (c *Client) Safety(ctx context.Context, region string) (transport.RawRecord, error) {
	query := url.Values{}
	query.Set("$filter", regionFilter(region))

	var payload struct {
		Value []crimeRow `json:"value"`
	}
	if err := c.getOData(ctx, c.politieBase, safetyDataset, query, &payload); err != nil {
		return nil, err
	}
	if len(payload.Value) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("no crime data for region %s", region))
	}

	record := make(transport.RawRecord, len(payload.Value))
	for _, row := range payload.Value {
		code := trimRegionPadding(row.SoortMisdrijf)
		if code == "" {
			continue
		}
		record["Crime_"+code] = row.Registered
	}
	return record, nil
}

// crimeRow is one row of the Politie crime feed.
type crimeRow struct {
	SoortMisdrijf string      `json:"SoortMisdrijf"`
	Registered    interface{} `json:"GeregistreerdeMisdrijven_1"`
}

// fetchTypedRecord retrieves the single TypedDataSet row for a region.
func (c *Client) fetchTypedRecord(ctx context.Context, base, dataset, region string) (transport.RawRecord, error) {
	query := url.Values{}
	query.Set("$filter", regionFilter(region))
	query.Set("$top", "1")

	var payload struct {
		Value []transport.RawRecord `json:"value"`
	}
	if err := c.getOData(ctx, base, dataset, query, &payload); err != nil {
		return nil, err
	}
	if len(payload.Value) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("no data in %s for region %s", dataset, region))
	}
	return payload.Value[0], nil
}

func (c *Client) getOData(ctx context.Context, base, dataset string, query url.Values, dest interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/TypedDataSet?%s", base, dataset, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError(dataset, "fetch", err)
		return apperr.Wrap(apperr.KindUnavailable, fmt.Sprintf("dataset %s unreachable", dataset), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("status %d", resp.StatusCode)
		c.log.UpstreamError(dataset, "fetch", err)
		return apperr.Unavailable(fmt.Sprintf("dataset %s returned status %d", dataset, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.log.UpstreamError(dataset, "decode", err)
		return apperr.Wrap(apperr.KindUnavailable, fmt.Sprintf("dataset %s payload malformed", dataset), err)
	}
	return nil
}

// regionFilter builds the OData filter for a region code. CBS stores region
// codes right-padded to ten characters, so an exact match needs the padding.
func regionFilter(region string) string {
	return fmt.Sprintf("WijkenEnBuurten eq '%-10s'", region)
}

func trimRegionPadding(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return s[:end]
}
