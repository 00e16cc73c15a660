package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Pleijten-dev/GroosHub-sub002/platform/config"
	"github.com/Pleijten-dev/GroosHub-sub002/platform/logger"
)

type Service struct {
	client *http.Client
	base   string
	log    *logger.Logger
}

func NewService(cfg config.LocationsConfig, log *logger.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 5 * time.Second},
		base:   cfg.GetLocatieserverBaseURL(),
		log:    log,
	}
}

// Search resolves a free-text query to areas with a CBS region code. Results
// are restricted to the three region types the statistics pipeline supports.
func (s *Service) Search(ctx context.Context, query string) ([]Location, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("fq", "type:(gemeente OR wijk OR buurt)")
	params.Add("rows", "10")

	reqURL := fmt.Sprintf("%s/free?%s", s.base, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("locatieserver", "search", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.UpstreamError("locatieserver", "search", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload locatieserverResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.log.UpstreamError("locatieserver", "decode", err)
		return nil, err
	}

	results := make([]Location, 0, len(payload.Response.Docs))
	for _, doc := range payload.Response.Docs {
		location, ok := buildLocation(doc)
		if !ok {
			continue
		}
		results = append(results, location)
	}

	return results, nil
}

func buildLocation(doc locatieserverDoc) (Location, bool) {
	code := regionCode(doc)
	if code == "" {
		return Location{}, false
	}

	return Location{
		ID:           doc.ID,
		Name:         doc.Weergavenaam,
		Type:         doc.Type,
		RegionCode:   code,
		Municipality: doc.Gemeentenaam,
	}, true
}

// regionCode builds the CBS code for a result. The Locatieserver returns bare
// digit codes, while CBS datasets key regions with a type prefix.
func regionCode(doc locatieserverDoc) string {
	switch doc.Type {
	case "gemeente":
		return prefixed("GM", doc.Gemeentecode)
	case "wijk":
		return prefixed("WK", doc.Wijkcode)
	case "buurt":
		return prefixed("BU", doc.Buurtcode)
	default:
		return ""
	}
}

func prefixed(prefix, code string) string {
	if code == "" {
		return ""
	}
	if strings.HasPrefix(code, prefix) {
		return code
	}
	return prefix + code
}
