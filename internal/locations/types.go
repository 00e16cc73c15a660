// Package locations resolves free-text searches to CBS region codes via the
// PDOK Locatieserver, so the statistics endpoints can be addressed by name.
package locations

// SearchRequest represents the query parameters from the frontend.
type SearchRequest struct {
	Query string `form:"q" binding:"required,min=2"`
}

// Location is one resolvable area: a municipality, district or neighborhood.
type Location struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	RegionCode   string `json:"regionCode"`
	Municipality string `json:"municipality"`
}

// locatieserverDoc mirrors the relevant fields of a Locatieserver result.
type locatieserverDoc struct {
	ID           string `json:"id"`
	Weergavenaam string `json:"weergavenaam"`
	Type         string `json:"type"`
	Gemeentecode string `json:"gemeentecode"`
	Gemeentenaam string `json:"gemeentenaam"`
	Wijkcode     string `json:"wijkcode"`
	Buurtcode    string `json:"buurtcode"`
}

// locatieserverResponse mirrors the Solr-style envelope of the free search.
type locatieserverResponse struct {
	Response struct {
		Docs []locatieserverDoc `json:"docs"`
	} `json:"response"`
}
