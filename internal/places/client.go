// Package places wraps the upstream nearby-search API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"nearby-places/internal/apperr"
	"nearby-places/internal/model"
)

const searchPath = "/maps/api/place/nearbysearch/json"

// Client issues nearby-search requests against the upstream API
type Client interface {
	NearbySearch(ctx context.Context, latitude, longitude string) (*model.SearchResponse, error)
}

// HTTPClient is the live implementation of Client. The *http.Client is
// shared across all in-flight requests and must be safe for concurrent
// use (the stdlib client is).
type HTTPClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a places client against the given base URL
func NewHTTPClient(apiKey, baseURL string, httpClient *http.Client) *HTTPClient {
	return &HTTPClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// NearbySearch fetches the first page of restaurants ranked by distance
// from the given coordinates. Latitude and longitude are spliced into
// the location parameter exactly as supplied by the caller.
func (c *HTTPClient) NearbySearch(ctx context.Context, latitude, longitude string) (*model.SearchResponse, error) {
	const op = "places.NearbySearch"

	url := fmt.Sprintf("%s%s?key=%s&location=%s,%s&rankby=distance&type=restaurant",
		c.baseURL, searchPath, c.apiKey, latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamRequest, op, "building request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamRequest, op, "calling places API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamRequest, op, "reading response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.KindUpstreamRequest, op,
			fmt.Sprintf("places API returned status %d: %s", resp.StatusCode, body))
	}

	var search model.SearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamDecode, op, "decoding search response", err)
	}

	return &search, nil
}
