package opentripmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/22csec49/guideAPI/internal/domain/travelguide"
)

const defaultBaseURL = "https://api.opentripmap.com"

// Client searches points of interest via the OpenTripMap radius API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a place-search client.
func NewClient(apiKey, baseURL string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Nearby lists named tourist attractions around the given coordinates,
// ordered by distance as reported by the provider.
func (c *Client) Nearby(ctx context.Context, coords travelguide.Coordinates, radiusMeters, limit int) ([]travelguide.NearbyPlace, error) {
	params := url.Values{}
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Set("kinds", "interesting_places")
	params.Set("rate", "2")
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("apikey", c.apiKey)

	endpoint := fmt.Sprintf("%s/0.1/en/places/radius?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build place search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("place search error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var features []feature
	if err := json.NewDecoder(resp.Body).Decode(&features); err != nil {
		return nil, fmt.Errorf("decode place search response: %w", err)
	}

	places := make([]travelguide.NearbyPlace, 0, len(features))
	seen := make(map[string]struct{})
	for _, f := range features {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		places = append(places, travelguide.NearbyPlace{
			Name:           name,
			DistanceMeters: f.Dist,
		})
	}
	return places, nil
}

type feature struct {
	XID   string  `json:"xid"`
	Name  string  `json:"name"`
	Dist  float64 `json:"dist"`
	Rate  int     `json:"rate"`
	Kinds string  `json:"kinds"`
}
