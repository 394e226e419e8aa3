package nominatim

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

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client geocodes place names against a Nominatim endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a geocoding client.
func NewClient(baseURL, userAgent string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(endpoint, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Locate resolves a place name into coordinates. Zero results is an error;
// the orchestrator decides whether that degrades or fails the request.
func (c *Client) Locate(ctx context.Context, place string) (travelguide.Coordinates, error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("accept-language", "en")

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return travelguide.Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return travelguide.Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return travelguide.Coordinates{}, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return travelguide.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return travelguide.Coordinates{}, fmt.Errorf("no geocode results for %q", place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return travelguide.Coordinates{}, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return travelguide.Coordinates{}, fmt.Errorf("parse longitude: %w", err)
	}
	return travelguide.Coordinates{Lat: lat, Lon: lon}, nil
}

// searchResult is shaped for the Nominatim response; lat/lon arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
