package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/22csec49/guideAPI/internal/domain/travelguide"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client fetches current weather from an OpenWeatherMap-compatible API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a weather client.
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

// Current fetches the weather snapshot for a place name in metric units.
func (c *Client) Current(ctx context.Context, place string) (travelguide.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return travelguide.WeatherSnapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return travelguide.WeatherSnapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return travelguide.WeatherSnapshot{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return travelguide.WeatherSnapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	snapshot := travelguide.WeatherSnapshot{
		TemperatureCelsius: out.Main.Temp,
		HumidityPercent:    out.Main.Humidity,
	}
	if len(out.Weather) > 0 {
		snapshot.Description = out.Weather[0].Description
	}
	return snapshot, nil
}

type currentWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}
