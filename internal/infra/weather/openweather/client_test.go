package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/22csec49/guideAPI/internal/domain/travelguide"
)

func TestClientCurrent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/weather", r.URL.Path)
		require.Equal(t, "Madurai", r.URL.Query().Get("q"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		require.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather": [{"main": "Clear", "description": "clear sky"}], "main": {"temp": 31.2, "humidity": 55}}`))
	}))
	defer ts.Close()

	client := NewClient("test-key", ts.URL)
	snapshot, err := client.Current(context.Background(), "Madurai")
	require.NoError(t, err)
	require.Equal(t, travelguide.WeatherSnapshot{
		TemperatureCelsius: 31.2,
		Description:        "clear sky",
		HumidityPercent:    55,
	}, snapshot)
}

func TestClientCurrentUnknownCity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod": "404", "message": "city not found"}`, http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient("test-key", ts.URL)
	_, err := client.Current(context.Background(), "Nowhereville-xyz")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=404")
}

func TestClientCurrentMissingDescription(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"weather": [], "main": {"temp": 28.0, "humidity": 70}}`))
	}))
	defer ts.Close()

	client := NewClient("test-key", ts.URL)
	snapshot, err := client.Current(context.Background(), "Madurai")
	require.NoError(t, err)
	require.Equal(t, 28.0, snapshot.TemperatureCelsius)
	require.Empty(t, snapshot.Description)
}
