package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/22csec49/guideAPI/internal/domain/travelguide"
	"github.com/22csec49/guideAPI/internal/infra/config"
	apperrors "github.com/22csec49/guideAPI/pkg/errors"
)

func TestRouter_TravelGuideSuccess(t *testing.T) {
	want := travelguide.Response{
		Hotels: []travelguide.HotelOffer{
			{Name: "Hotel One", Location: "Madurai", Phone: "+91 1111111111", Price: travelguide.Price{WithFood: 5000, WithoutFood: 4200}, FoodIncluded: true, MapLink: travelguide.MapLink("Hotel One", "Madurai")},
		},
		Weather:          &travelguide.WeatherSnapshot{TemperatureCelsius: 31.2, Description: "clear sky", HumidityPercent: 55},
		TopTouristPlaces: []travelguide.TouristPlace{{Name: "Meenakshi Temple", ImageURL: "https://img.example/temple.jpg"}},
	}
	svc := &stubGuideService{
		planFn: func(ctx context.Context, req travelguide.Request) (travelguide.Response, error) {
			require.Equal(t, "Madurai", req.Place)
			require.Equal(t, 4, req.Members)
			require.Equal(t, 10000, req.Budget)
			require.True(t, req.FoodIncluded)
			return want, nil
		},
	}

	recorder := performRequest("/api/travel-guide", `{"place":"Madurai","members":4,"budget":10000,"foodIncluded":true}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got travelguide.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, want, got)
}

func TestRouter_TravelGuideMissingFields(t *testing.T) {
	svc := &stubGuideService{
		planFn: func(ctx context.Context, req travelguide.Request) (travelguide.Response, error) {
			return travelguide.Response{}, apperrors.Wrap("invalid_input", "Missing required fields", nil)
		},
	}

	recorder := performRequest("/api/travel-guide", `{"members":4,"budget":10000}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, map[string]string{"error": "Missing required fields"}, decodeErrorBody(t, recorder.Body.Bytes()))
}

func TestRouter_TravelGuideMalformedBody(t *testing.T) {
	svc := &stubGuideService{}

	recorder := performRequest("/api/travel-guide", `{"place":123}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, map[string]string{"error": "Missing required fields"}, decodeErrorBody(t, recorder.Body.Bytes()))
}

func TestRouter_TravelGuideOracleMalformed(t *testing.T) {
	svc := &stubGuideService{
		planFn: func(ctx context.Context, req travelguide.Request) (travelguide.Response, error) {
			return travelguide.Response{}, apperrors.Wrap("oracle_malformed", "oracle returned malformed hotel data", nil)
		},
	}

	recorder := performRequest("/api/travel-guide", `{"place":"Madurai","members":4,"budget":10000}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, map[string]string{"error": "Invalid JSON format from AI response"}, decodeErrorBody(t, recorder.Body.Bytes()))
}

func TestRouter_TravelGuideOracleUnavailable(t *testing.T) {
	svc := &stubGuideService{
		planFn: func(ctx context.Context, req travelguide.Request) (travelguide.Response, error) {
			return travelguide.Response{}, apperrors.Wrap("oracle_error", "text generation request failed", nil)
		},
	}

	recorder := performRequest("/api/travel-guide", `{"place":"Madurai","members":4,"budget":10000}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, map[string]string{"error": "Failed to fetch hotel recommendations"}, decodeErrorBody(t, recorder.Body.Bytes()))
}

func TestRouter_RequestIDHeader(t *testing.T) {
	svc := &stubGuideService{}

	recorder := performRequest("/api/travel-guide", `{"place":"Madurai","members":4,"budget":10000}`, newRouterUnderTest(t, svc))
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRouter_Health(t *testing.T) {
	server := newRouterUnderTest(t, &stubGuideService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func performRequest(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc travelguide.Service) *http.Server {
	t.Helper()
	handler := NewHandler(svc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubGuideService struct {
	planFn func(ctx context.Context, req travelguide.Request) (travelguide.Response, error)
}

func (s *stubGuideService) Plan(ctx context.Context, req travelguide.Request) (travelguide.Response, error) {
	if s.planFn != nil {
		return s.planFn(ctx, req)
	}
	return travelguide.Response{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
