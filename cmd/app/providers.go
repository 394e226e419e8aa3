package main

import (
	"github.com/22csec49/guideAPI/internal/domain/travelguide"
	"github.com/22csec49/guideAPI/internal/infra/config"
	"github.com/22csec49/guideAPI/internal/infra/geo/nominatim"
	"github.com/22csec49/guideAPI/internal/infra/images/wikimedia"
	"github.com/22csec49/guideAPI/internal/infra/llm/gemini"
	"github.com/22csec49/guideAPI/internal/infra/places/opentripmap"
	"github.com/22csec49/guideAPI/internal/infra/weather/openweather"
)

func provideGuideConfig(cfg *config.Config) travelguide.Config {
	return travelguide.Config{
		MinHotels:          cfg.Guide.MinHotels,
		TopPlaces:          cfg.Guide.TopPlaces,
		SearchRadiusMeters: cfg.Guide.SearchRadiusMeters,
		SearchLimit:        cfg.Guide.SearchLimit,
	}
}

func provideGeminiClient(cfg *config.Config) (*gemini.Client, error) {
	return gemini.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Temperature)
}

func provideNominatimClient(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(cfg.Geo.BaseURL, cfg.Geo.UserAgent)
}

func provideOpenTripMapClient(cfg *config.Config) *opentripmap.Client {
	return opentripmap.NewClient(cfg.Places.APIKey, cfg.Places.BaseURL)
}

func provideWikimediaClient(cfg *config.Config) *wikimedia.Client {
	return wikimedia.NewClient(cfg.Images.BaseURL)
}

func provideOpenWeatherClient(cfg *config.Config) *openweather.Client {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)
}
