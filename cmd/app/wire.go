//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/22csec49/guideAPI/internal/bootstrap"
	"github.com/22csec49/guideAPI/internal/domain/travelguide"
	"github.com/22csec49/guideAPI/internal/infra/config"
	"github.com/22csec49/guideAPI/internal/infra/geo/nominatim"
	"github.com/22csec49/guideAPI/internal/infra/images/wikimedia"
	"github.com/22csec49/guideAPI/internal/infra/llm/gemini"
	"github.com/22csec49/guideAPI/internal/infra/places/opentripmap"
	"github.com/22csec49/guideAPI/internal/infra/weather/openweather"
	httpiface "github.com/22csec49/guideAPI/internal/interface/http"
	"github.com/22csec49/guideAPI/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideGuideConfig,
		provideGeminiClient,
		provideNominatimClient,
		provideOpenTripMapClient,
		provideWikimediaClient,
		provideOpenWeatherClient,
		travelguide.NewService,
		wire.Bind(new(travelguide.Oracle), new(*gemini.Client)),
		wire.Bind(new(travelguide.Geocoder), new(*nominatim.Client)),
		wire.Bind(new(travelguide.PlaceSearcher), new(*opentripmap.Client)),
		wire.Bind(new(travelguide.ImageFinder), new(*wikimedia.Client)),
		wire.Bind(new(travelguide.WeatherClient), new(*openweather.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
