package travelguide

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/22csec49/guideAPI/pkg/errors"
)

// Service exposes the travel guide orchestration.
type Service interface {
	Plan(ctx context.Context, req Request) (Response, error)
}

// Oracle is the text-generation collaborator supplying hotel suggestions.
type Oracle interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Geocoder resolves a place name into coordinates.
type Geocoder interface {
	Locate(ctx context.Context, place string) (Coordinates, error)
}

// PlaceSearcher lists named points of interest around a coordinate,
// ordered by provider relevance/distance.
type PlaceSearcher interface {
	Nearby(ctx context.Context, coords Coordinates, radiusMeters, limit int) ([]NearbyPlace, error)
}

// ImageFinder resolves a place title into zero or one image URL.
type ImageFinder interface {
	ImageURL(ctx context.Context, title string) (string, error)
}

// WeatherClient fetches the current weather for a place name.
type WeatherClient interface {
	Current(ctx context.Context, place string) (WeatherSnapshot, error)
}

type service struct {
	cfg      Config
	oracle   Oracle
	geocoder Geocoder
	searcher PlaceSearcher
	images   ImageFinder
	weather  WeatherClient
	logger   *slog.Logger
}

// NewService wires up the travel guide domain.
func NewService(cfg Config, oracle Oracle, geocoder Geocoder, searcher PlaceSearcher, images ImageFinder, weather WeatherClient, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		oracle:   oracle,
		geocoder: geocoder,
		searcher: searcher,
		images:   images,
		weather:  weather,
		logger:   logger.With("component", "travelguide.service"),
	}
}

// Plan validates the query, fans out to the providers and merges the
// branches into one envelope. The hotel branch is mandatory; weather and
// tourist places degrade to empty on failure.
func (s *service) Plan(ctx context.Context, req Request) (Response, error) {
	if err := validate(req); err != nil {
		return Response{}, err
	}

	var (
		hotels  []HotelOffer
		weather *WeatherSnapshot
		places  []TouristPlace
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.fetchHotels(gctx, req)
		if err != nil {
			return err
		}
		hotels = found
		return nil
	})
	g.Go(s.optional("weather", func() error {
		snapshot, err := s.weather.Current(gctx, req.Place)
		if err != nil {
			return err
		}
		weather = &snapshot
		return nil
	}))
	g.Go(s.optional("tourist_places", func() error {
		found, err := s.fetchTouristPlaces(gctx, req.Place)
		if err != nil {
			return err
		}
		places = found
		return nil
	}))
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	if places == nil {
		places = []TouristPlace{}
	}
	s.logger.Info("travel guide assembled", "place", req.Place, "hotels", len(hotels), "touristPlaces", len(places), "weather", weather != nil)

	return Response{
		Hotels:           hotels,
		Weather:          weather,
		TopTouristPlaces: places,
	}, nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.Place) == "" || req.Members <= 0 || req.Budget <= 0 {
		return apperrors.Wrap("invalid_input", "Missing required fields", nil)
	}
	return nil
}

// optional marks a branch as non-critical: its failure is logged and
// absorbed so the request still succeeds with the field left empty.
func (s *service) optional(branch string, fn func() error) func() error {
	return func() error {
		if err := fn(); err != nil {
			s.logger.Warn("optional branch degraded", "branch", branch, "error", err)
		}
		return nil
	}
}

func (s *service) fetchHotels(ctx context.Context, req Request) ([]HotelOffer, error) {
	raw, err := s.oracle.GenerateContent(ctx, s.buildHotelPrompt(req))
	if err != nil {
		return nil, apperrors.Wrap("oracle_error", "text generation request failed", err)
	}
	hotels, err := ParseHotels(raw, s.cfg.MinHotels)
	if err != nil {
		return nil, apperrors.Wrap("oracle_malformed", "oracle returned malformed hotel data", err)
	}
	return hotels, nil
}

func (s *service) fetchTouristPlaces(ctx context.Context, place string) ([]TouristPlace, error) {
	coords, err := s.geocoder.Locate(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", place, err)
	}

	nearby, err := s.searcher.Nearby(ctx, coords, s.cfg.SearchRadiusMeters, s.cfg.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}

	// Image lookups run concurrently; a miss only drops that entry.
	imageURLs := make([]string, len(nearby))
	g, gctx := errgroup.WithContext(ctx)
	for i, spot := range nearby {
		i, spot := i, spot
		g.Go(func() error {
			imageURL, err := s.images.ImageURL(gctx, spot.Name)
			if err != nil {
				s.logger.Debug("image lookup failed", "place", spot.Name, "error", err)
				return nil
			}
			imageURLs[i] = imageURL
			return nil
		})
	}
	_ = g.Wait()

	places := make([]TouristPlace, 0, s.cfg.TopPlaces)
	for i, spot := range nearby {
		if imageURLs[i] == "" {
			continue
		}
		places = append(places, TouristPlace{Name: spot.Name, ImageURL: imageURLs[i]})
		if len(places) == s.cfg.TopPlaces {
			break
		}
	}
	return places, nil
}

func (s *service) buildHotelPrompt(req Request) string {
	return fmt.Sprintf(`Suggest at least %d hotels in %s for %d people within a budget of ₹%d.
Each hotel should include:
- Hotel name
- Location
- Contact phone number
- Pricing with food and without food
- Food availability (true/false)

Ensure the response is pure JSON with no extra text. Example:
{
  "hotels": [
    {
      "name": "Hotel XYZ",
      "location": "Place ABC",
      "phone": "+91 6374733801",
      "price": {"withFood": 5000, "withoutFood": 4200},
      "foodIncluded": %t
    }
  ]
}`, s.cfg.MinHotels, req.Place, req.Members, req.Budget, req.FoodIncluded)
}
