package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	LLM     LLMConfig     `yaml:"llm"`
	Guide   GuideConfig   `yaml:"guide"`
	Geo     GeoConfig     `yaml:"geo"`
	Places  PlacesConfig  `yaml:"places"`
	Images  ImagesConfig  `yaml:"images"`
	Weather WeatherConfig `yaml:"weather"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// LLMConfig contains settings for the text-generation oracle.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// GuideConfig defines the policy knobs of the travel guide domain.
type GuideConfig struct {
	MinHotels          int `yaml:"minHotels"`
	TopPlaces          int `yaml:"topPlaces"`
	SearchRadiusMeters int `yaml:"searchRadiusMeters"`
	SearchLimit        int `yaml:"searchLimit"`
}

// GeoConfig points at the geocoding provider.
type GeoConfig struct {
	BaseURL   string `yaml:"baseUrl"`
	UserAgent string `yaml:"userAgent"`
}

// PlacesConfig points at the nearby-place search provider.
type PlacesConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

// ImagesConfig points at the place-image lookup provider.
type ImagesConfig struct {
	BaseURL string `yaml:"baseUrl"`
}

// WeatherConfig points at the current-weather provider.
type WeatherConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("GUIDE_MIN_HOTELS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Guide.MinHotels = parsed
		}
	}
	if v := os.Getenv("GUIDE_TOP_PLACES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Guide.TopPlaces = parsed
		}
	}
	if v := os.Getenv("GUIDE_SEARCH_RADIUS_METERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Guide.SearchRadiusMeters = parsed
		}
	}
	if v := os.Getenv("GUIDE_SEARCH_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Guide.SearchLimit = parsed
		}
	}
	if v := os.Getenv("GEO_BASE_URL"); v != "" {
		cfg.Geo.BaseURL = v
	}
	if v := os.Getenv("GEO_USER_AGENT"); v != "" {
		cfg.Geo.UserAgent = v
	}
	if v := os.Getenv("OTM_API_KEY"); v != "" {
		cfg.Places.APIKey = v
	}
	if v := os.Getenv("PLACES_BASE_URL"); v != "" {
		cfg.Places.BaseURL = v
	}
	if v := os.Getenv("IMAGES_BASE_URL"); v != "" {
		cfg.Images.BaseURL = v
	}
	if v := os.Getenv("OWM_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":5000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL:     "https://generativelanguage.googleapis.com",
			Model:       "gemini-1.5-pro",
			Temperature: 0.4,
		},
		Guide: GuideConfig{
			MinHotels:          6,
			TopPlaces:          5,
			SearchRadiusMeters: 10000,
			SearchLimit:        15,
		},
		Geo: GeoConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "travel-guide-api/1.0",
		},
		Places: PlacesConfig{
			BaseURL: "https://api.opentripmap.com",
		},
		Images: ImagesConfig{
			BaseURL: "https://en.wikipedia.org",
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.Guide.MinHotels <= 0 {
		return errors.New("guide.minHotels must be positive")
	}
	if c.Guide.TopPlaces <= 0 {
		return errors.New("guide.topPlaces must be positive")
	}
	if c.Guide.SearchRadiusMeters <= 0 {
		return errors.New("guide.searchRadiusMeters must be positive")
	}
	if c.Guide.SearchLimit < c.Guide.TopPlaces {
		return errors.New("guide.searchLimit cannot be lower than guide.topPlaces")
	}
	if c.Geo.BaseURL == "" {
		return errors.New("geo.baseUrl cannot be empty")
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.baseUrl cannot be empty")
	}
	return nil
}
