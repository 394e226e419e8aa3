package travelguide

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const mapSearchTemplate = "https://www.google.com/maps/search/?api=1&query="

// ParseHotels coerces the oracle's free-text output into a validated hotel
// list. The text may arrive wrapped in markdown code fences; those are
// stripped before structural parsing. Fewer than minHotels entries is a
// failure, never a partial list.
func ParseHotels(raw string, minHotels int) ([]HotelOffer, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))

	var wire struct {
		Hotels []hotelWire `json:"hotels"`
	}
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return nil, err
	}
	if wire.Hotels == nil {
		return nil, errors.New("hotels field missing or not a list")
	}
	if len(wire.Hotels) < minHotels {
		return nil, fmt.Errorf("got %d hotels, want at least %d", len(wire.Hotels), minHotels)
	}

	hotels := make([]HotelOffer, 0, len(wire.Hotels))
	for _, h := range wire.Hotels {
		hotels = append(hotels, HotelOffer{
			Name:         h.Name,
			Location:     h.Location,
			Phone:        h.Phone,
			Price:        coercePrice(h.Price),
			FoodIncluded: h.FoodIncluded,
			MapLink:      MapLink(h.Name, h.Location),
		})
	}
	return hotels, nil
}

// MapLink derives a map-search deep link from a hotel's name and location.
// Links supplied by the oracle are unreliable and are always discarded.
func MapLink(name, location string) string {
	query := strings.TrimSpace(strings.TrimSpace(name) + " " + strings.TrimSpace(location))
	return mapSearchTemplate + url.QueryEscape(query)
}

type hotelWire struct {
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Phone        string          `json:"phone"`
	Price        json.RawMessage `json:"price"`
	FoodIncluded bool            `json:"foodIncluded"`
}

// coercePrice accepts either the two-field object or the bare number older
// oracle revisions produce. Anything else passes through as a zero price;
// price fields get no semantic validation here.
func coercePrice(raw json.RawMessage) Price {
	if len(raw) == 0 || string(raw) == "null" {
		return Price{}
	}
	switch raw[0] {
	case '{':
		var price Price
		if err := json.Unmarshal(raw, &price); err != nil {
			return Price{}
		}
		return price
	default:
		var single float64
		if err := json.Unmarshal(raw, &single); err != nil {
			return Price{}
		}
		return Price{WithFood: single, WithoutFood: single}
	}
}
