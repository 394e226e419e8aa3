package travelguide

// Request captures the travel query accepted by the guide service.
type Request struct {
	Place        string `json:"place"`
	Members      int    `json:"members"`
	Budget       int    `json:"budget"`
	FoodIncluded bool   `json:"foodIncluded"`
}

// Response is the envelope serialized back to API consumers.
type Response struct {
	Hotels           []HotelOffer     `json:"hotels"`
	Weather          *WeatherSnapshot `json:"weather,omitempty"`
	TopTouristPlaces []TouristPlace   `json:"topTouristPlaces"`
}

// HotelOffer is a single hotel suggestion produced by the oracle and
// rewritten by the normalizer.
type HotelOffer struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	Price        Price  `json:"price"`
	FoodIncluded bool   `json:"foodIncluded"`
	MapLink      string `json:"mapLink"`
}

// Price holds the per-stay rate with and without meals.
type Price struct {
	WithFood    float64 `json:"withFood"`
	WithoutFood float64 `json:"withoutFood"`
}

// WeatherSnapshot is the current weather at the queried place.
type WeatherSnapshot struct {
	TemperatureCelsius float64 `json:"temp"`
	Description        string  `json:"description"`
	HumidityPercent    int     `json:"humidity"`
}

// TouristPlace is a nearby point of interest with a resolved image.
type TouristPlace struct {
	Name     string `json:"name"`
	ImageURL string `json:"image"`
}

// Coordinates is a WGS 84 coordinate pair produced by geocoding.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NearbyPlace is a raw search hit before image enrichment.
type NearbyPlace struct {
	Name           string
	DistanceMeters float64
}

// Config wires the policy knobs of the guide domain.
type Config struct {
	MinHotels          int
	TopPlaces          int
	SearchRadiusMeters int
	SearchLimit        int
}
