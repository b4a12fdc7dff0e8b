package model

// NearbySearchRequest represents the body of POST /nearby_restaurants
type NearbySearchRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// SearchResponse represents the upstream nearby-search payload.
// The handler returns it to the caller exactly as received, regardless
// of how many rows the persistence step actually inserted.
type SearchResponse struct {
	NextPageToken string    `json:"next_page_token"`
	Results       []Listing `json:"results"`
}

// Listing represents one search result from the upstream places API
type Listing struct {
	BusinessStatus string   `json:"business_status"`
	Geometry       Geometry `json:"geometry"`
	Name           string   `json:"name"`
	PlaceID        string   `json:"place_id"`
	Reference      string   `json:"reference"`
	Types          []string `json:"types"`
	Vicinity       string   `json:"vicinity"`
}

// Geometry holds a listing's position and recommended viewport
type Geometry struct {
	Location LatLng   `json:"location"`
	Viewport Viewport `json:"viewport"`
}

// Viewport represents the viewport corners for a listing
type Viewport struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

// LatLng represents a geographic coordinate pair
type LatLng struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
