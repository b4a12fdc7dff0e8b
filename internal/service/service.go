package service

import (
	"context"

	"nearby-places/internal/apperr"
	"nearby-places/internal/model"
	"nearby-places/internal/places"
	"nearby-places/internal/repository"
)

// Service provides business logic for the API
type Service struct {
	apiKey    string
	places    places.Client
	placeRepo repository.PlaceRepository
}

// NewService creates a new service instance
func NewService(apiKey string, placesClient places.Client, placeRepo repository.PlaceRepository) *Service {
	return &Service{
		apiKey:    apiKey,
		places:    placesClient,
		placeRepo: placeRepo,
	}
}

// NearbyRestaurants fetches restaurants around the given coordinates,
// persists them, and returns the upstream payload untouched. The
// response always reflects what upstream said, not what was stored.
func (s *Service) NearbyRestaurants(ctx context.Context, req model.NearbySearchRequest) (*model.SearchResponse, error) {
	if s.apiKey == "" {
		return nil, apperr.New(apperr.KindConfiguration, "service.NearbyRestaurants",
			"GOOGLE_PLACES_API_KEY is not set")
	}

	search, err := s.places.NearbySearch(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	if err := s.placeRepo.BulkInsertPlaces(ctx, model.ListingsToPlaces(search.Results)); err != nil {
		return nil, err
	}

	return search, nil
}
