package service

import (
	"context"

	"nearby-places/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	NearbyRestaurants(ctx context.Context, req model.NearbySearchRequest) (*model.SearchResponse, error)
}
