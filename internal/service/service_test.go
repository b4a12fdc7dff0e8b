package service

import (
	"context"
	"testing"

	"nearby-places/internal/apperr"
	"nearby-places/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlacesClient is a mock implementation of places.Client
type MockPlacesClient struct {
	mock.Mock
}

func (m *MockPlacesClient) NearbySearch(ctx context.Context, latitude, longitude string) (*model.SearchResponse, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResponse), args.Error(1)
}

// MockPlaceRepository is a mock implementation of repository.PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) BulkInsertPlaces(ctx context.Context, places []model.Place) error {
	args := m.Called(ctx, places)
	return args.Error(0)
}

func (m *MockPlaceRepository) CountPlaces(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func sampleSearch() *model.SearchResponse {
	return &model.SearchResponse{
		NextPageToken: "tok",
		Results: []model.Listing{
			{
				Name:    "Joe's Pizza",
				PlaceID: "place-1",
				Types:   []string{"restaurant"},
			},
		},
	}
}

func TestService_NearbyRestaurants(t *testing.T) {
	client := new(MockPlacesClient)
	repo := new(MockPlaceRepository)

	search := sampleSearch()
	client.On("NearbySearch", mock.Anything, "40.7", "-74.0").Return(search, nil)
	repo.On("BulkInsertPlaces", mock.Anything, mock.MatchedBy(func(rows []model.Place) bool {
		return len(rows) == 1 && rows[0].PlaceID == "place-1"
	})).Return(nil)

	svc := NewService("key", client, repo)
	resp, err := svc.NearbyRestaurants(context.Background(), model.NearbySearchRequest{
		Latitude:  "40.7",
		Longitude: "-74.0",
	})
	require.NoError(t, err)

	// The caller gets the upstream payload as fetched, not a view of
	// what persistence did.
	assert.Same(t, search, resp)
	client.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestService_NearbyRestaurants_MissingAPIKey(t *testing.T) {
	client := new(MockPlacesClient)
	repo := new(MockPlaceRepository)

	svc := NewService("", client, repo)
	_, err := svc.NearbyRestaurants(context.Background(), model.NearbySearchRequest{Latitude: "1", Longitude: "2"})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConfiguration))
	client.AssertNotCalled(t, "NearbySearch", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_NearbyRestaurants_EmptyResults(t *testing.T) {
	client := new(MockPlacesClient)
	repo := new(MockPlaceRepository)

	client.On("NearbySearch", mock.Anything, "1", "2").Return(&model.SearchResponse{}, nil)
	repo.On("BulkInsertPlaces", mock.Anything, []model.Place{}).Return(nil)

	svc := NewService("key", client, repo)
	resp, err := svc.NearbyRestaurants(context.Background(), model.NearbySearchRequest{Latitude: "1", Longitude: "2"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestService_NearbyRestaurants_UpstreamFailurePassesThrough(t *testing.T) {
	client := new(MockPlacesClient)
	repo := new(MockPlaceRepository)

	upstreamErr := apperr.New(apperr.KindUpstreamDecode, "places.NearbySearch", "decoding search response")
	client.On("NearbySearch", mock.Anything, "1", "2").Return(nil, upstreamErr)

	svc := NewService("key", client, repo)
	_, err := svc.NearbyRestaurants(context.Background(), model.NearbySearchRequest{Latitude: "1", Longitude: "2"})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUpstreamDecode))
	repo.AssertNotCalled(t, "BulkInsertPlaces", mock.Anything, mock.Anything)
}

func TestService_NearbyRestaurants_PersistenceFailure(t *testing.T) {
	client := new(MockPlacesClient)
	repo := new(MockPlaceRepository)

	client.On("NearbySearch", mock.Anything, "1", "2").Return(sampleSearch(), nil)
	repo.On("BulkInsertPlaces", mock.Anything, mock.Anything).
		Return(apperr.New(apperr.KindPersistence, "repository.BulkInsertPlaces", "executing insert"))

	svc := NewService("key", client, repo)
	_, err := svc.NearbyRestaurants(context.Background(), model.NearbySearchRequest{Latitude: "1", Longitude: "2"})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPersistence))
}
