package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrap(KindUpstreamRequest, "places.NearbySearch", "request failed", cause)
	assert.Equal(t, "places.NearbySearch: request failed: connection refused", err.Error())

	bare := New(KindConfiguration, "", "PLACES_API_KEY is not set")
	assert.Equal(t, "PLACES_API_KEY is not set", bare.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindPersistence, "repository.BulkInsertPlaces", "insert failed", cause)

	assert.True(t, errors.Is(err, cause))

	// Wrapping again with %w still resolves to the typed error.
	outer := fmt.Errorf("handling request: %w", err)
	kind, ok := KindOf(outer)
	require.True(t, ok)
	assert.Equal(t, KindPersistence, kind)
}

func TestIsKind(t *testing.T) {
	err := New(KindMalformedRequest, "api.NearbyRestaurants", "invalid request body")

	assert.True(t, IsKind(err, KindMalformedRequest))
	assert.False(t, IsKind(err, KindUpstreamDecode))
	assert.False(t, IsKind(errors.New("plain"), KindMalformedRequest))
}
