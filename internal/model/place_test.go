package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    StringSlice
		expected string
	}{
		{
			name:     "plain elements",
			input:    StringSlice{"restaurant", "food", "point_of_interest"},
			expected: `{"restaurant", "food", "point_of_interest"}`,
		},
		{
			name:     "single quote survives unescaped in this context",
			input:    StringSlice{"o'brien's", "bar"},
			expected: `{"o'brien's", "bar"}`,
		},
		{
			name:     "embedded double quote is escaped",
			input:    StringSlice{`say "cheese"`},
			expected: `{"say \"cheese\""}`,
		},
		{
			name:     "backslash is escaped before quoting",
			input:    StringSlice{`back\slash`},
			expected: `{"back\\slash"}`,
		},
		{
			name:     "empty slice",
			input:    StringSlice{},
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := tt.input.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)

			var back StringSlice
			require.NoError(t, back.Scan(val))
			assert.Equal(t, tt.input, back)
		})
	}
}

func TestStringSlice_ScanErrors(t *testing.T) {
	var s StringSlice

	assert.Error(t, s.Scan("no braces"))
	assert.Error(t, s.Scan(`{"unterminated}`))
	assert.Error(t, s.Scan(42))

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)
}

func TestListingToPlace(t *testing.T) {
	listing := Listing{
		BusinessStatus: "OPERATIONAL",
		Name:           "Joe's Pizza",
		PlaceID:        "ChIJAAAA",
		Reference:      "ref-1",
		Types:          []string{"restaurant", "food"},
		Vicinity:       "7 Carmine St, New York",
		Geometry: Geometry{
			Location: LatLng{Latitude: 40.7304, Longitude: -74.0026},
			Viewport: Viewport{
				Northeast: LatLng{Latitude: 40.7318, Longitude: -74.0012},
				Southwest: LatLng{Latitude: 40.7291, Longitude: -74.0039},
			},
		},
	}

	place := ListingToPlace(listing)

	assert.Equal(t, "OPERATIONAL", place.BusinessStatus)
	assert.Equal(t, "Joe's Pizza", place.Name)
	assert.Equal(t, "ChIJAAAA", place.PlaceID)
	assert.Equal(t, "ref-1", place.Reference)
	assert.Equal(t, StringSlice{"restaurant", "food"}, place.Types)
	assert.Equal(t, "7 Carmine St, New York", place.Vicinity)
	assert.Equal(t, 40.7304, place.LocationLatitude)
	assert.Equal(t, -74.0026, place.LocationLongitude)
	assert.Equal(t, 40.7318, place.ViewportNortheastLatitude)
	assert.Equal(t, -74.0012, place.ViewportNortheastLongitude)
	assert.Equal(t, 40.7291, place.ViewportSouthwestLatitude)
	assert.Equal(t, -74.0039, place.ViewportSouthwestLongitude)
}

func TestListingsToPlaces_PreservesOrder(t *testing.T) {
	listings := []Listing{
		{PlaceID: "a", Name: "First"},
		{PlaceID: "b", Name: "Second"},
		{PlaceID: "c", Name: "Third"},
	}

	places := ListingsToPlaces(listings)

	require.Len(t, places, 3)
	assert.Equal(t, "a", places[0].PlaceID)
	assert.Equal(t, "b", places[1].PlaceID)
	assert.Equal(t, "c", places[2].PlaceID)
}
