package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Place represents a persisted row in the places table.
// Viewport corners are flattened into four scalar columns.
type Place struct {
	BusinessStatus             string      `db:"business_status"`
	Name                       string      `db:"name"`
	PlaceID                    string      `db:"place_id"`
	Reference                  string      `db:"reference"`
	Types                      StringSlice `db:"types"`
	Vicinity                   string      `db:"vicinity"`
	LocationLatitude           float64     `db:"location_latitude"`
	LocationLongitude          float64     `db:"location_longitude"`
	ViewportNortheastLatitude  float64     `db:"viewport_northeast_latitude"`
	ViewportNortheastLongitude float64     `db:"viewport_northeast_longitude"`
	ViewportSouthwestLatitude  float64     `db:"viewport_southwest_latitude"`
	ViewportSouthwestLongitude float64     `db:"viewport_southwest_longitude"`
}

// ListingToPlace flattens an upstream listing into a places row
func ListingToPlace(l Listing) Place {
	return Place{
		BusinessStatus:             l.BusinessStatus,
		Name:                       l.Name,
		PlaceID:                    l.PlaceID,
		Reference:                  l.Reference,
		Types:                      StringSlice(l.Types),
		Vicinity:                   l.Vicinity,
		LocationLatitude:           l.Geometry.Location.Latitude,
		LocationLongitude:          l.Geometry.Location.Longitude,
		ViewportNortheastLatitude:  l.Geometry.Viewport.Northeast.Latitude,
		ViewportNortheastLongitude: l.Geometry.Viewport.Northeast.Longitude,
		ViewportSouthwestLatitude:  l.Geometry.Viewport.Southwest.Latitude,
		ViewportSouthwestLongitude: l.Geometry.Viewport.Southwest.Longitude,
	}
}

// ListingsToPlaces maps a batch of listings to rows, preserving order
func ListingsToPlaces(listings []Listing) []Place {
	places := make([]Place, 0, len(listings))
	for _, l := range listings {
		places = append(places, ListingToPlace(l))
	}
	return places
}

// StringSlice stores a list of strings in a single text column as an
// array literal of the form {"a", "b"}. Element quoting is independent
// from the statement's own string quoting: embedded double quotes and
// backslashes are backslash-escaped inside each element.
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	elems := make([]string, 0, len(s))
	for _, e := range s {
		e = strings.ReplaceAll(e, `\`, `\\`)
		e = strings.ReplaceAll(e, `"`, `\"`)
		elems = append(elems, `"`+e+`"`)
	}
	return "{" + strings.Join(elems, ", ") + "}", nil
}

// Scan implements sql.Scanner, reversing Value exactly
func (s *StringSlice) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", src)
	}

	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return fmt.Errorf("malformed array literal: %q", raw)
	}
	raw = raw[1 : len(raw)-1]
	if raw == "" {
		*s = StringSlice{}
		return nil
	}

	var (
		elems   []string
		current strings.Builder
		inQuote bool
		escaped bool
	)
	for _, r := range raw {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && inQuote:
			escaped = true
		case r == '"':
			if inQuote {
				elems = append(elems, current.String())
				current.Reset()
			}
			inQuote = !inQuote
		case inQuote:
			current.WriteRune(r)
		}
		// Separators between quoted elements are skipped.
	}
	if inQuote || escaped {
		return fmt.Errorf("unterminated element in array literal: %q", raw)
	}

	*s = elems
	return nil
}
