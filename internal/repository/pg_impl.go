package repository

import (
	"context"

	"nearby-places/internal/apperr"
	"nearby-places/internal/model"

	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

type pgPlaceRepository struct {
	db *sqlx.DB
}

func (r *pgPlaceRepository) BulkInsertPlaces(ctx context.Context, places []model.Place) error {
	// Nothing to insert; a zero-row VALUES clause is invalid SQL.
	if len(places) == 0 {
		return nil
	}

	for _, batch := range chunkPlaces(places) {
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO places (
			business_status, name, place_id, reference, types, vicinity,
			location_latitude, location_longitude,
			viewport_northeast_latitude, viewport_northeast_longitude,
			viewport_southwest_latitude, viewport_southwest_longitude
		) VALUES (
			:business_status, :name, :place_id, :reference, :types, :vicinity,
			:location_latitude, :location_longitude,
			:viewport_northeast_latitude, :viewport_northeast_longitude,
			:viewport_southwest_latitude, :viewport_southwest_longitude
		) ON CONFLICT (place_id) DO NOTHING`,
			batch)
		if err != nil {
			return apperr.Wrap(apperr.KindPersistence, "repository.BulkInsertPlaces", "executing insert", err)
		}
	}
	return nil
}

func (r *pgPlaceRepository) CountPlaces(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM places"); err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "repository.CountPlaces", "counting rows", err)
	}
	return count, nil
}
