package repository

import (
	"context"

	"nearby-places/internal/apperr"
	"nearby-places/internal/model"

	"github.com/jmoiron/sqlx"
)

// --- SQLite Implementation ---

type sqlitePlaceRepository struct {
	db *sqlx.DB
}

func (r *sqlitePlaceRepository) BulkInsertPlaces(ctx context.Context, places []model.Place) error {
	if len(places) == 0 {
		return nil
	}

	for _, batch := range chunkPlaces(places) {
		// INSERT OR IGNORE is SQLite's equivalent of ON CONFLICT DO NOTHING
		// against the place_id uniqueness constraint.
		_, err := r.db.NamedExecContext(ctx, `
		INSERT OR IGNORE INTO places (
			business_status, name, place_id, reference, types, vicinity,
			location_latitude, location_longitude,
			viewport_northeast_latitude, viewport_northeast_longitude,
			viewport_southwest_latitude, viewport_southwest_longitude
		) VALUES (
			:business_status, :name, :place_id, :reference, :types, :vicinity,
			:location_latitude, :location_longitude,
			:viewport_northeast_latitude, :viewport_northeast_longitude,
			:viewport_southwest_latitude, :viewport_southwest_longitude
		)`,
			batch)
		if err != nil {
			return apperr.Wrap(apperr.KindPersistence, "repository.BulkInsertPlaces", "executing insert", err)
		}
	}
	return nil
}

func (r *sqlitePlaceRepository) CountPlaces(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM places"); err != nil {
		return 0, apperr.Wrap(apperr.KindPersistence, "repository.CountPlaces", "counting rows", err)
	}
	return count, nil
}
