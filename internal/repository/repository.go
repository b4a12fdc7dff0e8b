package repository

import (
	"context"

	"nearby-places/internal/config"
	"nearby-places/internal/model"

	"github.com/jmoiron/sqlx"
)

// PlaceRepository defines operations for persisted places.
// The places table is append-only from this layer's perspective:
// inserting a row whose place_id already exists is a silent no-op.
type PlaceRepository interface {
	BulkInsertPlaces(ctx context.Context, places []model.Place) error
	CountPlaces(ctx context.Context) (int64, error)
}

// insertChunkSize bounds bind parameters per statement
// (PG caps at 65535; 12 columns per row)
const insertChunkSize = 1000

// NewPlaceRepository creates a repository implementation based on DB type
func NewPlaceRepository(db *sqlx.DB, dbType config.DBType) PlaceRepository {
	if dbType == config.DBTypePostgreSQL {
		return &pgPlaceRepository{db: db}
	}

	// Default to SQLite
	return &sqlitePlaceRepository{db: db}
}

func chunkPlaces(places []model.Place) [][]model.Place {
	var chunks [][]model.Place
	for i := 0; i < len(places); i += insertChunkSize {
		end := i + insertChunkSize
		if end > len(places) {
			end = len(places)
		}
		chunks = append(chunks, places[i:end])
	}
	return chunks
}
