package interfaces

import (
	"context"
	"errors"

	"caza_backend/internal/domain/entities"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrColumnNotFound = errors.New("column not found")
)

// IRecordStore is the external tabular source of truth (the season spreadsheet).
//
// Rows come back in source order with header-derived field names; short rows
// are padded with empty values.
type IRecordStore interface {
	ReadRows(ctx context.Context, sourceID, collection string) ([]entities.Record, error)
	AppendRows(ctx context.Context, sourceID, collection string, rows [][]string) error
	// UpdateCell sets column on the first row whose keyColumn equals key.
	UpdateCell(ctx context.Context, sourceID, collection, keyColumn, key, column, value string) error
}
